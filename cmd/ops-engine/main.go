// cmd/ops-engine/main.go
package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	awsclient "stellar-ops-engine/internal/common/aws"
	"stellar-ops-engine/internal/common/config"
	"stellar-ops-engine/internal/common/errors"
	"stellar-ops-engine/internal/common/logger"
	"stellar-ops-engine/internal/common/observability"
	"stellar-ops-engine/internal/dispatch"
	"stellar-ops-engine/internal/notify"
	"stellar-ops-engine/internal/store"
	"stellar-ops-engine/pkg/registry"

	// Compliance Operations (2)
	tc "stellar-ops-engine/internal/ops/compliance/trade-check"
	vr "stellar-ops-engine/internal/ops/compliance/visa-risk"

	// Finance Operations (2)
	bl "stellar-ops-engine/internal/ops/finance/bench-liability"
	fh "stellar-ops-engine/internal/ops/finance/financial-health"

	// Sales Operations (3)
	gh "stellar-ops-engine/internal/ops/sales/golden-hour"
	sc "stellar-ops-engine/internal/ops/sales/search-clients"
	sd "stellar-ops-engine/internal/ops/sales/squad-demand"

	// Systems Operations (1)
	dq "stellar-ops-engine/internal/ops/systems/data-quality"

	// Talent Operations (3)
	bs "stellar-ops-engine/internal/ops/talent/bench-strength"
	sq "stellar-ops-engine/internal/ops/talent/build-squads"
	st "stellar-ops-engine/internal/ops/talent/search-talent"
)

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting operations engine...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Record Store ---
	recordStore, err := openStore(cfg, log)
	if err != nil {
		zapLog.Fatal("record store init failed", zap.Error(err))
	}
	zapLog.Info("Record store ready", zap.String("driver", cfg.Store.Driver))

	// --- Init Notification Channels ---
	notifier := buildNotifier(ctx, cfg, log, zapLog)

	// --- Register Operations ---
	reg := dispatch.NewRegistry()

	fhCfg, err := fh.NewConfig(cfg.Engine)
	if err != nil {
		zapLog.Fatal("placement policy invalid", zap.Error(err))
	}

	register := func(op dispatch.Operation) {
		if err := reg.Register(op); err != nil {
			zapLog.Fatal("operation registration failed", zap.String("operation", op.Name), zap.Error(err))
		}
	}

	// Finance (2)
	register(dispatch.Operation{
		Name:        fh.OpName,
		Description: "Margin and burden analysis of every active placement",
		Category:    "finance",
		InputSchema: fh.InputSchema(),
		Timeout:     fhCfg.Timeout,
		Handle:      fh.NewHandler(fhCfg, recordStore, log).Run,
	})
	blCfg := bl.NewConfig()
	register(dispatch.Operation{
		Name:        bl.OpName,
		Description: "Weekly cash burn from guaranteed-hours candidates on the bench",
		Category:    "finance",
		InputSchema: bl.InputSchema(),
		Timeout:     blCfg.Timeout,
		Handle:      bl.NewHandler(blCfg, recordStore, log).Run,
	})

	// Talent (3)
	stCfg := st.NewConfig(cfg.Engine)
	register(dispatch.Operation{
		Name:        st.OpName,
		Description: "Role search over available candidates with enrichment",
		Category:    "talent",
		InputSchema: st.InputSchema(),
		Timeout:     stCfg.Timeout,
		Handle:      st.NewHandler(stCfg, recordStore, log).Run,
	})
	bsCfg := bs.NewConfig(cfg.Engine)
	register(dispatch.Operation{
		Name:        bs.OpName,
		Description: "Bench roster with mobility and seniority counts",
		Category:    "talent",
		InputSchema: bs.InputSchema(),
		Timeout:     bsCfg.Timeout,
		Handle:      bs.NewHandler(bsCfg, recordStore, log).Run,
	})
	sqCfg := sq.NewConfig(cfg.Engine)
	register(dispatch.Operation{
		Name:        sq.OpName,
		Description: "Assemble and price three-man squads from the regional bench",
		Category:    "talent",
		InputSchema: sq.InputSchema(),
		Timeout:     sqCfg.Timeout,
		Handle:      sq.NewHandler(sqCfg, recordStore, log).Run,
	})

	// Sales (3)
	scCfg := sc.NewConfig(cfg.Engine)
	register(dispatch.Operation{
		Name:        sc.OpName,
		Description: "Client search by region and industry",
		Category:    "sales",
		InputSchema: sc.InputSchema(),
		Timeout:     scCfg.Timeout,
		Handle:      sc.NewHandler(scCfg, recordStore, log).Run,
	})
	ghCfg := gh.NewConfig(cfg.Engine)
	register(dispatch.Operation{
		Name:        gh.OpName,
		Description: "Priority call list of top-tier clients gone silent",
		Category:    "sales",
		InputSchema: gh.InputSchema(),
		Timeout:     ghCfg.Timeout,
		Handle:      gh.NewHandler(ghCfg, recordStore, notifier, log).Run,
	})
	sdCfg := sd.NewConfig()
	register(dispatch.Operation{
		Name:        sd.OpName,
		Description: "Match a priced squad against clients in its region",
		Category:    "sales",
		InputSchema: sd.InputSchema(),
		Timeout:     sdCfg.Timeout,
		Handle:      sd.NewHandler(sdCfg, recordStore, log).Run,
	})

	// Compliance (2)
	vrCfg := vr.NewConfig(cfg.Engine)
	register(dispatch.Operation{
		Name:        vr.OpName,
		Description: "Scan work-visa expiries inside the risk horizon",
		Category:    "compliance",
		InputSchema: vr.InputSchema(),
		Timeout:     vrCfg.Timeout,
		Handle:      vr.NewHandler(vrCfg, recordStore, log).Run,
	})
	tcCfg := tc.NewConfig()
	register(dispatch.Operation{
		Name:        tc.OpName,
		Description: "Validate a trade role against a project site type",
		Category:    "compliance",
		InputSchema: tc.InputSchema(),
		Timeout:     tcCfg.Timeout,
		Handle:      tc.NewHandler(tcCfg, log).Run,
	})

	// Systems (1)
	dqCfg := dq.NewConfig()
	register(dispatch.Operation{
		Name:        dq.OpName,
		Description: "Audit candidate records for missing contact fields",
		Category:    "systems",
		InputSchema: dq.InputSchema(),
		Timeout:     dqCfg.Timeout,
		Handle:      dq.NewHandler(dqCfg, recordStore, log).Run,
	})

	zapLog.Info("Operations registered", zap.Int("count", len(reg.List())))

	dispatcher := dispatch.NewDispatcher(reg, log, obs)
	catalog := registry.Build(cfg.App.Version, reg.List())

	// --- HTTP Surface ---
	mux := http.NewServeMux()

	mux.HandleFunc("POST /ops/{name}", func(w http.ResponseWriter, r *http.Request) {
		args, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "unreadable body", http.StatusBadRequest)
			return
		}
		result := dispatcher.Dispatch(r.Context(), r.PathValue("name"), args)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	})

	mux.HandleFunc("GET /ops", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(catalog)
	})

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	mux.Handle("GET /metrics", promhttp.Handler())

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: time.Duration(cfg.Server.RequestTimeout) * time.Millisecond,
	}

	go func() {
		zapLog.Info("HTTP surface listening", zap.String("address", cfg.Server.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, draining...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Warn("http shutdown incomplete", zap.Error(err))
	}

	zapLog.Info("Operations engine stopped")
}

// openStore selects the record store driver. PostgREST is the default; the
// direct postgres driver exists for deployments with database-level access.
// Missing PostgREST credentials do not stop the process; every operation
// then reports the configuration error as result data.
func openStore(cfg *config.Config, log logger.Logger) (store.Store, error) {
	timeout := time.Duration(cfg.Store.Timeout) * time.Millisecond
	switch cfg.Store.Driver {
	case "postgres":
		return store.NewPostgres(cfg.Store.DSN, log)
	default:
		s, err := store.NewPostgREST(cfg.Store.URL, cfg.Store.ServiceKey, timeout, log)
		if err != nil {
			se := errors.AsStandard(err)
			if se.Code == errors.ErrCodeStoreNotConfigured {
				log.Warn("store credentials missing, operations will report the error", nil)
				return store.NewUnconfigured(se), nil
			}
			return nil, err
		}
		return s, nil
	}
}

// buildNotifier assembles the digest channels. Both disabled is the normal
// deployment; golden-hour then runs without a notifier.
func buildNotifier(ctx context.Context, cfg *config.Config, log logger.Logger, zapLog *zap.Logger) notify.Notifier {
	var channels []notify.Notifier

	if cfg.Notifications.Email.Enabled {
		sesClient, err := awsclient.NewSESClient(ctx, cfg.Notifications.AWS.Region)
		if err != nil {
			zapLog.Fatal("ses client init failed", zap.Error(err))
		}
		channels = append(channels, notify.NewEmailNotifier(
			sesClient,
			cfg.Notifications.Email.FromEmail,
			cfg.Notifications.Email.ToEmail,
			log,
		))
	}

	if cfg.Notifications.SMS.Enabled {
		snsClient, err := awsclient.NewSNSClient(ctx, cfg.Notifications.AWS.Region)
		if err != nil {
			zapLog.Fatal("sns client init failed", zap.Error(err))
		}
		channels = append(channels, notify.NewSMSNotifier(snsClient, cfg.Notifications.SMS.TopicARN, log))
	}

	if len(channels) == 0 {
		return nil
	}
	return notify.NewMulti(channels...)
}

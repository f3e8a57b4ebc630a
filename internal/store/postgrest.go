package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"stellar-ops-engine/internal/common/errors"
	"stellar-ops-engine/internal/common/logger"
	"stellar-ops-engine/internal/common/metrics"
	"stellar-ops-engine/internal/models"
)

// PostgRESTStore reads the Record Store over its REST interface (Supabase
// PostgREST). The service key is sent as both apikey and bearer token.
type PostgRESTStore struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
	logger     logger.Logger
}

// NewPostgREST builds the REST driver. Missing credentials are a typed
// configuration error so callers surface a connection-failure result instead
// of crashing mid-operation.
func NewPostgREST(rawURL, serviceKey string, timeout time.Duration, log logger.Logger) (*PostgRESTStore, error) {
	if rawURL == "" || serviceKey == "" {
		return nil, errors.NewStoreNotConfiguredError("SUPABASE_URL / SUPABASE_SERVICE_ROLE_KEY not set")
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &PostgRESTStore{
		baseURL:    strings.TrimRight(rawURL, "/"),
		serviceKey: serviceKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     log.WithFields(map[string]interface{}{"component": "store.postgrest"}),
	}, nil
}

func (s *PostgRESTStore) Candidates(ctx context.Context, q Query) ([]models.CandidateRecord, error) {
	body, err := s.fetch(ctx, TableCandidates, q)
	if err != nil {
		return nil, err
	}
	var records []models.CandidateRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, errors.NewQueryFailedError(TableCandidates, err)
	}
	return records, nil
}

func (s *PostgRESTStore) Clients(ctx context.Context, q Query) ([]models.ClientRecord, error) {
	body, err := s.fetch(ctx, TableClients, q)
	if err != nil {
		return nil, err
	}
	var records []models.ClientRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, errors.NewQueryFailedError(TableClients, err)
	}
	return records, nil
}

func (s *PostgRESTStore) fetch(ctx context.Context, table string, q Query) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/rest/v1/%s", s.baseURL, table)
	params := encodeQuery(q)
	if params != "" {
		endpoint += "?" + params
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.NewQueryFailedError(table, err)
	}
	req.Header.Set("apikey", s.serviceKey)
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		metrics.StoreReads.WithLabelValues(table, "connection_error").Inc()
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errors.NewQueryTimeoutError(table)
		}
		return nil, errors.NewStoreConnectionFailedError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.StoreReads.WithLabelValues(table, "read_error").Inc()
		return nil, errors.NewQueryFailedError(table, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.StoreReads.WithLabelValues(table, "query_error").Inc()
		s.logger.Warn("store query rejected", map[string]interface{}{
			"table":  table,
			"status": resp.StatusCode,
		})
		return nil, errors.NewQueryFailedError(table,
			fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	metrics.StoreReads.WithLabelValues(table, "ok").Inc()
	return body, nil
}

// encodeQuery maps the filter builder onto PostgREST operator syntax.
func encodeQuery(q Query) string {
	values := url.Values{}
	for _, f := range q.Filters() {
		switch f.Op {
		case OpEq:
			values.Add(f.Field, fmt.Sprintf("eq.%v", f.Value))
		case OpIn:
			values.Add(f.Field, fmt.Sprintf("in.(%s)", strings.Join(f.Values, ",")))
		case OpILike:
			values.Add(f.Field, fmt.Sprintf("ilike.*%v*", f.Value))
		case OpGt:
			values.Add(f.Field, fmt.Sprintf("gt.%v", f.Value))
		case OpNotNull:
			values.Add(f.Field, "not.is.null")
		}
	}
	if q.LimitValue() > 0 {
		values.Add("limit", strconv.Itoa(q.LimitValue()))
	}
	return values.Encode()
}

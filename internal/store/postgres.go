package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"stellar-ops-engine/internal/common/errors"
	"stellar-ops-engine/internal/common/logger"
	"stellar-ops-engine/internal/common/metrics"
	"stellar-ops-engine/internal/models"
)

// PostgresStore reads the Record Store over its direct SQL endpoint. Rows are
// selected as row_to_json so both drivers share one JSON ingress decode.
type PostgresStore struct {
	db     *sql.DB
	logger logger.Logger
}

// NewPostgres opens and pings the SQL endpoint.
func NewPostgres(dsn string, log logger.Logger) (*PostgresStore, error) {
	if dsn == "" {
		return nil, errors.NewStoreNotConfiguredError("store DSN not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.NewStoreConnectionFailedError(err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.NewStoreConnectionFailedError(err)
	}

	return NewPostgresFromDB(db, log), nil
}

// NewPostgresFromDB wraps an existing handle (tests use sqlmock here).
func NewPostgresFromDB(db *sql.DB, log logger.Logger) *PostgresStore {
	return &PostgresStore{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"component": "store.postgres"}),
	}
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) Candidates(ctx context.Context, q Query) ([]models.CandidateRecord, error) {
	rows, err := s.fetch(ctx, TableCandidates, q)
	if err != nil {
		return nil, err
	}
	records := make([]models.CandidateRecord, 0, len(rows))
	for _, raw := range rows {
		var rec models.CandidateRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, errors.NewQueryFailedError(TableCandidates, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func (s *PostgresStore) Clients(ctx context.Context, q Query) ([]models.ClientRecord, error) {
	rows, err := s.fetch(ctx, TableClients, q)
	if err != nil {
		return nil, err
	}
	records := make([]models.ClientRecord, 0, len(rows))
	for _, raw := range rows {
		var rec models.ClientRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, errors.NewQueryFailedError(TableClients, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func (s *PostgresStore) fetch(ctx context.Context, table string, q Query) ([][]byte, error) {
	query, args := buildSQL(table, q)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		metrics.StoreReads.WithLabelValues(table, "query_error").Inc()
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errors.NewQueryTimeoutError(table)
		}
		return nil, errors.NewQueryFailedError(table, err)
	}
	defer rows.Close()

	var out [][]byte
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			metrics.StoreReads.WithLabelValues(table, "scan_error").Inc()
			return nil, errors.NewQueryFailedError(table, err)
		}
		out = append(out, raw)
	}
	if err := rows.Err(); err != nil {
		metrics.StoreReads.WithLabelValues(table, "scan_error").Inc()
		return nil, errors.NewQueryFailedError(table, err)
	}

	metrics.StoreReads.WithLabelValues(table, "ok").Inc()
	return out, nil
}

func buildSQL(table string, q Query) (string, []interface{}) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT row_to_json(t) FROM %s t", pq.QuoteIdentifier(table))

	var (
		clauses []string
		args    []interface{}
	)
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	for _, f := range q.Filters() {
		field := pq.QuoteIdentifier(f.Field)
		switch f.Op {
		case OpEq:
			clauses = append(clauses, fmt.Sprintf("%s = %s", field, arg(f.Value)))
		case OpIn:
			clauses = append(clauses, fmt.Sprintf("%s = ANY(%s)", field, arg(pq.Array(f.Values))))
		case OpILike:
			clauses = append(clauses, fmt.Sprintf("%s ILIKE %s", field, arg(fmt.Sprintf("%%%v%%", f.Value))))
		case OpGt:
			clauses = append(clauses, fmt.Sprintf("%s > %s", field, arg(f.Value)))
		case OpNotNull:
			clauses = append(clauses, fmt.Sprintf("%s IS NOT NULL", field))
		}
	}

	if len(clauses) > 0 {
		sb.WriteString(" WHERE " + strings.Join(clauses, " AND "))
	}
	if q.LimitValue() > 0 {
		fmt.Fprintf(&sb, " LIMIT %d", q.LimitValue())
	}

	return sb.String(), args
}

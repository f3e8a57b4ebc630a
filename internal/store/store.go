// Package store is the client for the externally owned Record Store. It
// exposes filtered reads over the two record tables; the engine never writes.
package store

import (
	"context"

	"stellar-ops-engine/internal/models"
)

const (
	TableCandidates = "candidates"
	TableClients    = "clients"
)

// Store is the filtered-read surface operations depend on. Each call reads an
// independent snapshot; row order is store-defined and treated as stable for
// the duration of one call.
type Store interface {
	Candidates(ctx context.Context, q Query) ([]models.CandidateRecord, error)
	Clients(ctx context.Context, q Query) ([]models.ClientRecord, error)
}

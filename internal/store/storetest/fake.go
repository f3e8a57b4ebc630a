// Package storetest provides an in-memory Store fake for handler tests.
package storetest

import (
	"context"

	"stellar-ops-engine/internal/models"
	"stellar-ops-engine/internal/store"
)

// Fake returns its seeded rows verbatim (the rows "the store returned") and
// records the last query per table so tests can assert filter shapes.
type Fake struct {
	CandidateRows []models.CandidateRecord
	ClientRows    []models.ClientRecord
	Err           error

	CandidateCalls int
	ClientCalls    int

	LastCandidateQuery store.Query
	LastClientQuery    store.Query
}

func (f *Fake) Candidates(ctx context.Context, q store.Query) ([]models.CandidateRecord, error) {
	f.CandidateCalls++
	f.LastCandidateQuery = q
	if f.Err != nil {
		return nil, f.Err
	}
	return f.CandidateRows, nil
}

func (f *Fake) Clients(ctx context.Context, q store.Query) ([]models.ClientRecord, error) {
	f.ClientCalls++
	f.LastClientQuery = q
	if f.Err != nil {
		return nil, f.Err
	}
	return f.ClientRows, nil
}

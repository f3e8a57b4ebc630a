package store

import (
	"context"

	"stellar-ops-engine/internal/common/errors"
	"stellar-ops-engine/internal/models"
)

// Unconfigured stands in when no store credentials are present. Every read
// fails with the configuration error, so operations report it as result data
// instead of the process refusing to start.
type Unconfigured struct {
	err *errors.StandardError
}

func NewUnconfigured(err *errors.StandardError) *Unconfigured {
	return &Unconfigured{err: err}
}

func (u *Unconfigured) Candidates(context.Context, Query) ([]models.CandidateRecord, error) {
	return nil, u.err
}

func (u *Unconfigured) Clients(context.Context, Query) ([]models.ClientRecord, error) {
	return nil, u.err
}

// internal/ops/talent/bench-strength/handler_test.go
package benchstrength

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stellar-ops-engine/internal/common/logger"
	"stellar-ops-engine/internal/enrich"
	"stellar-ops-engine/internal/models"
	"stellar-ops-engine/internal/store/storetest"
)

func createTestHandler(t *testing.T, fake *storetest.Fake) *Handler {
	cfg := &Config{Timeout: 10 * time.Second, Enrichment: enrich.DefaultPolicy()}
	return NewHandler(cfg, fake, logger.NewTestLogger(t))
}

func TestExecute_Counts(t *testing.T) {
	fake := &storetest.Fake{
		CandidateRows: []models.CandidateRecord{
			{FirstName: "A", Role: "Foreman", Status: "available", PayRate: 30},
			{FirstName: "B", Role: "Labourer", Status: "available", Residency: "Work Visa", PayRate: 25},
			{FirstName: "C", Role: "Hammerhand", Status: "available", PayRate: 26},
		},
	}

	out := createTestHandler(t, fake).Execute(context.Background(), &Input{})

	assert.Empty(t, out.Error)
	assert.Equal(t, 3, out.TotalCount)
	assert.Equal(t, 1, out.MobileUnits)
	assert.Equal(t, 1, out.Seniors)
	require.Len(t, out.Roster, 3)
	assert.Equal(t, "A", out.Roster[0].Name, "roster keeps store order")
}

func TestExecute_EmptyBench(t *testing.T) {
	out := createTestHandler(t, &storetest.Fake{}).Execute(context.Background(), &Input{})

	assert.Equal(t, 0, out.TotalCount)
	assert.Empty(t, out.Roster)
}

func TestExecute_StoreFailure(t *testing.T) {
	fake := &storetest.Fake{Err: assert.AnError}
	out := createTestHandler(t, fake).Execute(context.Background(), &Input{})

	assert.NotEmpty(t, out.Error)
}

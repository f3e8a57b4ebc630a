// internal/ops/talent/search-talent/handler_test.go
package searchtalent

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stellar-ops-engine/internal/common/logger"
	"stellar-ops-engine/internal/enrich"
	"stellar-ops-engine/internal/models"
	"stellar-ops-engine/internal/store"
	"stellar-ops-engine/internal/store/storetest"
)

func createTestHandler(t *testing.T, fake *storetest.Fake) *Handler {
	cfg := &Config{
		Timeout:       10 * time.Second,
		DefaultStatus: "available",
		Limit:         15,
		Enrichment:    enrich.DefaultPolicy(),
	}
	return NewHandler(cfg, fake, logger.NewTestLogger(t))
}

func TestExecute_EnrichesResults(t *testing.T) {
	fake := &storetest.Fake{
		CandidateRows: []models.CandidateRecord{
			{
				FirstName: "Mario", LastName: "Reyes", Role: "Carpenter",
				Status: "available", Suburb: "Henderson",
				Nationality: "Filipino", PayRate: "$42.00", ChargeOutRate: "$58",
			},
		},
	}

	out := createTestHandler(t, fake).Execute(context.Background(), &Input{Query: "carpenter"})

	assert.Empty(t, out.Error)
	require.Len(t, out.Results, 1)
	r := out.Results[0]
	assert.Equal(t, "Mario Reyes", r.Name)
	assert.True(t, r.IsMobile, "filipino nationality marks mobile")
	assert.True(t, r.IsSenior, "pay above threshold marks senior")
	assert.Equal(t, 58.0, r.ChargeRate)
	assert.Equal(t, "Henderson", r.Region)
}

func TestExecute_QueryShape(t *testing.T) {
	fake := &storetest.Fake{}
	createTestHandler(t, fake).Execute(context.Background(), &Input{Query: "digger"})

	q := fake.LastCandidateQuery
	assert.True(t, q.HasFilter("status", store.OpEq))
	assert.True(t, q.HasFilter("role", store.OpILike))
	assert.Equal(t, 15, q.LimitValue())
}

func TestExecute_ExplicitStatusOverridesDefault(t *testing.T) {
	fake := &storetest.Fake{}
	createTestHandler(t, fake).Execute(context.Background(), &Input{Query: "foreman", Status: "placed"})

	var gotStatus interface{}
	for _, f := range fake.LastCandidateQuery.Filters() {
		if f.Field == "status" {
			gotStatus = f.Value
		}
	}
	assert.Equal(t, "placed", gotStatus)
}

func TestExecute_StoreFailure(t *testing.T) {
	fake := &storetest.Fake{Err: assert.AnError}
	out := createTestHandler(t, fake).Execute(context.Background(), &Input{Query: "carpenter"})

	assert.NotEmpty(t, out.Error)
	assert.Empty(t, out.Results)
}

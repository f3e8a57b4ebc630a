// internal/ops/finance/financial-health/handler_test.go
package financialhealth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stellar-ops-engine/internal/common/config"
	"stellar-ops-engine/internal/common/logger"
	"stellar-ops-engine/internal/models"
	"stellar-ops-engine/internal/store"
	"stellar-ops-engine/internal/store/storetest"
)

func createTestConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
		Placement: config.PlacementPolicy{
			Statuses: []string{"placed", "on_job"},
		},
	}
}

func createTestHandler(t *testing.T, fake *storetest.Fake) *Handler {
	return NewHandler(createTestConfig(), fake, logger.NewTestLogger(t))
}

func placement(first, last string, payRate, chargeRate interface{}) models.CandidateRecord {
	return models.CandidateRecord{
		FirstName:     first,
		LastName:      last,
		Status:        "placed",
		PayRate:       payRate,
		ChargeOutRate: chargeRate,
	}
}

func TestExecute_SinglePlacementScenario(t *testing.T) {
	// pay $30, charge $45: revenue 1800, cost 1560, margin 13.33% => Critical
	// and the deal is a busy fool (margin < 15).
	fake := &storetest.Fake{
		CandidateRows: []models.CandidateRecord{
			placement("Mario", "Reyes", "$30.00", "$45"),
		},
	}
	h := createTestHandler(t, fake)

	out := h.Execute(context.Background(), &Input{})

	assert.Empty(t, out.Error)
	assert.Equal(t, 1800.0, out.WeeklyRevenue)
	assert.Equal(t, 1560.0, out.WeeklyRevenue-out.WeeklyGrossProfit)
	assert.InDelta(t, 13.33, out.MarginPercent, 0.01)
	assert.Equal(t, "Critical", out.Status)
	assert.Equal(t, 1, out.ActiveHeadcount)

	require.Len(t, out.BusyFoolDeals, 1)
	assert.Equal(t, "Mario Reyes", out.BusyFoolDeals[0].Name)
	assert.Equal(t, "Unknown", out.BusyFoolDeals[0].Client)
}

func TestExecute_BusyFoolClassification(t *testing.T) {
	tests := []struct {
		name       string
		payRate    float64
		chargeRate float64
		flagged    bool
	}{
		{
			// netGP = (20-13*1.30)*40 = 124 < 400; flagged despite margin.
			name: "low absolute GP", payRate: 13, chargeRate: 20, flagged: true,
		},
		{
			// pay 40, charge 60: netGP = (60-52)*40 = 320 < 400.
			name: "thin weekly profit", payRate: 40, chargeRate: 60, flagged: true,
		},
		{
			// pay 32.5, charge 49: netGP = (49-42.25)*40 = 270 -> flagged on
			// both floors (margin 13.78%).
			name: "below both floors", payRate: 32.5, chargeRate: 49, flagged: true,
		},
		{
			// pay 30, charge 55: netGP = (55-39)*40 = 640, margin 29.1%.
			name: "healthy deal", payRate: 30, chargeRate: 55, flagged: false,
		},
		{
			// pay 20, charge 35.99975: netGP = 399.99, a cent under the $400
			// floor with a 27.8% margin; the GP floor alone flags it.
			name: "a cent under the GP floor", payRate: 20, chargeRate: 35.99975, flagged: true,
		},
		{
			// pay 20, charge 36.1: netGP = 404, margin 28%; clears both floors.
			name: "just over the GP floor", payRate: 20, chargeRate: 36.1, flagged: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &storetest.Fake{
				CandidateRows: []models.CandidateRecord{
					placement("Test", "Case", tt.payRate, tt.chargeRate),
				},
			}
			out := createTestHandler(t, fake).Execute(context.Background(), &Input{})
			assert.Equal(t, tt.flagged, len(out.BusyFoolDeals) == 1)
		})
	}
}

func TestExecute_MarginFlaggedRegardlessOfGP(t *testing.T) {
	// pay 100, charge 150: netGP = (150-130)*40 = 800 (well above $400) but
	// margin = 800/6000 = 13.33% < 15 => still a busy fool.
	fake := &storetest.Fake{
		CandidateRows: []models.CandidateRecord{
			placement("High", "Volume", 100, 150),
		},
	}
	out := createTestHandler(t, fake).Execute(context.Background(), &Input{})

	require.Len(t, out.BusyFoolDeals, 1)
	assert.Greater(t, out.BusyFoolDeals[0].NetGP, 400.0)
}

func TestExecute_AggregateHealthThreshold(t *testing.T) {
	// pay 30, charge 52: netGP = (52-39)*40 = 520, margin 25% => Healthy and
	// nothing flagged.
	fake := &storetest.Fake{
		CandidateRows: []models.CandidateRecord{
			placement("A", "One", 30, 52),
			placement("B", "Two", 30, 52),
		},
	}
	out := createTestHandler(t, fake).Execute(context.Background(), &Input{})

	assert.Equal(t, "Healthy", out.Status)
	assert.Empty(t, out.BusyFoolDeals)
	assert.Equal(t, 2, out.ActiveHeadcount)
}

func TestExecute_EmptyPlacements(t *testing.T) {
	out := createTestHandler(t, &storetest.Fake{}).Execute(context.Background(), &Input{})

	assert.Equal(t, 0.0, out.WeeklyRevenue)
	assert.Equal(t, 0.0, out.MarginPercent, "no division-by-zero on empty books")
	assert.Equal(t, "Critical", out.Status)
	assert.Empty(t, out.BusyFoolDeals)
}

func TestExecute_QueriesConfiguredStatuses(t *testing.T) {
	fake := &storetest.Fake{}
	h := createTestHandler(t, fake)
	h.Execute(context.Background(), &Input{})

	assert.True(t, fake.LastCandidateQuery.HasFilter("status", store.OpIn))
}

func TestExecute_StoreFailureReturnsErrorResult(t *testing.T) {
	fake := &storetest.Fake{Err: assert.AnError}
	out := createTestHandler(t, fake).Execute(context.Background(), &Input{})

	assert.NotEmpty(t, out.Error)
	assert.Equal(t, 0.0, out.WeeklyRevenue)
}

func TestExecute_MalformedRatesNormalizeToZero(t *testing.T) {
	fake := &storetest.Fake{
		CandidateRows: []models.CandidateRecord{
			placement("Bad", "Data", "ask payroll", nil),
		},
	}
	out := createTestHandler(t, fake).Execute(context.Background(), &Input{})

	assert.Empty(t, out.Error, "malformed input never aborts the computation")
	assert.Equal(t, 0.0, out.WeeklyRevenue)
	require.Len(t, out.BusyFoolDeals, 1, "zero-revenue deal is a busy fool")
	assert.Equal(t, 0.0, out.BusyFoolDeals[0].MarginPct)
}

// internal/ops/talent/build-squads/handler_test.go
package buildsquads

import (
	"context"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stellar-ops-engine/internal/common/logger"
	"stellar-ops-engine/internal/enrich"
	"stellar-ops-engine/internal/models"
	"stellar-ops-engine/internal/store"
	"stellar-ops-engine/internal/store/storetest"
)

func createTestHandler(t *testing.T, fake *storetest.Fake) *Handler {
	cfg := &Config{Timeout: 10 * time.Second, Enrichment: enrich.DefaultPolicy()}
	return NewHandler(cfg, fake, logger.NewTestLogger(t))
}

func senior(name string, charge float64) models.CandidateRecord {
	return models.CandidateRecord{
		FirstName: name, Role: "Foreman", Status: "available",
		Suburb: "Henderson", PayRate: 40, ChargeOutRate: charge,
	}
}

func junior(name string, charge float64) models.CandidateRecord {
	return models.CandidateRecord{
		FirstName: name, Role: "Hammerhand", Status: "available",
		Suburb: "Henderson", PayRate: 26, ChargeOutRate: charge,
	}
}

func TestExecute_GreedyBundling(t *testing.T) {
	// 3 seniors + 5 juniors => exactly 2 squads; 1 senior and 1 junior left over.
	fake := &storetest.Fake{
		CandidateRows: []models.CandidateRecord{
			senior("S1", 60), senior("S2", 58), senior("S3", 55),
			junior("J1", 40), junior("J2", 41), junior("J3", 42), junior("J4", 43), junior("J5", 44),
		},
	}

	out := createTestHandler(t, fake).Execute(context.Background(), &Input{Region: "Henderson"})

	assert.Empty(t, out.Error)
	require.Len(t, out.Squads, 2)

	first := out.Squads[0]
	assert.Equal(t, "SQ-HEN-1", first.SquadID)
	assert.Equal(t, "1 Senior + 2 Juniors", first.Composition)
	assert.Equal(t, "S1", first.Leader.Name)
	require.Len(t, first.Crew, 2)
	assert.Equal(t, "J1", first.Crew[0].Name, "fetch order is squad order")
	assert.Equal(t, "J2", first.Crew[1].Name)

	assert.Equal(t, "SQ-HEN-2", out.Squads[1].SquadID)
	assert.Equal(t, "S2", out.Squads[1].Leader.Name)
}

func TestExecute_Pricing(t *testing.T) {
	fake := &storetest.Fake{
		CandidateRows: []models.CandidateRecord{
			senior("S1", 60), junior("J1", 40), junior("J2", 41),
		},
	}

	out := createTestHandler(t, fake).Execute(context.Background(), &Input{Region: "Henderson"})

	require.Len(t, out.Squads, 1)
	fin := out.Squads[0].Financials
	assert.Equal(t, 141.0, fin.HourlyChargeTotal)
	assert.Equal(t, 141.0*40, fin.EstWeeklyRevenue)
}

func TestExecute_VehicleFlag(t *testing.T) {
	withMobile := junior("J1", 40)
	withMobile.Residency = "Work Visa"

	fake := &storetest.Fake{
		CandidateRows: []models.CandidateRecord{senior("S1", 60), withMobile, junior("J2", 41)},
	}
	out := createTestHandler(t, fake).Execute(context.Background(), &Input{Region: "Henderson"})
	require.Len(t, out.Squads, 1)
	assert.True(t, out.Squads[0].Logistics.HasVehicle)

	fake = &storetest.Fake{
		CandidateRows: []models.CandidateRecord{senior("S1", 60), junior("J1", 40), junior("J2", 41)},
	}
	out = createTestHandler(t, fake).Execute(context.Background(), &Input{Region: "Henderson"})
	require.Len(t, out.Squads, 1)
	assert.False(t, out.Squads[0].Logistics.HasVehicle, "no mobile member means transport risk")
}

func TestExecute_NoSeniorsNoSquads(t *testing.T) {
	fake := &storetest.Fake{
		CandidateRows: []models.CandidateRecord{junior("J1", 40), junior("J2", 41), junior("J3", 42)},
	}

	out := createTestHandler(t, fake).Execute(context.Background(), &Input{Region: "Henderson"})

	assert.Empty(t, out.Error)
	assert.Empty(t, out.Squads)
}

func TestExecute_StoreFailureYieldsEmptyList(t *testing.T) {
	fake := &storetest.Fake{Err: assert.AnError}
	out := createTestHandler(t, fake).Execute(context.Background(), &Input{Region: "Henderson"})

	assert.NotEmpty(t, out.Error)
	assert.Empty(t, out.Squads)
}

func TestExecute_QueryShape(t *testing.T) {
	fake := &storetest.Fake{}
	createTestHandler(t, fake).Execute(context.Background(), &Input{Region: "Henderson"})

	q := fake.LastCandidateQuery
	assert.True(t, q.HasFilter("status", store.OpEq))
	assert.True(t, q.HasFilter("suburb", store.OpILike))
}

func TestRegionCode(t *testing.T) {
	assert.Equal(t, "HEN", regionCode("Henderson"))
	assert.Equal(t, "WA", regionCode("wa"))

	// Macron place names must truncate on rune boundaries.
	code := regionCode("Ōtāhuhu")
	assert.Equal(t, "ŌTĀ", code)
	assert.True(t, utf8.ValidString(code))
}

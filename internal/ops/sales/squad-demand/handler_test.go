// internal/ops/sales/squad-demand/handler_test.go
package squaddemand

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stellar-ops-engine/internal/common/logger"
	"stellar-ops-engine/internal/models"
	"stellar-ops-engine/internal/store"
	"stellar-ops-engine/internal/store/storetest"
)

func createTestHandler(t *testing.T, fake *storetest.Fake) *Handler {
	return NewHandler(&Config{Timeout: 10 * time.Second}, fake, logger.NewTestLogger(t))
}

func testSquad(region string) models.Squad {
	return models.Squad{
		SquadID:   "SQ-WEL-1",
		Logistics: models.SquadLogistics{Region: region},
	}
}

func TestExecute_MatchesClientsInRegion(t *testing.T) {
	fake := &storetest.Fake{
		ClientRows: []models.ClientRecord{
			{Name: "Hutt Civil Ltd", Region: "Wellington", Industry: "Civil"},
			{Name: "Capital Interiors", Region: "Wellington", Industry: "Fitout"},
		},
	}

	out := createTestHandler(t, fake).Execute(context.Background(), &Input{Squad: testSquad("Wellington")})

	assert.Empty(t, out.Error)
	assert.Equal(t, "SQ-WEL-1", out.SquadID)
	assert.Equal(t, "Wellington", out.SquadRegion)
	assert.Equal(t, "Regional Proximity", out.MatchType)
	require.Len(t, out.Prospects, 2)
	assert.Equal(t, "Hutt Civil Ltd", out.Prospects[0].Name)

	assert.True(t, fake.LastClientQuery.HasFilter("region", store.OpILike))
}

func TestExecute_ResultFieldNames(t *testing.T) {
	fake := &storetest.Fake{
		ClientRows: []models.ClientRecord{
			{Name: "Hutt Civil Ltd", Region: "Wellington", Industry: "Civil"},
		},
	}

	out := createTestHandler(t, fake).Execute(context.Background(), &Input{Squad: testSquad("Wellington")})

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &result))

	assert.Contains(t, result, "match_type")
	assert.Contains(t, result, "squad_region")
	assert.Contains(t, result, "potential_clients")
	assert.NotContains(t, result, "prospects")
}

func TestExecute_NoRegionSkipsMatching(t *testing.T) {
	fake := &storetest.Fake{}

	out := createTestHandler(t, fake).Execute(context.Background(), &Input{Squad: testSquad("")})

	assert.Empty(t, out.Error)
	assert.Contains(t, out.Message, "no region on record")
	assert.Empty(t, out.MatchType)
	assert.NotNil(t, out.Prospects)
	assert.Zero(t, fake.ClientCalls)
}

func TestExecute_NoClientsInRegion(t *testing.T) {
	fake := &storetest.Fake{}

	out := createTestHandler(t, fake).Execute(context.Background(), &Input{Squad: testSquad("Invercargill")})

	assert.Empty(t, out.Error)
	assert.Equal(t, "Regional Proximity", out.MatchType)
	assert.NotNil(t, out.Prospects)
	assert.Empty(t, out.Prospects)
}

func TestExecute_StoreFailure(t *testing.T) {
	fake := &storetest.Fake{Err: assert.AnError}

	out := createTestHandler(t, fake).Execute(context.Background(), &Input{Squad: testSquad("Wellington")})

	assert.NotEmpty(t, out.Error)
}

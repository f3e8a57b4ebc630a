// internal/ops/sales/golden-hour/handler_test.go
package goldenhour

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stellar-ops-engine/internal/common/logger"
	"stellar-ops-engine/internal/models"
	"stellar-ops-engine/internal/notify"
	"stellar-ops-engine/internal/store"
	"stellar-ops-engine/internal/store/storetest"
)

type recordingNotifier struct {
	sent []notify.Digest
	err  error
}

func (r *recordingNotifier) Send(_ context.Context, d notify.Digest) error {
	r.sent = append(r.sent, d)
	return r.err
}

func createTestHandler(t *testing.T, fake *storetest.Fake, n notify.Notifier) *Handler {
	cfg := &Config{
		Timeout:           10 * time.Second,
		Tier:              "1",
		SilenceDays:       14,
		DaysWhenNoContact: 99,
	}
	h := NewHandler(cfg, fake, n, logger.NewTestLogger(t))
	h.nowFn = func() time.Time {
		return time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	}
	return h
}

func TestExecute_FlagsSilentClients(t *testing.T) {
	fake := &storetest.Fake{
		ClientRows: []models.ClientRecord{
			{Name: "Fresh Contact Ltd", Region: "Auckland", LastContact: "2025-06-25"},
			{Name: "Stale Holdings", Region: "Wellington", LastContact: "2025-06-01"},
			{Name: "Ghost Corp", Region: "Christchurch", LastContact: ""},
		},
	}

	out := createTestHandler(t, fake, nil).Execute(context.Background(), &Input{})

	assert.Empty(t, out.Error)
	assert.Equal(t, "Attack Decay", out.Strategy)
	assert.Equal(t, 3, out.TierCount)
	require.Len(t, out.TargetList, 2)
	assert.Equal(t, "Stale Holdings", out.TargetList[0].Name)
	assert.Equal(t, 29, out.TargetList[0].DaysSilent)
	assert.Equal(t, "Ghost Corp", out.TargetList[1].Name)
	assert.Equal(t, 99, out.TargetList[1].DaysSilent)

	assert.True(t, fake.LastClientQuery.HasFilter("tier", store.OpEq))
}

func TestExecute_ExactBoundaryNotFlagged(t *testing.T) {
	// 14 days silent is the last acceptable day; day 15 crosses the line.
	fake := &storetest.Fake{
		ClientRows: []models.ClientRecord{
			{Name: "Boundary Ltd", LastContact: "2025-06-16"},
			{Name: "Over Ltd", LastContact: "2025-06-15"},
		},
	}

	out := createTestHandler(t, fake, nil).Execute(context.Background(), &Input{})

	require.Len(t, out.TargetList, 1)
	assert.Equal(t, "Over Ltd", out.TargetList[0].Name)
}

func TestExecute_UnparseableContactTreatedAsNever(t *testing.T) {
	fake := &storetest.Fake{
		ClientRows: []models.ClientRecord{
			{Name: "Garbled Ltd", LastContact: "not-a-date"},
		},
	}

	out := createTestHandler(t, fake, nil).Execute(context.Background(), &Input{})

	require.Len(t, out.TargetList, 1)
	assert.Equal(t, 99, out.TargetList[0].DaysSilent)
}

func TestExecute_NotifySendsDigest(t *testing.T) {
	fake := &storetest.Fake{
		ClientRows: []models.ClientRecord{
			{Name: "Stale Holdings", Region: "Wellington", LastContact: "2025-06-01"},
		},
	}
	rec := &recordingNotifier{}

	out := createTestHandler(t, fake, rec).Execute(context.Background(), &Input{Notify: true})

	assert.Empty(t, out.Error)
	require.Len(t, rec.sent, 1)
	assert.Contains(t, rec.sent[0].Body, "Stale Holdings")
}

func TestExecute_NotifyFailureDoesNotFailScan(t *testing.T) {
	fake := &storetest.Fake{
		ClientRows: []models.ClientRecord{
			{Name: "Stale Holdings", LastContact: "2025-06-01"},
		},
	}
	rec := &recordingNotifier{err: assert.AnError}

	out := createTestHandler(t, fake, rec).Execute(context.Background(), &Input{Notify: true})

	assert.Empty(t, out.Error)
	assert.NotEmpty(t, out.DigestError)
	assert.Len(t, out.TargetList, 1)
}

func TestExecute_NoTargetsSkipsDigest(t *testing.T) {
	fake := &storetest.Fake{
		ClientRows: []models.ClientRecord{
			{Name: "Fresh Contact Ltd", LastContact: "2025-06-29"},
		},
	}
	rec := &recordingNotifier{}

	out := createTestHandler(t, fake, rec).Execute(context.Background(), &Input{Notify: true})

	assert.Empty(t, rec.sent)
	assert.Empty(t, out.TargetList)
}

func TestExecute_StoreFailure(t *testing.T) {
	fake := &storetest.Fake{Err: assert.AnError}
	out := createTestHandler(t, fake, nil).Execute(context.Background(), &Input{})

	assert.NotEmpty(t, out.Error)
	assert.Empty(t, out.Strategy)
}

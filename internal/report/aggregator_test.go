package report

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tushyr/thekabar/internal/catalog"
	"github.com/tushyr/thekabar/internal/domain"
)

func newTestAggregator(t *testing.T) (*Aggregator, *catalog.MemoryRepo, clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(time.Date(2025, 6, 14, 20, 0, 0, 0, time.Local))
	repo := catalog.NewMemoryRepo(catalog.Seed())
	return NewAggregator(repo, clock), repo, clock
}

func TestSummarizeNoReports(t *testing.T) {
	agg, _, _ := newTestAggregator(t)

	summary := agg.Summarize(1)
	assert.Equal(t, domain.StatusUnknown, summary.Status)
	assert.Equal(t, domain.ConfidenceLow, summary.Confidence)
	assert.Zero(t, summary.OpenCount)
	assert.Zero(t, summary.ClosedCount)
	assert.Nil(t, summary.LastReportedAt)
}

func TestRecordIncrementsAndFlagsShop(t *testing.T) {
	agg, repo, clock := newTestAggregator(t)
	ctx := context.Background()

	shop, err := agg.Record(ctx, 1, true)
	require.NoError(t, err)
	assert.Equal(t, domain.ReportedOpen, shop.UserReported)

	summary := agg.Summarize(1)
	assert.Equal(t, 1, summary.OpenCount)
	assert.Equal(t, 0, summary.ClosedCount)
	require.NotNil(t, summary.LastReportedAt)
	assert.True(t, summary.LastReportedAt.Equal(clock.Now()))

	shop, err = agg.Record(ctx, 1, false)
	require.NoError(t, err)
	assert.Equal(t, domain.ReportedClosed, shop.UserReported)

	stored, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.ReportedClosed, stored.UserReported)
}

func TestRecordUnknownShopLeavesNoTally(t *testing.T) {
	agg, _, _ := newTestAggregator(t)

	_, err := agg.Record(context.Background(), 999, true)
	assert.ErrorIs(t, err, domain.ErrShopNotFound)

	_, ok := agg.Tally(999)
	assert.False(t, ok)
	assert.Equal(t, domain.StatusUnknown, agg.Summarize(999).Status)
}

func TestCountsAreMonotonic(t *testing.T) {
	agg, _, _ := newTestAggregator(t)
	ctx := context.Background()

	votes := []bool{true, false, true, true, false, false, false}
	for _, v := range votes {
		_, err := agg.Record(ctx, 2, v)
		require.NoError(t, err)
	}

	tally, ok := agg.Tally(2)
	require.True(t, ok)
	assert.Equal(t, 3, tally.OpenCount)
	assert.Equal(t, 4, tally.ClosedCount)
	assert.Equal(t, len(votes), tally.Total())
}

func TestTieBreaksOpen(t *testing.T) {
	agg, _, _ := newTestAggregator(t)
	ctx := context.Background()

	_, err := agg.Record(ctx, 4, true)
	require.NoError(t, err)
	_, err = agg.Record(ctx, 4, false)
	require.NoError(t, err)

	summary := agg.Summarize(4)
	assert.Equal(t, domain.StatusOpen, summary.Status)
}

func TestConfidenceTiers(t *testing.T) {
	tests := []struct {
		name   string
		open   int
		closed int
		want   domain.Confidence
	}{
		{"single vote is low", 1, 0, domain.ConfidenceLow},
		{"two votes are medium", 1, 1, domain.ConfidenceMedium},
		{"five votes below 70% share stay medium", 3, 2, domain.ConfidenceMedium},
		{"four votes at 75% share still medium (needs 5 total)", 3, 1, domain.ConfidenceMedium},
		{"exactly five votes at 80% share are high", 4, 1, domain.ConfidenceHigh},
		{"ten votes at exactly 70% share are high", 7, 3, domain.ConfidenceHigh},
		{"ten votes just under 70% share are medium", 6, 4, domain.ConfidenceMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg, _, _ := newTestAggregator(t)
			ctx := context.Background()
			for i := 0; i < tt.open; i++ {
				_, err := agg.Record(ctx, 5, true)
				require.NoError(t, err)
			}
			for i := 0; i < tt.closed; i++ {
				_, err := agg.Record(ctx, 5, false)
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, agg.Summarize(5).Confidence)
		})
	}
}

func TestClosedMajorityWins(t *testing.T) {
	agg, _, _ := newTestAggregator(t)
	ctx := context.Background()

	_, err := agg.Record(ctx, 6, true)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		_, err := agg.Record(ctx, 6, false)
		require.NoError(t, err)
	}

	summary := agg.Summarize(6)
	assert.Equal(t, domain.StatusClosed, summary.Status)
	assert.Equal(t, domain.ConfidenceHigh, summary.Confidence)
}

func TestConcurrentRecords(t *testing.T) {
	agg, _, _ := newTestAggregator(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	const workers = 20
	const perWorker = 10
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(open bool) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				_, err := agg.Record(ctx, 7, open)
				assert.NoError(t, err)
			}
		}(w%2 == 0)
	}
	wg.Wait()

	tally, ok := agg.Tally(7)
	require.True(t, ok)
	assert.Equal(t, workers*perWorker, tally.Total())
	assert.Equal(t, workers/2*perWorker, tally.OpenCount)
}

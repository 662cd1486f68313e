package alert

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	catalogMocks "github.com/dealdrop/dealdrop/internal/catalog/mocks"
	"github.com/dealdrop/dealdrop/internal/notify"
	notifyMocks "github.com/dealdrop/dealdrop/internal/notify/mocks"
	"github.com/dealdrop/dealdrop/internal/store"
	storeMocks "github.com/dealdrop/dealdrop/internal/store/mocks"
	"github.com/dealdrop/dealdrop/pkg/logger"
	domain "github.com/dealdrop/dealdrop/pkg/types"
)

var fixedNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func fixedTracker(id string) domain.Tracker {
	return domain.Tracker{
		ID:            id,
		Recipient:     "buyer@example.com",
		ASIN:          "B0TESTASIN",
		AlertMode:     domain.AlertFixedPrice,
		TargetPrice:   decPtr("20.00"),
		CooldownHours: 48,
		Version:       1,
		Enabled:       true,
	}
}

func trackerSnapshot(current string) *domain.ProductSnapshot {
	return &domain.ProductSnapshot{
		ASIN:         "B0TESTASIN",
		Title:        "Test Product",
		ProductURL:   "https://www.amazon.com/dp/B0TESTASIN",
		CurrentPrice: dec(current),
		FetchedAt:    fixedNow,
	}
}

// expectRunScaffolding wires the lock and job-run bookkeeping every
// successful run performs.
func expectRunScaffolding(ms *storeMocks.MockStore, status string) {
	ms.EXPECT().
		AcquireJobLock(mock.Anything, JobName, mock.Anything, mock.Anything).
		Return(true, nil).Once()
	ms.EXPECT().
		InsertJobRun(mock.Anything, JobName).
		Return("run-1", nil).Once()
	ms.EXPECT().
		CompleteJobRun(mock.Anything, "run-1", status, mock.Anything, mock.Anything, mock.Anything).
		Return(nil).Once()
	ms.EXPECT().
		ReleaseJobLock(mock.Anything, JobName, mock.Anything).
		Return(nil).Once()
}

func newTestProcessor(ms *storeMocks.MockStore, mc *catalogMocks.MockClient, mn *notifyMocks.MockNotifier) *Processor {
	return NewProcessor(ms, mc, mn,
		WithLogger(logger.Nop()),
		WithConcurrency(1),
		WithNowFunc(func() time.Time { return fixedNow }),
	)
}

func TestProcessor_ProcessAll_FiresAndRecords(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := catalogMocks.NewMockClient(t)
	mn := notifyMocks.NewMockNotifier(t)

	expectRunScaffolding(ms, domain.JobCompleted)
	ms.EXPECT().
		ListTrackers(mock.Anything, true).
		Return([]domain.Tracker{fixedTracker("t-1")}, nil).Once()

	mc.EXPECT().GetItem(mock.Anything, "B0TESTASIN").Return(trackerSnapshot("18.50"), nil).Once()
	ms.EXPECT().
		InsertPricePoint(mock.Anything, "B0TESTASIN", mock.Anything, mock.Anything).
		Return(nil).Once()

	var sentAlert *notify.Alert
	mn.EXPECT().
		SendPriceDrop(mock.Anything, mock.Anything).
		Run(func(_ context.Context, alert *notify.Alert) {
			sentAlert = alert
		}).
		Return(&notify.Receipt{ProviderMessageID: "msg-1"}, nil).Once()

	ms.EXPECT().
		UpdateAlertState(mock.Anything, "t-1", &fixedNow, mock.Anything, 1).
		Return(nil).Once()

	p := newTestProcessor(ms, mc, mn)
	result, err := p.ProcessAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "run-1", result.RunID)
	assert.Equal(t, 1, result.AlertsSent)
	assert.Empty(t, result.Errors)

	require.NotNil(t, sentAlert)
	assert.Equal(t, "buyer@example.com", sentAlert.Recipient)
	assert.Equal(t, "18.5", sentAlert.NewPrice.String())
}

func TestProcessor_ProcessAll_NotifierFailureLeavesState(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := catalogMocks.NewMockClient(t)
	mn := notifyMocks.NewMockNotifier(t)

	expectRunScaffolding(ms, domain.JobCompleted)
	ms.EXPECT().
		ListTrackers(mock.Anything, true).
		Return([]domain.Tracker{fixedTracker("t-1")}, nil).Once()

	mc.EXPECT().GetItem(mock.Anything, "B0TESTASIN").Return(trackerSnapshot("18.50"), nil).Once()
	ms.EXPECT().
		InsertPricePoint(mock.Anything, "B0TESTASIN", mock.Anything, mock.Anything).
		Return(nil).Once()

	mn.EXPECT().
		SendPriceDrop(mock.Anything, mock.Anything).
		Return(nil, errors.New("provider down")).Once()

	// No UpdateAlertState expectation: a failed send must not mutate the
	// tracker, so it stays eligible for the next run.
	p := newTestProcessor(ms, mc, mn)
	result, err := p.ProcessAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, result.AlertsSent)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "t-1", result.Errors[0].TrackerID)
	assert.Equal(t, StageNotify, result.Errors[0].Stage)
}

func TestProcessor_ProcessAll_ReboundResetsWithoutFiring(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := catalogMocks.NewMockClient(t)
	mn := notifyMocks.NewMockNotifier(t)

	tr := fixedTracker("t-1")
	tr.LastAlertSentAt = timePtr(fixedNow.Add(-10 * time.Hour))
	tr.LastAlertPrice = decPtr("100.00")

	expectRunScaffolding(ms, domain.JobCompleted)
	ms.EXPECT().
		ListTrackers(mock.Anything, true).
		Return([]domain.Tracker{tr}, nil).Once()

	mc.EXPECT().GetItem(mock.Anything, "B0TESTASIN").Return(trackerSnapshot("115.00"), nil).Once()
	ms.EXPECT().
		InsertPricePoint(mock.Anything, "B0TESTASIN", mock.Anything, mock.Anything).
		Return(nil).Once()

	ms.EXPECT().
		UpdateAlertState(mock.Anything, "t-1", (*time.Time)(nil), (*decimal.Decimal)(nil), 1).
		Return(nil).Once()

	p := newTestProcessor(ms, mc, mn)
	result, err := p.ProcessAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, result.AlertsSent)
	assert.Empty(t, result.Errors)
	mn.AssertNotCalled(t, "SendPriceDrop", mock.Anything, mock.Anything)
}

func TestProcessor_ProcessAll_ResetVersionConflictSkipped(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := catalogMocks.NewMockClient(t)
	mn := notifyMocks.NewMockNotifier(t)

	tr := fixedTracker("t-1")
	tr.LastAlertSentAt = timePtr(fixedNow.Add(-10 * time.Hour))
	tr.LastAlertPrice = decPtr("100.00")

	expectRunScaffolding(ms, domain.JobCompleted)
	ms.EXPECT().
		ListTrackers(mock.Anything, true).
		Return([]domain.Tracker{tr}, nil).Once()

	mc.EXPECT().GetItem(mock.Anything, "B0TESTASIN").Return(trackerSnapshot("115.00"), nil).Once()
	ms.EXPECT().
		InsertPricePoint(mock.Anything, "B0TESTASIN", mock.Anything, mock.Anything).
		Return(nil).Once()

	ms.EXPECT().
		UpdateAlertState(mock.Anything, "t-1", (*time.Time)(nil), (*decimal.Decimal)(nil), 1).
		Return(store.ErrVersionConflict).Once()

	p := newTestProcessor(ms, mc, mn)
	result, err := p.ProcessAll(context.Background())
	require.NoError(t, err)

	// Another worker already processed this tracker; not an error.
	assert.Empty(t, result.Errors)
}

func TestProcessor_ProcessAll_SnapshotFailureIsolated(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := catalogMocks.NewMockClient(t)
	mn := notifyMocks.NewMockNotifier(t)

	broken := fixedTracker("t-broken")
	broken.ASIN = "B0BROKEN00"
	healthy := fixedTracker("t-healthy")

	expectRunScaffolding(ms, domain.JobCompleted)
	ms.EXPECT().
		ListTrackers(mock.Anything, true).
		Return([]domain.Tracker{broken, healthy}, nil).Once()

	mc.EXPECT().GetItem(mock.Anything, "B0BROKEN00").Return(nil, errors.New("catalog timeout")).Once()
	mc.EXPECT().GetItem(mock.Anything, "B0TESTASIN").Return(trackerSnapshot("18.50"), nil).Once()
	ms.EXPECT().
		InsertPricePoint(mock.Anything, "B0TESTASIN", mock.Anything, mock.Anything).
		Return(nil).Once()

	mn.EXPECT().
		SendPriceDrop(mock.Anything, mock.Anything).
		Return(&notify.Receipt{}, nil).Once()
	ms.EXPECT().
		UpdateAlertState(mock.Anything, "t-healthy", &fixedNow, mock.Anything, 1).
		Return(nil).Once()

	p := newTestProcessor(ms, mc, mn)
	result, err := p.ProcessAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.AlertsSent)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "t-broken", result.Errors[0].TrackerID)
	assert.Equal(t, StageSnapshot, result.Errors[0].Stage)
}

func TestProcessor_ProcessAll_SuppressedInCooldown(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := catalogMocks.NewMockClient(t)
	mn := notifyMocks.NewMockNotifier(t)

	tr := fixedTracker("t-1")
	tr.LastAlertSentAt = timePtr(fixedNow.Add(-10 * time.Hour))
	tr.LastAlertPrice = decPtr("18.50")

	expectRunScaffolding(ms, domain.JobCompleted)
	ms.EXPECT().
		ListTrackers(mock.Anything, true).
		Return([]domain.Tracker{tr}, nil).Once()

	mc.EXPECT().GetItem(mock.Anything, "B0TESTASIN").Return(trackerSnapshot("18.00"), nil).Once()
	ms.EXPECT().
		InsertPricePoint(mock.Anything, "B0TESTASIN", mock.Anything, mock.Anything).
		Return(nil).Once()

	p := newTestProcessor(ms, mc, mn)
	result, err := p.ProcessAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, result.AlertsSent)
	assert.Empty(t, result.Errors)
	mn.AssertNotCalled(t, "SendPriceDrop", mock.Anything, mock.Anything)
}

func TestProcessor_ProcessAll_SecondRunSuppresses(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := catalogMocks.NewMockClient(t)
	mn := notifyMocks.NewMockNotifier(t)

	fresh := fixedTracker("t-1")
	alerted := fixedTracker("t-1")
	alerted.LastAlertSentAt = timePtr(fixedNow)
	alerted.LastAlertPrice = decPtr("18.50")
	alerted.Version = 2

	expectRunScaffolding(ms, domain.JobCompleted)
	expectRunScaffolding(ms, domain.JobCompleted)
	ms.EXPECT().
		ListTrackers(mock.Anything, true).
		Return([]domain.Tracker{fresh}, nil).Once()
	ms.EXPECT().
		ListTrackers(mock.Anything, true).
		Return([]domain.Tracker{alerted}, nil).Once()

	mc.EXPECT().GetItem(mock.Anything, "B0TESTASIN").Return(trackerSnapshot("18.50"), nil).Twice()
	ms.EXPECT().
		InsertPricePoint(mock.Anything, "B0TESTASIN", mock.Anything, mock.Anything).
		Return(nil).Twice()

	mn.EXPECT().
		SendPriceDrop(mock.Anything, mock.Anything).
		Return(&notify.Receipt{}, nil).Once()
	ms.EXPECT().
		UpdateAlertState(mock.Anything, "t-1", &fixedNow, mock.Anything, 1).
		Return(nil).Once()

	p := newTestProcessor(ms, mc, mn)

	first, err := p.ProcessAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, first.AlertsSent)

	// The second run observes the updated alert state and suppresses.
	second, err := p.ProcessAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second.AlertsSent)
	assert.Empty(t, second.Errors)
}

func TestProcessor_ProcessAll_LockHeldByOtherInstance(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := catalogMocks.NewMockClient(t)
	mn := notifyMocks.NewMockNotifier(t)

	ms.EXPECT().
		AcquireJobLock(mock.Anything, JobName, mock.Anything, mock.Anything).
		Return(false, nil).Once()

	p := newTestProcessor(ms, mc, mn)
	_, err := p.ProcessAll(context.Background())
	require.ErrorIs(t, err, ErrRunInProgress)
}

func TestProcessor_ProcessAll_InProcessOverlapRejected(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := catalogMocks.NewMockClient(t)
	mn := notifyMocks.NewMockNotifier(t)

	p := newTestProcessor(ms, mc, mn)
	p.running.Store(true)

	_, err := p.ProcessAll(context.Background())
	require.ErrorIs(t, err, ErrRunInProgress)
}

func TestProcessor_ProcessAll_ListFailureAborts(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := catalogMocks.NewMockClient(t)
	mn := notifyMocks.NewMockNotifier(t)

	ms.EXPECT().
		AcquireJobLock(mock.Anything, JobName, mock.Anything, mock.Anything).
		Return(true, nil).Once()
	ms.EXPECT().
		InsertJobRun(mock.Anything, JobName).
		Return("run-1", nil).Once()
	ms.EXPECT().
		ListTrackers(mock.Anything, true).
		Return(nil, errors.New("db unreachable")).Once()
	ms.EXPECT().
		CompleteJobRun(mock.Anything, "run-1", domain.JobFailed, 0, 0, mock.Anything).
		Return(nil).Once()
	ms.EXPECT().
		ReleaseJobLock(mock.Anything, JobName, mock.Anything).
		Return(nil).Once()

	p := newTestProcessor(ms, mc, mn)
	_, err := p.ProcessAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing trackers")
}

func TestProcessor_ProcessAll_AlertStateFailureRecorded(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := catalogMocks.NewMockClient(t)
	mn := notifyMocks.NewMockNotifier(t)

	expectRunScaffolding(ms, domain.JobCompleted)
	ms.EXPECT().
		ListTrackers(mock.Anything, true).
		Return([]domain.Tracker{fixedTracker("t-1")}, nil).Once()

	mc.EXPECT().GetItem(mock.Anything, "B0TESTASIN").Return(trackerSnapshot("18.50"), nil).Once()
	ms.EXPECT().
		InsertPricePoint(mock.Anything, "B0TESTASIN", mock.Anything, mock.Anything).
		Return(nil).Once()

	mn.EXPECT().
		SendPriceDrop(mock.Anything, mock.Anything).
		Return(&notify.Receipt{}, nil).Once()
	ms.EXPECT().
		UpdateAlertState(mock.Anything, "t-1", &fixedNow, mock.Anything, 1).
		Return(errors.New("write timeout")).Once()

	p := newTestProcessor(ms, mc, mn)
	result, err := p.ProcessAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, result.AlertsSent)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, StageAlertState, result.Errors[0].Stage)
}

func TestProcessor_ProcessAll_CancelSkipsRemainingTrackers(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := catalogMocks.NewMockClient(t)
	mn := notifyMocks.NewMockNotifier(t)

	ctx, cancel := context.WithCancel(context.Background())

	expectRunScaffolding(ms, domain.JobFailed)
	ms.EXPECT().
		ListTrackers(mock.Anything, true).
		Run(func(_ context.Context, _ bool) { cancel() }).
		Return([]domain.Tracker{
			fixedTracker("t-1"),
			fixedTracker("t-2"),
			fixedTracker("t-3"),
		}, nil).Once()

	p := newTestProcessor(ms, mc, mn)
	result, err := p.ProcessAll(ctx)
	require.ErrorIs(t, err, context.Canceled)

	// Nothing was in flight when the cancel landed, so no tracker is touched.
	assert.Equal(t, 0, result.AlertsSent)
	assert.Empty(t, result.Errors)
	mc.AssertNotCalled(t, "GetItem", mock.Anything, mock.Anything)
}

func TestProcessor_ProcessAll_CancelFinishesInFlightTracker(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := catalogMocks.NewMockClient(t)
	mn := notifyMocks.NewMockNotifier(t)

	ctx, cancel := context.WithCancel(context.Background())

	expectRunScaffolding(ms, domain.JobFailed)
	ms.EXPECT().
		ListTrackers(mock.Anything, true).
		Return([]domain.Tracker{fixedTracker("t-1")}, nil).Once()

	// Cancel while the tracker is in flight. The worker must still run the
	// notify-then-record sequence to completion.
	mc.EXPECT().
		GetItem(mock.Anything, "B0TESTASIN").
		Run(func(_ context.Context, _ string) { cancel() }).
		Return(trackerSnapshot("18.50"), nil).Once()
	ms.EXPECT().
		InsertPricePoint(mock.Anything, "B0TESTASIN", mock.Anything, mock.Anything).
		Return(nil).Once()

	mn.EXPECT().
		SendPriceDrop(mock.Anything, mock.Anything).
		Run(func(sendCtx context.Context, _ *notify.Alert) {
			assert.NoError(t, sendCtx.Err(), "notify must be shielded from run cancellation")
		}).
		Return(&notify.Receipt{}, nil).Once()
	ms.EXPECT().
		UpdateAlertState(mock.Anything, "t-1", &fixedNow, mock.Anything, 1).
		Run(func(updateCtx context.Context, _ string, _ *time.Time, _ *decimal.Decimal, _ int) {
			assert.NoError(t, updateCtx.Err(), "state write must follow a sent notification")
		}).
		Return(nil).Once()

	p := newTestProcessor(ms, mc, mn)
	result, err := p.ProcessAll(ctx)
	require.ErrorIs(t, err, context.Canceled)

	assert.Equal(t, 1, result.AlertsSent)
	assert.Empty(t, result.Errors)
}

func TestProcessor_ProcessAll_InvalidBaselineLogsWarning(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := catalogMocks.NewMockClient(t)
	mn := notifyMocks.NewMockNotifier(t)

	tr := fixedTracker("t-1")
	tr.AlertMode = domain.AlertPercentageDrop
	tr.TargetPrice = nil
	tr.PercentThreshold = decPtr("20")

	expectRunScaffolding(ms, domain.JobCompleted)
	ms.EXPECT().
		ListTrackers(mock.Anything, true).
		Return([]domain.Tracker{tr}, nil).Once()

	// A zero "was" price cannot anchor a discount calculation.
	snap := trackerSnapshot("18.50")
	snap.OriginalPrice = decPtr("0.00")
	mc.EXPECT().GetItem(mock.Anything, "B0TESTASIN").Return(snap, nil).Once()
	ms.EXPECT().
		InsertPricePoint(mock.Anything, "B0TESTASIN", mock.Anything, mock.Anything).
		Return(nil).Once()

	var buf bytes.Buffer
	p := NewProcessor(ms, mc, mn,
		WithLogger(slog.New(slog.NewTextHandler(&buf, nil))),
		WithConcurrency(1),
		WithNowFunc(func() time.Time { return fixedNow }),
	)
	result, err := p.ProcessAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, result.AlertsSent)
	assert.Empty(t, result.Errors)

	logOutput := buf.String()
	assert.Contains(t, logOutput, "level=WARN")
	assert.Contains(t, logOutput, "alert suppressed")
	assert.Contains(t, logOutput, "reason=invalid_baseline")
}

func TestProcessor_ProcessAll_FireVersionConflictSafeSkip(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := catalogMocks.NewMockClient(t)
	mn := notifyMocks.NewMockNotifier(t)

	expectRunScaffolding(ms, domain.JobCompleted)
	ms.EXPECT().
		ListTrackers(mock.Anything, true).
		Return([]domain.Tracker{fixedTracker("t-1")}, nil).Once()

	mc.EXPECT().GetItem(mock.Anything, "B0TESTASIN").Return(trackerSnapshot("18.50"), nil).Once()
	ms.EXPECT().
		InsertPricePoint(mock.Anything, "B0TESTASIN", mock.Anything, mock.Anything).
		Return(nil).Once()

	mn.EXPECT().
		SendPriceDrop(mock.Anything, mock.Anything).
		Return(&notify.Receipt{}, nil).Once()
	ms.EXPECT().
		UpdateAlertState(mock.Anything, "t-1", &fixedNow, mock.Anything, 1).
		Return(store.ErrVersionConflict).Once()

	p := newTestProcessor(ms, mc, mn)
	result, err := p.ProcessAll(context.Background())
	require.NoError(t, err)

	// Another writer got there first: not a state-write failure, just a
	// tracker that no longer counts toward this run.
	assert.Equal(t, 0, result.AlertsSent)
	assert.Empty(t, result.Errors)
}

func TestProcessingError_Error(t *testing.T) {
	t.Parallel()

	e := ProcessingError{TrackerID: "t-1", Stage: StageNotify, Err: errors.New("boom")}
	assert.Equal(t, "tracker t-1: notify: boom", e.Error())
	assert.EqualError(t, e.Unwrap(), "boom")
}

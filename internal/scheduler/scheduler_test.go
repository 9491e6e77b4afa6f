package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KarinaMa20040822/starwish/backend/pkg/config"
	"github.com/KarinaMa20040822/starwish/backend/pkg/logger"
)

type fakeJob struct {
	name     string
	schedule string
}

func (j *fakeJob) Name() string                  { return j.name }
func (j *fakeJob) Schedule() string              { return j.schedule }
func (j *fakeJob) Run(ctx context.Context) error { return nil }

func testScheduler() *Scheduler {
	return New(logger.New(&config.Config{Env: "test", LogLevel: "error"}))
}

func TestAddJob(t *testing.T) {
	s := testScheduler()

	err := s.AddJob(&fakeJob{name: "daily_fortune", schedule: "0 0 6 * * *"})
	require.NoError(t, err)

	// duplicate name rejected
	err = s.AddJob(&fakeJob{name: "daily_fortune", schedule: "0 0 7 * * *"})
	assert.Error(t, err)

	// bad cron expression rejected
	err = s.AddJob(&fakeJob{name: "broken", schedule: "not a schedule"})
	assert.Error(t, err)
}

func TestGetAllJobsSorted(t *testing.T) {
	s := testScheduler()
	require.NoError(t, s.AddJob(&fakeJob{name: "fortune_cleanup", schedule: "0 30 4 * * *"}))
	require.NoError(t, s.AddJob(&fakeJob{name: "daily_fortune", schedule: "0 0 6 * * *"}))

	assert.Equal(t, []string{"daily_fortune", "fortune_cleanup"}, s.GetAllJobs())
}

func TestRunJobUnknown(t *testing.T) {
	s := testScheduler()
	assert.Error(t, s.RunJob("nope"))
}

func TestGetJobHistoryUnknown(t *testing.T) {
	s := testScheduler()
	_, err := s.GetJobHistory("nope")
	assert.Error(t, err)
}

func TestJobHistoryCap(t *testing.T) {
	h := &JobHistory{}
	for i := 0; i < 150; i++ {
		h.AddResult(JobResult{JobName: "j", Success: i%2 == 0})
	}

	assert.Len(t, h.Results, 100)
}

func TestJobHistoryLatestAndFailed(t *testing.T) {
	h := &JobHistory{}
	base := time.Date(2026, 8, 29, 6, 0, 0, 0, time.UTC)

	h.AddResult(JobResult{JobName: "j", StartTime: base, Success: true})
	h.AddResult(JobResult{JobName: "j", StartTime: base.Add(time.Hour), Success: false, Error: "scrape failed"})
	h.AddResult(JobResult{JobName: "j", StartTime: base.Add(2 * time.Hour), Success: true})

	latest := h.GetLatestResults(2)
	require.Len(t, latest, 2)
	assert.Equal(t, base.Add(2*time.Hour), latest[1].StartTime)

	failed := h.GetFailedResults()
	require.Len(t, failed, 1)
	assert.Equal(t, "scrape failed", failed[0].Error)

	assert.InDelta(t, 2.0/3.0, h.GetSuccessRate(), 1e-9)
}

func TestJobStats(t *testing.T) {
	s := testScheduler()
	require.NoError(t, s.AddJob(&fakeJob{name: "daily_fortune", schedule: "0 0 6 * * *"}))

	s.history["daily_fortune"].AddResult(JobResult{
		JobName:   "daily_fortune",
		StartTime: time.Date(2026, 8, 29, 6, 0, 0, 0, time.UTC),
		Success:   true,
	})

	stats := s.GetJobStats()
	st, ok := stats["daily_fortune"]
	require.True(t, ok)
	assert.Equal(t, 1, st.TotalRuns)
	assert.Equal(t, 1, st.SuccessCount)
	assert.Equal(t, 0, st.FailureCount)
	require.NotNil(t, st.LastSuccess)
	assert.Nil(t, st.LastFailure)
}

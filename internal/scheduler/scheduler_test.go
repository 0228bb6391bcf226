package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"taskboard/internal/confirm"
	"taskboard/internal/model"
	"taskboard/internal/pkg/config"
	"taskboard/internal/repository"
	"taskboard/internal/service"
)

func newTestScheduler(t *testing.T) (*Scheduler, *repository.Store, *confirm.Stager) {
	t.Helper()

	store := repository.NewStore()
	store.Load(repository.Snapshot{
		Projects: []model.Project{{ID: "p1", Name: "P"}},
		Tasks: []model.Task{
			{ID: "t1", Title: "Old", Deadline: model.NewDate(2000, 1, 1), Status: model.TaskStatusTodo, Priority: model.TaskPriorityLow, ProjectID: "p1"},
			{ID: "t2", Title: "Done", Deadline: model.NewDate(2000, 1, 1), Status: model.TaskStatusDone, Priority: model.TaskPriorityLow, ProjectID: "p1"},
		},
	})
	stager := confirm.NewStager(-time.Second)
	cfg := &config.Config{Board: config.BoardConfig{Locale: "fr"}}
	services := service.NewServices(cfg, store, stager, nil)

	return NewScheduler(zap.NewNop(), services), store, stager
}

func TestScheduler_Start(t *testing.T) {
	s, _, _ := newTestScheduler(t)

	require.NoError(t, s.Start(&config.SchedulerConfig{Enabled: true, OverdueCron: "*/30 * * * * *"}))
	defer s.Stop()

	entries := s.Entries()
	assert.Contains(t, entries, jobOverdueReminder)
	assert.Contains(t, entries, jobPurgeConfirmations)
}

func TestScheduler_InvalidCron(t *testing.T) {
	s, _, _ := newTestScheduler(t)
	assert.Error(t, s.Start(&config.SchedulerConfig{Enabled: true, OverdueCron: "not a cron"}))
}

func TestScheduler_Disabled(t *testing.T) {
	s, _, _ := newTestScheduler(t)
	require.NoError(t, s.Start(&config.SchedulerConfig{Enabled: false}))
	assert.Empty(t, s.Entries())
}

func TestScheduler_Jobs(t *testing.T) {
	s, store, stager := newTestScheduler(t)

	assert.Equal(t, 1, s.RunOverdueReminder())
	assert.Equal(t, 0, s.RunOverdueReminder())
	assert.Len(t, store.Snapshot().Notifications, 1)

	stager.Stage("delete_task", "t", "m", func() (interface{}, error) { return nil, nil })
	assert.Equal(t, 1, s.RunPurgeConfirmations())
	assert.Zero(t, stager.Pending())
}

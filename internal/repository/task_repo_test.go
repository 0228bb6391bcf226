package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/model"
	pkgErrors "taskboard/pkg/errors"
)

func TestTaskRepository_CreateForcesInitialState(t *testing.T) {
	store := NewStore()
	repo := NewTaskRepository(store)

	input := model.Task{
		Title:         "Rédiger le cahier des charges",
		Description:   "v1",
		AssigneeID:    strPtr("u1"),
		Deadline:      model.NewDate(2024, 3, 15),
		Status:        model.TaskStatusDone,
		Priority:      model.TaskPriorityHigh,
		TimeLogged:    12,
		EstimatedTime: 8,
		ProjectID:     "p1",
	}
	task := input
	require.NoError(t, repo.Create(&task))

	tasks := repo.List()
	require.Len(t, tasks, 1)
	got := tasks[0]
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, model.TaskStatusTodo, got.Status)
	assert.Zero(t, got.TimeLogged)

	got.ID, got.Status, got.TimeLogged = "", input.Status, input.TimeLogged
	assert.Equal(t, input, got)
}

func TestTaskRepository_CreatePrepends(t *testing.T) {
	repo := NewTaskRepository(NewStore())
	require.NoError(t, repo.Create(&model.Task{Title: "first"}))
	require.NoError(t, repo.Create(&model.Task{Title: "second"}))

	tasks := repo.List()
	require.Len(t, tasks, 2)
	assert.Equal(t, "second", tasks[0].Title)
	assert.NotEqual(t, tasks[0].ID, tasks[1].ID)
}

func TestTaskRepository_UpdateUnknownLeavesCollection(t *testing.T) {
	store := seedStore()
	repo := NewTaskRepository(store)
	before := store.Snapshot().Tasks

	_, _, err := repo.Update(&model.Task{ID: "missing", Title: "x"})
	assert.ErrorIs(t, err, pkgErrors.ErrRecordNotFound)
	_, _, err = repo.UpdateStatus("missing", model.TaskStatusDone)
	assert.ErrorIs(t, err, pkgErrors.ErrRecordNotFound)
	assert.ErrorIs(t, repo.Delete("missing"), pkgErrors.ErrRecordNotFound)

	assert.Equal(t, before, store.Snapshot().Tasks)
}

func TestTaskRepository_Delete(t *testing.T) {
	repo := NewTaskRepository(seedStore())
	require.NoError(t, repo.Delete("t2"))

	ids := []string{}
	for _, task := range repo.List() {
		ids = append(ids, task.ID)
	}
	assert.Equal(t, []string{"t1", "t3", "t4"}, ids)
}

func TestTaskRepository_SnapshotIsDetached(t *testing.T) {
	store := seedStore()
	repo := NewTaskRepository(store)

	task, err := repo.FindByID("t1")
	require.NoError(t, err)
	*task.AssigneeID = "hacked"

	again, err := repo.FindByID("t1")
	require.NoError(t, err)
	assert.Equal(t, "u1", *again.AssigneeID)
}

func TestNotificationRepository_MarkAllReadIdempotent(t *testing.T) {
	store := NewStore()
	store.Load(Snapshot{Notifications: []model.Notification{
		{ID: "n1", Message: "a"},
		{ID: "n2", Message: "b", Read: true},
	}})
	repo := NewNotificationRepository(store)

	assert.Equal(t, 1, repo.MarkAllRead())
	assert.Equal(t, 0, repo.UnreadCount())

	assert.Equal(t, 0, repo.MarkAllRead())
	for _, n := range repo.List() {
		assert.True(t, n.Read)
	}
}

func TestTeamRepository_UpdateAndDelete(t *testing.T) {
	repo := NewTeamRepository(seedStore())

	err := repo.Update(&model.Team{ID: "team1", Name: "Back", MemberIDs: []string{"u1"}})
	require.NoError(t, err)
	team, err := repo.FindByID("team1")
	require.NoError(t, err)
	assert.Equal(t, "Back", team.Name)
	assert.Equal(t, []string{"u1"}, team.MemberIDs)

	require.NoError(t, repo.Delete("team1"))
	assert.Empty(t, repo.List())
	assert.ErrorIs(t, repo.Delete("team1"), pkgErrors.ErrRecordNotFound)
}

func TestTaskRepository_ToggleDone(t *testing.T) {
	repo := NewTaskRepository(NewStore())
	task := model.Task{Title: "Checkbox", ProjectID: "p1", Priority: model.TaskPriorityLow}
	require.NoError(t, repo.Create(&task))

	got, err := repo.ToggleDone(task.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusDone, got.Status)

	got, err = repo.ToggleDone(task.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusTodo, got.Status)

	_, _, err = repo.UpdateStatus(task.ID, model.TaskStatusInProgress)
	require.NoError(t, err)
	got, err = repo.ToggleDone(task.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusDone, got.Status)

	_, err = repo.ToggleDone("missing")
	assert.ErrorIs(t, err, pkgErrors.ErrRecordNotFound)
}

func TestTaskRepository_UpdateKeepsConcurrentStatusAndTime(t *testing.T) {
	repo := NewTaskRepository(NewStore())
	task := model.Task{Title: "Maquettes", ProjectID: "p1", Priority: model.TaskPriorityLow}
	require.NoError(t, repo.Create(&task))

	// 编辑表单基于旧数据, 提交前任务已被勾选完成并登记了工时
	stale, err := repo.FindByID(task.ID)
	require.NoError(t, err)
	_, err = repo.ToggleDone(task.ID)
	require.NoError(t, err)
	_, err = repo.UpdateTimeLogged(task.ID, 3)
	require.NoError(t, err)

	stale.Title = "Maquettes v2"
	stale.Priority = model.TaskPriorityHigh
	before, after, err := repo.Update(stale)
	require.NoError(t, err)

	assert.Equal(t, "Maquettes", before.Title)
	assert.Equal(t, "Maquettes v2", after.Title)
	assert.Equal(t, model.TaskPriorityHigh, after.Priority)
	assert.Equal(t, model.TaskStatusDone, after.Status)
	assert.Equal(t, 3.0, after.TimeLogged)

	stored, err := repo.FindByID(task.ID)
	require.NoError(t, err)
	assert.Equal(t, after, stored)
}

func TestTaskRepository_UpdateStatusReportsPrevious(t *testing.T) {
	repo := NewTaskRepository(NewStore())
	task := model.Task{Title: "Recette", ProjectID: "p1", Priority: model.TaskPriorityMedium}
	require.NoError(t, repo.Create(&task))

	before, after, err := repo.UpdateStatus(task.ID, model.TaskStatusDone)
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusTodo, before.Status)
	assert.Equal(t, model.TaskStatusDone, after.Status)
}

package repository

import (
	"github.com/samber/lo"

	"taskboard/internal/model"
	"taskboard/internal/pkg/idgen"
	"taskboard/pkg/constants"
	pkgErrors "taskboard/pkg/errors"
)

type TaskRepository interface {
	// Create 新建任务，状态强制为TODO、已登记工时强制为0
	Create(task *model.Task) error
	FindByID(id string) (*model.Task, error)
	List() []model.Task
	ListByProjectID(projectID string) []model.Task
	// Update 在同一次加锁内替换可编辑字段, 状态和已登记工时保持存储中的值
	// 返回更新前后的任务
	Update(task *model.Task) (before, after *model.Task, err error)
	UpdateStatus(id string, status model.TaskStatus) (before, after *model.Task, err error)
	UpdateTimeLogged(id string, hours float64) (*model.Task, error)
	// ToggleDone 勾选框: DONE 变回 TODO, 其余状态变为 DONE
	ToggleDone(id string) (*model.Task, error)
	Delete(id string) error
}

type taskRepository struct {
	store *Store
}

func NewTaskRepository(store *Store) TaskRepository {
	return &taskRepository{store: store}
}

func (r *taskRepository) Create(task *model.Task) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if task.ID == "" {
		task.ID = idgen.New(constants.IDPrefixTask)
	} else if r.indexLocked(task.ID) >= 0 {
		return pkgErrors.Wrap(pkgErrors.CodeConflict, "任务已存在", nil)
	}
	task.Status = model.TaskStatusTodo
	task.TimeLogged = 0

	r.store.tasks = prepend(r.store.tasks, task.Clone())
	return nil
}

func (r *taskRepository) FindByID(id string) (*model.Task, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	idx := r.indexLocked(id)
	if idx < 0 {
		return nil, pkgErrors.ErrRecordNotFound
	}
	task := r.store.tasks[idx].Clone()
	return &task, nil
}

func (r *taskRepository) List() []model.Task {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.tasksLocked()
}

func (r *taskRepository) ListByProjectID(projectID string) []model.Task {
	return lo.Filter(r.List(), func(t model.Task, _ int) bool {
		return t.ProjectID == projectID
	})
}

func (r *taskRepository) Update(task *model.Task) (*model.Task, *model.Task, error) {
	edit := task.Clone()
	return r.mutate(task.ID, func(t *model.Task) {
		t.Title = edit.Title
		t.Description = edit.Description
		t.AssigneeID = edit.AssigneeID
		t.Deadline = edit.Deadline
		t.Priority = edit.Priority
		t.EstimatedTime = edit.EstimatedTime
		t.ProjectID = edit.ProjectID
	})
}

func (r *taskRepository) UpdateStatus(id string, status model.TaskStatus) (*model.Task, *model.Task, error) {
	return r.mutate(id, func(t *model.Task) {
		t.Status = status
	})
}

func (r *taskRepository) UpdateTimeLogged(id string, hours float64) (*model.Task, error) {
	_, after, err := r.mutate(id, func(t *model.Task) {
		t.TimeLogged = hours
	})
	return after, err
}

func (r *taskRepository) ToggleDone(id string) (*model.Task, error) {
	_, after, err := r.mutate(id, func(t *model.Task) {
		if t.IsDone() {
			t.Status = model.TaskStatusTodo
		} else {
			t.Status = model.TaskStatusDone
		}
	})
	return after, err
}

func (r *taskRepository) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	idx := r.indexLocked(id)
	if idx < 0 {
		return pkgErrors.ErrRecordNotFound
	}
	r.store.tasks = append(r.store.tasks[:idx:idx], r.store.tasks[idx+1:]...)
	return nil
}

// mutate 加写锁修改单个任务, 返回修改前后的副本
func (r *taskRepository) mutate(id string, fn func(t *model.Task)) (*model.Task, *model.Task, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	idx := r.indexLocked(id)
	if idx < 0 {
		return nil, nil, pkgErrors.ErrRecordNotFound
	}
	before := r.store.tasks[idx].Clone()
	fn(&r.store.tasks[idx])
	after := r.store.tasks[idx].Clone()
	return &before, &after, nil
}

func (r *taskRepository) indexLocked(id string) int {
	_, idx, _ := lo.FindIndexOf(r.store.tasks, func(t model.Task) bool {
		return t.ID == id
	})
	return idx
}

package service

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"taskboard/internal/adapter/notification"
	"taskboard/internal/confirm"
	"taskboard/internal/core/stats"
	"taskboard/internal/core/taskview"
	"taskboard/internal/dto"
	"taskboard/internal/model"
	"taskboard/internal/pkg/logger"
	"taskboard/internal/repository"
	"taskboard/pkg/constants"
	pkgErrors "taskboard/pkg/errors"
)

type TaskService interface {
	Create(req *dto.CreateTaskRequest) (*model.Task, error)
	GetDetail(id string) (*dto.TaskDetailResponse, error)
	Update(req *dto.UpdateTaskRequest) (*model.Task, error)
	UpdateStatus(id string, req *dto.UpdateTaskStatusRequest) (*model.Task, error)
	UpdateTimeLogged(id string, req *dto.UpdateTimeLoggedRequest) (*model.Task, error)
	ToggleDone(id string) (*model.Task, error)
	// StageDelete 暂存删除，确认后才真正删除
	StageDelete(id string) (*confirm.Confirmation, error)
	List(q *dto.TaskQuery) []model.Task
	Board(q *dto.TaskQuery) *dto.BoardResponse
}

type taskService struct {
	repo        repository.TaskRepository
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
	engine      *taskview.Engine
	stager      *confirm.Stager
	notifier    notification.Notifier
	defaultSort string
	now         func() time.Time
}

func NewTaskService(
	repo repository.TaskRepository,
	projectRepo repository.ProjectRepository,
	userRepo repository.UserRepository,
	engine *taskview.Engine,
	stager *confirm.Stager,
	notifier notification.Notifier,
	defaultSort string,
) TaskService {
	if defaultSort == "" {
		defaultSort = constants.SortByDeadline
	}
	return &taskService{
		repo:        repo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
		engine:      engine,
		stager:      stager,
		notifier:    notifier,
		defaultSort: defaultSort,
		now:         time.Now,
	}
}

func (s *taskService) Create(req *dto.CreateTaskRequest) (*model.Task, error) {
	task := &model.Task{}
	if err := s.apply(task, req); err != nil {
		return nil, err
	}
	if err := s.repo.Create(task); err != nil {
		return nil, err
	}

	logger.Info("任务已创建",
		zap.String("task_id", task.ID),
		zap.String("project_id", task.ProjectID))
	s.notifyAssigned(*task)
	return task, nil
}

func (s *taskService) GetDetail(id string) (*dto.TaskDetailResponse, error) {
	task, err := s.repo.FindByID(id)
	if err != nil {
		return nil, notFound(err, pkgErrors.ErrTaskNotFound)
	}

	resp := &dto.TaskDetailResponse{
		Task:    *task,
		Overdue: stats.IsOverdue(*task, s.now()),
	}
	if task.AssigneeID != nil {
		if user, err := s.userRepo.FindByID(*task.AssigneeID); err == nil {
			resp.Assignee = user
		}
	}
	return resp, nil
}

func (s *taskService) Update(req *dto.UpdateTaskRequest) (*model.Task, error) {
	task := &model.Task{ID: req.ID}
	if err := s.apply(task, &req.CreateTaskRequest); err != nil {
		return nil, err
	}

	// 状态和已登记工时由仓储保留原值
	before, after, err := s.repo.Update(task)
	if err != nil {
		return nil, notFound(err, pkgErrors.ErrTaskNotFound)
	}
	if after.AssigneeID != nil && !before.IsAssignedTo(*after.AssigneeID) {
		s.notifyAssigned(*after)
	}
	return after, nil
}

func (s *taskService) UpdateStatus(id string, req *dto.UpdateTaskStatusRequest) (*model.Task, error) {
	status := model.TaskStatus(req.Status)
	if !status.Valid() {
		return nil, pkgErrors.Wrap(pkgErrors.CodeBadRequest, fmt.Sprintf("无效的任务状态: %s", req.Status), nil)
	}
	before, after, err := s.repo.UpdateStatus(id, status)
	if err != nil {
		return nil, notFound(err, pkgErrors.ErrTaskNotFound)
	}
	if after.IsDone() && !before.IsDone() {
		s.notifyCompleted(*after)
	}
	return after, nil
}

func (s *taskService) UpdateTimeLogged(id string, req *dto.UpdateTimeLoggedRequest) (*model.Task, error) {
	// Hours 已把无效输入和负数修正为0，这里不再拒绝
	task, err := s.repo.UpdateTimeLogged(id, req.TimeLogged.Float64())
	if err != nil {
		return nil, notFound(err, pkgErrors.ErrTaskNotFound)
	}
	return task, nil
}

func (s *taskService) ToggleDone(id string) (*model.Task, error) {
	task, err := s.repo.ToggleDone(id)
	if err != nil {
		return nil, notFound(err, pkgErrors.ErrTaskNotFound)
	}
	if task.IsDone() {
		s.notifyCompleted(*task)
	}
	return task, nil
}

func (s *taskService) StageDelete(id string) (*confirm.Confirmation, error) {
	task, err := s.repo.FindByID(id)
	if err != nil {
		return nil, notFound(err, pkgErrors.ErrTaskNotFound)
	}

	c := s.stager.Stage("delete_task",
		"删除任务",
		fmt.Sprintf("确定删除任务「%s」吗？此操作不可撤销。", task.Title),
		func() (interface{}, error) {
			if err := s.repo.Delete(id); err != nil {
				return nil, notFound(err, pkgErrors.ErrTaskNotFound)
			}
			logger.Info("任务已删除", zap.String("task_id", id))
			return &dto.DeleteTaskResponse{ID: id, Deleted: true}, nil
		})
	return &c, nil
}

func (s *taskService) List(q *dto.TaskQuery) []model.Task {
	return s.engine.Derive(s.repo.List(), s.criteria(q))
}

func (s *taskService) Board(q *dto.TaskQuery) *dto.BoardResponse {
	tasks := s.List(q)
	return &dto.BoardResponse{
		Columns: taskview.GroupByStatus(tasks),
		Total:   len(tasks),
	}
}

func (s *taskService) criteria(q *dto.TaskQuery) taskview.Criteria {
	c := taskview.Criteria{SortBy: s.defaultSort}
	if q == nil {
		return c
	}
	c.SearchTerm = q.Search
	c.AssigneeFilter = q.Assignee
	c.ProjectFilter = q.Project
	if q.Sort != "" {
		c.SortBy = q.Sort
	}
	return c
}

// notifyAssigned 负责人开启了任务指派通知时推送
func (s *taskService) notifyAssigned(task model.Task) {
	if task.AssigneeID == nil {
		return
	}
	user, err := s.userRepo.FindByID(*task.AssigneeID)
	if err != nil || !user.NotificationSettings.TaskAssignments {
		return
	}
	pushTask(s.notifier, task, notification.NotifyTaskAssigned, fmt.Sprintf("任务已指派给 %s", user.Name))
}

func (s *taskService) notifyCompleted(task model.Task) {
	pushTask(s.notifier, task, notification.NotifyTaskCompleted, "任务已完成")
}

// apply 校验并写入可编辑字段
func (s *taskService) apply(task *model.Task, req *dto.CreateTaskRequest) error {
	priority := model.TaskPriority(req.Priority)
	if !priority.Valid() {
		return pkgErrors.Wrap(pkgErrors.CodeBadRequest, fmt.Sprintf("无效的优先级: %s", req.Priority), nil)
	}
	if req.Deadline == nil || req.Deadline.IsZero() {
		return pkgErrors.Wrap(pkgErrors.CodeBadRequest, "截止日期不能为空", nil)
	}
	if !s.projectRepo.Exists(req.ProjectID) {
		return pkgErrors.Wrap(pkgErrors.CodeBadRequest, "所属项目不存在: "+req.ProjectID, nil)
	}

	var assigneeID *string
	if req.AssigneeID != nil && *req.AssigneeID != "" {
		if !s.userRepo.Exists(*req.AssigneeID) {
			return pkgErrors.ErrAssigneeNotFound
		}
		id := *req.AssigneeID
		assigneeID = &id
	}

	task.Title = req.Title
	task.Description = req.Description
	task.AssigneeID = assigneeID
	task.Deadline = *req.Deadline
	task.Priority = priority
	task.EstimatedTime = req.EstimatedTime.Float64()
	task.ProjectID = req.ProjectID
	return nil
}

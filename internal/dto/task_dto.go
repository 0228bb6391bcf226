package dto

import (
	"taskboard/internal/core/taskview"
	"taskboard/internal/model"
	"taskboard/internal/repository"
)

// CreateTaskRequest 创建任务请求, 状态和已登记工时由系统设置
type CreateTaskRequest struct {
	Title         string      `json:"title" binding:"required,max=200"`
	Description   string      `json:"description" binding:"max=2000"`
	AssigneeID    *string     `json:"assignee_id"`
	Deadline      *model.Date `json:"deadline" binding:"required" swaggertype:"string" format:"date" example:"2024-03-15"`
	Priority      string      `json:"priority" binding:"required,oneof=HIGH MEDIUM LOW"`
	EstimatedTime Hours       `json:"estimated_time"`
	ProjectID     string      `json:"project_id" binding:"required"`
}

// UpdateTaskRequest 编辑任务请求, 替换全部可编辑字段; 状态和已登记工时保持不变
type UpdateTaskRequest struct {
	ID string `json:"id" binding:"required"`
	CreateTaskRequest
}

// UpdateTaskStatusRequest 修改任务状态
type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=TODO IN_PROGRESS DONE"`
}

// UpdateTimeLoggedRequest 修改已登记工时
type UpdateTimeLoggedRequest struct {
	TimeLogged Hours `json:"time_logged"`
}

// TaskDetailResponse 任务详情, 附带负责人
type TaskDetailResponse struct {
	model.Task
	Assignee *model.User `json:"assignee"`
	Overdue  bool        `json:"overdue"`
}

// BoardResponse 看板
type BoardResponse struct {
	Columns []taskview.Column `json:"columns"`
	Total   int               `json:"total"`
}

// DeleteTaskResponse 删除任务结果, 前端据此关闭详情
type DeleteTaskResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// DeleteUsersResponse 批量删除用户的级联结果
type DeleteUsersResponse struct {
	repository.CascadeResult
}

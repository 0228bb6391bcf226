package dto

import (
	"taskboard/internal/core/stats"
	"taskboard/internal/model"
)

// CreateProjectRequest 创建项目请求
type CreateProjectRequest struct {
	Name        string   `json:"name" binding:"required,max=100"`
	Description string   `json:"description" binding:"max=2000"`
	MemberIDs   []string `json:"member_ids"`
}

// ProjectResponse 项目列表项
type ProjectResponse struct {
	model.Project
	Members  []model.User   `json:"members"`
	Progress stats.Progress `json:"progress"`
}

// ProjectDetailResponse 项目详情
type ProjectDetailResponse struct {
	ProjectResponse
	Tasks []model.Task `json:"tasks"` // 未完成在前, 再按截止日期
}

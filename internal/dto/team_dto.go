package dto

import (
	"taskboard/internal/core/stats"
	"taskboard/internal/model"
)

// CreateTeamRequest 创建团队请求
type CreateTeamRequest struct {
	Name        string   `json:"name" binding:"required,max=100"`
	Description string   `json:"description" binding:"max=2000"`
	MemberIDs   []string `json:"member_ids"`
}

// UpdateTeamRequest 更新团队请求, 名称、描述、成员整体替换
type UpdateTeamRequest struct {
	ID string `json:"id" binding:"required"`
	CreateTeamRequest
}

// TeamResponse 团队列表项
type TeamResponse struct {
	model.Team
	Members  []model.User   `json:"members"`
	Progress stats.Progress `json:"progress"`
}

// TeamDetailResponse 团队详情
type TeamDetailResponse struct {
	TeamResponse
	Tasks []model.Task `json:"tasks"`
}

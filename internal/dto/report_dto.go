package dto

import (
	"taskboard/internal/core/stats"
	"taskboard/internal/model"
)

// DashboardResponse 仪表盘
type DashboardResponse struct {
	Summary   stats.Summary       `json:"summary"`
	Histogram []stats.StatusCount `json:"histogram"`
}

// ProductivityResponse 单个协作者的效率统计
type ProductivityResponse struct {
	stats.Productivity
	User model.User `json:"user"`
}

// NotificationListResponse 通知列表
type NotificationListResponse struct {
	Items  []model.Notification `json:"items"`
	Unread int                  `json:"unread"`
}

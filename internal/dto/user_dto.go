package dto

import "taskboard/internal/model"

// CreateUserRequest 添加协作者请求
type CreateUserRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	Role      string `json:"role" binding:"max=100"`
	Email     string `json:"email" binding:"required,email"`
	AvatarURL string `json:"avatar_url" binding:"omitempty,url"`
}

// CreateUserResponse 添加协作者结果; 第一个用户创建后自动登录
type CreateUserResponse struct {
	User        model.User `json:"user"`
	FirstUser   bool       `json:"first_user"`
	AccessToken string     `json:"access_token,omitempty"`
}

// UpdateUserRequest 更新用户资料(整体替换)
type UpdateUserRequest struct {
	ID                   string                     `json:"id" binding:"required"`
	Name                 string                     `json:"name" binding:"required,max=100"`
	Role                 string                     `json:"role" binding:"max=100"`
	Email                string                     `json:"email" binding:"required,email"`
	AvatarURL            string                     `json:"avatar_url" binding:"omitempty,url"`
	NotificationSettings model.NotificationSettings `json:"notification_settings"`
}

// DeleteUsersRequest 批量删除用户请求
type DeleteUsersRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,required"`
}

// UserResponse 协作者列表项
type UserResponse struct {
	model.User
	TaskCount int `json:"task_count"`
}

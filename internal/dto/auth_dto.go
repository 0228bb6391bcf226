package dto

import "taskboard/internal/model"

// SignInRequest 登录请求, 不指定用户时登录第一个用户
type SignInRequest struct {
	UserID string `json:"user_id"`
}

// SignInResponse 登录响应
type SignInResponse struct {
	AccessToken string     `json:"access_token"`
	ExpiresIn   int        `json:"expires_in"`
	User        model.User `json:"user"`
}

// UpdateProfileRequest 修改当前用户资料
type UpdateProfileRequest struct {
	Name                 string                     `json:"name" binding:"required,max=100"`
	Role                 string                     `json:"role" binding:"max=100"`
	Email                string                     `json:"email" binding:"required,email"`
	AvatarURL            string                     `json:"avatar_url" binding:"omitempty,url"`
	NotificationSettings model.NotificationSettings `json:"notification_settings"`
}

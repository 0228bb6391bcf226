package model

// NotificationSettings 用户通知偏好
type NotificationSettings struct {
	Email           bool `json:"email" yaml:"email"`
	ProjectUpdates  bool `json:"project_updates" yaml:"project_updates"`
	TaskAssignments bool `json:"task_assignments" yaml:"task_assignments"`
}

// DefaultNotificationSettings 新用户默认全部开启
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		Email:           true,
		ProjectUpdates:  true,
		TaskAssignments: true,
	}
}

// User 协作者
type User struct {
	ID                   string               `json:"id" yaml:"id"`
	Name                 string               `json:"name" yaml:"name"`
	Role                 string               `json:"role" yaml:"role"` // 职位描述，自由文本
	Email                string               `json:"email" yaml:"email"`
	AvatarURL            string               `json:"avatar_url" yaml:"avatar_url"`
	NotificationSettings NotificationSettings `json:"notification_settings" yaml:"notification_settings"`
}

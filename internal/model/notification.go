package model

// Notification 站内通知
type Notification struct {
	ID      string `json:"id" yaml:"id"`
	Message string `json:"message" yaml:"message"`
	Read    bool   `json:"read" yaml:"read"`
}

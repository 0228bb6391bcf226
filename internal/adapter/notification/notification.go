package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"taskboard/internal/model"
)

// NotificationType 通知类型
type NotificationType string

const (
	NotifyTaskOverdue   NotificationType = "task_overdue"   // 任务逾期
	NotifyTaskAssigned  NotificationType = "task_assigned"  // 任务指派
	NotifyTaskCompleted NotificationType = "task_completed" // 任务完成
)

// NotificationMessage 通知消息
type NotificationMessage struct {
	Type      NotificationType       `json:"type"`
	Title     string                 `json:"title"`
	Content   string                 `json:"content"`
	Timestamp time.Time              `json:"timestamp"`
	Extra     map[string]interface{} `json:"extra,omitempty"` // 额外信息
}

// Notifier 站外通知(群机器人等)，站内通知由 NotificationRepository 保存
type Notifier interface {
	// Send 发送通知
	Send(ctx context.Context, msg *NotificationMessage) error

	// SendTaskNotification 发送任务相关通知
	SendTaskNotification(ctx context.Context, task model.Task, notifyType NotificationType, message string) error
}

// NewTaskMessage 构建任务通知
func NewTaskMessage(task model.Task, notifyType NotificationType, message string) *NotificationMessage {
	var title, color string

	switch notifyType {
	case NotifyTaskOverdue:
		title = "⏰ 任务已逾期"
		color = "red"
	case NotifyTaskAssigned:
		title = "📌 新的任务指派"
		color = "blue"
	case NotifyTaskCompleted:
		title = "✅ 任务已完成"
		color = "green"
	default:
		title = "📢 任务通知"
		color = "grey"
	}

	content := fmt.Sprintf("**任务**: %s\n**截止日期**: %s\n**优先级**: %s\n**消息**: %s",
		task.Title, task.Deadline.String(), task.Priority, message)

	extra := map[string]interface{}{
		"task_id":    task.ID,
		"project_id": task.ProjectID,
		"color":      color,
	}
	if task.AssigneeID != nil {
		extra["assignee_id"] = *task.AssigneeID
	}

	return &NotificationMessage{
		Type:      notifyType,
		Title:     title,
		Content:   content,
		Timestamp: time.Now(),
		Extra:     extra,
	}
}

// ============= Lark 通知适配器 =============

// LarkNotifier Lark通知器
type LarkNotifier struct {
	webhookURL string
	enabled    bool
	logger     *zap.Logger
	client     *http.Client
}

// NewLarkNotifier 创建Lark通知器
func NewLarkNotifier(webhookURL string, enabled bool, logger *zap.Logger) *LarkNotifier {
	return &LarkNotifier{
		webhookURL: webhookURL,
		enabled:    enabled,
		logger:     logger,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Send 发送通知
func (n *LarkNotifier) Send(ctx context.Context, msg *NotificationMessage) error {
	if !n.enabled {
		n.logger.Debug("通知已禁用,跳过发送")
		return nil
	}

	if n.webhookURL == "" {
		n.logger.Warn("Lark Webhook URL未配置")
		return nil
	}

	jsonData, err := json.Marshal(buildLarkMessage(msg))
	if err != nil {
		return fmt.Errorf("序列化消息失败: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("创建请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("发送请求失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Lark API返回错误状态码: %d", resp.StatusCode)
	}

	n.logger.Info("Lark通知发送成功",
		zap.String("type", string(msg.Type)),
		zap.String("title", msg.Title))

	return nil
}

// SendTaskNotification 发送任务通知
func (n *LarkNotifier) SendTaskNotification(ctx context.Context, task model.Task, notifyType NotificationType, message string) error {
	return n.Send(ctx, NewTaskMessage(task, notifyType, message))
}

// buildLarkMessage 构建Lark卡片消息
func buildLarkMessage(msg *NotificationMessage) map[string]interface{} {
	color := "grey"
	if c, ok := msg.Extra["color"].(string); ok {
		color = c
	}

	return map[string]interface{}{
		"msg_type": "interactive",
		"card": map[string]interface{}{
			"header": map[string]interface{}{
				"title": map[string]interface{}{
					"tag":     "plain_text",
					"content": msg.Title,
				},
				"template": color,
			},
			"elements": []interface{}{
				map[string]interface{}{
					"tag": "div",
					"text": map[string]interface{}{
						"tag":     "lark_md",
						"content": msg.Content,
					},
				},
				map[string]interface{}{
					"tag": "div",
					"text": map[string]interface{}{
						"tag":     "plain_text",
						"content": fmt.Sprintf("时间: %s", msg.Timestamp.Format("2006-01-02 15:04:05")),
					},
				},
			},
		},
	}
}

// ============= 多通知器 =============

// MultiNotifier 同时发送到多个渠道，单个渠道失败不影响其他渠道
type MultiNotifier struct {
	notifiers []Notifier
	logger    *zap.Logger
}

// NewMultiNotifier 创建多通知器
func NewMultiNotifier(logger *zap.Logger, notifiers ...Notifier) *MultiNotifier {
	return &MultiNotifier{
		notifiers: notifiers,
		logger:    logger,
	}
}

// Send 发送到所有通知器
func (m *MultiNotifier) Send(ctx context.Context, msg *NotificationMessage) error {
	var lastErr error
	for _, notifier := range m.notifiers {
		if err := notifier.Send(ctx, msg); err != nil {
			m.logger.Error("发送通知失败", zap.Error(err))
			lastErr = err
		}
	}
	return lastErr
}

// SendTaskNotification 发送任务通知到所有通知器
func (m *MultiNotifier) SendTaskNotification(ctx context.Context, task model.Task, notifyType NotificationType, message string) error {
	return m.Send(ctx, NewTaskMessage(task, notifyType, message))
}

// ============= 日志通知器(仅记录日志,不发送实际通知) =============

// LogNotifier 日志通知器
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier 创建日志通知器
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{
		logger: logger,
	}
}

// Send 记录通知到日志
func (n *LogNotifier) Send(_ context.Context, msg *NotificationMessage) error {
	n.logger.Info("📢 通知",
		zap.String("type", string(msg.Type)),
		zap.String("title", msg.Title),
		zap.String("content", msg.Content),
		zap.Any("extra", msg.Extra))
	return nil
}

// SendTaskNotification 记录任务通知到日志
func (n *LogNotifier) SendTaskNotification(ctx context.Context, task model.Task, notifyType NotificationType, message string) error {
	return n.Send(ctx, NewTaskMessage(task, notifyType, message))
}

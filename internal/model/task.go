package model

// TaskStatus 任务状态，任意状态之间都可以流转
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

// StatusOrder 看板列的固定顺序
var StatusOrder = []TaskStatus{
	TaskStatusTodo,
	TaskStatusInProgress,
	TaskStatusDone,
}

// Valid 是否为合法状态
func (s TaskStatus) Valid() bool {
	for _, st := range StatusOrder {
		if st == s {
			return true
		}
	}
	return false
}

// TaskPriority 任务优先级
type TaskPriority string

const (
	TaskPriorityHigh   TaskPriority = "HIGH"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityLow    TaskPriority = "LOW"
)

// 优先级排序权重，数值越小越靠前
var priorityRank = map[TaskPriority]int{
	TaskPriorityHigh:   1,
	TaskPriorityMedium: 2,
	TaskPriorityLow:    3,
}

// Rank 排序权重，未知优先级排在最后
func (p TaskPriority) Rank() int {
	if rank, ok := priorityRank[p]; ok {
		return rank
	}
	return len(priorityRank) + 1
}

// Valid 是否为合法优先级
func (p TaskPriority) Valid() bool {
	_, ok := priorityRank[p]
	return ok
}

// Task 任务
type Task struct {
	ID            string       `json:"id" yaml:"id"`
	Title         string       `json:"title" yaml:"title"`
	Description   string       `json:"description" yaml:"description"`
	AssigneeID    *string      `json:"assignee_id" yaml:"assignee_id"` // nil 表示未指派
	Deadline      Date         `json:"deadline" yaml:"deadline" swaggertype:"string" format:"date" example:"2024-03-15"`
	Status        TaskStatus   `json:"status" yaml:"status"`
	Priority      TaskPriority `json:"priority" yaml:"priority"`
	TimeLogged    float64      `json:"time_logged" yaml:"time_logged"`       // 小时
	EstimatedTime float64      `json:"estimated_time" yaml:"estimated_time"` // 小时
	ProjectID     string       `json:"project_id" yaml:"project_id"`
}

// Clone 深拷贝
func (t Task) Clone() Task {
	if t.AssigneeID != nil {
		id := *t.AssigneeID
		t.AssigneeID = &id
	}
	return t
}

// IsAssignedTo 是否指派给指定用户
func (t Task) IsAssignedTo(userID string) bool {
	return t.AssigneeID != nil && *t.AssigneeID == userID
}

// IsDone 是否已完成
func (t Task) IsDone() bool {
	return t.Status == TaskStatusDone
}

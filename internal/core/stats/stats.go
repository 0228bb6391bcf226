// Package stats 项目、团队、成员维度的只读统计
package stats

import (
	"time"

	"github.com/samber/lo"

	"taskboard/internal/model"
)

// Progress 完成进度
type Progress struct {
	Completed   int     `json:"completed"`
	Total       int     `json:"total"`
	ProgressPct float64 `json:"progress_pct"`
}

// Productivity 成员工时统计
type Productivity struct {
	UserID        string  `json:"user_id"`
	Completed     int     `json:"completed"`
	Total         int     `json:"total"`
	TimeLogged    float64 `json:"time_logged"`
	EstimatedTime float64 `json:"estimated_time"`
	// 预估工时为0时无意义，返回nil
	ProductivityRatioPct *float64 `json:"productivity_ratio_pct"`
	OverEstimate         bool     `json:"over_estimate"`
}

// Summary 全局任务计数
type Summary struct {
	TotalTasks      int `json:"total_tasks"`
	TodoCount       int `json:"todo_count"`
	InProgressCount int `json:"in_progress_count"`
	DoneCount       int `json:"done_count"`
	OverdueCount    int `json:"overdue_count"`
}

// StatusCount 状态直方图的一项
type StatusCount struct {
	Status model.TaskStatus `json:"status"`
	Count  int              `json:"count"`
}

// ProjectProgress 项目进度
func ProjectProgress(projectID string, tasks []model.Task) Progress {
	return progressOf(lo.Filter(tasks, func(t model.Task, _ int) bool {
		return t.ProjectID == projectID
	}))
}

// TeamProgress 团队进度，任务通过指派人是否为团队成员间接归属
func TeamProgress(team model.Team, tasks []model.Task) Progress {
	return progressOf(TeamTasks(team, tasks))
}

// TeamTasks 指派给团队成员的任务
func TeamTasks(team model.Team, tasks []model.Task) []model.Task {
	return lo.Filter(tasks, func(t model.Task, _ int) bool {
		return t.AssigneeID != nil && lo.Contains(team.MemberIDs, *t.AssigneeID)
	})
}

// UserProductivity 成员工时与完成情况
func UserProductivity(userID string, tasks []model.Task) Productivity {
	owned := lo.Filter(tasks, func(t model.Task, _ int) bool {
		return t.IsAssignedTo(userID)
	})

	p := Productivity{
		UserID:        userID,
		Completed:     lo.CountBy(owned, model.Task.IsDone),
		Total:         len(owned),
		TimeLogged:    lo.SumBy(owned, func(t model.Task) float64 { return t.TimeLogged }),
		EstimatedTime: lo.SumBy(owned, func(t model.Task) float64 { return t.EstimatedTime }),
	}
	if p.EstimatedTime > 0 {
		ratio := p.TimeLogged / p.EstimatedTime * 100
		p.ProductivityRatioPct = &ratio
		p.OverEstimate = ratio > 100
	}
	return p
}

// IsOverdue 截止日期已过且未完成
func IsOverdue(t model.Task, now time.Time) bool {
	return !t.Deadline.IsZero() && t.Deadline.Before(now) && !t.IsDone()
}

// Summarize 全局计数，now 由调用方在计算时传入
func Summarize(tasks []model.Task, now time.Time) Summary {
	return Summary{
		TotalTasks:      len(tasks),
		TodoCount:       countStatus(tasks, model.TaskStatusTodo),
		InProgressCount: countStatus(tasks, model.TaskStatusInProgress),
		DoneCount:       countStatus(tasks, model.TaskStatusDone),
		OverdueCount: lo.CountBy(tasks, func(t model.Task) bool {
			return IsOverdue(t, now)
		}),
	}
}

// StatusHistogram 固定顺序的状态分布
func StatusHistogram(tasks []model.Task) []StatusCount {
	return lo.Map(model.StatusOrder, func(status model.TaskStatus, _ int) StatusCount {
		return StatusCount{Status: status, Count: countStatus(tasks, status)}
	})
}

func progressOf(tasks []model.Task) Progress {
	p := Progress{
		Completed: lo.CountBy(tasks, model.Task.IsDone),
		Total:     len(tasks),
	}
	if p.Total > 0 {
		p.ProgressPct = float64(p.Completed) / float64(p.Total) * 100
	}
	return p
}

func countStatus(tasks []model.Task, status model.TaskStatus) int {
	return lo.CountBy(tasks, func(t model.Task) bool {
		return t.Status == status
	})
}

// Package calendar 按月把任务放入日历格子
package calendar

import (
	"time"

	"github.com/samber/lo"

	"taskboard/internal/model"
)

// GridSize 6周 x 7天
const GridSize = 42

// Cell 日历中的一天
type Cell struct {
	Date           model.Date   `json:"date" swaggertype:"string" format:"date"`
	InCurrentMonth bool         `json:"in_current_month"`
	IsToday        bool         `json:"is_today"`
	Tasks          []model.Task `json:"tasks"`
}

// Month 一个月的日历网格，周一为每周第一天
type Month struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Cells []Cell     `json:"cells"`
}

// BucketTasksByMonth 生成42格网格，每格的任务保持原集合顺序
func BucketTasksByMonth(tasks []model.Task, year int, month time.Month, today model.Date) Month {
	first := model.NewDate(year, month, 1)
	// 周一=0 ... 周日=6
	offset := (int(first.Weekday()) + 6) % 7
	start := first.AddDays(-offset)

	byDay := lo.GroupBy(
		lo.Filter(tasks, func(t model.Task, _ int) bool { return !t.Deadline.IsZero() }),
		func(t model.Task) string { return t.Deadline.String() },
	)

	cells := make([]Cell, GridSize)
	for i := range cells {
		day := start.AddDays(i)
		dayTasks := byDay[day.String()]
		if dayTasks == nil {
			dayTasks = []model.Task{}
		}
		cells[i] = Cell{
			Date:           day,
			InCurrentMonth: day.Month() == first.Month() && day.Year() == first.Year(),
			IsToday:        day.Equal(today),
			Tasks:          dayTasks,
		}
	}

	return Month{Year: first.Year(), Month: first.Month(), Cells: cells}
}

// Package taskview 任务列表的过滤、排序与看板分组，均为纯函数，不修改入参
package taskview

import (
	"slices"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"taskboard/internal/model"
	"taskboard/pkg/constants"
)

// Criteria 过滤与排序条件
type Criteria struct {
	SearchTerm     string
	AssigneeFilter string // "all" 或用户ID
	ProjectFilter  string // "all" 或项目ID
	SortBy         string // deadline / priority / title
}

// Column 看板列
type Column struct {
	Status model.TaskStatus `json:"status"`
	Tasks  []model.Task     `json:"tasks"`
	Count  int              `json:"count"`
}

// Engine 负责派生任务视图，持有标题排序使用的语言
type Engine struct {
	tag language.Tag
}

// NewEngine 创建视图引擎，locale 无法解析时回退到法语
func NewEngine(locale string) *Engine {
	tag, err := language.Parse(locale)
	if err != nil || locale == "" {
		tag = language.French
	}
	return &Engine{tag: tag}
}

// Derive 先过滤再排序，返回新的切片
func (e *Engine) Derive(tasks []model.Task, c Criteria) []model.Task {
	result := Filter(tasks, c)
	e.Sort(result, c.SortBy)
	return result
}

// Filter 按关键字、指派人、项目过滤
func Filter(tasks []model.Task, c Criteria) []model.Task {
	term := strings.ToLower(c.SearchTerm)

	return lo.Filter(tasks, func(t model.Task, _ int) bool {
		if term != "" &&
			!strings.Contains(strings.ToLower(t.Title), term) &&
			!strings.Contains(strings.ToLower(t.Description), term) {
			return false
		}
		if !isAll(c.AssigneeFilter) && !t.IsAssignedTo(c.AssigneeFilter) {
			return false
		}
		if !isAll(c.ProjectFilter) && t.ProjectID != c.ProjectFilter {
			return false
		}
		return true
	})
}

// Sort 原地稳定排序，未知排序字段按截止日期处理
func (e *Engine) Sort(tasks []model.Task, sortBy string) {
	switch sortBy {
	case constants.SortByPriority:
		slices.SortStableFunc(tasks, func(a, b model.Task) int {
			return a.Priority.Rank() - b.Priority.Rank()
		})
	case constants.SortByTitle:
		// Collator 非并发安全，每次排序单独创建
		collator := collate.New(e.tag)
		slices.SortStableFunc(tasks, func(a, b model.Task) int {
			return collator.CompareString(a.Title, b.Title)
		})
	default:
		slices.SortStableFunc(tasks, compareDeadline)
	}
}

// GroupByStatus 按固定列顺序 TODO / IN_PROGRESS / DONE 分组，保持组内顺序
func GroupByStatus(tasks []model.Task) []Column {
	groups := lo.GroupBy(tasks, func(t model.Task) model.TaskStatus {
		return t.Status
	})

	return lo.Map(model.StatusOrder, func(status model.TaskStatus, _ int) Column {
		items := groups[status]
		if items == nil {
			items = []model.Task{}
		}
		return Column{Status: status, Tasks: items, Count: len(items)}
	})
}

// SortForDetail 项目/团队详情页的排序：未完成在前，再按截止日期
func SortForDetail(tasks []model.Task) []model.Task {
	result := slices.Clone(tasks)
	slices.SortStableFunc(result, func(a, b model.Task) int {
		if a.IsDone() != b.IsDone() {
			if a.IsDone() {
				return 1
			}
			return -1
		}
		return compareDeadline(a, b)
	})
	return result
}

func compareDeadline(a, b model.Task) int {
	return a.Deadline.Compare(b.Deadline.Time)
}

func isAll(filter string) bool {
	return filter == "" || filter == constants.FilterAll
}

package taskview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/model"
)

func strPtr(s string) *string { return &s }

func fixture() []model.Task {
	return []model.Task{
		{ID: "t1", Title: "écrire la doc", Description: "Guide utilisateur", AssigneeID: strPtr("u1"), ProjectID: "p1",
			Deadline: model.NewDate(2024, 3, 20), Priority: model.TaskPriorityLow, Status: model.TaskStatusTodo},
		{ID: "t2", Title: "Déployer", Description: "prod", AssigneeID: strPtr("u2"), ProjectID: "p1",
			Deadline: model.NewDate(2024, 3, 5), Priority: model.TaskPriorityHigh, Status: model.TaskStatusDone},
		{ID: "t3", Title: "Zoom call", Description: "", ProjectID: "p2",
			Deadline: model.NewDate(2024, 3, 5), Priority: model.TaskPriorityMedium, Status: model.TaskStatusInProgress},
		{ID: "t4", Title: "audit", Description: "Revue du DEPLOIEMENT", AssigneeID: strPtr("u1"), ProjectID: "p2",
			Deadline: model.NewDate(2024, 2, 28), Priority: model.TaskPriorityHigh, Status: model.TaskStatusTodo},
	}
}

func ids(tasks []model.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestDerive_AssigneeFilter(t *testing.T) {
	engine := NewEngine("fr")
	got := engine.Derive(fixture(), Criteria{AssigneeFilter: "u1"})

	require.NotEmpty(t, got)
	for _, task := range got {
		require.NotNil(t, task.AssigneeID)
		assert.Equal(t, "u1", *task.AssigneeID)
	}
}

func TestDerive_AllFiltersNothing(t *testing.T) {
	engine := NewEngine("fr")
	got := engine.Derive(fixture(), Criteria{AssigneeFilter: "all", ProjectFilter: "all"})
	assert.Len(t, got, 4)
}

func TestDerive_ProjectFilter(t *testing.T) {
	got := NewEngine("fr").Derive(fixture(), Criteria{ProjectFilter: "p2"})
	assert.ElementsMatch(t, []string{"t3", "t4"}, ids(got))
}

func TestDerive_SearchIsCaseInsensitiveOnTitleOrDescription(t *testing.T) {
	got := NewEngine("fr").Derive(fixture(), Criteria{SearchTerm: "DÉPLOY"})
	assert.Equal(t, []string{"t2"}, ids(got))

	got = NewEngine("fr").Derive(fixture(), Criteria{SearchTerm: "deploiement"})
	assert.Equal(t, []string{"t4"}, ids(got))
}

func TestDerive_SearchKeepsWhitespace(t *testing.T) {
	got := NewEngine("fr").Derive(fixture(), Criteria{SearchTerm: " "})
	assert.ElementsMatch(t, []string{"t1", "t3", "t4"}, ids(got))
}

func TestDerive_SortByDeadlineIsNonDecreasingAndStable(t *testing.T) {
	got := NewEngine("fr").Derive(fixture(), Criteria{SortBy: "deadline"})

	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].Deadline.Before(got[i-1].Deadline.Time))
	}
	assert.Equal(t, []string{"t4", "t2", "t3", "t1"}, ids(got))
}

func TestDerive_SortByPriority(t *testing.T) {
	got := NewEngine("fr").Derive(fixture(), Criteria{SortBy: "priority"})
	assert.Equal(t, []string{"t2", "t4", "t3", "t1"}, ids(got))
}

func TestDerive_SortByTitleIsLocaleAware(t *testing.T) {
	got := NewEngine("fr").Derive(fixture(), Criteria{SortBy: "title"})
	// 本地化排序下 "écrire" 排在 "Déployer" 之后、"Zoom" 之前
	assert.Equal(t, []string{"t4", "t2", "t1", "t3"}, ids(got))
}

func TestDerive_DoesNotMutateInput(t *testing.T) {
	input := fixture()
	_ = NewEngine("fr").Derive(input, Criteria{SortBy: "priority"})
	assert.Equal(t, fixture(), input)
}

func TestGroupByStatus(t *testing.T) {
	engine := NewEngine("fr")
	columns := GroupByStatus(engine.Derive(fixture(), Criteria{SortBy: "deadline"}))

	require.Len(t, columns, 3)
	assert.Equal(t, model.TaskStatusTodo, columns[0].Status)
	assert.Equal(t, []string{"t4", "t1"}, ids(columns[0].Tasks))
	assert.Equal(t, model.TaskStatusInProgress, columns[1].Status)
	assert.Equal(t, []string{"t3"}, ids(columns[1].Tasks))
	assert.Equal(t, model.TaskStatusDone, columns[2].Status)
	assert.Equal(t, 1, columns[2].Count)
}

func TestGroupByStatus_EmptyColumnsAreNotNil(t *testing.T) {
	columns := GroupByStatus(nil)
	for _, col := range columns {
		assert.NotNil(t, col.Tasks)
		assert.Zero(t, col.Count)
	}
}

func TestSortForDetail(t *testing.T) {
	got := SortForDetail(fixture())
	assert.Equal(t, []string{"t4", "t3", "t1", "t2"}, ids(got))
}

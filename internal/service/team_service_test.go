package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/dto"
	pkgErrors "taskboard/pkg/errors"
)

func TestTeamService_Detail(t *testing.T) {
	env := newTestEnv(t, sampleSnapshot())

	detail, err := env.teamSvc.GetDetail("team1")
	require.NoError(t, err)
	assert.Len(t, detail.Members, 2)
	// u2: t2(IN_PROGRESS), t3(TODO); u3 无任务
	assert.Equal(t, 2, detail.Progress.Total)
	assert.Zero(t, detail.Progress.Completed)
	require.Len(t, detail.Tasks, 2)
	assert.Equal(t, "t3", detail.Tasks[0].ID)

	_, err = env.teamSvc.GetDetail("ghost")
	assert.Equal(t, pkgErrors.ErrTeamNotFound, err)
}

func TestTeamService_CreateUpdate(t *testing.T) {
	env := newTestEnv(t, sampleSnapshot())

	team, err := env.teamSvc.Create(&dto.CreateTeamRequest{Name: "Backend", MemberIDs: []string{"u1", "u1", ""}})
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, team.MemberIDs)
	assert.Equal(t, 1, team.Progress.Completed)

	_, err = env.teamSvc.Create(&dto.CreateTeamRequest{Name: "Ghosts", MemberIDs: []string{"ghost"}})
	assert.Equal(t, pkgErrors.CodeBadRequest, pkgErrors.GetCode(err))

	updated, err := env.teamSvc.Update(&dto.UpdateTeamRequest{
		ID:                team.ID,
		CreateTeamRequest: dto.CreateTeamRequest{Name: "Backend API", MemberIDs: []string{"u2"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Backend API", updated.Name)
	assert.Equal(t, 2, updated.Progress.Total)
	assert.Len(t, env.teamSvc.List(), 2)
}

func TestTeamService_StagedDeleteKeepsTasks(t *testing.T) {
	env := newTestEnv(t, sampleSnapshot())

	c, err := env.teamSvc.StageDelete("team1")
	require.NoError(t, err)
	_, err = env.confirmSvc.Confirm(c.ID)
	require.NoError(t, err)

	assert.Empty(t, env.teams.List())
	assert.Len(t, env.tasks.List(), 4)
}

func TestProjectService(t *testing.T) {
	env := newTestEnv(t, sampleSnapshot())

	detail, err := env.projectSvc.GetDetail("p1")
	require.NoError(t, err)
	assert.Equal(t, 50.0, detail.Progress.ProgressPct)
	require.Len(t, detail.Tasks, 2)
	assert.Equal(t, "t2", detail.Tasks[0].ID, "open tasks first")

	created, err := env.projectSvc.Create(&dto.CreateProjectRequest{Name: "Interne"})
	require.NoError(t, err)
	assert.NotNil(t, created.MemberIDs)
	assert.Zero(t, created.Progress.ProgressPct)

	list := env.projectSvc.List()
	require.Len(t, list, 3)
	assert.Equal(t, created.ID, list[0].ID)

	_, err = env.projectSvc.GetDetail("ghost")
	assert.Equal(t, pkgErrors.ErrProjectNotFound, err)
}

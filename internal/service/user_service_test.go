package service

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/dto"
	"taskboard/internal/model"
	"taskboard/internal/pkg/jwt"
	"taskboard/internal/repository"
	pkgErrors "taskboard/pkg/errors"
)

func TestUserService_FirstUserSignsIn(t *testing.T) {
	env := newTestEnv(t, repository.Snapshot{})

	resp, err := env.userSvc.Create(&dto.CreateUserRequest{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)
	assert.True(t, resp.FirstUser)
	assert.Equal(t, model.DefaultNotificationSettings(), resp.User.NotificationSettings)
	assert.Equal(t, "https://example.com/default.svg", resp.User.AvatarURL)

	claims, err := jwt.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)

	second, err := env.userSvc.Create(&dto.CreateUserRequest{Name: "Bruno", Email: "bruno@example.com"})
	require.NoError(t, err)
	assert.False(t, second.FirstUser)
	assert.Empty(t, second.AccessToken)

	assert.Equal(t, second.User.ID, env.users.List()[0].ID, "new user is prepended")
}

func TestUserService_ListWithTaskCount(t *testing.T) {
	env := newTestEnv(t, sampleSnapshot())

	counts := lo.SliceToMap(env.userSvc.List(), func(u dto.UserResponse) (string, int) {
		return u.ID, u.TaskCount
	})
	assert.Equal(t, map[string]int{"u1": 1, "u2": 2, "u3": 0}, counts)
}

func TestUserService_Update(t *testing.T) {
	env := newTestEnv(t, sampleSnapshot())

	user, err := env.userSvc.Update(&dto.UpdateUserRequest{ID: "u3", Name: "Chloé M.", Email: "c@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Chloé M.", user.Name)

	_, err = env.userSvc.Update(&dto.UpdateUserRequest{ID: "nope", Name: "x", Email: "x@example.com"})
	assert.Equal(t, pkgErrors.ErrUserNotFound, err)
}

func TestUserService_StagedCascadeDelete(t *testing.T) {
	env := newTestEnv(t, sampleSnapshot())

	c, err := env.userSvc.StageDelete(&dto.DeleteUsersRequest{IDs: []string{"u2", "u2", "ghost"}})
	require.NoError(t, err)
	assert.Contains(t, c.Message, "2")
	assert.Len(t, env.users.List(), 3)

	result, err := env.confirmSvc.Confirm(c.ID)
	require.NoError(t, err)
	cascade := result.(*dto.DeleteUsersResponse)
	assert.Equal(t, 1, cascade.UsersRemoved)
	assert.Equal(t, 2, cascade.TasksUnassigned)

	snap := env.store.Snapshot()
	assert.Len(t, snap.Users, 2)
	for _, task := range snap.Tasks {
		assert.False(t, task.IsAssignedTo("u2"))
	}
	assert.Equal(t, []string{"u1"}, snap.Projects[0].MemberIDs)
	assert.Equal(t, []string{"u3"}, snap.Teams[0].MemberIDs)
}

func TestAuthService_SignIn(t *testing.T) {
	env := newTestEnv(t, repository.Snapshot{})

	_, err := env.authSvc.SignIn(&dto.SignInRequest{})
	assert.Equal(t, pkgErrors.ErrNoUsers, err)

	env.store.Load(sampleSnapshot())
	resp, err := env.authSvc.SignIn(&dto.SignInRequest{})
	require.NoError(t, err)
	assert.Equal(t, "u1", resp.User.ID)
	assert.Equal(t, 3600, resp.ExpiresIn)

	resp, err = env.authSvc.SignIn(&dto.SignInRequest{UserID: "u3"})
	require.NoError(t, err)
	assert.Equal(t, "u3", resp.User.ID)

	_, err = env.authSvc.SignIn(&dto.SignInRequest{UserID: "ghost"})
	assert.Equal(t, pkgErrors.ErrUserNotFound, err)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	env := newTestEnv(t, sampleSnapshot())

	settings := model.NotificationSettings{Email: false, ProjectUpdates: true, TaskAssignments: false}
	user, err := env.authSvc.UpdateProfile("u1", &dto.UpdateProfileRequest{
		Name: "Alice D.", Role: "PM", Email: "alice@example.com", NotificationSettings: settings,
	})
	require.NoError(t, err)
	assert.Equal(t, settings, user.NotificationSettings)

	me, err := env.authSvc.Me("u1")
	require.NoError(t, err)
	assert.Equal(t, "PM", me.Role)
}

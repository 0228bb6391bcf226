package service

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"taskboard/internal/adapter/notification"
	"taskboard/internal/confirm"
	"taskboard/internal/core/taskview"
	"taskboard/internal/model"
	"taskboard/internal/pkg/config"
	"taskboard/internal/repository"
)

func TestMain(m *testing.M) {
	config.GlobalConfig = &config.Config{
		Auth: config.AuthConfig{JWT: config.JWTConfig{Secret: "test-secret", AccessTokenExpire: 3600}},
	}
	os.Exit(m.Run())
}

type testEnv struct {
	store    *repository.Store
	tasks    repository.TaskRepository
	projects repository.ProjectRepository
	teams    repository.TeamRepository
	users    repository.UserRepository
	notifs   repository.NotificationRepository
	stager   *confirm.Stager
	pushed   *recordingNotifier

	taskSvc         TaskService
	projectSvc      ProjectService
	teamSvc         TeamService
	userSvc         UserService
	authSvc         AuthService
	reportSvc       ReportService
	notificationSvc NotificationService
	confirmSvc      ConfirmationService
}

// recordingNotifier 按 "类型:任务ID" 记录推送
type recordingNotifier struct {
	mu   sync.Mutex
	sent []string
}

func (r *recordingNotifier) Send(context.Context, *notification.NotificationMessage) error {
	return nil
}

func (r *recordingNotifier) SendTaskNotification(_ context.Context, task model.Task, notifyType notification.NotificationType, _ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, string(notifyType)+":"+task.ID)
	return nil
}

func strPtr(s string) *string { return &s }

func newTestEnv(t *testing.T, snap repository.Snapshot) *testEnv {
	t.Helper()

	store := repository.NewStore()
	store.Load(snap)

	env := &testEnv{
		store:    store,
		tasks:    repository.NewTaskRepository(store),
		projects: repository.NewProjectRepository(store),
		teams:    repository.NewTeamRepository(store),
		users:    repository.NewUserRepository(store),
		notifs:   repository.NewNotificationRepository(store),
		stager:   confirm.NewStager(time.Minute),
		pushed:   &recordingNotifier{},
	}

	env.authSvc = NewAuthService(&config.GlobalConfig.Auth, env.users)
	env.taskSvc = NewTaskService(env.tasks, env.projects, env.users, taskview.NewEngine("fr"), env.stager, env.pushed, "")
	env.projectSvc = NewProjectService(env.projects, env.tasks, env.users)
	env.teamSvc = NewTeamService(env.teams, env.tasks, env.users, env.stager)
	env.userSvc = NewUserService(env.users, env.tasks, env.authSvc, env.stager, []string{"https://example.com/default.svg"})
	env.reportSvc = NewReportService(env.tasks, env.users)
	env.notificationSvc = NewNotificationService(env.notifs, env.tasks, env.pushed)
	env.confirmSvc = NewConfirmationService(env.stager)
	return env
}

// sampleSnapshot 三个用户、两个项目、一个团队、四个任务
func sampleSnapshot() repository.Snapshot {
	return repository.Snapshot{
		Users: []model.User{
			{ID: "u1", Name: "Alice", Email: "alice@example.com"},
			{ID: "u2", Name: "Bruno", Email: "bruno@example.com"},
			{ID: "u3", Name: "Chloé", Email: "chloe@example.com"},
		},
		Projects: []model.Project{
			{ID: "p1", Name: "Site web", MemberIDs: []string{"u1", "u2"}},
			{ID: "p2", Name: "Mobile", MemberIDs: []string{"u3"}},
		},
		Teams: []model.Team{
			{ID: "team1", Name: "Design", MemberIDs: []string{"u2", "u3"}},
		},
		Tasks: []model.Task{
			{ID: "t1", Title: "Maquettes", AssigneeID: strPtr("u1"), Deadline: model.NewDate(2024, 3, 10),
				Status: model.TaskStatusDone, Priority: model.TaskPriorityHigh, TimeLogged: 6, EstimatedTime: 4, ProjectID: "p1"},
			{ID: "t2", Title: "API", AssigneeID: strPtr("u2"), Deadline: model.NewDate(2024, 3, 20),
				Status: model.TaskStatusInProgress, Priority: model.TaskPriorityMedium, TimeLogged: 1, EstimatedTime: 8, ProjectID: "p1"},
			{ID: "t3", Title: "Écran login", AssigneeID: strPtr("u2"), Deadline: model.NewDate(2024, 3, 5),
				Status: model.TaskStatusTodo, Priority: model.TaskPriorityLow, EstimatedTime: 2, ProjectID: "p2"},
			{ID: "t4", Title: "Release", Deadline: model.NewDate(2024, 4, 1),
				Status: model.TaskStatusTodo, Priority: model.TaskPriorityHigh, ProjectID: "p2"},
		},
	}
}

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

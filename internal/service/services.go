package service

import (
	"taskboard/internal/adapter/notification"
	"taskboard/internal/confirm"
	"taskboard/internal/core/taskview"
	"taskboard/internal/pkg/config"
	"taskboard/internal/pkg/logger"
	"taskboard/internal/repository"
)

// Services 所有业务服务，HTTP 层和定时任务共用同一组实例
type Services struct {
	Auth         AuthService
	Task         TaskService
	Project      ProjectService
	Team         TeamService
	User         UserService
	Notification NotificationService
	Report       ReportService
	Confirmation ConfirmationService

	// HasUsers 是否已有协作者，用于放行第一个用户的创建
	HasUsers func() bool
}

// NewServices 基于同一个数据源组装仓储和服务
func NewServices(cfg *config.Config, store *repository.Store, stager *confirm.Stager, avatars []string) *Services {
	taskRepo := repository.NewTaskRepository(store)
	projectRepo := repository.NewProjectRepository(store)
	teamRepo := repository.NewTeamRepository(store)
	userRepo := repository.NewUserRepository(store)
	notificationRepo := repository.NewNotificationRepository(store)

	engine := taskview.NewEngine(cfg.Board.Locale)
	notifier := newNotifier(&cfg.Notify)
	authService := NewAuthService(&cfg.Auth, userRepo)

	return &Services{
		Auth:         authService,
		Task:         NewTaskService(taskRepo, projectRepo, userRepo, engine, stager, notifier, cfg.Board.DefaultSort),
		Project:      NewProjectService(projectRepo, taskRepo, userRepo),
		Team:         NewTeamService(teamRepo, taskRepo, userRepo, stager),
		User:         NewUserService(userRepo, taskRepo, authService, stager, avatars),
		Notification: NewNotificationService(notificationRepo, taskRepo, notifier),
		Report:       NewReportService(taskRepo, userRepo),
		Confirmation: NewConfirmationService(stager),
		HasUsers: func() bool {
			_, err := userRepo.First()
			return err == nil
		},
	}
}

// newNotifier 日志通知始终开启，配置了 Lark 时同时推送到群
func newNotifier(cfg *config.NotifyConfig) notification.Notifier {
	notifiers := []notification.Notifier{notification.NewLogNotifier(logger.Log)}
	if cfg.Lark.Enabled {
		notifiers = append(notifiers, notification.NewLarkNotifier(cfg.Lark.WebhookURL, true, logger.Log))
	}
	return notification.NewMultiNotifier(logger.Log, notifiers...)
}

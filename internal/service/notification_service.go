package service

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"taskboard/internal/adapter/notification"
	"taskboard/internal/core/stats"
	"taskboard/internal/dto"
	"taskboard/internal/model"
	"taskboard/internal/pkg/logger"
	"taskboard/internal/repository"
)

type NotificationService interface {
	List() *dto.NotificationListResponse
	MarkAllRead() int
	// CreateOverdueReminders 为新逾期的任务各生成一条提醒，同一任务不重复提醒
	CreateOverdueReminders() int
}

type notificationService struct {
	repo     repository.NotificationRepository
	taskRepo repository.TaskRepository
	notifier notification.Notifier
	now      func() time.Time

	mu       sync.Mutex
	reminded map[string]struct{}
}

func NewNotificationService(repo repository.NotificationRepository, taskRepo repository.TaskRepository, notifier notification.Notifier) NotificationService {
	return &notificationService{
		repo:     repo,
		taskRepo: taskRepo,
		notifier: notifier,
		now:      time.Now,
		reminded: make(map[string]struct{}),
	}
}

func (s *notificationService) List() *dto.NotificationListResponse {
	return &dto.NotificationListResponse{
		Items:  s.repo.List(),
		Unread: s.repo.UnreadCount(),
	}
}

func (s *notificationService) MarkAllRead() int {
	return s.repo.MarkAllRead()
}

func (s *notificationService) CreateOverdueReminders() int {
	fresh := s.collectOverdue()

	for _, task := range fresh {
		pushTask(s.notifier, task, notification.NotifyTaskOverdue, overdueMessage(task))
	}

	if len(fresh) > 0 {
		logger.Info("已生成逾期提醒", zap.Int("count", len(fresh)))
	}
	return len(fresh)
}

// collectOverdue 写入站内提醒并返回本轮新逾期的任务
func (s *notificationService) collectOverdue() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	overdue := make(map[string]struct{})
	var fresh []model.Task

	for _, task := range s.taskRepo.List() {
		if !stats.IsOverdue(task, now) {
			continue
		}
		overdue[task.ID] = struct{}{}
		if _, ok := s.reminded[task.ID]; ok {
			continue
		}
		s.repo.Create(overdueMessage(task))
		fresh = append(fresh, task)
	}

	// 不再逾期(已完成、改期或删除)的任务，下次逾期时可以再次提醒
	s.reminded = overdue
	return fresh
}

func overdueMessage(task model.Task) string {
	return fmt.Sprintf("任务「%s」已逾期，截止日期 %s", task.Title, task.Deadline.String())
}

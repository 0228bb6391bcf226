package repository

import (
	"github.com/samber/lo"

	"taskboard/internal/model"
	"taskboard/internal/pkg/idgen"
	"taskboard/pkg/constants"
)

type NotificationRepository interface {
	Create(message string) model.Notification
	List() []model.Notification
	UnreadCount() int
	// MarkAllRead 全部标记为已读，返回本次实际变更的条数
	MarkAllRead() int
}

type notificationRepository struct {
	store *Store
}

func NewNotificationRepository(store *Store) NotificationRepository {
	return &notificationRepository{store: store}
}

func (r *notificationRepository) Create(message string) model.Notification {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	n := model.Notification{
		ID:      idgen.New(constants.IDPrefixNotification),
		Message: message,
	}
	r.store.notifications = prepend(r.store.notifications, n)
	return n
}

func (r *notificationRepository) List() []model.Notification {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return append([]model.Notification{}, r.store.notifications...)
}

func (r *notificationRepository) UnreadCount() int {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return lo.CountBy(r.store.notifications, func(n model.Notification) bool {
		return !n.Read
	})
}

func (r *notificationRepository) MarkAllRead() int {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	changed := 0
	for i := range r.store.notifications {
		if !r.store.notifications[i].Read {
			r.store.notifications[i].Read = true
			changed++
		}
	}
	return changed
}

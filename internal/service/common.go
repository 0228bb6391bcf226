package service

import (
	"context"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"taskboard/internal/adapter/notification"
	"taskboard/internal/model"
	"taskboard/internal/pkg/logger"
	"taskboard/internal/repository"
	pkgErrors "taskboard/pkg/errors"
)

// resolveUsers 按成员ID顺序取用户，已删除的成员忽略
func resolveUsers(userRepo repository.UserRepository, ids []string) []model.User {
	byID := lo.KeyBy(userRepo.List(), func(u model.User) string { return u.ID })
	return lo.FilterMap(ids, func(id string, _ int) (model.User, bool) {
		u, ok := byID[id]
		return u, ok
	})
}

// checkMembers 成员去重并校验都是已存在的用户
func checkMembers(userRepo repository.UserRepository, ids []string) ([]string, error) {
	ids = lo.Uniq(lo.Compact(ids))
	for _, id := range ids {
		if !userRepo.Exists(id) {
			return nil, pkgErrors.Wrap(pkgErrors.CodeBadRequest, "成员不存在: "+id, nil)
		}
	}
	return ids, nil
}

// notFound 把仓储层的通用 not found 换成具体实体的错误
func notFound(err error, specific *pkgErrors.AppError) error {
	if err == pkgErrors.ErrRecordNotFound {
		return specific
	}
	return err
}

// pushTask 站外推送任务通知, 失败只记录日志不影响业务
func pushTask(notifier notification.Notifier, task model.Task, notifyType notification.NotificationType, message string) {
	if notifier == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := notifier.SendTaskNotification(ctx, task, notifyType, message); err != nil {
		logger.Warn("任务通知推送失败",
			zap.String("type", string(notifyType)),
			zap.String("task_id", task.ID),
			zap.Error(err))
	}
}

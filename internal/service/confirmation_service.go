package service

import (
	"go.uber.org/zap"

	"taskboard/internal/confirm"
	"taskboard/internal/pkg/logger"
)

// ConfirmationService 处理暂存的删除操作
type ConfirmationService interface {
	Confirm(id string) (interface{}, error)
	Cancel(id string) error
	PurgeExpired() int
}

type confirmationService struct {
	stager *confirm.Stager
}

func NewConfirmationService(stager *confirm.Stager) ConfirmationService {
	return &confirmationService{stager: stager}
}

func (s *confirmationService) Confirm(id string) (interface{}, error) {
	return s.stager.Confirm(id)
}

func (s *confirmationService) Cancel(id string) error {
	return s.stager.Cancel(id)
}

func (s *confirmationService) PurgeExpired() int {
	purged := s.stager.PurgeExpired()
	if purged > 0 {
		logger.Info("已清理过期的确认请求", zap.Int("count", purged))
	}
	return purged
}

package confirm

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"taskboard/internal/pkg/idgen"
	"taskboard/internal/pkg/logger"
	"taskboard/pkg/constants"
	pkgErrors "taskboard/pkg/errors"
)

// ApplyFunc 确认后才执行的修改
type ApplyFunc func() (interface{}, error)

// Confirmation 待确认的破坏性操作
type Confirmation struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expires_at"`
}

type pending struct {
	Confirmation
	apply ApplyFunc
}

// Stager 暂存删除类操作，收到确认后再执行，取消或过期则丢弃
type Stager struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	pending map[string]*pending
}

// NewStager 创建暂存器
func NewStager(ttl time.Duration) *Stager {
	return &Stager{
		ttl:     ttl,
		now:     time.Now,
		pending: make(map[string]*pending),
	}
}

// Stage 暂存一个操作，返回待确认信息
func (s *Stager) Stage(action, title, message string, apply ApplyFunc) Confirmation {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := Confirmation{
		ID:        idgen.New(constants.IDPrefixConfirmation),
		Action:    action,
		Title:     title,
		Message:   message,
		ExpiresAt: s.now().Add(s.ttl),
	}
	s.pending[c.ID] = &pending{Confirmation: c, apply: apply}

	logger.Info("操作已暂存, 等待确认",
		zap.String("confirmation_id", c.ID),
		zap.String("action", action))
	return c
}

// Confirm 执行暂存的操作; 每个确认只能执行一次
func (s *Stager) Confirm(id string) (interface{}, error) {
	p, err := s.take(id)
	if err != nil {
		return nil, err
	}

	logger.Info("执行已确认操作",
		zap.String("confirmation_id", id),
		zap.String("action", p.Action))
	return p.apply()
}

// Cancel 放弃暂存的操作，不做任何修改
func (s *Stager) Cancel(id string) error {
	p, err := s.take(id)
	if err != nil {
		return err
	}
	logger.Info("已取消暂存操作",
		zap.String("confirmation_id", id),
		zap.String("action", p.Action))
	return nil
}

// PurgeExpired 清理过期未确认的操作，返回清理数量
func (s *Stager) PurgeExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	purged := 0
	for id, p := range s.pending {
		if now.After(p.ExpiresAt) {
			delete(s.pending, id)
			purged++
		}
	}
	return purged
}

// Pending 当前待确认数量
func (s *Stager) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

func (s *Stager) take(id string) (*pending, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.pending[id]
	if !ok {
		return nil, pkgErrors.ErrConfirmationMissing
	}
	delete(s.pending, id)

	if s.now().After(p.ExpiresAt) {
		return nil, pkgErrors.ErrConfirmationExpired
	}
	return p, nil
}

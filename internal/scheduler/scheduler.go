package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"taskboard/internal/pkg/config"
	"taskboard/internal/service"
)

const (
	jobOverdueReminder    = "overdue_reminder"
	jobPurgeConfirmations = "purge_confirmations"

	defaultOverdueCron = "0 0 8 * * *"   // 每天8点
	defaultPurgeCron   = "0 */5 * * * *" // 每5分钟
)

// Scheduler 调度器
type Scheduler struct {
	cron            *cron.Cron
	logger          *zap.Logger
	notificationSvc service.NotificationService
	confirmationSvc service.ConfirmationService
	cronSchedules   map[string]cron.EntryID // 存储任务ID，便于管理
}

// NewScheduler 创建调度器
func NewScheduler(logger *zap.Logger, services *service.Services) *Scheduler {
	// 创建 cron 实例（带秒级支持）
	c := cron.New(cron.WithSeconds())

	return &Scheduler{
		cron:            c,
		logger:          logger,
		notificationSvc: services.Notification,
		confirmationSvc: services.Confirmation,
		cronSchedules:   make(map[string]cron.EntryID),
	}
}

// Start 注册任务并启动调度器
func (s *Scheduler) Start(cfg *config.SchedulerConfig) error {
	log := s.logger.Sugar()

	if !cfg.Enabled {
		log.Info("定时任务调度器未启用")
		return nil
	}

	log.Info("启动定时任务调度器...")

	// cron 表达式格式: 秒 分 时 日 月 周
	if err := s.register(jobOverdueReminder, cfg.OverdueCron, defaultOverdueCron, func() {
		s.RunOverdueReminder()
	}); err != nil {
		return err
	}
	if err := s.register(jobPurgeConfirmations, cfg.PurgeCron, defaultPurgeCron, func() {
		s.RunPurgeConfirmations()
	}); err != nil {
		return err
	}

	s.cron.Start()
	log.Info("定时任务调度器启动成功")

	return nil
}

func (s *Scheduler) register(name, expr, fallback string, job func()) error {
	log := s.logger.Sugar()

	if expr == "" {
		expr = fallback
		log.Warnw("未配置cron表达式，使用默认值", "job", name, "cron", expr)
	}

	entryID, err := s.cron.AddFunc(expr, job)
	if err != nil {
		log.Errorf("注册定时任务 %s: %v 失败: %v", name, expr, err)
		return fmt.Errorf("注册定时任务 %s 失败: %w", name, err)
	}

	s.cronSchedules[name] = entryID
	log.Infof("定时任务已注册: %s %s entry_id=%d", name, expr, entryID)
	return nil
}

// Stop 停止调度器
func (s *Scheduler) Stop() {
	s.logger.Info("正在停止定时任务调度器...")

	// 停止 cron（等待正在执行的任务完成）
	ctx := s.cron.Stop()
	<-ctx.Done()

	s.logger.Info("定时任务调度器已停止")
}

// RunOverdueReminder 为逾期任务生成提醒，也可手动触发
func (s *Scheduler) RunOverdueReminder() int {
	created := s.notificationSvc.CreateOverdueReminders()
	s.logger.Debug("执行定时任务: 逾期提醒", zap.Int("created", created))
	return created
}

// RunPurgeConfirmations 清理过期的待确认操作
func (s *Scheduler) RunPurgeConfirmations() int {
	purged := s.confirmationSvc.PurgeExpired()
	s.logger.Debug("执行定时任务: 清理过期确认", zap.Int("purged", purged))
	return purged
}

// Entries 已注册的任务
func (s *Scheduler) Entries() map[string]cron.EntryID {
	out := make(map[string]cron.EntryID, len(s.cronSchedules))
	for k, v := range s.cronSchedules {
		out[k] = v
	}
	return out
}

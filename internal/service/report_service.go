package service

import (
	"time"

	"github.com/samber/lo"

	"taskboard/internal/core/calendar"
	"taskboard/internal/core/stats"
	"taskboard/internal/core/taskview"
	"taskboard/internal/dto"
	"taskboard/internal/model"
	"taskboard/internal/repository"
)

// ReportService 仪表盘、报表、日历; 所有"当前时间"都在调用时取
type ReportService interface {
	Summary() stats.Summary
	StatusHistogram() []stats.StatusCount
	Productivity() []dto.ProductivityResponse
	Dashboard() *dto.DashboardResponse
	Calendar(q *dto.CalendarQuery) calendar.Month
}

type reportService struct {
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
	now      func() time.Time
}

func NewReportService(taskRepo repository.TaskRepository, userRepo repository.UserRepository) ReportService {
	return &reportService{
		taskRepo: taskRepo,
		userRepo: userRepo,
		now:      time.Now,
	}
}

func (s *reportService) Summary() stats.Summary {
	return stats.Summarize(s.taskRepo.List(), s.now())
}

func (s *reportService) StatusHistogram() []stats.StatusCount {
	return stats.StatusHistogram(s.taskRepo.List())
}

func (s *reportService) Productivity() []dto.ProductivityResponse {
	tasks := s.taskRepo.List()
	return lo.Map(s.userRepo.List(), func(u model.User, _ int) dto.ProductivityResponse {
		return dto.ProductivityResponse{
			Productivity: stats.UserProductivity(u.ID, tasks),
			User:         u,
		}
	})
}

func (s *reportService) Dashboard() *dto.DashboardResponse {
	tasks := s.taskRepo.List()
	return &dto.DashboardResponse{
		Summary:   stats.Summarize(tasks, s.now()),
		Histogram: stats.StatusHistogram(tasks),
	}
}

func (s *reportService) Calendar(q *dto.CalendarQuery) calendar.Month {
	now := s.now()
	year, month := now.Year(), now.Month()
	tasks := s.taskRepo.List()

	if q != nil {
		if q.Year > 0 {
			year = q.Year
		}
		if q.Month > 0 {
			month = time.Month(q.Month)
		}
		if q.Search != "" {
			tasks = taskview.Filter(tasks, taskview.Criteria{SearchTerm: q.Search})
		}
	}

	return calendar.BucketTasksByMonth(tasks, year, month, model.DateOf(now))
}

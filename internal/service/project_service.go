package service

import (
	"github.com/samber/lo"
	"go.uber.org/zap"

	"taskboard/internal/core/stats"
	"taskboard/internal/core/taskview"
	"taskboard/internal/dto"
	"taskboard/internal/model"
	"taskboard/internal/pkg/logger"
	"taskboard/internal/repository"
	pkgErrors "taskboard/pkg/errors"
)

type ProjectService interface {
	Create(req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	GetDetail(id string) (*dto.ProjectDetailResponse, error)
	List() []dto.ProjectResponse
}

type projectService struct {
	repo     repository.ProjectRepository
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
}

func NewProjectService(
	repo repository.ProjectRepository,
	taskRepo repository.TaskRepository,
	userRepo repository.UserRepository,
) ProjectService {
	return &projectService{
		repo:     repo,
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

func (s *projectService) Create(req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	members, err := checkMembers(s.userRepo, req.MemberIDs)
	if err != nil {
		return nil, err
	}

	project := &model.Project{
		Name:        req.Name,
		Description: req.Description,
		MemberIDs:   members,
	}
	if err := s.repo.Create(project); err != nil {
		return nil, err
	}

	logger.Info("项目已创建", zap.String("project_id", project.ID), zap.Int("members", len(members)))
	resp := s.toResponse(*project, s.taskRepo.List())
	return &resp, nil
}

func (s *projectService) GetDetail(id string) (*dto.ProjectDetailResponse, error) {
	project, err := s.repo.FindByID(id)
	if err != nil {
		return nil, notFound(err, pkgErrors.ErrProjectNotFound)
	}

	tasks := s.taskRepo.ListByProjectID(project.ID)
	return &dto.ProjectDetailResponse{
		ProjectResponse: s.toResponse(*project, tasks),
		Tasks:           taskview.SortForDetail(tasks),
	}, nil
}

func (s *projectService) List() []dto.ProjectResponse {
	tasks := s.taskRepo.List()
	return lo.Map(s.repo.List(), func(p model.Project, _ int) dto.ProjectResponse {
		return s.toResponse(p, tasks)
	})
}

func (s *projectService) toResponse(project model.Project, tasks []model.Task) dto.ProjectResponse {
	return dto.ProjectResponse{
		Project:  project,
		Members:  resolveUsers(s.userRepo, project.MemberIDs),
		Progress: stats.ProjectProgress(project.ID, tasks),
	}
}

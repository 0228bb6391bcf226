package service

import (
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"taskboard/internal/confirm"
	"taskboard/internal/core/stats"
	"taskboard/internal/core/taskview"
	"taskboard/internal/dto"
	"taskboard/internal/model"
	"taskboard/internal/pkg/logger"
	"taskboard/internal/repository"
	pkgErrors "taskboard/pkg/errors"
)

type TeamService interface {
	Create(req *dto.CreateTeamRequest) (*dto.TeamResponse, error)
	GetDetail(id string) (*dto.TeamDetailResponse, error)
	List() []dto.TeamResponse
	Update(req *dto.UpdateTeamRequest) (*dto.TeamResponse, error)
	StageDelete(id string) (*confirm.Confirmation, error)
}

type teamService struct {
	repo     repository.TeamRepository
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
	stager   *confirm.Stager
}

func NewTeamService(
	repo repository.TeamRepository,
	taskRepo repository.TaskRepository,
	userRepo repository.UserRepository,
	stager *confirm.Stager,
) TeamService {
	return &teamService{
		repo:     repo,
		taskRepo: taskRepo,
		userRepo: userRepo,
		stager:   stager,
	}
}

func (s *teamService) Create(req *dto.CreateTeamRequest) (*dto.TeamResponse, error) {
	members, err := checkMembers(s.userRepo, req.MemberIDs)
	if err != nil {
		return nil, err
	}

	team := &model.Team{
		Name:        req.Name,
		Description: req.Description,
		MemberIDs:   members,
	}
	if err := s.repo.Create(team); err != nil {
		return nil, err
	}

	resp := s.toResponse(*team, s.taskRepo.List())
	return &resp, nil
}

func (s *teamService) GetDetail(id string) (*dto.TeamDetailResponse, error) {
	team, err := s.repo.FindByID(id)
	if err != nil {
		return nil, notFound(err, pkgErrors.ErrTeamNotFound)
	}

	tasks := s.taskRepo.List()
	return &dto.TeamDetailResponse{
		TeamResponse: s.toResponse(*team, tasks),
		Tasks:        taskview.SortForDetail(stats.TeamTasks(*team, tasks)),
	}, nil
}

func (s *teamService) List() []dto.TeamResponse {
	tasks := s.taskRepo.List()
	return lo.Map(s.repo.List(), func(t model.Team, _ int) dto.TeamResponse {
		return s.toResponse(t, tasks)
	})
}

func (s *teamService) Update(req *dto.UpdateTeamRequest) (*dto.TeamResponse, error) {
	team, err := s.repo.FindByID(req.ID)
	if err != nil {
		return nil, notFound(err, pkgErrors.ErrTeamNotFound)
	}

	members, err := checkMembers(s.userRepo, req.MemberIDs)
	if err != nil {
		return nil, err
	}

	team.Name = req.Name
	team.Description = req.Description
	team.MemberIDs = members
	if err := s.repo.Update(team); err != nil {
		return nil, notFound(err, pkgErrors.ErrTeamNotFound)
	}

	resp := s.toResponse(*team, s.taskRepo.List())
	return &resp, nil
}

func (s *teamService) StageDelete(id string) (*confirm.Confirmation, error) {
	team, err := s.repo.FindByID(id)
	if err != nil {
		return nil, notFound(err, pkgErrors.ErrTeamNotFound)
	}

	c := s.stager.Stage("delete_team",
		"删除团队",
		fmt.Sprintf("确定删除团队「%s」吗？此操作不可撤销。", team.Name),
		func() (interface{}, error) {
			if err := s.repo.Delete(id); err != nil {
				return nil, notFound(err, pkgErrors.ErrTeamNotFound)
			}
			logger.Info("团队已删除", zap.String("team_id", id))
			return map[string]interface{}{"id": id, "deleted": true}, nil
		})
	return &c, nil
}

func (s *teamService) toResponse(team model.Team, tasks []model.Task) dto.TeamResponse {
	return dto.TeamResponse{
		Team:     team,
		Members:  resolveUsers(s.userRepo, team.MemberIDs),
		Progress: stats.TeamProgress(team, tasks),
	}
}

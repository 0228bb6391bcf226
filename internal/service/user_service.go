package service

import (
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"taskboard/internal/confirm"
	"taskboard/internal/dto"
	"taskboard/internal/model"
	"taskboard/internal/pkg/logger"
	"taskboard/internal/repository"
	pkgErrors "taskboard/pkg/errors"
)

type UserService interface {
	// Create 添加协作者; 第一个用户创建后自动登录
	Create(req *dto.CreateUserRequest) (*dto.CreateUserResponse, error)
	List() []dto.UserResponse
	Update(req *dto.UpdateUserRequest) (*model.User, error)
	// StageDelete 暂存批量删除，确认后级联取消指派并移出项目和团队
	StageDelete(req *dto.DeleteUsersRequest) (*confirm.Confirmation, error)
	Avatars() []string
}

type userService struct {
	repo     repository.UserRepository
	taskRepo repository.TaskRepository
	auth     AuthService
	stager   *confirm.Stager
	avatars  []string
}

func NewUserService(
	repo repository.UserRepository,
	taskRepo repository.TaskRepository,
	auth AuthService,
	stager *confirm.Stager,
	avatars []string,
) UserService {
	return &userService{
		repo:     repo,
		taskRepo: taskRepo,
		auth:     auth,
		stager:   stager,
		avatars:  avatars,
	}
}

func (s *userService) Create(req *dto.CreateUserRequest) (*dto.CreateUserResponse, error) {
	avatar := req.AvatarURL
	if avatar == "" && len(s.avatars) > 0 {
		avatar = s.avatars[0]
	}

	user := &model.User{
		Name:                 req.Name,
		Role:                 req.Role,
		Email:                req.Email,
		AvatarURL:            avatar,
		NotificationSettings: model.DefaultNotificationSettings(),
	}
	first, err := s.repo.Create(user)
	if err != nil {
		return nil, err
	}

	resp := &dto.CreateUserResponse{User: *user, FirstUser: first}
	if first {
		signIn, err := s.auth.IssueToken(user)
		if err != nil {
			return nil, err
		}
		resp.AccessToken = signIn.AccessToken
		logger.Info("第一个协作者已创建并自动登录", zap.String("user_id", user.ID))
	}
	return resp, nil
}

func (s *userService) List() []dto.UserResponse {
	tasks := s.taskRepo.List()
	return lo.Map(s.repo.List(), func(u model.User, _ int) dto.UserResponse {
		return dto.UserResponse{
			User: u,
			TaskCount: lo.CountBy(tasks, func(t model.Task) bool {
				return t.IsAssignedTo(u.ID)
			}),
		}
	})
}

func (s *userService) Update(req *dto.UpdateUserRequest) (*model.User, error) {
	user := &model.User{
		ID:                   req.ID,
		Name:                 req.Name,
		Role:                 req.Role,
		Email:                req.Email,
		AvatarURL:            req.AvatarURL,
		NotificationSettings: req.NotificationSettings,
	}
	if err := s.repo.Update(user); err != nil {
		return nil, notFound(err, pkgErrors.ErrUserNotFound)
	}
	return user, nil
}

func (s *userService) StageDelete(req *dto.DeleteUsersRequest) (*confirm.Confirmation, error) {
	ids := lo.Uniq(req.IDs)
	if len(ids) == 0 {
		return nil, pkgErrors.ErrInvalidParams
	}

	message := "确定删除该协作者吗？其任务将变为未指派。"
	if len(ids) > 1 {
		message = fmt.Sprintf("确定删除这 %d 位协作者吗？他们的任务将变为未指派。", len(ids))
	}

	c := s.stager.Stage("delete_users", "删除协作者", message, func() (interface{}, error) {
		result, err := s.repo.DeleteByIDs(ids)
		if err != nil {
			return nil, err
		}
		logger.Info("协作者已删除",
			zap.Strings("user_ids", ids),
			zap.Int("users_removed", result.UsersRemoved),
			zap.Int("tasks_unassigned", result.TasksUnassigned),
			zap.Int("projects_affected", result.ProjectsAffected),
			zap.Int("teams_affected", result.TeamsAffected))
		return &dto.DeleteUsersResponse{CascadeResult: *result}, nil
	})
	return &c, nil
}

func (s *userService) Avatars() []string {
	return append([]string{}, s.avatars...)
}

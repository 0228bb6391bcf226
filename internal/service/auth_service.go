package service

import (
	"taskboard/internal/dto"
	"taskboard/internal/model"
	"taskboard/internal/pkg/config"
	"taskboard/internal/pkg/jwt"
	"taskboard/internal/repository"
	pkgErrors "taskboard/pkg/errors"
)

// AuthService 登录桩: 无密码, 选择一个已有协作者签发Token; 登出由前端丢弃Token
type AuthService interface {
	SignIn(req *dto.SignInRequest) (*dto.SignInResponse, error)
	IssueToken(user *model.User) (*dto.SignInResponse, error)
	Me(userID string) (*model.User, error)
	UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*model.User, error)
}

type authService struct {
	cfg      *config.AuthConfig
	userRepo repository.UserRepository
}

func NewAuthService(cfg *config.AuthConfig, userRepo repository.UserRepository) AuthService {
	return &authService{
		cfg:      cfg,
		userRepo: userRepo,
	}
}

func (s *authService) SignIn(req *dto.SignInRequest) (*dto.SignInResponse, error) {
	var user *model.User
	var err error

	if req != nil && req.UserID != "" {
		user, err = s.userRepo.FindByID(req.UserID)
		err = notFound(err, pkgErrors.ErrUserNotFound)
	} else {
		// 未指定用户时登录集合中的第一个用户
		user, err = s.userRepo.First()
	}
	if err != nil {
		return nil, err
	}

	return s.IssueToken(user)
}

func (s *authService) IssueToken(user *model.User) (*dto.SignInResponse, error) {
	token, err := jwt.GenerateAccessToken(user.ID, user.Name, user.Email)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "生成Token失败", err)
	}
	return &dto.SignInResponse{
		AccessToken: token,
		ExpiresIn:   s.cfg.JWT.AccessTokenExpire,
		User:        *user,
	}, nil
}

func (s *authService) Me(userID string) (*model.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, notFound(err, pkgErrors.ErrUserNotFound)
	}
	return user, nil
}

func (s *authService) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*model.User, error) {
	user := &model.User{
		ID:                   userID,
		Name:                 req.Name,
		Role:                 req.Role,
		Email:                req.Email,
		AvatarURL:            req.AvatarURL,
		NotificationSettings: req.NotificationSettings,
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, notFound(err, pkgErrors.ErrUserNotFound)
	}
	return user, nil
}

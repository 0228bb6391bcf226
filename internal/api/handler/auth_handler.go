package handler

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/api/middleware"
	"taskboard/internal/dto"
	"taskboard/internal/service"
	"taskboard/pkg/utils"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// SignIn 登录
// @Summary 登录
// @Description 演示用登录: 不指定user_id时登录第一个协作者; 尚无协作者时返回404
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.SignInRequest false "登录请求"
// @Success 200 {object} utils.Response{data=dto.SignInResponse}
// @Router /api/v1/auth/signin [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	// 请求体可以为空
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BindError(c, err)
			return
		}
	}

	resp, err := h.authService.SignIn(&req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, resp)
}

// GetMe 获取当前用户
// @Summary 获取当前用户
// @Tags 认证
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response{data=model.User}
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) GetMe(c *gin.Context) {
	user, err := h.authService.Me(middleware.CurrentUserID(c))
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, user)
}

// UpdateMe 修改当前用户资料和通知设置
// @Summary 修改当前用户资料
// @Tags 认证
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "资料"
// @Success 200 {object} utils.Response{data=model.User}
// @Router /api/v1/auth/me [put]
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	user, err := h.authService.UpdateProfile(middleware.CurrentUserID(c), &req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, user)
}

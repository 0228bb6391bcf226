package handler

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/dto"
	"taskboard/internal/service"
	"taskboard/pkg/utils"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Create 添加协作者
// @Summary 添加协作者
// @Description 尚无用户时无需登录；第一个用户会同时返回access_token
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "协作者信息"
// @Success 200 {object} utils.Response{data=dto.CreateUserResponse}
// @Security BearerAuth
// @Router /api/v1/user [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	resp, err := h.userService.Create(&req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, resp)
}

// List 协作者列表
// @Summary 协作者列表(含任务数)
// @Tags User
// @Produce json
// @Success 200 {object} utils.PageResponse{data=[]dto.UserResponse}
// @Security BearerAuth
// @Router /api/v1/users [get]
func (h *UserHandler) List(c *gin.Context) {
	users := h.userService.List()
	utils.ListSuccess(c, users, int64(len(users)))
}

// Update 更新协作者
// @Summary 更新协作者(整体替换)
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.UpdateUserRequest true "协作者信息"
// @Success 200 {object} utils.Response{data=model.User}
// @Security BearerAuth
// @Router /api/v1/user [put]
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	user, err := h.userService.Update(&req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, user)
}

// Delete 批量删除协作者(需确认)
// @Summary 批量删除协作者
// @Description 确认后其任务变为未指派，并从所有项目和团队中移除
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.DeleteUsersRequest true "用户ID列表"
// @Success 200 {object} utils.Response{data=confirm.Confirmation}
// @Security BearerAuth
// @Router /api/v1/users/delete [post]
func (h *UserHandler) Delete(c *gin.Context) {
	var req dto.DeleteUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	confirmation, err := h.userService.StageDelete(&req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Accepted(c, confirmation)
}

// Avatars 头像可选项
// @Summary 头像可选项
// @Tags User
// @Produce json
// @Success 200 {object} utils.Response{data=[]string}
// @Router /api/v1/avatars [get]
func (h *UserHandler) Avatars(c *gin.Context) {
	utils.Success(c, h.userService.Avatars())
}

package handler

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/dto"
	"taskboard/internal/service"
	"taskboard/pkg/utils"
)

type TeamHandler struct {
	teamService service.TeamService
}

func NewTeamHandler(teamService service.TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// Create 创建团队
// @Summary 创建团队
// @Tags Team
// @Accept json
// @Produce json
// @Param request body dto.CreateTeamRequest true "创建团队请求"
// @Success 200 {object} utils.Response{data=dto.TeamResponse}
// @Security BearerAuth
// @Router /api/v1/team [post]
func (h *TeamHandler) Create(c *gin.Context) {
	var req dto.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	team, err := h.teamService.Create(&req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, team)
}

// GetByID 获取团队详情
// @Summary 获取团队详情(成员、成员的任务、进度)
// @Tags Team
// @Produce json
// @Param id query string true "团队ID"
// @Success 200 {object} utils.Response{data=dto.TeamDetailResponse}
// @Security BearerAuth
// @Router /api/v1/team [get]
func (h *TeamHandler) GetByID(c *gin.Context) {
	var req dto.IDQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	team, err := h.teamService.GetDetail(req.ID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, team)
}

// List 获取团队列表
// @Summary 获取团队列表
// @Tags Team
// @Produce json
// @Success 200 {object} utils.PageResponse{data=[]dto.TeamResponse}
// @Security BearerAuth
// @Router /api/v1/teams [get]
func (h *TeamHandler) List(c *gin.Context) {
	teams := h.teamService.List()
	utils.ListSuccess(c, teams, int64(len(teams)))
}

// Update 更新团队
// @Summary 更新团队
// @Tags Team
// @Accept json
// @Produce json
// @Param request body dto.UpdateTeamRequest true "更新团队请求"
// @Success 200 {object} utils.Response{data=dto.TeamResponse}
// @Security BearerAuth
// @Router /api/v1/team [put]
func (h *TeamHandler) Update(c *gin.Context) {
	var req dto.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	team, err := h.teamService.Update(&req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, team)
}

// Delete 删除团队(需确认)
// @Summary 删除团队
// @Tags Team
// @Produce json
// @Param id path string true "团队ID"
// @Success 200 {object} utils.Response{data=confirm.Confirmation}
// @Security BearerAuth
// @Router /api/v1/team/{id} [delete]
func (h *TeamHandler) Delete(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		utils.BindError(c, err)
		return
	}

	confirmation, err := h.teamService.StageDelete(param.ID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Accepted(c, confirmation)
}

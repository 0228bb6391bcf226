package handler

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/dto"
	"taskboard/internal/service"
	"taskboard/pkg/utils"
)

type ProjectHandler struct {
	projectService service.ProjectService
}

func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// Create 创建项目
// @Summary 创建项目
// @Tags Project
// @Accept json
// @Produce json
// @Param request body dto.CreateProjectRequest true "创建项目请求"
// @Success 200 {object} utils.Response{data=dto.ProjectResponse}
// @Security BearerAuth
// @Router /api/v1/project [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	project, err := h.projectService.Create(&req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, project)
}

// GetByID 获取项目详情
// @Summary 获取项目详情(成员、任务、进度)
// @Tags Project
// @Produce json
// @Param id query string true "项目ID"
// @Success 200 {object} utils.Response{data=dto.ProjectDetailResponse}
// @Security BearerAuth
// @Router /api/v1/project [get]
func (h *ProjectHandler) GetByID(c *gin.Context) {
	var req dto.IDQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	project, err := h.projectService.GetDetail(req.ID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, project)
}

// List 项目列表
// @Summary 项目列表(含进度)
// @Tags Project
// @Produce json
// @Success 200 {object} utils.PageResponse{data=[]dto.ProjectResponse}
// @Security BearerAuth
// @Router /api/v1/projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	projects := h.projectService.List()
	utils.ListSuccess(c, projects, int64(len(projects)))
}

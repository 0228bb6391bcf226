package handler

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/dto"
	"taskboard/internal/service"
	"taskboard/pkg/utils"
)

type TaskHandler struct {
	taskService service.TaskService
}

func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// Create 创建任务
// @Summary 创建任务
// @Description 状态固定为TODO，已登记工时为0
// @Tags Task
// @Accept json
// @Produce json
// @Param request body dto.CreateTaskRequest true "创建任务请求"
// @Success 200 {object} utils.Response{data=model.Task}
// @Security BearerAuth
// @Router /api/v1/task [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	task, err := h.taskService.Create(&req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, task)
}

// GetByID 获取任务详情
// @Summary 获取任务详情(含负责人)
// @Tags Task
// @Produce json
// @Param id query string true "任务ID"
// @Success 200 {object} utils.Response{data=dto.TaskDetailResponse}
// @Security BearerAuth
// @Router /api/v1/task [get]
func (h *TaskHandler) GetByID(c *gin.Context) {
	var req dto.IDQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	detail, err := h.taskService.GetDetail(req.ID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, detail)
}

// Update 编辑任务
// @Summary 编辑任务
// @Tags Task
// @Accept json
// @Produce json
// @Param request body dto.UpdateTaskRequest true "编辑任务请求"
// @Success 200 {object} utils.Response{data=model.Task}
// @Security BearerAuth
// @Router /api/v1/task [put]
func (h *TaskHandler) Update(c *gin.Context) {
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	task, err := h.taskService.Update(&req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, task)
}

// UpdateStatus 修改任务状态(看板拖拽)
// @Summary 修改任务状态
// @Tags Task
// @Accept json
// @Produce json
// @Param id path string true "任务ID"
// @Param request body dto.UpdateTaskStatusRequest true "状态"
// @Success 200 {object} utils.Response{data=model.Task}
// @Security BearerAuth
// @Router /api/v1/task/{id}/status [put]
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		utils.BindError(c, err)
		return
	}
	var req dto.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	task, err := h.taskService.UpdateStatus(param.ID, &req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, task)
}

// UpdateTimeLogged 修改已登记工时
// @Summary 修改已登记工时
// @Description 无法解析或为负数的输入记为0
// @Tags Task
// @Accept json
// @Produce json
// @Param id path string true "任务ID"
// @Param request body dto.UpdateTimeLoggedRequest true "工时(小时)"
// @Success 200 {object} utils.Response{data=model.Task}
// @Security BearerAuth
// @Router /api/v1/task/{id}/time [put]
func (h *TaskHandler) UpdateTimeLogged(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		utils.BindError(c, err)
		return
	}
	var req dto.UpdateTimeLoggedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	task, err := h.taskService.UpdateTimeLogged(param.ID, &req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, task)
}

// Toggle 勾选/取消完成
// @Summary 勾选框切换完成状态
// @Tags Task
// @Produce json
// @Param id path string true "任务ID"
// @Success 200 {object} utils.Response{data=model.Task}
// @Security BearerAuth
// @Router /api/v1/task/{id}/toggle [put]
func (h *TaskHandler) Toggle(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		utils.BindError(c, err)
		return
	}

	task, err := h.taskService.ToggleDone(param.ID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, task)
}

// Delete 删除任务(需确认)
// @Summary 删除任务
// @Description 返回待确认请求，调用 /confirmations/{id}/confirm 后才删除
// @Tags Task
// @Produce json
// @Param id path string true "任务ID"
// @Success 200 {object} utils.Response{data=confirm.Confirmation}
// @Security BearerAuth
// @Router /api/v1/task/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		utils.BindError(c, err)
		return
	}

	confirmation, err := h.taskService.StageDelete(param.ID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Accepted(c, confirmation)
}

// List 任务列表
// @Summary 搜索、筛选、排序后的任务列表
// @Tags Task
// @Produce json
// @Param search query string false "标题或描述关键字"
// @Param assignee query string false "负责人ID, all表示全部"
// @Param project query string false "项目ID, all表示全部"
// @Param sort query string false "deadline / priority / title"
// @Success 200 {object} utils.PageResponse{data=[]model.Task}
// @Security BearerAuth
// @Router /api/v1/tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	var q dto.TaskQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.BindError(c, err)
		return
	}

	tasks := h.taskService.List(&q)
	utils.ListSuccess(c, tasks, int64(len(tasks)))
}

// Board 看板
// @Summary 按状态分列的看板
// @Tags Task
// @Produce json
// @Param search query string false "标题或描述关键字"
// @Param assignee query string false "负责人ID"
// @Param project query string false "项目ID"
// @Param sort query string false "deadline / priority / title"
// @Success 200 {object} utils.Response{data=dto.BoardResponse}
// @Security BearerAuth
// @Router /api/v1/board [get]
func (h *TaskHandler) Board(c *gin.Context) {
	var q dto.TaskQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.BindError(c, err)
		return
	}

	utils.Success(c, h.taskService.Board(&q))
}

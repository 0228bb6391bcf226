package handler

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/dto"
	"taskboard/internal/service"
	"taskboard/pkg/utils"
)

type ConfirmationHandler struct {
	confirmationService service.ConfirmationService
}

func NewConfirmationHandler(confirmationService service.ConfirmationService) *ConfirmationHandler {
	return &ConfirmationHandler{
		confirmationService: confirmationService,
	}
}

// Confirm 确认并执行
// @Summary 确认暂存的删除操作
// @Tags Confirmation
// @Produce json
// @Param id path string true "确认请求ID"
// @Success 200 {object} utils.Response
// @Security BearerAuth
// @Router /api/v1/confirmations/{id}/confirm [post]
func (h *ConfirmationHandler) Confirm(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		utils.BindError(c, err)
		return
	}

	result, err := h.confirmationService.Confirm(param.ID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, result)
}

// Cancel 取消
// @Summary 取消暂存的删除操作
// @Tags Confirmation
// @Produce json
// @Param id path string true "确认请求ID"
// @Success 200 {object} utils.Response
// @Security BearerAuth
// @Router /api/v1/confirmations/{id} [delete]
func (h *ConfirmationHandler) Cancel(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		utils.BindError(c, err)
		return
	}

	if err := h.confirmationService.Cancel(param.ID); err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, nil)
}

package handler

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/dto"
	"taskboard/internal/service"
	"taskboard/pkg/utils"
)

type ReportHandler struct {
	reportService service.ReportService
}

func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// Summary 任务汇总
// @Summary 任务总数、各状态数量、逾期数量
// @Tags Report
// @Produce json
// @Success 200 {object} utils.Response{data=stats.Summary}
// @Security BearerAuth
// @Router /api/v1/reports/summary [get]
func (h *ReportHandler) Summary(c *gin.Context) {
	utils.Success(c, h.reportService.Summary())
}

// StatusHistogram 状态分布
// @Summary 状态分布(固定顺序 TODO / IN_PROGRESS / DONE)
// @Tags Report
// @Produce json
// @Success 200 {object} utils.Response{data=[]stats.StatusCount}
// @Security BearerAuth
// @Router /api/v1/reports/status-histogram [get]
func (h *ReportHandler) StatusHistogram(c *gin.Context) {
	utils.Success(c, h.reportService.StatusHistogram())
}

// Productivity 成员效率
// @Summary 每个协作者的完成数和工时比
// @Tags Report
// @Produce json
// @Success 200 {object} utils.Response{data=[]dto.ProductivityResponse}
// @Security BearerAuth
// @Router /api/v1/reports/productivity [get]
func (h *ReportHandler) Productivity(c *gin.Context) {
	utils.Success(c, h.reportService.Productivity())
}

// Dashboard 仪表盘
// @Summary 仪表盘(汇总 + 状态分布)
// @Tags Report
// @Produce json
// @Success 200 {object} utils.Response{data=dto.DashboardResponse}
// @Security BearerAuth
// @Router /api/v1/dashboard [get]
func (h *ReportHandler) Dashboard(c *gin.Context) {
	utils.Success(c, h.reportService.Dashboard())
}

// Calendar 月历
// @Summary 42格月历，周一开始
// @Tags Report
// @Produce json
// @Param year query int false "年, 默认当年"
// @Param month query int false "月(1-12), 默认当月"
// @Param search query string false "关键字"
// @Success 200 {object} utils.Response{data=calendar.Month}
// @Security BearerAuth
// @Router /api/v1/calendar [get]
func (h *ReportHandler) Calendar(c *gin.Context) {
	var q dto.CalendarQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.BindError(c, err)
		return
	}

	utils.Success(c, h.reportService.Calendar(&q))
}

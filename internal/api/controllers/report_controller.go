package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"tripdesk/internal/models/response_models"
	"tripdesk/internal/report"
	"tripdesk/pkg/utils"
)

type ReportController struct {
	log *logrus.Logger
}

func NewReportController(logger *logrus.Logger) *ReportController {
	return &ReportController{log: logger}
}

// ExportPlan godoc
// @Summary Export a plan as PDF
// @Description Render the posted plan into the downloadable report
// @Tags Travel
// @Accept json
// @Produce application/pdf
// @Param request body response_models.PlanResult true "Plan to export"
// @Success 200 {file} binary
// @Failure 400 {object} utils.APIResponse
// @Router /travel/export [post]
func (r *ReportController) ExportPlan(c *gin.Context) {
	var plan response_models.PlanResult
	if err := c.ShouldBindJSON(&plan); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	pdf, err := report.Render(&plan)
	if err != nil {
		r.log.Errorf("pdf render failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Could not generate the report")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="travel-plan.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

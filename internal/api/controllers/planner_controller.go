package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripdesk/internal/models/request_models"
	"tripdesk/internal/services"
	"tripdesk/pkg/utils"
)

type PlannerController struct {
	plannerService services.PlannerServiceInterface
}

func NewPlannerController(plannerService services.PlannerServiceInterface) *PlannerController {
	return &PlannerController{plannerService: plannerService}
}

// SubmitPlan godoc
// @Summary Submit a trip request
// @Description Validate trip parameters and generate a travel plan
// @Tags Travel
// @Accept json
// @Produce json
// @Param request body request_models.TripRequest true "Trip parameters"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /travel/ [post]
func (p *PlannerController) SubmitPlan(c *gin.Context) {
	var req request_models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	plan, err := p.plannerService.SubmitPlan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan generated successfully")
}

// GetState godoc
// @Summary Current planner view state
// @Tags Travel
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /travel/state [get]
func (p *PlannerController) GetState(c *gin.Context) {
	utils.RespondSuccess(c, p.plannerService.State(), "")
}

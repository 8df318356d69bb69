package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripdesk/internal/models/request_models"
	"tripdesk/internal/services"
	"tripdesk/pkg/utils"
)

type EmailController struct {
	emailService services.EmailServiceInterface
}

func NewEmailController(emailService services.EmailServiceInterface) *EmailController {
	return &EmailController{emailService: emailService}
}

// SendPlanEmail godoc
// @Summary Send a plan by email
// @Tags Travel
// @Accept json
// @Produce json
// @Param request body request_models.SendEmailRequest true "Recipient and plan"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /travel/sendEmail [post]
func (e *EmailController) SendPlanEmail(c *gin.Context) {
	var req request_models.SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := e.emailService.SendPlan(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Plan details have been sent to your email.")
}

package controllers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripdesk/internal/models/request_models"
	"tripdesk/internal/services"
	"tripdesk/pkg/utils"
)

type FeedbackController struct {
	feedbackService services.FeedbackServiceInterface
}

func NewFeedbackController(feedbackService services.FeedbackServiceInterface) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService}
}

// SubmitFeedback godoc
// @Summary Submit feedback
// @Description Accepts either the short message form or the full survey
// @Tags Feedback
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /travel/feedback [post]
func (f *FeedbackController) SubmitFeedback(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	// The two form variants share an endpoint; the message key decides
	// which one arrived.
	var probe struct {
		Message *string `json:"message"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if probe.Message != nil {
		var req request_models.FeedbackMessageRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
			return
		}
		if err := f.feedbackService.SubmitMessage(c.Request.Context(), req); err != nil {
			utils.HandleServiceError(c, err)
			return
		}
	} else {
		var req request_models.FeedbackSurveyRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
			return
		}
		if err := f.feedbackService.SubmitSurvey(c.Request.Context(), req); err != nil {
			utils.HandleServiceError(c, err)
			return
		}
	}

	utils.RespondSuccess(c, nil, "Thank you for your feedback!")
}

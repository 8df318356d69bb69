package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type APIResponse struct {
	Status  string            `json:"status"`
	Code    int               `json:"code"`
	Message string            `json:"message,omitempty"`
	TraceID string            `json:"trace_id,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if id, ok := c.Get("trace_id"); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// RespondFieldErrors reports validation failures without touching the
// network layer's status taxonomy: one message per offending field.
func RespondFieldErrors(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, APIResponse{
		Status:  "error",
		Code:    http.StatusBadRequest,
		Message: "Validation failed",
		TraceID: traceID(c),
		Errors:  fields,
	})
}

// HandleServiceError translates service errors into API responses.
func HandleServiceError(c *gin.Context, err error) {
	var vErr *ValidationError
	var httpErr *HTTPError
	var netErr *NetworkError

	switch {
	case errors.As(err, &vErr):
		RespondFieldErrors(c, vErr.Fields)
	case errors.Is(err, ErrSubmitInFlight):
		RespondError(c, http.StatusConflict, "A plan request is already in progress")
	case errors.Is(err, ErrSessionExpired):
		RespondError(c, http.StatusUnauthorized, "Session expired. Please login again.")
	case errors.As(err, &httpErr):
		log.WithField("status", httpErr.Status).Warnf("planning api error: %v", httpErr)
		RespondError(c, http.StatusBadGateway, httpErr.Message)
	case errors.As(err, &netErr):
		log.Warnf("planning api unreachable: %v", netErr)
		RespondError(c, http.StatusBadGateway, "Something went wrong.")
	default:
		log.Errorf("unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

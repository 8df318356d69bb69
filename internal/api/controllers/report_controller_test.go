package controllers

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func exportRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	router := gin.New()
	router.POST("/travel/export", NewReportController(logger).ExportPlan)
	return router
}

func TestExportPlanReturnsPDFAttachment(t *testing.T) {
	body := `{
		"visa": "Visa-free for 90 days",
		"budget": {"totalUSD": 2000, "perDayUSD": 200, "breakdown": {"accommodation": 800}},
		"mini": ["Day 1: arrive"]
	}`
	req := httptest.NewRequest(http.MethodPost, "/travel/export", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	exportRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
		t.Errorf("Content-Type = %q", got)
	}
	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename="travel-plan.pdf"` {
		t.Errorf("Content-Disposition = %q", got)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Error("body is not a PDF document")
	}
}

func TestExportPlanRejectsMalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/travel/export", strings.NewReader("{broken"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	exportRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andresuchdata/inventory-analytics/backend-go/internal/domain"
	"github.com/andresuchdata/inventory-analytics/backend-go/internal/service"
)

type AnalyticsHandler struct {
	service *service.AnalyticsService
}

func NewAnalyticsHandler(service *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// bindRequest deserializes the common analytics payload. Shape validation
// lives here; the engine itself never rejects degenerate inputs.
func (h *AnalyticsHandler) bindRequest(c *gin.Context) (domain.AnalyticsRequest, bool) {
	var req domain.AnalyticsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "details": err.Error()})
		return req, false
	}
	return req, true
}

func (h *AnalyticsHandler) GetRecommendations(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	report, err := h.service.Recommendations(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *AnalyticsHandler) GetSalesForecast(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	report, err := h.service.SalesForecast(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *AnalyticsHandler) GetABCAnalysis(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	report, err := h.service.ABCAnalysis(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *AnalyticsHandler) GetPerformanceMetrics(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	report, err := h.service.PerformanceMetrics(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *AnalyticsHandler) GetDashboard(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	dashboard, err := h.service.Dashboard(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

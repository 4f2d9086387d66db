package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vidyonnati/foundation-backend/service"
)

type AdminHandler struct {
	applications service.ApplicationService
	insights     service.InsightService
}

func NewAdminHandler(applications service.ApplicationService, insights service.InsightService) *AdminHandler {
	return &AdminHandler{applications: applications, insights: insights}
}

// GET /api/admin/applications?status=&page=&page_size=
func (h *AdminHandler) ListApplications(c *gin.Context) {
	page, pageSize := pagination(c)
	apps, total, err := h.applications.List(c.Query("status"), page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps, "total": total, "page": page, "page_size": pageSize})
}

// GET /api/admin/applications/:id
func (h *AdminHandler) ApplicationDetail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	app, docs, err := h.applications.Detail(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"application": app, "documents": docs})
}

// PATCH /api/admin/applications/:id/status
func (h *AdminHandler) UpdateApplicationStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		Status        string `json:"status"`
		ReviewerNotes string `json:"reviewer_notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}
	app, err := h.applications.UpdateStatus(c.Request.Context(), id, req.Status, req.ReviewerNotes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app)
}

// GET /api/admin/applications/:id/insight
func (h *AdminHandler) ApplicationInsight(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	insight, err := h.insights.EssaySummary(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, insight)
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func pagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

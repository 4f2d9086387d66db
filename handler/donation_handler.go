package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vidyonnati/foundation-backend/models"
	"github.com/vidyonnati/foundation-backend/service"
)

type DonationHandler struct {
	donations service.DonationService
}

func NewDonationHandler(donations service.DonationService) *DonationHandler {
	return &DonationHandler{donations: donations}
}

// POST /api/donations — public intake from the marketing pages.
func (h *DonationHandler) Create(c *gin.Context) {
	var req struct {
		DonorName string  `json:"donor_name"`
		Email     string  `json:"email"`
		Phone     string  `json:"phone"`
		AmountINR float64 `json:"amount_inr"`
		Method    string  `json:"method"`
		Message   string  `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.DonorName == "" || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "donor_name and email are required"})
		return
	}
	donation := &models.Donation{
		DonorName: req.DonorName,
		Email:     req.Email,
		Phone:     req.Phone,
		AmountINR: req.AmountINR,
		Method:    req.Method,
		Message:   req.Message,
	}
	if err := h.donations.Record(c.Request.Context(), donation); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, donation)
}

// GET /api/admin/donations
func (h *DonationHandler) List(c *gin.Context) {
	page, pageSize := pagination(c)
	donations, total, err := h.donations.List(c.Query("status"), page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"donations": donations, "total": total, "page": page, "page_size": pageSize})
}

// PATCH /api/admin/donations/:id/status
func (h *DonationHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status"`
		Notes  string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}
	if err := h.donations.UpdateStatus(id, req.Status, req.Notes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vidyonnati/foundation-backend/forms"
	"github.com/vidyonnati/foundation-backend/models"
	"github.com/vidyonnati/foundation-backend/service"
)

type WizardHandler struct {
	wizard service.WizardService
	auth   service.AuthService
}

func NewWizardHandler(wizard service.WizardService, auth service.AuthService) *WizardHandler {
	return &WizardHandler{wizard: wizard, auth: auth}
}

type wizardRequest struct {
	Type   string            `json:"type"`
	Step   int               `json:"step"`
	To     string            `json:"to"`
	Values map[string]string `json:"values"`
}

// GET /api/wizard/state?type=first_year
func (h *WizardHandler) State(c *gin.Context) {
	user, ok := currentUser(c, h.auth)
	if !ok {
		return
	}
	variant, err := forms.ParseVariant(c.DefaultQuery("type", string(forms.VariantFirstYear)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	state, err := h.wizard.State(c.Request.Context(), user, variant)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}

// POST /api/wizard/next
func (h *WizardHandler) Next(c *gin.Context) {
	user, req, ok := h.bind(c)
	if !ok {
		return
	}
	variant, err := forms.ParseVariant(req.Type)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	state, fieldErrors, err := h.wizard.Next(c.Request.Context(), user, variant, req.Values)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(fieldErrors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrors, "state": state})
		return
	}
	c.JSON(http.StatusOK, state)
}

// POST /api/wizard/back
func (h *WizardHandler) Back(c *gin.Context) {
	user, req, ok := h.bind(c)
	if !ok {
		return
	}
	variant, err := forms.ParseVariant(req.Type)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	state, err := h.wizard.Back(c.Request.Context(), user, variant, req.Values)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}

// POST /api/wizard/jump
func (h *WizardHandler) Jump(c *gin.Context) {
	user, req, ok := h.bind(c)
	if !ok {
		return
	}
	variant, err := forms.ParseVariant(req.Type)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	state, err := h.wizard.JumpTo(c.Request.Context(), user, variant, req.Step, req.Values)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}

// POST /api/wizard/variant — scholarship flow only: switch between
// first_year and second_year without mixing drafts.
func (h *WizardHandler) ChangeVariant(c *gin.Context) {
	user, req, ok := h.bind(c)
	if !ok {
		return
	}
	from, err := forms.ParseVariant(req.Type)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	to, err := forms.ParseVariant(req.To)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	state, err := h.wizard.ChangeVariant(c.Request.Context(), user, from, to, req.Values)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *WizardHandler) bind(c *gin.Context) (*models.User, *wizardRequest, bool) {
	user, ok := currentUser(c, h.auth)
	if !ok {
		return nil, nil, false
	}
	var req wizardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return nil, nil, false
	}
	if req.Values == nil {
		req.Values = map[string]string{}
	}
	return user, &req, true
}

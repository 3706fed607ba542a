package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lengolf/internal/service"
)

// SettingHandler handles settings endpoints.
type SettingHandler struct {
	settingService service.SettingService
}

// NewSettingHandler creates a new SettingHandler.
func NewSettingHandler(settingService service.SettingService) *SettingHandler {
	return &SettingHandler{settingService: settingService}
}

// List handles GET /api/v1/settings
func (h *SettingHandler) List(c *gin.Context) {
	settings, err := h.settingService.All(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, settings)
}

// Update handles PUT /api/v1/settings
func (h *SettingHandler) Update(c *gin.Context) {
	var input service.UpdateSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.settingService.Update(c.Request.Context(), input); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "settings updated"})
}

package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/webblaze/projectflow-be/service"
	"github.com/webblaze/projectflow-be/types"
)

type SettingsHandler interface {
	HandleGetSettings(c *gin.Context)
	HandleUpdateNotifications(c *gin.Context)
	HandleUpdateAppearance(c *gin.Context)
	HandleUpdateSecurity(c *gin.Context)
	HandleUpdatePrivacy(c *gin.Context)
}

type settingsHandler struct {
	settingsService service.SettingsService
}

func NewSettingsHandler(settingsService service.SettingsService) SettingsHandler {
	return &settingsHandler{
		settingsService: settingsService,
	}
}

func (h *settingsHandler) HandleGetSettings(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	settings, err := h.settingsService.Get(c.Request.Context(), principal.AccountID())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", settings)
}

func (h *settingsHandler) HandleUpdateNotifications(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req types.UpdateNotificationSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	settings, err := h.settingsService.UpdateNotifications(c.Request.Context(), principal.AccountID(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Notification settings updated", settings)
}

func (h *settingsHandler) HandleUpdateAppearance(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req types.UpdateAppearanceSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	settings, err := h.settingsService.UpdateAppearance(c.Request.Context(), principal.AccountID(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Appearance settings updated", settings)
}

func (h *settingsHandler) HandleUpdateSecurity(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req types.UpdateSecuritySettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	settings, err := h.settingsService.UpdateSecurity(c.Request.Context(), principal.AccountID(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Security settings updated", settings)
}

func (h *settingsHandler) HandleUpdatePrivacy(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req types.UpdatePrivacySettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	settings, err := h.settingsService.UpdatePrivacy(c.Request.Context(), principal.AccountID(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Privacy settings updated", settings)
}

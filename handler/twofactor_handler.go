package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/webblaze/projectflow-be/service"
	"github.com/webblaze/projectflow-be/types"
)

type TwoFactorHandler interface {
	HandleSetup(c *gin.Context)
	HandleEnable(c *gin.Context)
	HandleDisable(c *gin.Context)
	HandleVerify(c *gin.Context)
	HandleValidateDeviceToken(c *gin.Context)
	HandleListTrustedDevices(c *gin.Context)
	HandleRemoveTrustedDevice(c *gin.Context)
	HandleGetBackupCodes(c *gin.Context)
	HandleRegenerateBackupCodes(c *gin.Context)
}

type twoFactorHandler struct {
	twoFactorService service.TwoFactorService
}

func NewTwoFactorHandler(twoFactorService service.TwoFactorService) TwoFactorHandler {
	return &twoFactorHandler{
		twoFactorService: twoFactorService,
	}
}

func (h *twoFactorHandler) HandleSetup(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	resp, err := h.twoFactorService.Setup(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Scan the QR code and confirm with a code to enable", resp)
}

func (h *twoFactorHandler) HandleEnable(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req types.TwoFactorCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	if err := h.twoFactorService.Enable(c.Request.Context(), principal, req.Token); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Two-factor authentication enabled", nil)
}

func (h *twoFactorHandler) HandleDisable(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req types.TwoFactorCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	if err := h.twoFactorService.Disable(c.Request.Context(), principal, req.Token); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Two-factor authentication disabled", nil)
}

func (h *twoFactorHandler) HandleVerify(c *gin.Context) {
	var req types.VerifyTwoFactorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	resp, err := h.twoFactorService.Verify(c.Request.Context(), &req,
		c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Verification successful", resp)
}

func (h *twoFactorHandler) HandleValidateDeviceToken(c *gin.Context) {
	var req types.ValidateDeviceTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	resp, err := h.twoFactorService.ValidateDeviceToken(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Device recognized", resp)
}

func (h *twoFactorHandler) HandleListTrustedDevices(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	devices, err := h.twoFactorService.TrustedDevices(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", devices)
}

func (h *twoFactorHandler) HandleRemoveTrustedDevice(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	if err := h.twoFactorService.RemoveTrustedDevice(c.Request.Context(), principal, c.Param("deviceId")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Trusted device removed", nil)
}

func (h *twoFactorHandler) HandleGetBackupCodes(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	codes, err := h.twoFactorService.BackupCodes(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", codes)
}

func (h *twoFactorHandler) HandleRegenerateBackupCodes(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	codes, err := h.twoFactorService.RegenerateBackupCodes(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Backup codes regenerated", codes)
}

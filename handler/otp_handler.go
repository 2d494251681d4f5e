package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/webblaze/projectflow-be/service"
	"github.com/webblaze/projectflow-be/types"
)

type OTPHandler interface {
	HandleSendOTP(c *gin.Context)
	HandleVerifyOTP(c *gin.Context)
	HandleResetPassword(c *gin.Context)
}

type otpHandler struct {
	otpService service.OTPService
}

func NewOTPHandler(otpService service.OTPService) OTPHandler {
	return &otpHandler{
		otpService: otpService,
	}
}

func (h *otpHandler) HandleSendOTP(c *gin.Context) {
	var req types.SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	if err := h.otpService.Send(c.Request.Context(), &req); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Reset code sent", nil)
}

func (h *otpHandler) HandleVerifyOTP(c *gin.Context) {
	var req types.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	if err := h.otpService.Verify(c.Request.Context(), &req); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Code verified", nil)
}

func (h *otpHandler) HandleResetPassword(c *gin.Context) {
	var req types.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	if err := h.otpService.ResetPassword(c.Request.Context(), &req); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Password reset", nil)
}

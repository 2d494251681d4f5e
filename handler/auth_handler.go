package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/webblaze/projectflow-be/service"
	"github.com/webblaze/projectflow-be/types"
)

type AuthHandler interface {
	HandleRegister(c *gin.Context)
	HandleLogin(c *gin.Context)
	HandleGetProfile(c *gin.Context)
	HandleUpdateProfile(c *gin.Context)
}

type authHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) AuthHandler {
	return &authHandler{
		authService: authService,
	}
}

func (h *authHandler) HandleRegister(c *gin.Context) {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	user, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Account registered", user)
}

func (h *authHandler) HandleLogin(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	if resp.RequiresTwoFactor {
		respondOK(c, "Two-factor verification required", resp)
		return
	}
	respondOK(c, "Login successful", resp)
}

func (h *authHandler) HandleGetProfile(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	user, err := h.authService.GetProfile(c.Request.Context(), principal.AccountID())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", user)
}

func (h *authHandler) HandleUpdateProfile(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	user, err := h.authService.UpdateProfile(c.Request.Context(), principal.AccountID(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Profile updated", user)
}

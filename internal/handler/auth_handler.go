package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/licitapro/licita_api/internal/cache"
	"github.com/licitapro/licita_api/internal/service"
	"github.com/licitapro/licita_api/internal/utils"
)

type AuthHandler struct {
	authService  *service.AdminAuthService
	loginLimiter *cache.LoginLimiter
}

func NewAuthHandler(authService *service.AdminAuthService, loginLimiter *cache.LoginLimiter) *AuthHandler {
	return &AuthHandler{authService: authService, loginLimiter: loginLimiter}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	ip := c.ClientIP()
	ctx := c.Request.Context()

	if h.loginLimiter.Blocked(ctx, ip) {
		utils.Error(c, 429, "TOO_MANY_ATTEMPTS", "Too many login attempts, try again later")
		return
	}

	token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if h.loginLimiter.RegisterFailure(ctx, ip) {
			utils.Error(c, 429, "TOO_MANY_ATTEMPTS", "Too many login attempts, try again later")
			return
		}
		utils.Error(c, 401, "INVALID_CREDENTIALS", err.Error())
		return
	}

	h.loginLimiter.Reset(ctx, ip)

	utils.Success(c, 200, "Login successful", gin.H{
		"token": token,
	})
}

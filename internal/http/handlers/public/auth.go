package public

import (
	"github.com/shopvn-next/internal/http/response"
	"github.com/shopvn-next/internal/i18n"
	"github.com/shopvn-next/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name" binding:"omitempty,max=100"`
}

// Register 用户注册
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, i18n.MsgBadRequest, err)
		return
	}

	user, err := h.UserAuthService.Register(service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	response.SuccessWithMsg(c, i18n.T(i18n.ResolveLocale(c), i18n.MsgRegisterSuccess), gin.H{
		"user": user,
	})
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login 用户登录
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, i18n.MsgBadRequest, err)
		return
	}

	user, token, expiresAt, err := h.UserAuthService.Login(service.LoginInput{
		Email:     req.Email,
		Password:  req.Password,
		ClientIP:  c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		RequestID: requestID(c),
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	response.SuccessWithMsg(c, i18n.T(i18n.ResolveLocale(c), i18n.MsgLoginSuccess), gin.H{
		"access_token": token,
		"token_type":   "Bearer",
		"expires_at":   expiresAt,
		"user":         user,
	})
}

// Logout 退出登录
func (h *Handler) Logout(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	if err := h.UserAuthService.Logout(userID); err != nil {
		respondError(c, response.CodeInternal, i18n.MsgInternalError, err)
		return
	}
	response.SuccessWithMsg(c, i18n.T(i18n.ResolveLocale(c), i18n.MsgLogoutSuccess), nil)
}

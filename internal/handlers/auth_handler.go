package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glowline/salon-scheduler/internal/httperr"
	"github.com/glowline/salon-scheduler/internal/httpresp"
	"github.com/glowline/salon-scheduler/internal/middleware"
	"github.com/glowline/salon-scheduler/internal/session"
)

type AuthHandler struct {
	store *session.Store
}

func NewAuthHandler(store *session.Store) *AuthHandler {
	return &AuthHandler{store: store}
}

// --------- Requests ---------

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	sess, err := h.store.Signup(c.Request.Context(), session.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":       sess.User,
		"token":      sess.Token,
		"expires_at": sess.ExpiresAt,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	sess, err := h.store.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":       sess.User,
		"token":      sess.Token,
		"expires_at": sess.ExpiresAt,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if token := middleware.BearerToken(c); token != "" {
		h.store.Clear(c.Request.Context(), token)
	}
	httpresp.OK(c, gin.H{"status": "ok"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	httpresp.OK(c, gin.H{"user": sess.User, "expires_at": sess.ExpiresAt})
}

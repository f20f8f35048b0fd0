package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glowline/salon-scheduler/internal/httperr"
	"github.com/glowline/salon-scheduler/internal/httpresp"
	"github.com/glowline/salon-scheduler/internal/middleware"
	"github.com/glowline/salon-scheduler/internal/models"
	"github.com/glowline/salon-scheduler/internal/session"
)

type ProfileHandler struct {
	db    *gorm.DB
	store *session.Store
}

func NewProfileHandler(db *gorm.DB, store *session.Store) *ProfileHandler {
	return &ProfileHandler{db: db, store: store}
}

type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

func (h *ProfileHandler) Update(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var user models.User
	if err := h.db.First(&user, sess.User.ID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	user.Name = req.Name
	user.Phone = req.Phone

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "update_failed", "Could not update profile.")
		return
	}

	profile := session.Profile{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
		Role:  user.Role,
	}

	if token := middleware.BearerToken(c); token != "" {
		if err := h.store.UpdateCachedProfile(c.Request.Context(), token, profile); err != nil {
			httperr.Internal(c, "update_failed", "Could not refresh session.")
			return
		}
	}

	httpresp.OK(c, gin.H{"user": profile})
}

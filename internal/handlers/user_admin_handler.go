package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glowline/salon-scheduler/internal/httperr"
	"github.com/glowline/salon-scheduler/internal/httpresp"
	"github.com/glowline/salon-scheduler/internal/models"
)

type UserAdminHandler struct {
	db *gorm.DB
}

func NewUserAdminHandler(db *gorm.DB) *UserAdminHandler {
	return &UserAdminHandler{db: db}
}

func (h *UserAdminHandler) List(c *gin.Context) {
	var users []models.User
	if err := h.db.Order("created_at DESC").Find(&users).Error; err != nil {
		httperr.Internal(c, "list_failed", "Could not load users.")
		return
	}
	httpresp.List(c, users)
}

// Deactivate soft-disables an account. Users are never hard-deleted.
func (h *UserAdminHandler) Deactivate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid user id.")
		return
	}

	var user models.User
	if err := h.db.First(&user, uint(id)).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	user.Active = false
	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "update_failed", "Could not deactivate user.")
		return
	}

	httpresp.OK(c, gin.H{"status": "ok"})
}

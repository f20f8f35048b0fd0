package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glowline/salon-scheduler/internal/httperr"
	"github.com/glowline/salon-scheduler/internal/httpresp"
	"github.com/glowline/salon-scheduler/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// List returns the active catalog customers pick from.
func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Where("active = ?", true).
		Order("category, name").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "list_failed", "Could not load services.")
		return
	}
	httpresp.List(c, services)
}

// ListAll is the admin view, deactivated services included.
func (h *ServiceHandler) ListAll(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("category, name").Find(&services).Error; err != nil {
		httperr.Internal(c, "list_failed", "Could not load services.")
		return
	}
	httpresp.List(c, services)
}

type ServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	DurationMin int     `json:"duration_min" binding:"required,gt=0"`
	Category    string  `json:"category"`
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	svc := models.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		DurationMin: req.DurationMin,
		Category:    req.Category,
		Active:      true,
	}
	if svc.Category == "" {
		svc.Category = "General"
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "create_failed", "Could not create service.")
		return
	}

	httpresp.Created(c, svc)
}

type ServiceUpdateRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	DurationMin *int     `json:"duration_min"`
	Category    *string  `json:"category"`
	Active      *bool    `json:"active"`
}

// Update edits the catalog row. Existing appointments are unaffected:
// they carry their own price/duration snapshots.
func (h *ServiceHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid service id.")
		return
	}

	var req ServiceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, uint(id)).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "The selected service does not exist.")
		return
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			httperr.BadRequest(c, "invalid_price", "Price must be positive.")
			return
		}
		svc.Price = *req.Price
	}
	if req.DurationMin != nil {
		if *req.DurationMin <= 0 {
			httperr.BadRequest(c, "invalid_duration", "Duration must be positive.")
			return
		}
		svc.DurationMin = *req.DurationMin
	}
	if req.Category != nil {
		svc.Category = *req.Category
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "update_failed", "Could not update service.")
		return
	}

	httpresp.OK(c, svc)
}

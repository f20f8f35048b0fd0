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

type StaffHandler struct {
	db *gorm.DB
}

func NewStaffHandler(db *gorm.DB) *StaffHandler {
	return &StaffHandler{db: db}
}

func (h *StaffHandler) List(c *gin.Context) {
	var staff []models.StaffMember
	if err := h.db.
		Where("active = ?", true).
		Order("name").
		Find(&staff).Error; err != nil {
		httperr.Internal(c, "list_failed", "Could not load staff.")
		return
	}
	httpresp.List(c, staff)
}

type StaffRequest struct {
	Name      string  `json:"name" binding:"required"`
	Specialty string  `json:"specialty"`
	Rating    float64 `json:"rating"`
}

func (h *StaffHandler) Create(c *gin.Context) {
	var req StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	staff := models.StaffMember{
		Name:      req.Name,
		Specialty: req.Specialty,
		Rating:    req.Rating,
		Active:    true,
	}

	if err := h.db.Create(&staff).Error; err != nil {
		httperr.Internal(c, "create_failed", "Could not create staff member.")
		return
	}

	httpresp.Created(c, staff)
}

type StaffUpdateRequest struct {
	Name      *string  `json:"name"`
	Specialty *string  `json:"specialty"`
	Rating    *float64 `json:"rating"`
	Active    *bool    `json:"active"`
}

func (h *StaffHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid staff id.")
		return
	}

	var req StaffUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var staff models.StaffMember
	if err := h.db.First(&staff, uint(id)).Error; err != nil {
		httperr.NotFound(c, "staff_not_found", "The selected staff member does not exist.")
		return
	}

	if req.Name != nil {
		staff.Name = *req.Name
	}
	if req.Specialty != nil {
		staff.Specialty = *req.Specialty
	}
	if req.Rating != nil {
		staff.Rating = *req.Rating
	}
	if req.Active != nil {
		staff.Active = *req.Active
	}

	if err := h.db.Save(&staff).Error; err != nil {
		httperr.Internal(c, "update_failed", "Could not update staff member.")
		return
	}

	httpresp.OK(c, staff)
}

// ------------------------------
// Working hours
// ------------------------------

type WorkingHoursEntry struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Active    bool   `json:"active"`
}

func (h *StaffHandler) GetWorkingHours(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid staff id.")
		return
	}

	var hours []models.WorkingHours
	if err := h.db.
		Where("staff_id = ?", uint(id)).
		Order("weekday").
		Find(&hours).Error; err != nil {
		httperr.Internal(c, "list_failed", "Could not load working hours.")
		return
	}

	httpresp.List(c, hours)
}

// UpdateWorkingHours replaces the whole weekly schedule for one staff
// member in a single transaction.
func (h *StaffHandler) UpdateWorkingHours(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid staff id.")
		return
	}

	var entries []WorkingHoursEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	staffID := uint(id)

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("staff_id = ?", staffID).Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}
		for _, e := range entries {
			wh := models.WorkingHours{
				StaffID:   staffID,
				Weekday:   e.Weekday,
				StartTime: e.StartTime,
				EndTime:   e.EndTime,
				Active:    e.Active,
			}
			if err := tx.Create(&wh).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "update_failed", "Could not update working hours.")
		return
	}

	httpresp.OK(c, gin.H{"status": "ok"})
}

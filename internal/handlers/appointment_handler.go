package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/glowline/salon-scheduler/internal/booking"
	domain "github.com/glowline/salon-scheduler/internal/domain/appointment"
	"github.com/glowline/salon-scheduler/internal/httperr"
	"github.com/glowline/salon-scheduler/internal/httpresp"
	"github.com/glowline/salon-scheduler/internal/middleware"
	"github.com/glowline/salon-scheduler/internal/models"
	"github.com/glowline/salon-scheduler/internal/timezone"
	ucappointment "github.com/glowline/salon-scheduler/internal/usecase/appointment"
)

type AppointmentHandler struct {
	repo         domain.Repository
	availability *ucappointment.GetAvailability
	create       *ucappointment.CreateAppointment
	confirm      *ucappointment.ConfirmAppointment
	complete     *ucappointment.CompleteAppointment
	cancel       *ucappointment.CancelAppointment
	list         *ucappointment.ListAppointments
	tz           string
}

func NewAppointmentHandler(
	repo domain.Repository,
	availability *ucappointment.GetAvailability,
	create *ucappointment.CreateAppointment,
	confirm *ucappointment.ConfirmAppointment,
	complete *ucappointment.CompleteAppointment,
	cancel *ucappointment.CancelAppointment,
	list *ucappointment.ListAppointments,
	tz string,
) *AppointmentHandler {
	return &AppointmentHandler{
		repo:         repo,
		availability: availability,
		create:       create,
		confirm:      confirm,
		complete:     complete,
		cancel:       cancel,
		list:         list,
		tz:           tz,
	}
}

func actorFrom(c *gin.Context) domain.Actor {
	sess := middleware.SessionFrom(c)
	return domain.Actor{UserID: sess.User.ID, Role: sess.User.Role}
}

// ------------------------------
// Availability
// ------------------------------

func (h *AppointmentHandler) Availability(c *gin.Context) {
	staffID, err1 := strconv.ParseUint(c.Query("staff_id"), 10, 64)
	serviceID, err2 := strconv.ParseUint(c.Query("service_id"), 10, 64)
	date, err3 := timezone.ParseDate(h.tz, c.Query("date"))
	if err1 != nil || err2 != nil || err3 != nil {
		httperr.BadRequest(c, "invalid_query", "staff_id, service_id and date are required.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		StaffID:   uint(staffID),
		ServiceID: uint(serviceID),
		Date:      date,
	})
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	httpresp.List(c, slots)
}

// ------------------------------
// Create (runs the booking wizard end to end)
// ------------------------------

type CreateAppointmentRequest struct {
	ServiceID uint   `json:"service_id" binding:"required"`
	StaffID   uint   `json:"staff_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Notes     string `json:"notes"`
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ctx := c.Request.Context()

	svc, err := h.repo.GetService(ctx, req.ServiceID)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	date, err := timezone.ParseDate(h.tz, req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "The date is not valid.")
		return
	}

	// Drive the wizard through its steps so every advance is
	// validated the same way an interactive client would be.
	wf := booking.NewWorkflow(h.availability, h.create, middleware.SessionFrom(c))

	if err := wf.SelectService(svc); err != nil {
		httperr.FromDomain(c, err)
		return
	}
	if err := wf.ChooseSlot(ctx, req.StaffID, date, req.Time); err != nil {
		h.respondBookingFailure(c, wf, err)
		return
	}
	wf.SetNotes(req.Notes)

	if err := wf.Submit(ctx); err != nil {
		h.respondBookingFailure(c, wf, err)
		return
	}

	httpresp.Created(c, gin.H{"appointment": wf.Result()})
}

// respondBookingFailure surfaces a conflict together with the
// re-fetched slots so the client can return straight to slot
// selection without another round trip.
func (h *AppointmentHandler) respondBookingFailure(c *gin.Context, wf *booking.Workflow, err error) {
	if httperr.IsKind(err, httperr.KindConflict) {
		c.JSON(http.StatusConflict, gin.H{
			"error_code":      "slot_no_longer_available",
			"message":         "That time slot was just taken. Please pick another.",
			"available_slots": wf.RefreshedSlots(),
		})
		return
	}
	httperr.FromDomain(c, err)
}

// ------------------------------
// Read
// ------------------------------

func (h *AppointmentHandler) List(c *gin.Context) {
	out, err := h.list.Execute(c.Request.Context(), actorFrom(c))
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}
	httpresp.List(c, out)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	ap, err := h.repo.GetAppointment(c.Request.Context(), uint(id))
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	actor := actorFrom(c)
	if actor.Role == models.RoleCustomer && ap.CustomerID != actor.UserID {
		httperr.Forbidden(c, "not_your_appointment", "You may only view your own appointments.")
		return
	}

	httpresp.OK(c, gin.H{"appointment": ap})
}

// ------------------------------
// Lifecycle transitions
// ------------------------------

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.transition(c, func(c *gin.Context, id uint) (*models.Appointment, error) {
		return h.confirm.Execute(c.Request.Context(), actorFrom(c), id)
	})
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, func(c *gin.Context, id uint) (*models.Appointment, error) {
		return h.complete.Execute(c.Request.Context(), actorFrom(c), id)
	})
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, func(c *gin.Context, id uint) (*models.Appointment, error) {
		return h.cancel.Execute(c.Request.Context(), actorFrom(c), id)
	})
}

func (h *AppointmentHandler) transition(
	c *gin.Context,
	run func(c *gin.Context, id uint) (*models.Appointment, error),
) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	ap, err := run(c, uint(id))
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	httpresp.OK(c, gin.H{"appointment": ap})
}

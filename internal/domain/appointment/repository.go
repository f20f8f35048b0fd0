package appointment

import (
	"context"
	"time"

	"github.com/glowline/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Catalog --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	GetStaffMember(
		ctx context.Context,
		id uint,
	) (*models.StaffMember, error)

	GetWorkingHours(
		ctx context.Context,
		staffID uint,
		weekday int,
	) (*models.WorkingHours, error)

	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	AssertNoOverlap(
		ctx context.Context,
		staffID uint,
		start time.Time,
		end time.Time,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listing --------

	// ListForStaffDay returns the staff member's non-cancelled
	// appointments starting in [start, end), ordered by start time
	// ascending. ResolveSlots relies on that ordering.
	ListForStaffDay(
		ctx context.Context,
		staffID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListForCustomer(
		ctx context.Context,
		customerID uint,
	) ([]models.Appointment, error)

	ListAll(
		ctx context.Context,
	) ([]models.Appointment, error)

	// -------- Sweep --------
	ListPendingBefore(
		ctx context.Context,
		cutoff time.Time,
	) ([]models.Appointment, error)
}

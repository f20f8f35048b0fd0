package appointment

import (
	"context"
	"time"

	"github.com/glowline/salon-scheduler/internal/audit"
	domain "github.com/glowline/salon-scheduler/internal/domain/appointment"
	"github.com/glowline/salon-scheduler/internal/httperr"
	"github.com/glowline/salon-scheduler/internal/models"
	"github.com/glowline/salon-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	CustomerID uint
	StaffID    uint
	ServiceID  uint

	Date  string
	Time  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

// CreateAppointment is the single authoritative point where a double
// booking is prevented: the overlap invariant is re-checked against
// the live appointment set here, and the storage unique index catches
// the race the pre-check cannot see.
type CreateAppointment struct {
	repo  domain.Repository
	audit audit.Sink
	tz    string
}

func NewCreateAppointment(
	repo domain.Repository,
	audit audit.Sink,
	tz string,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		tz:    tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Date / time in the salon timezone
	// --------------------------------------------------
	start, err := timezone.ParseDateTime(uc.tz, in.Date, in.Time)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_date_or_time")
	}

	now := timezone.NowIn(uc.tz)
	if !start.After(now) {
		return nil, httperr.ErrValidation("appointment_in_past")
	}

	// --------------------------------------------------
	// Service (price/duration are snapshotted from here)
	// --------------------------------------------------
	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !svc.Active {
		return nil, httperr.ErrValidation("service_not_found")
	}

	end := start.Add(time.Duration(svc.DurationMin) * time.Minute)

	// --------------------------------------------------
	// Staff + working hours
	// --------------------------------------------------
	staff, err := uc.repo.GetStaffMember(ctx, in.StaffID)
	if err != nil {
		return nil, err
	}
	if !staff.Active {
		return nil, httperr.ErrValidation("staff_not_found")
	}

	wh, err := uc.repo.GetWorkingHours(ctx, in.StaffID, int(start.Weekday()))
	if err != nil {
		if httperr.IsKind(err, httperr.KindNotFound) {
			return nil, httperr.ErrValidation("outside_working_hours")
		}
		return nil, err
	}
	if !domain.WithinWorkingHours(wh, start, end) {
		return nil, httperr.ErrValidation("outside_working_hours")
	}

	// --------------------------------------------------
	// Overlap check against the live set
	// --------------------------------------------------
	if err := uc.repo.AssertNoOverlap(ctx, in.StaffID, start, end); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Creation (snapshots frozen at booking time)
	// --------------------------------------------------
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())

	ap := &models.Appointment{
		CustomerID:          in.CustomerID,
		StaffID:             in.StaffID,
		ServiceID:           svc.ID,
		Date:                day,
		Time:                start.Format("15:04"),
		StartTime:           start,
		EndTime:             end,
		Status:              string(domain.InitialStatus()),
		PriceSnapshot:       svc.Price,
		DurationSnapshotMin: svc.DurationMin,
		Notes:               in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.CustomerID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

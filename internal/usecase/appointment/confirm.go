package appointment

import (
	"context"

	"github.com/glowline/salon-scheduler/internal/audit"
	domain "github.com/glowline/salon-scheduler/internal/domain/appointment"
	"github.com/glowline/salon-scheduler/internal/models"
	"github.com/glowline/salon-scheduler/internal/timezone"
)

type ConfirmAppointment struct {
	repo  domain.Repository
	audit audit.Sink
	tz    string
}

func NewConfirmAppointment(
	repo domain.Repository,
	audit audit.Sink,
	tz string,
) *ConfirmAppointment {
	return &ConfirmAppointment{
		repo:  repo,
		audit: audit,
		tz:    tz,
	}
}

func (uc *ConfirmAppointment) Execute(
	ctx context.Context,
	actor domain.Actor,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.Confirm(ap, actor, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actor.UserID,
		Action:   "appointment_confirmed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

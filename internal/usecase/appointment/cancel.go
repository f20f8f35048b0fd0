package appointment

import (
	"context"

	"github.com/glowline/salon-scheduler/internal/audit"
	domain "github.com/glowline/salon-scheduler/internal/domain/appointment"
	"github.com/glowline/salon-scheduler/internal/models"
	"github.com/glowline/salon-scheduler/internal/timezone"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit audit.Sink
	tz    string
}

func NewCancelAppointment(
	repo domain.Repository,
	audit audit.Sink,
	tz string,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
		tz:    tz,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actor domain.Actor,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.Cancel(ap, actor, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actor.UserID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

package appointment

import (
	"time"

	"github.com/glowline/salon-scheduler/internal/httperr"
	"github.com/glowline/salon-scheduler/internal/models"
)

// Actor is whoever is driving a lifecycle transition.
type Actor struct {
	UserID uint
	Role   string
}

func Confirm(ap *models.Appointment, actor Actor, now time.Time) error {
	next, err := Next(TransitionConfirm, Status(ap.Status), actor.Role)
	if err != nil {
		return err
	}

	ap.Status = string(next)
	ap.ConfirmedAt = &now
	return nil
}

func Complete(ap *models.Appointment, actor Actor, now time.Time) error {
	next, err := Next(TransitionComplete, Status(ap.Status), actor.Role)
	if err != nil {
		return err
	}

	ap.Status = string(next)
	ap.CompletedAt = &now
	return nil
}

// Cancel applies the customer-specific rules before consulting the
// transition table: a customer may only cancel their own appointment,
// and only while its start time is still in the future. Staff and
// admin may cancel any appointment in a cancellable state.
func Cancel(ap *models.Appointment, actor Actor, now time.Time) error {
	if actor.Role == models.RoleCustomer {
		if ap.CustomerID != actor.UserID {
			return httperr.ErrForbidden("not_your_appointment")
		}
		if !ap.StartTime.After(now) {
			return httperr.ErrValidation("appointment_in_past")
		}
	}

	next, err := Next(TransitionCancel, Status(ap.Status), actor.Role)
	if err != nil {
		return err
	}

	ap.Status = string(next)
	ap.CancelledAt = &now
	return nil
}

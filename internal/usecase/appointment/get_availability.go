package appointment

import (
	"context"
	"time"

	domain "github.com/glowline/salon-scheduler/internal/domain/appointment"
	"github.com/glowline/salon-scheduler/internal/httperr"
)

// GetAvailability computes the bookable slots for one staff member,
// one day, one service duration. It is recomputed on every call; slot
// output is never cached, so a change in the appointment set is
// reflected on the next request.
type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !svc.Active || svc.DurationMin <= 0 {
		return nil, httperr.ErrValidation("service_not_found")
	}

	weekday := int(in.Date.Weekday())

	wh, err := uc.repo.GetWorkingHours(ctx, in.StaffID, weekday)
	if err != nil {
		if httperr.IsKind(err, httperr.KindNotFound) {
			// Day off, not a failure.
			return []domain.TimeSlot{}, nil
		}
		return nil, err
	}

	open, close, ok := domain.DayWindow(wh, in.Date)
	if !ok {
		return []domain.TimeSlot{}, nil
	}

	appointments, err := uc.repo.ListForStaffDay(ctx, in.StaffID, open, close)
	if err != nil {
		return nil, err
	}

	busy := make([]domain.BusyInterval, 0, len(appointments))
	for _, ap := range appointments {
		busy = append(busy, domain.BusyInterval{
			Start: ap.StartTime,
			End:   ap.EndTime,
		})
	}

	duration := time.Duration(svc.DurationMin) * time.Minute
	return domain.ResolveSlots(open, close, duration, busy), nil
}

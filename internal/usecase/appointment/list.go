package appointment

import (
	"context"

	domain "github.com/glowline/salon-scheduler/internal/domain/appointment"
	"github.com/glowline/salon-scheduler/internal/dto"
	"github.com/glowline/salon-scheduler/internal/models"
)

// ListAppointments returns the caller's own appointments for a
// customer, or every appointment for staff and admin.
type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	actor domain.Actor,
) ([]dto.AppointmentListDTO, error) {

	var (
		appointments []models.Appointment
		err          error
	)

	if actor.Role == models.RoleCustomer {
		appointments, err = uc.repo.ListForCustomer(ctx, actor.UserID)
	} else {
		appointments, err = uc.repo.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:           ap.ID,
			Date:         ap.Date.Format("2006-01-02"),
			Time:         ap.Time,
			StartTime:    ap.StartTime,
			EndTime:      ap.EndTime,
			Status:       ap.Status,
			CustomerName: ap.Customer.Name,
			StaffName:    ap.Staff.Name,
			ServiceName:  ap.Service.Name,
			Price:        ap.PriceSnapshot,
		})
	}

	return out, nil
}

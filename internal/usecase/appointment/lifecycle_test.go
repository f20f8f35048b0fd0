package appointment

import (
	"context"
	"testing"
	"time"

	domain "github.com/glowline/salon-scheduler/internal/domain/appointment"
	"github.com/glowline/salon-scheduler/internal/httperr"
	"github.com/glowline/salon-scheduler/internal/models"
)

func seedAppointment(repo *fakeRepo, customerID uint, status domain.Status, start time.Time) uint {
	return repo.seed(models.Appointment{
		CustomerID:          customerID,
		StaffID:             2,
		ServiceID:           1,
		Date:                start.Truncate(24 * time.Hour),
		Time:                start.Format("15:04"),
		StartTime:           start,
		EndTime:             start.Add(45 * time.Minute),
		Status:              string(status),
		PriceSnapshot:       1500,
		DurationSnapshotMin: 45,
	})
}

func TestConfirmPendingAppointment(t *testing.T) {
	repo := newFakeRepo()
	sink := &fakeSink{}
	uc := NewConfirmAppointment(repo, sink, testTZ)

	id := seedAppointment(repo, 7, domain.StatusPending, time.Now().UTC().Add(24*time.Hour))
	actor := domain.Actor{UserID: 3, Role: models.RoleStaff}

	ap, err := uc.Execute(context.Background(), actor, id)
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if ap.Status != string(domain.StatusConfirmed) || ap.ConfirmedAt == nil {
		t.Fatalf("confirm did not apply: %+v", ap)
	}

	stored, _ := repo.GetAppointment(context.Background(), id)
	if stored.Status != string(domain.StatusConfirmed) {
		t.Fatalf("confirm not persisted: %q", stored.Status)
	}

	if _, err := uc.Execute(context.Background(), actor, id); !httperr.IsCode(err, "invalid_state") {
		t.Fatalf("expected invalid_state on second confirm, got %v", err)
	}

	if got := sink.actions(); len(got) != 1 || got[0] != "appointment_confirmed" {
		t.Fatalf("expected one appointment_confirmed event, got %v", got)
	}
}

func TestCustomerCannotConfirm(t *testing.T) {
	repo := newFakeRepo()
	uc := NewConfirmAppointment(repo, &fakeSink{}, testTZ)

	id := seedAppointment(repo, 7, domain.StatusPending, time.Now().UTC().Add(24*time.Hour))
	actor := domain.Actor{UserID: 7, Role: models.RoleCustomer}

	_, err := uc.Execute(context.Background(), actor, id)
	if !httperr.IsKind(err, httperr.KindForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}

	stored, _ := repo.GetAppointment(context.Background(), id)
	if stored.Status != string(domain.StatusPending) {
		t.Fatalf("denied confirm changed state: %q", stored.Status)
	}
}

func TestCompleteRequiresConfirmedState(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCompleteAppointment(repo, &fakeSink{}, testTZ)
	actor := domain.Actor{UserID: 3, Role: models.RoleStaff}

	pending := seedAppointment(repo, 7, domain.StatusPending, time.Now().UTC().Add(24*time.Hour))
	if _, err := uc.Execute(context.Background(), actor, pending); !httperr.IsCode(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}

	confirmed := seedAppointment(repo, 7, domain.StatusConfirmed, time.Now().UTC().Add(24*time.Hour))
	ap, err := uc.Execute(context.Background(), actor, confirmed)
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if ap.Status != string(domain.StatusCompleted) || ap.CompletedAt == nil {
		t.Fatalf("complete did not apply: %+v", ap)
	}
}

func TestCancelOwnershipRules(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCancelAppointment(repo, &fakeSink{}, testTZ)

	id := seedAppointment(repo, 7, domain.StatusPending, time.Now().UTC().Add(24*time.Hour))

	stranger := domain.Actor{UserID: 9, Role: models.RoleCustomer}
	if _, err := uc.Execute(context.Background(), stranger, id); !httperr.IsKind(err, httperr.KindForbidden) {
		t.Fatalf("expected forbidden for non-owner, got %v", err)
	}

	owner := domain.Actor{UserID: 7, Role: models.RoleCustomer}
	ap, err := uc.Execute(context.Background(), owner, id)
	if err != nil {
		t.Fatalf("owner cancel failed: %v", err)
	}
	if ap.Status != string(domain.StatusCancelled) || ap.CancelledAt == nil {
		t.Fatalf("cancel did not apply: %+v", ap)
	}
}

func TestCustomerCannotCancelPast(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCancelAppointment(repo, &fakeSink{}, testTZ)

	id := seedAppointment(repo, 7, domain.StatusConfirmed, time.Now().UTC().Add(-24*time.Hour))
	owner := domain.Actor{UserID: 7, Role: models.RoleCustomer}

	if _, err := uc.Execute(context.Background(), owner, id); !httperr.IsCode(err, "appointment_in_past") {
		t.Fatalf("expected appointment_in_past, got %v", err)
	}

	// An admin is not bound by the lead-time rule.
	admin := domain.Actor{UserID: 1, Role: models.RoleAdmin}
	if _, err := uc.Execute(context.Background(), admin, id); err != nil {
		t.Fatalf("admin cancel failed: %v", err)
	}
}

func TestTransitionOnMissingAppointment(t *testing.T) {
	repo := newFakeRepo()
	uc := NewConfirmAppointment(repo, &fakeSink{}, testTZ)

	_, err := uc.Execute(context.Background(), domain.Actor{UserID: 3, Role: models.RoleStaff}, 999)
	if !httperr.IsKind(err, httperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

package appointment

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/glowline/salon-scheduler/internal/audit"
	domain "github.com/glowline/salon-scheduler/internal/domain/appointment"
	"github.com/glowline/salon-scheduler/internal/httperr"
	"github.com/glowline/salon-scheduler/internal/models"
)

type hoursKey struct {
	staffID uint
	weekday int
}

// fakeRepo is an in-memory domain.Repository. CreateAppointment
// re-checks the overlap under the lock, mirroring the partial unique
// index that backstops the optimistic pre-check in production.
type fakeRepo struct {
	mu       sync.Mutex
	services map[uint]*models.Service
	staff    map[uint]*models.StaffMember
	hours    map[hoursKey]*models.WorkingHours
	appts    map[uint]*models.Appointment
	nextID   uint

	// afterOverlapCheck runs between the pre-check and the insert,
	// letting tests widen the race window deterministically.
	afterOverlapCheck func()

	// workingHoursErr, when set, is returned by GetWorkingHours in
	// place of a lookup, standing in for an unavailable database.
	workingHoursErr error
}

func newFakeRepo() *fakeRepo {
	f := &fakeRepo{
		services: map[uint]*models.Service{
			1: {ID: 1, Name: "Haircut", Price: 1500, DurationMin: 45, Active: true},
			2: {ID: 2, Name: "Retired Perm", Price: 900, DurationMin: 60, Active: false},
		},
		staff: map[uint]*models.StaffMember{
			2: {ID: 2, Active: true},
			3: {ID: 3, Active: false},
		},
		hours: map[hoursKey]*models.WorkingHours{},
		appts: map[uint]*models.Appointment{},
	}
	for wd := 0; wd < 7; wd++ {
		f.hours[hoursKey{staffID: 2, weekday: wd}] = &models.WorkingHours{
			StaffID:   2,
			Weekday:   wd,
			StartTime: "09:00",
			EndTime:   "18:00",
			Active:    true,
		}
	}
	return f
}

func (f *fakeRepo) GetService(ctx context.Context, id uint) (*models.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	svc, ok := f.services[id]
	if !ok {
		return nil, httperr.ErrNotFound("service_not_found")
	}
	cp := *svc
	return &cp, nil
}

func (f *fakeRepo) GetStaffMember(ctx context.Context, id uint) (*models.StaffMember, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	st, ok := f.staff[id]
	if !ok {
		return nil, httperr.ErrNotFound("staff_not_found")
	}
	cp := *st
	return &cp, nil
}

func (f *fakeRepo) GetWorkingHours(ctx context.Context, staffID uint, weekday int) (*models.WorkingHours, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.workingHoursErr != nil {
		return nil, f.workingHoursErr
	}
	wh, ok := f.hours[hoursKey{staffID: staffID, weekday: weekday}]
	if !ok {
		return nil, httperr.ErrNotFound("working_hours_not_found")
	}
	cp := *wh
	return &cp, nil
}

func (f *fakeRepo) overlapsLocked(staffID uint, start, end time.Time) bool {
	for _, ap := range f.appts {
		if ap.StaffID != staffID {
			continue
		}
		if ap.Status == string(domain.StatusCancelled) {
			continue
		}
		if ap.StartTime.Before(end) && ap.EndTime.After(start) {
			return true
		}
	}
	return false
}

func (f *fakeRepo) AssertNoOverlap(ctx context.Context, staffID uint, start, end time.Time) error {
	f.mu.Lock()
	conflict := f.overlapsLocked(staffID, start, end)
	f.mu.Unlock()

	if f.afterOverlapCheck != nil {
		f.afterOverlapCheck()
	}
	if conflict {
		return httperr.ErrConflict("slot_no_longer_available")
	}
	return nil
}

func (f *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.overlapsLocked(ap.StaffID, ap.StartTime, ap.EndTime) {
		return httperr.ErrConflict("slot_no_longer_available")
	}
	f.nextID++
	ap.ID = f.nextID
	cp := *ap
	f.appts[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ap, ok := f.appts[id]
	if !ok {
		return nil, httperr.ErrNotFound("appointment_not_found")
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.appts[ap.ID]; !ok {
		return httperr.ErrNotFound("appointment_not_found")
	}
	cp := *ap
	f.appts[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) ListForStaffDay(ctx context.Context, staffID uint, start, end time.Time) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, ap := range f.appts {
		if ap.StaffID != staffID || ap.Status == string(domain.StatusCancelled) {
			continue
		}
		if ap.StartTime.Before(end) && ap.EndTime.After(start) {
			out = append(out, *ap)
		}
	}
	// Same ordering the contract demands of the gorm implementation.
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out, nil
}

func (f *fakeRepo) ListForCustomer(ctx context.Context, customerID uint) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, ap := range f.appts {
		if ap.CustomerID == customerID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAll(ctx context.Context) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, ap := range f.appts {
		out = append(out, *ap)
	}
	return out, nil
}

func (f *fakeRepo) ListPendingBefore(ctx context.Context, cutoff time.Time) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, ap := range f.appts {
		if ap.Status == string(domain.StatusPending) && ap.StartTime.Before(cutoff) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) seed(ap models.Appointment) uint {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	ap.ID = f.nextID
	f.appts[ap.ID] = &ap
	return ap.ID
}

// fakeSink records dispatched audit events synchronously.
type fakeSink struct {
	mu     sync.Mutex
	events []audit.Event
}

func (s *fakeSink) Dispatch(ev audit.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func (s *fakeSink) actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.events))
	for _, ev := range s.events {
		out = append(out, ev.Action)
	}
	return out
}

package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glowline/salon-scheduler/internal/models"
)

type fakeSource struct {
	fail bool

	upcoming []models.Appointment
	counts   map[string]int64
	payments []models.Payment
	services []ServiceCount
	totals   Stats
}

var errSourceDown = errors.New("source down")

func (f *fakeSource) UpcomingForCustomer(ctx context.Context, customerID uint, now time.Time) ([]models.Appointment, error) {
	if f.fail {
		return nil, errSourceDown
	}
	return f.upcoming, nil
}

func (f *fakeSource) AppointmentCountsByStatus(ctx context.Context) (map[string]int64, error) {
	if f.fail {
		return nil, errSourceDown
	}
	return f.counts, nil
}

func (f *fakeSource) CompletedPaymentsBetween(ctx context.Context, from, to time.Time) ([]models.Payment, error) {
	if f.fail {
		return nil, errSourceDown
	}
	return f.payments, nil
}

func (f *fakeSource) ServiceCounts(ctx context.Context) ([]ServiceCount, error) {
	if f.fail {
		return nil, errSourceDown
	}
	return f.services, nil
}

func (f *fakeSource) Totals(ctx context.Context, today time.Time) (Stats, error) {
	if f.fail {
		return Stats{}, errSourceDown
	}
	return f.totals, nil
}

func paidAt(t time.Time) *time.Time { return &t }

func TestRevenueByDayGroupsPerCalendarDay(t *testing.T) {
	src := &fakeSource{payments: []models.Payment{
		{Amount: 1500, PaidAt: paidAt(time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC))},
		{Amount: 4500, PaidAt: paidAt(time.Date(2026, 8, 1, 16, 30, 0, 0, time.UTC))},
		{Amount: 900, PaidAt: paidAt(time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC))},
		{Amount: 100, PaidAt: nil}, // recorded but never settled
	}}
	agg := NewAggregator(src)

	got := agg.RevenueByDay(context.Background(), time.Time{}, time.Time{})
	want := []DayRevenue{
		{Day: "2026-08-01", Revenue: 6000},
		{Day: "2026-08-03", Revenue: 900},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestAggregatorDegradesToEmptyViews(t *testing.T) {
	agg := NewAggregator(&fakeSource{fail: true})
	ctx := context.Background()
	now := time.Now()

	if got := agg.UpcomingFor(ctx, 7, now); got == nil || len(got) != 0 {
		t.Fatalf("upcoming: expected empty slice, got %v", got)
	}
	if got := agg.CountsByStatus(ctx); got == nil || len(got) != 0 {
		t.Fatalf("counts: expected empty map, got %v", got)
	}
	if got := agg.RevenueByDay(ctx, now.AddDate(0, 0, -30), now); got == nil || len(got) != 0 {
		t.Fatalf("revenue: expected empty slice, got %v", got)
	}
	if got := agg.ServiceDistribution(ctx); got == nil || len(got) != 0 {
		t.Fatalf("distribution: expected empty slice, got %v", got)
	}
	if got := agg.Stats(ctx, now); got != (Stats{}) {
		t.Fatalf("stats: expected zero value, got %+v", got)
	}
}

func TestAggregatorPassesThroughHealthySource(t *testing.T) {
	src := &fakeSource{
		upcoming: []models.Appointment{{ID: 1}, {ID: 2}},
		counts:   map[string]int64{"pending": 3, "completed": 8},
		services: []ServiceCount{{Service: "Haircut", Count: 5}},
		totals:   Stats{TotalUsers: 10, TotalRevenue: 42000, TodayAppointments: 4},
	}
	agg := NewAggregator(src)
	ctx := context.Background()

	if got := agg.UpcomingFor(ctx, 7, time.Now()); len(got) != 2 {
		t.Fatalf("upcoming: expected 2, got %d", len(got))
	}
	if got := agg.CountsByStatus(ctx); got["pending"] != 3 || got["completed"] != 8 {
		t.Fatalf("counts mismatch: %v", got)
	}
	if got := agg.ServiceDistribution(ctx); len(got) != 1 || got[0].Service != "Haircut" {
		t.Fatalf("distribution mismatch: %v", got)
	}
	if got := agg.Stats(ctx, time.Now()); got.TotalRevenue != 42000 {
		t.Fatalf("stats mismatch: %+v", got)
	}
}

package dashboard

import (
	"context"
	"log"
	"time"

	"github.com/glowline/salon-scheduler/internal/models"
)

// Stats is the admin overview block.
type Stats struct {
	TotalUsers        int64   `json:"total_users"`
	TotalStaff        int64   `json:"total_staff"`
	TotalServices     int64   `json:"total_services"`
	TotalAppointments int64   `json:"total_appointments"`
	TotalRevenue      float64 `json:"total_revenue"`
	TodayAppointments int64   `json:"today_appointments"`
}

type ServiceCount struct {
	Service string `json:"service"`
	Count   int64  `json:"count"`
}

type DayRevenue struct {
	Day     string  `json:"day"`
	Revenue float64 `json:"revenue"`
}

// Source is the read side the aggregator leans on.
type Source interface {
	UpcomingForCustomer(ctx context.Context, customerID uint, now time.Time) ([]models.Appointment, error)
	AppointmentCountsByStatus(ctx context.Context) (map[string]int64, error)
	CompletedPaymentsBetween(ctx context.Context, from, to time.Time) ([]models.Payment, error)
	ServiceCounts(ctx context.Context) ([]ServiceCount, error)
	Totals(ctx context.Context, today time.Time) (Stats, error)
}

// Aggregator derives summary views from other components' data. It is
// read-only and holds no invariants of its own: a failing source
// degrades to an empty view instead of propagating as fatal.
type Aggregator struct {
	source Source
}

func NewAggregator(source Source) *Aggregator {
	return &Aggregator{source: source}
}

func (a *Aggregator) UpcomingFor(ctx context.Context, customerID uint, now time.Time) []models.Appointment {
	apps, err := a.source.UpcomingForCustomer(ctx, customerID, now)
	if err != nil {
		log.Println("dashboard upcoming degraded:", err)
		return []models.Appointment{}
	}
	return apps
}

func (a *Aggregator) CountsByStatus(ctx context.Context) map[string]int64 {
	counts, err := a.source.AppointmentCountsByStatus(ctx)
	if err != nil {
		log.Println("dashboard counts degraded:", err)
		return map[string]int64{}
	}
	return counts
}

// RevenueByDay groups completed payment amounts by calendar day.
func (a *Aggregator) RevenueByDay(ctx context.Context, from, to time.Time) []DayRevenue {
	payments, err := a.source.CompletedPaymentsBetween(ctx, from, to)
	if err != nil {
		log.Println("dashboard revenue degraded:", err)
		return []DayRevenue{}
	}

	byDay := map[string]float64{}
	order := []string{}
	for _, p := range payments {
		if p.PaidAt == nil {
			continue
		}
		day := p.PaidAt.Format("2006-01-02")
		if _, seen := byDay[day]; !seen {
			order = append(order, day)
		}
		byDay[day] += p.Amount
	}

	out := make([]DayRevenue, 0, len(order))
	for _, day := range order {
		out = append(out, DayRevenue{Day: day, Revenue: byDay[day]})
	}
	return out
}

func (a *Aggregator) ServiceDistribution(ctx context.Context) []ServiceCount {
	counts, err := a.source.ServiceCounts(ctx)
	if err != nil {
		log.Println("dashboard distribution degraded:", err)
		return []ServiceCount{}
	}
	return counts
}

func (a *Aggregator) Stats(ctx context.Context, today time.Time) Stats {
	stats, err := a.source.Totals(ctx, today)
	if err != nil {
		log.Println("dashboard stats degraded:", err)
		return Stats{}
	}
	return stats
}

package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/glowline/salon-scheduler/internal/domain/appointment"
	"github.com/glowline/salon-scheduler/internal/models"
	"github.com/glowline/salon-scheduler/internal/usecase/dashboard"
)

type DashboardGormRepository struct {
	db *gorm.DB
}

func NewDashboardGormRepository(db *gorm.DB) *DashboardGormRepository {
	return &DashboardGormRepository{db: db}
}

func (r *DashboardGormRepository) UpcomingForCustomer(
	ctx context.Context,
	customerID uint,
	now time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Staff").
		Preload("Service").
		Where(
			"customer_id = ? AND status IN ? AND start_time >= ?",
			customerID,
			[]string{string(domain.StatusPending), string(domain.StatusConfirmed)},
			now,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *DashboardGormRepository) AppointmentCountsByStatus(
	ctx context.Context,
) (map[string]int64, error) {

	type row struct {
		Status string
		Count  int64
	}

	var rows []row
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}

func (r *DashboardGormRepository) CompletedPaymentsBetween(
	ctx context.Context,
	from, to time.Time,
) ([]models.Payment, error) {

	var payments []models.Payment
	if err := r.db.WithContext(ctx).
		Where(
			"status = 'completed' AND paid_at >= ? AND paid_at < ?",
			from, to,
		).
		Order("paid_at ASC").
		Find(&payments).Error; err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *DashboardGormRepository) ServiceCounts(
	ctx context.Context,
) ([]dashboard.ServiceCount, error) {

	var counts []dashboard.ServiceCount
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("services.name as service, COUNT(*) as count").
		Joins("JOIN services ON services.id = appointments.service_id").
		Where("appointments.status IN ?", domain.NonCancelled()).
		Group("services.name").
		Order("count DESC").
		Find(&counts).Error; err != nil {
		return nil, err
	}

	return counts, nil
}

func (r *DashboardGormRepository) Totals(
	ctx context.Context,
	today time.Time,
) (dashboard.Stats, error) {

	var stats dashboard.Stats
	db := r.db.WithContext(ctx)

	if err := db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return dashboard.Stats{}, err
	}
	if err := db.Model(&models.StaffMember{}).Count(&stats.TotalStaff).Error; err != nil {
		return dashboard.Stats{}, err
	}
	if err := db.Model(&models.Service{}).Count(&stats.TotalServices).Error; err != nil {
		return dashboard.Stats{}, err
	}
	if err := db.Model(&models.Appointment{}).Count(&stats.TotalAppointments).Error; err != nil {
		return dashboard.Stats{}, err
	}

	if err := db.Model(&models.Payment{}).
		Where("status = 'completed'").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		return dashboard.Stats{}, err
	}

	dayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	if err := db.Model(&models.Appointment{}).
		Where("start_time >= ? AND start_time < ?", dayStart, dayStart.Add(24*time.Hour)).
		Count(&stats.TodayAppointments).Error; err != nil {
		return dashboard.Stats{}, err
	}

	return stats, nil
}

// Compile-time check
var _ dashboard.Source = (*DashboardGormRepository)(nil)

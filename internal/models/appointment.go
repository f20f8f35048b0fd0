package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint `json:"customer_id"`
	Customer   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	StaffID uint        `gorm:"uniqueIndex:idx_staff_start,where:status <> 'cancelled'" json:"staff_id"`
	Staff   StaffMember `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"staff"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	// Date is midnight of the booking day in the salon timezone and
	// Time is the "15:04" wall-clock start. StartTime/EndTime are the
	// absolute instants derived from them at creation.
	Date      time.Time `json:"date"`
	Time      string    `gorm:"size:5" json:"time"`
	StartTime time.Time `gorm:"uniqueIndex:idx_staff_start" json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	// Copied from the service at booking time so later catalog edits
	// never alter historical appointments.
	PriceSnapshot       float64 `json:"price_snapshot"`
	DurationSnapshotMin int     `json:"duration_snapshot_min"`

	Notes string `gorm:"size:255" json:"notes"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

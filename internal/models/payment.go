package models

import "time"

// Payment is a record only. Charging happens in an external gateway;
// the dashboard aggregates completed rows for revenue.
type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint    `json:"appointment_id"`
	Amount        float64 `json:"amount"`
	Status        string  `gorm:"size:20;default:'pending'" json:"status"`

	PaidAt *time.Time `json:"paid_at"`

	CreatedAt time.Time `json:"created_at"`
}

package models

import "time"

// WorkingHours is one weekday window for one staff member.
// Times are stored as "15:04" strings in the salon timezone.
type WorkingHours struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	StaffID uint `gorm:"index:idx_staff_weekday" json:"staff_id"`

	Weekday int `gorm:"index:idx_staff_weekday" json:"weekday"`

	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Active    bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

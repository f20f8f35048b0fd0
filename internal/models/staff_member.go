package models

import "time"

// StaffMember is salon-owned (admin-managed). Customers reference it
// through appointments but never own it.
type StaffMember struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string  `gorm:"size:100;not null" json:"name"`
	Specialty string  `gorm:"size:50" json:"specialty"`
	Rating    float64 `gorm:"default:0" json:"rating"`
	Active    bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

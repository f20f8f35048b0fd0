package dto

import "time"

type AppointmentListDTO struct {
	ID           uint      `json:"id"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Status       string    `json:"status"`
	CustomerName string    `json:"customer_name"`
	StaffName    string    `json:"staff_name"`
	ServiceName  string    `json:"service_name"`
	Price        float64   `json:"price"`
}

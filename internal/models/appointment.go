package models

import "time"

type Appointment struct {
	ID string `json:"id"`

	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`

	Date string `json:"date"` // YYYY-MM-DD
	Time string `json:"time"` // HH:MM

	ServiceID string `json:"service_id"`

	Status        string `json:"status"`
	PaymentMethod string `json:"payment_method"`

	ClientPreferences string `json:"client_preferences,omitempty"`
	BarberNotes       string `json:"barber_notes,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

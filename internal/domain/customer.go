package domain

import "time"

// Measurements is the measurement document as stored: numeric fields hold
// float64 values, description fields hold strings. Fields that were empty or
// unparseable on input are absent entirely, never zero or an empty string.
type Measurements map[string]interface{}

// Customer is a tailoring client with contact details and body measurements.
type Customer struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Phone        string       `json:"phone"`
	Email        string       `json:"email,omitempty"`
	Address      string       `json:"address,omitempty"`
	Measurements Measurements `json:"measurements,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

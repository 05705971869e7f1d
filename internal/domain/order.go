package domain

import "time"

// Order statuses. Transitions are unconstrained: any status may be written
// over any other via an explicit update.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusReady      = "ready"
	StatusDelivered  = "delivered"
)

// ValidStatus reports whether s is one of the known order statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusReady, StatusDelivered:
		return true
	}
	return false
}

// Order is a garment order. CustomerName and CustomerEmail are denormalized
// from the customer at creation time; CustomerEmail drives role-scoped
// visibility for non-admin principals.
type Order struct {
	ID                  string    `json:"id"`
	CustomerID          string    `json:"customerId"`
	CustomerName        string    `json:"customerName"`
	CustomerEmail       string    `json:"customerEmail,omitempty"`
	GarmentType         string    `json:"garmentType"`
	Fabric              string    `json:"fabric,omitempty"`
	Color               string    `json:"color,omitempty"`
	Quantity            int       `json:"quantity"`
	Price               float64   `json:"price"`
	AdvancePayment      float64   `json:"advancePayment"`
	DeliveryDate        time.Time `json:"deliveryDate"`
	Status              string    `json:"status"`
	SpecialInstructions string    `json:"specialInstructions,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

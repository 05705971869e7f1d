package order

import (
	"context"
	"strings"
	"time"

	"tailorshop/internal/domain"
	orderrepo "tailorshop/internal/repository/order"
	"tailorshop/internal/scope"
)

// customerSource resolves the owning customer when an order payload does not
// carry the denormalized name/email itself.
type customerSource interface {
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
}

// Service handles order CRUD. Reads are scoped per principal; writes only
// require authentication, matching the shop's permissive workflow.
type Service struct {
	repo      orderrepo.Repository
	customers customerSource
}

// New creates a Service.
func New(repo orderrepo.Repository, customers customerSource) *Service {
	return &Service{repo: repo, customers: customers}
}

// CreateInput mirrors the order creation payload. CustomerName and
// CustomerEmail are captured on the order at creation time; when absent they
// are filled from the customer record.
type CreateInput struct {
	CustomerID          string    `json:"customerId"`
	CustomerName        string    `json:"customerName"`
	CustomerEmail       string    `json:"customerEmail"`
	GarmentType         string    `json:"garmentType"`
	Fabric              string    `json:"fabric"`
	Color               string    `json:"color"`
	Quantity            int       `json:"quantity"`
	Price               *float64  `json:"price"`
	AdvancePayment      float64   `json:"advancePayment"`
	DeliveryDate        time.Time `json:"deliveryDate"`
	SpecialInstructions string    `json:"specialInstructions"`
}

// UpdateInput carries a partial update; nil fields are left unchanged. Status
// transitions are unconstrained beyond naming a known status.
type UpdateInput struct {
	GarmentType         *string    `json:"garmentType"`
	Fabric              *string    `json:"fabric"`
	Color               *string    `json:"color"`
	Quantity            *int       `json:"quantity"`
	Price               *float64   `json:"price"`
	AdvancePayment      *float64   `json:"advancePayment"`
	DeliveryDate        *time.Time `json:"deliveryDate"`
	Status              *string    `json:"status"`
	SpecialInstructions *string    `json:"specialInstructions"`
}

// Create persists a new order. Status is always pending at creation.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Order, error) {
	customerID := strings.TrimSpace(in.CustomerID)
	if customerID == "" {
		return nil, domain.Invalid("customerId required")
	}
	garment := strings.TrimSpace(in.GarmentType)
	if garment == "" {
		return nil, domain.Invalid("garmentType required")
	}
	if in.Price == nil {
		return nil, domain.Invalid("price required")
	}
	if *in.Price < 0 {
		return nil, domain.Invalid("price must be non-negative")
	}
	if in.AdvancePayment < 0 {
		return nil, domain.Invalid("advancePayment must be non-negative")
	}
	if in.DeliveryDate.IsZero() {
		return nil, domain.Invalid("deliveryDate required")
	}
	quantity := in.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return nil, domain.Invalid("quantity must be positive")
	}

	name := strings.TrimSpace(in.CustomerName)
	email := strings.TrimSpace(in.CustomerEmail)
	if name == "" || email == "" {
		c, err := s.customers.GetByID(ctx, customerID)
		if err != nil {
			return nil, err
		}
		if name == "" {
			name = c.Name
		}
		if email == "" {
			email = c.Email
		}
	}

	return s.repo.Create(ctx, domain.Order{
		CustomerID:          customerID,
		CustomerName:        name,
		CustomerEmail:       email,
		GarmentType:         garment,
		Fabric:              strings.TrimSpace(in.Fabric),
		Color:               strings.TrimSpace(in.Color),
		Quantity:            quantity,
		Price:               *in.Price,
		AdvancePayment:      in.AdvancePayment,
		DeliveryDate:        in.DeliveryDate,
		Status:              domain.StatusPending,
		SpecialInstructions: strings.TrimSpace(in.SpecialInstructions),
	})
}

// List returns the orders visible to the principal, newest first.
func (s *Service) List(ctx context.Context, p domain.Principal) ([]domain.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return scope.VisibleOrders(p, orders), nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*domain.Order, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.GarmentType != nil {
		garment := strings.TrimSpace(*in.GarmentType)
		if garment == "" {
			return nil, domain.Invalid("garmentType required")
		}
		existing.GarmentType = garment
	}
	if in.Fabric != nil {
		existing.Fabric = strings.TrimSpace(*in.Fabric)
	}
	if in.Color != nil {
		existing.Color = strings.TrimSpace(*in.Color)
	}
	if in.Quantity != nil {
		if *in.Quantity <= 0 {
			return nil, domain.Invalid("quantity must be positive")
		}
		existing.Quantity = *in.Quantity
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, domain.Invalid("price must be non-negative")
		}
		existing.Price = *in.Price
	}
	if in.AdvancePayment != nil {
		if *in.AdvancePayment < 0 {
			return nil, domain.Invalid("advancePayment must be non-negative")
		}
		existing.AdvancePayment = *in.AdvancePayment
	}
	if in.DeliveryDate != nil {
		existing.DeliveryDate = *in.DeliveryDate
	}
	if in.Status != nil {
		status := strings.TrimSpace(*in.Status)
		if !domain.ValidStatus(status) {
			return nil, domain.Invalid("unknown status")
		}
		existing.Status = status
	}
	if in.SpecialInstructions != nil {
		existing.SpecialInstructions = strings.TrimSpace(*in.SpecialInstructions)
	}

	return s.repo.Update(ctx, *existing)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

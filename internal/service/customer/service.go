package customer

import (
	"context"
	"strings"

	"tailorshop/internal/domain"
	"tailorshop/internal/measure"
	custrepo "tailorshop/internal/repository/customer"
	"tailorshop/internal/scope"
)

// Service handles customer CRUD. The customer collection is admin-only: every
// operation checks the principal through the scope resolver before touching
// storage. Measurements pass through the normalizer on both create and update
// so the stored shape is identical regardless of entry point.
type Service struct {
	repo   custrepo.Repository
	schema measure.Schema
}

// New creates a Service normalizing measurements against the given schema.
func New(repo custrepo.Repository, schema measure.Schema) *Service {
	return &Service{repo: repo, schema: schema}
}

// CreateInput mirrors the customer creation payload.
type CreateInput struct {
	Name         string                 `json:"name"`
	Phone        string                 `json:"phone"`
	Email        string                 `json:"email"`
	Address      string                 `json:"address"`
	Measurements map[string]interface{} `json:"measurements"`
}

// UpdateInput carries a partial update; nil fields are left unchanged. A
// provided measurements map replaces the stored one after normalization.
type UpdateInput struct {
	Name         *string                `json:"name"`
	Phone        *string                `json:"phone"`
	Email        *string                `json:"email"`
	Address      *string                `json:"address"`
	Measurements map[string]interface{} `json:"measurements"`
}

func (s *Service) Create(ctx context.Context, p domain.Principal, in CreateInput) (*domain.Customer, error) {
	if err := scope.AllowCustomers(p); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Invalid("name required")
	}
	phone := strings.TrimSpace(in.Phone)
	if phone == "" {
		return nil, domain.Invalid("phone required")
	}

	return s.repo.Create(ctx, domain.Customer{
		Name:         name,
		Phone:        phone,
		Email:        strings.TrimSpace(in.Email),
		Address:      strings.TrimSpace(in.Address),
		Measurements: measure.Normalize(in.Measurements, s.schema),
	})
}

func (s *Service) List(ctx context.Context, p domain.Principal) ([]domain.Customer, error) {
	if err := scope.AllowCustomers(p); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, p domain.Principal, id string) (*domain.Customer, error) {
	if err := scope.AllowCustomers(p); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, p domain.Principal, id string, in UpdateInput) (*domain.Customer, error) {
	if err := scope.AllowCustomers(p); err != nil {
		return nil, err
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.Invalid("name required")
		}
		existing.Name = name
	}
	if in.Phone != nil {
		phone := strings.TrimSpace(*in.Phone)
		if phone == "" {
			return nil, domain.Invalid("phone required")
		}
		existing.Phone = phone
	}
	if in.Email != nil {
		existing.Email = strings.TrimSpace(*in.Email)
	}
	if in.Address != nil {
		existing.Address = strings.TrimSpace(*in.Address)
	}
	if in.Measurements != nil {
		existing.Measurements = measure.Normalize(in.Measurements, s.schema)
	}

	return s.repo.Update(ctx, *existing)
}

func (s *Service) Delete(ctx context.Context, p domain.Principal, id string) error {
	if err := scope.AllowCustomers(p); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Count reports the number of customer records; used by the admin dashboard.
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

package order

import (
	"context"

	"tailorshop/internal/domain"
)

// Repository persists and fetches garment orders. CountByStatus and SumPrices
// back the admin dashboard, which aggregates at the storage layer.
type Repository interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	Update(ctx context.Context, o domain.Order) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status string) (int, error)
	SumPrices(ctx context.Context) (float64, error)
}

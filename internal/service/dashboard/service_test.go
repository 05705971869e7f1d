package dashboard

import (
	"context"
	"testing"

	"tailorshop/internal/domain"
)

func TestAggregate(t *testing.T) {
	stats := Aggregate([]domain.Order{
		{Status: domain.StatusPending, Price: 100},
		{Status: domain.StatusDelivered, Price: 50},
	})

	if stats.TotalOrders != 2 {
		t.Fatalf("totalOrders: got %d, want 2", stats.TotalOrders)
	}
	if stats.PendingOrders != 1 {
		t.Fatalf("pendingOrders: got %d, want 1", stats.PendingOrders)
	}
	if stats.TotalRevenue != 150 {
		t.Fatalf("totalRevenue: got %v, want 150", stats.TotalRevenue)
	}
}

func TestAggregate_Empty(t *testing.T) {
	stats := Aggregate(nil)
	if stats.TotalOrders != 0 || stats.PendingOrders != 0 || stats.TotalRevenue != 0 {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}

func TestAggregate_RoundsRevenue(t *testing.T) {
	stats := Aggregate([]domain.Order{
		{Status: domain.StatusPending, Price: 0.1},
		{Status: domain.StatusPending, Price: 0.2},
	})
	if stats.TotalRevenue != 0.3 {
		t.Fatalf("revenue should round to 0.3, got %v", stats.TotalRevenue)
	}
}

// memoryOrders implements the order repository over a fixed slice.
type memoryOrders struct {
	orders []domain.Order
}

func (m *memoryOrders) Create(_ context.Context, o domain.Order) (*domain.Order, error) {
	return &o, nil
}

func (m *memoryOrders) GetByID(_ context.Context, _ string) (*domain.Order, error) {
	return nil, domain.ErrNotFound
}

func (m *memoryOrders) List(_ context.Context) ([]domain.Order, error) {
	return m.orders, nil
}

func (m *memoryOrders) Update(_ context.Context, o domain.Order) (*domain.Order, error) {
	return &o, nil
}

func (m *memoryOrders) Delete(_ context.Context, _ string) error { return nil }

func (m *memoryOrders) Count(_ context.Context) (int, error) { return len(m.orders), nil }

func (m *memoryOrders) CountByStatus(_ context.Context, status string) (int, error) {
	n := 0
	for _, o := range m.orders {
		if o.Status == status {
			n++
		}
	}
	return n, nil
}

func (m *memoryOrders) SumPrices(_ context.Context) (float64, error) {
	total := 0.0
	for _, o := range m.orders {
		total += o.Price
	}
	return total, nil
}

type fixedCustomerCount int

func (c fixedCustomerCount) Count(_ context.Context) (int, error) { return int(c), nil }

func TestStats_AdminSeesFullDataset(t *testing.T) {
	svc := New(&memoryOrders{orders: []domain.Order{
		{Status: domain.StatusPending, Price: 100, CustomerEmail: "a@x.com"},
		{Status: domain.StatusReady, Price: 200, CustomerEmail: "b@x.com"},
		{Status: domain.StatusDelivered, Price: 50},
	}}, fixedCustomerCount(7))

	stats, err := svc.Stats(context.Background(), domain.Principal{Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	want := Stats{TotalCustomers: 7, TotalOrders: 3, PendingOrders: 1, ReadyOrders: 1, TotalRevenue: 350}
	if stats != want {
		t.Fatalf("got %+v, want %+v", stats, want)
	}
}

func TestStats_CustomerSeesOnlyScopedSubset(t *testing.T) {
	svc := New(&memoryOrders{orders: []domain.Order{
		{Status: domain.StatusPending, Price: 100, CustomerEmail: "A@X.com"},
		{Status: domain.StatusDelivered, Price: 40, CustomerEmail: "a@x.com"},
		{Status: domain.StatusPending, Price: 999, CustomerEmail: "other@x.com"},
		{Status: domain.StatusPending, Price: 999},
	}}, fixedCustomerCount(7))

	stats, err := svc.Stats(context.Background(), domain.Principal{Role: domain.RoleCustomer, Email: "a@x.com"})
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	want := Stats{TotalCustomers: 1, TotalOrders: 2, PendingOrders: 1, TotalRevenue: 140}
	if stats != want {
		t.Fatalf("got %+v, want %+v", stats, want)
	}
}

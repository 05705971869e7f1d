package dashboard

import (
	"context"
	"math"

	"tailorshop/internal/domain"
	orderrepo "tailorshop/internal/repository/order"
	"tailorshop/internal/scope"
)

// Stats is the dashboard summary returned to clients.
type Stats struct {
	TotalCustomers int     `json:"totalCustomers"`
	TotalOrders    int     `json:"totalOrders"`
	PendingOrders  int     `json:"pendingOrders"`
	ReadyOrders    int     `json:"readyOrders"`
	TotalRevenue   float64 `json:"totalRevenue"`
}

// Aggregate computes order-derived stats over an already-scoped order set. It
// never re-filters by role; scoping happens before this runs. Revenue is
// rounded to 2 decimals.
func Aggregate(orders []domain.Order) Stats {
	var s Stats
	s.TotalOrders = len(orders)
	for _, o := range orders {
		switch o.Status {
		case domain.StatusPending:
			s.PendingOrders++
		case domain.StatusReady:
			s.ReadyOrders++
		}
		s.TotalRevenue += o.Price
	}
	s.TotalRevenue = round2(s.TotalRevenue)
	return s
}

type customerCounter interface {
	Count(ctx context.Context) (int, error)
}

// Service computes dashboard stats. Admins aggregate at the storage layer
// over the whole dataset; other principals aggregate in-process over their
// scoped order subset, counting themselves as the single visible customer.
type Service struct {
	orders    orderrepo.Repository
	customers customerCounter
}

// New creates a Service.
func New(orders orderrepo.Repository, customers customerCounter) *Service {
	return &Service{orders: orders, customers: customers}
}

func (s *Service) Stats(ctx context.Context, p domain.Principal) (Stats, error) {
	if p.IsAdmin() {
		return s.adminStats(ctx)
	}

	orders, err := s.orders.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	stats := Aggregate(scope.VisibleOrders(p, orders))
	stats.TotalCustomers = 1
	return stats, nil
}

func (s *Service) adminStats(ctx context.Context) (Stats, error) {
	totalCustomers, err := s.customers.Count(ctx)
	if err != nil {
		return Stats{}, err
	}
	totalOrders, err := s.orders.Count(ctx)
	if err != nil {
		return Stats{}, err
	}
	pending, err := s.orders.CountByStatus(ctx, domain.StatusPending)
	if err != nil {
		return Stats{}, err
	}
	ready, err := s.orders.CountByStatus(ctx, domain.StatusReady)
	if err != nil {
		return Stats{}, err
	}
	revenue, err := s.orders.SumPrices(ctx)
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		TotalCustomers: totalCustomers,
		TotalOrders:    totalOrders,
		PendingOrders:  pending,
		ReadyOrders:    ready,
		TotalRevenue:   round2(revenue),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

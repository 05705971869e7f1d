// Package scope is the single definition of role-based record visibility.
// Every read path for orders, customers, and dashboard stats routes through
// it, so the authorization rule lives in one place.
package scope

import (
	"strings"

	"tailorshop/internal/domain"
)

// VisibleOrders returns the subset of orders the principal may see. Admins
// see everything; customer-role principals see only orders whose denormalized
// customer email matches their own, case-insensitively. Orders without an
// email, or a principal without one, never match.
func VisibleOrders(p domain.Principal, orders []domain.Order) []domain.Order {
	if p.IsAdmin() {
		return orders
	}
	visible := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if matchesEmail(p, o) {
			visible = append(visible, o)
		}
	}
	return visible
}

// AllowCustomers reports whether the principal may access the customer
// collection. Non-admins get domain.ErrForbidden, never an empty result.
func AllowCustomers(p domain.Principal) error {
	if !p.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}

func matchesEmail(p domain.Principal, o domain.Order) bool {
	if p.Email == "" || o.CustomerEmail == "" {
		return false
	}
	return strings.EqualFold(p.Email, o.CustomerEmail)
}

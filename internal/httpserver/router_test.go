package httpserver

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"tailorshop/internal/domain"
	authsvc "tailorshop/internal/service/auth"
	customersvc "tailorshop/internal/service/customer"
	dashboardsvc "tailorshop/internal/service/dashboard"
	ordersvc "tailorshop/internal/service/order"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// stubAuthSvc verifies any non-empty token as the configured principal.
type stubAuthSvc struct {
	user      *domain.User
	token     string
	principal domain.Principal
	regErr    error
	loginErr  error
	verifyErr error
}

func (s *stubAuthSvc) Register(_ context.Context, _ authsvc.RegisterInput) (*domain.User, string, error) {
	return s.user, s.token, s.regErr
}

func (s *stubAuthSvc) Login(_ context.Context, _, _ string) (*domain.User, string, error) {
	return s.user, s.token, s.loginErr
}

func (s *stubAuthSvc) Verify(_ string) (domain.Principal, error) {
	return s.principal, s.verifyErr
}

type stubCustomerSvc struct {
	customer  *domain.Customer
	customers []domain.Customer
	err       error
}

func (s *stubCustomerSvc) Create(_ context.Context, _ domain.Principal, _ customersvc.CreateInput) (*domain.Customer, error) {
	return s.customer, s.err
}

func (s *stubCustomerSvc) List(_ context.Context, _ domain.Principal) ([]domain.Customer, error) {
	return s.customers, s.err
}

func (s *stubCustomerSvc) Get(_ context.Context, _ domain.Principal, _ string) (*domain.Customer, error) {
	return s.customer, s.err
}

func (s *stubCustomerSvc) Update(_ context.Context, _ domain.Principal, _ string, _ customersvc.UpdateInput) (*domain.Customer, error) {
	return s.customer, s.err
}

func (s *stubCustomerSvc) Delete(_ context.Context, _ domain.Principal, _ string) error {
	return s.err
}

type stubOrderSvc struct {
	order  *domain.Order
	orders []domain.Order
	err    error
}

func (s *stubOrderSvc) Create(_ context.Context, _ ordersvc.CreateInput) (*domain.Order, error) {
	return s.order, s.err
}

func (s *stubOrderSvc) List(_ context.Context, _ domain.Principal) ([]domain.Order, error) {
	return s.orders, s.err
}

func (s *stubOrderSvc) Update(_ context.Context, _ string, _ ordersvc.UpdateInput) (*domain.Order, error) {
	return s.order, s.err
}

func (s *stubOrderSvc) Delete(_ context.Context, _ string) error {
	return s.err
}

type stubDashboardSvc struct {
	stats dashboardsvc.Stats
	err   error
}

func (s *stubDashboardSvc) Stats(_ context.Context, _ domain.Principal) (dashboardsvc.Stats, error) {
	return s.stats, s.err
}

func statsFixture() dashboardsvc.Stats {
	return dashboardsvc.Stats{TotalCustomers: 7, TotalOrders: 3, PendingOrders: 1, ReadyOrders: 1, TotalRevenue: 350}
}

func testDeps() Deps {
	return Deps{
		AuthSvc:      &stubAuthSvc{principal: domain.Principal{UserID: "u1", Email: "a@x.com", Role: domain.RoleAdmin}},
		CustomerSvc:  &stubCustomerSvc{},
		OrderSvc:     &stubOrderSvc{},
		DashboardSvc: &stubDashboardSvc{},
	}
}

func TestBuildRouter_RequiresServices(t *testing.T) {
	gin.SetMode(gin.TestMode)
	if _, err := buildRouter(logDiscard(), nil, Deps{}); err == nil {
		t.Fatal("expected error for missing services")
	}
}

func TestHealthz(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router, err := buildRouter(logDiscard(), nil, testDeps())
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadyz_NoDB(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router, err := buildRouter(logDiscard(), nil, testDeps())
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without db, got %d", rec.Code)
	}
}

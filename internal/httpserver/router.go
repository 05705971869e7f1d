package httpserver

import (
	"context"
	"errors"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"tailorshop/internal/domain"
	authsvc "tailorshop/internal/service/auth"
	customersvc "tailorshop/internal/service/customer"
	dashboardsvc "tailorshop/internal/service/dashboard"
	ordersvc "tailorshop/internal/service/order"
)

// AuthService is the slice of the auth service the handlers need.
type AuthService interface {
	Register(ctx context.Context, in authsvc.RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	Verify(token string) (domain.Principal, error)
}

// CustomerService is the slice of the customer service the handlers need.
type CustomerService interface {
	Create(ctx context.Context, p domain.Principal, in customersvc.CreateInput) (*domain.Customer, error)
	List(ctx context.Context, p domain.Principal) ([]domain.Customer, error)
	Get(ctx context.Context, p domain.Principal, id string) (*domain.Customer, error)
	Update(ctx context.Context, p domain.Principal, id string, in customersvc.UpdateInput) (*domain.Customer, error)
	Delete(ctx context.Context, p domain.Principal, id string) error
}

// OrderService is the slice of the order service the handlers need.
type OrderService interface {
	Create(ctx context.Context, in ordersvc.CreateInput) (*domain.Order, error)
	List(ctx context.Context, p domain.Principal) ([]domain.Order, error)
	Update(ctx context.Context, id string, in ordersvc.UpdateInput) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}

// DashboardService computes role-scoped dashboard stats.
type DashboardService interface {
	Stats(ctx context.Context, p domain.Principal) (dashboardsvc.Stats, error)
}

// Deps carries the services the router wires into handlers.
type Deps struct {
	AuthSvc      AuthService
	CustomerSvc  CustomerService
	OrderSvc     OrderService
	DashboardSvc DashboardService
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	if deps.AuthSvc == nil || deps.CustomerSvc == nil || deps.OrderSvc == nil || deps.DashboardSvc == nil {
		return nil, errors.New("httpserver: all services are required")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery(), cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	api.POST("/register", registerHandler(deps.AuthSvc))
	api.POST("/login", loginHandler(deps.AuthSvc))

	protected := api.Group("", authMiddleware(deps.AuthSvc))
	protected.GET("/customers", listCustomersHandler(deps.CustomerSvc))
	protected.POST("/customers", createCustomerHandler(deps.CustomerSvc))
	protected.GET("/customers/:id", getCustomerHandler(deps.CustomerSvc))
	protected.PUT("/customers/:id", updateCustomerHandler(deps.CustomerSvc))
	protected.DELETE("/customers/:id", deleteCustomerHandler(deps.CustomerSvc))

	protected.GET("/orders", listOrdersHandler(deps.OrderSvc))
	protected.POST("/orders", createOrderHandler(deps.OrderSvc))
	protected.PUT("/orders/:id", updateOrderHandler(deps.OrderSvc))
	protected.DELETE("/orders/:id", deleteOrderHandler(deps.OrderSvc))

	protected.GET("/dashboard/stats", statsHandler(deps.DashboardSvc))

	return router, nil
}

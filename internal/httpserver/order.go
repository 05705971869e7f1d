package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tailorshop/internal/domain"
	ordersvc "tailorshop/internal/service/order"
)

// apiDate accepts both RFC 3339 timestamps and plain YYYY-MM-DD values, which
// is what date inputs submit.
type apiDate struct {
	time.Time
}

func (d *apiDate) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", s)
}

type orderCreateRequest struct {
	CustomerID          string   `json:"customerId"`
	CustomerName        string   `json:"customerName"`
	CustomerEmail       string   `json:"customerEmail"`
	GarmentType         string   `json:"garmentType"`
	Fabric              string   `json:"fabric"`
	Color               string   `json:"color"`
	Quantity            int      `json:"quantity"`
	Price               *float64 `json:"price"`
	AdvancePayment      float64  `json:"advancePayment"`
	DeliveryDate        apiDate  `json:"deliveryDate"`
	SpecialInstructions string   `json:"specialInstructions"`
}

type orderUpdateRequest struct {
	GarmentType         *string  `json:"garmentType"`
	Fabric              *string  `json:"fabric"`
	Color               *string  `json:"color"`
	Quantity            *int     `json:"quantity"`
	Price               *float64 `json:"price"`
	AdvancePayment      *float64 `json:"advancePayment"`
	DeliveryDate        *apiDate `json:"deliveryDate"`
	Status              *string  `json:"status"`
	SpecialInstructions *string  `json:"specialInstructions"`
}

func listOrdersHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.List(c.Request.Context(), principalFrom(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		if orders == nil {
			orders = []domain.Order{}
		}
		c.JSON(http.StatusOK, orders)
	}
}

func createOrderHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req orderCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}

		order, err := svc.Create(c.Request.Context(), ordersvc.CreateInput{
			CustomerID:          req.CustomerID,
			CustomerName:        req.CustomerName,
			CustomerEmail:       req.CustomerEmail,
			GarmentType:         req.GarmentType,
			Fabric:              req.Fabric,
			Color:               req.Color,
			Quantity:            req.Quantity,
			Price:               req.Price,
			AdvancePayment:      req.AdvancePayment,
			DeliveryDate:        req.DeliveryDate.Time,
			SpecialInstructions: req.SpecialInstructions,
		})
		if err != nil {
			// The only lookup during create is the owning customer.
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
				return
			}
			respondOrderError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Order created successfully", "order": order})
	}
}

func updateOrderHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req orderUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}

		in := ordersvc.UpdateInput{
			GarmentType:         req.GarmentType,
			Fabric:              req.Fabric,
			Color:               req.Color,
			Quantity:            req.Quantity,
			Price:               req.Price,
			AdvancePayment:      req.AdvancePayment,
			Status:              req.Status,
			SpecialInstructions: req.SpecialInstructions,
		}
		if req.DeliveryDate != nil {
			in.DeliveryDate = &req.DeliveryDate.Time
		}

		order, err := svc.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			respondOrderError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order updated successfully", "order": order})
	}
}

func deleteOrderHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondOrderError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}

func respondOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
	case errors.Is(err, domain.ErrInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	}
}

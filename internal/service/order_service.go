package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"fastfood-order-api/internal/models"
	"fastfood-order-api/internal/util"

	"go.uber.org/zap"
)

// OrderService handles order business logic
type OrderService struct {
	logger *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService() *OrderService {
	return &OrderService{
		logger: util.GetLogger(),
	}
}

// CalculateOrderRequest represents a request to price an order
type CalculateOrderRequest struct {
	Items   []OrderItemRequest `json:"items" binding:"required,dive"`
	TaxRate *float64           `json:"tax_rate"`
}

// OrderItemRequest represents one line item in a calculation request.
// Fields are pointers so that zero values still pass presence validation.
type OrderItemRequest struct {
	ProductName *string  `json:"product_name" binding:"required"`
	Quantity    *int     `json:"quantity" binding:"required"`
	UnitPrice   *float64 `json:"unit_price" binding:"required"`
}

// CalculateOrderResponse represents a priced order
type CalculateOrderResponse struct {
	Total    float64 `json:"total"`
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
}

// ValidateTransitionRequest represents a status transition check
type ValidateTransitionRequest struct {
	CurrentStatus *string `json:"current_status" binding:"required"`
	NewStatus     *string `json:"new_status" binding:"required"`
}

// ValidateTransitionResponse carries the verdict plus the statuses
// exactly as the caller sent them
type ValidateTransitionResponse struct {
	Valid         bool   `json:"valid"`
	CurrentStatus string `json:"current_status"`
	NewStatus     string `json:"new_status"`
}

// CalculateOrder builds order items from the request and prices the
// order. Subtotal and tax are recomputed with the same rounding rule
// used for the total.
func (s *OrderService) CalculateOrder(ctx context.Context, req *CalculateOrderRequest) (*CalculateOrderResponse, error) {
	ctx, span := util.StartSpan(ctx, "OrderService.CalculateOrder")
	defer span.End()

	start := time.Now()

	taxRate := 0.0
	if req.TaxRate != nil {
		taxRate = *req.TaxRate
	}

	var items []models.OrderItem
	if req.Items != nil {
		items = make([]models.OrderItem, 0, len(req.Items))
		for _, in := range req.Items {
			item, err := models.NewOrderItem(*in.ProductName, *in.Quantity, *in.UnitPrice)
			if err != nil {
				util.OrderCalculationsFailed.WithLabelValues(failureReason(err)).Inc()
				return nil, err
			}
			items = append(items, item)
		}
	}

	total, err := s.CalculateOrderTotal(ctx, items, taxRate)
	if err != nil {
		util.OrderCalculationsFailed.WithLabelValues(failureReason(err)).Inc()
		return nil, err
	}

	subtotal := 0.0
	for _, item := range items {
		subtotal += item.Total()
	}
	tax := round2(subtotal * taxRate)

	util.OrderCalculationsTotal.Inc()
	util.OrderCalculationDuration.Observe(time.Since(start).Seconds())
	s.logger.Info("Order calculated",
		zap.Int("items", len(items)),
		zap.Float64("total", total))

	return &CalculateOrderResponse{
		Total:    total,
		Subtotal: round2(subtotal),
		Tax:      tax,
	}, nil
}

// CalculateOrderTotal computes the taxed total for a set of order items.
// Validation is fail-fast: the items sequence itself, emptiness, the tax
// rate, then each element.
func (s *OrderService) CalculateOrderTotal(ctx context.Context, items []models.OrderItem, taxRate float64) (float64, error) {
	_, span := util.StartSpan(ctx, "OrderService.CalculateOrderTotal")
	defer span.End()

	if items == nil {
		return 0, models.ErrInvalidItems
	}
	if len(items) == 0 {
		return 0, models.ErrEmptyOrder
	}
	if taxRate < 0 {
		return 0, models.ErrInvalidTaxRate
	}

	subtotal := 0.0
	for _, item := range items {
		if !item.IsValid() {
			return 0, models.ErrInvalidItem
		}
		subtotal += item.Total()
	}

	return round2(subtotal * (1 + taxRate)), nil
}

// ValidateStatusTransition checks a proposed status change against the
// transition table. Matching is case-insensitive; the current status is
// validated before the new one.
func (s *OrderService) ValidateStatusTransition(ctx context.Context, currentStatus, newStatus string) (bool, error) {
	_, span := util.StartSpan(ctx, "OrderService.ValidateStatusTransition")
	defer span.End()

	current := models.OrderStatus(strings.ToLower(currentStatus))
	next := models.OrderStatus(strings.ToLower(newStatus))

	if !current.IsValid() {
		return false, &models.UnknownStatusError{Param: "current_status", Value: string(current)}
	}
	if !next.IsValid() {
		return false, &models.UnknownStatusError{Param: "new_status", Value: string(next)}
	}

	return current.CanTransitionTo(next), nil
}

// ValidateTransition runs the transition check for an API request and
// echoes the statuses unnormalized.
func (s *OrderService) ValidateTransition(ctx context.Context, req *ValidateTransitionRequest) (*ValidateTransitionResponse, error) {
	ctx, span := util.StartSpan(ctx, "OrderService.ValidateTransition")
	defer span.End()

	valid, err := s.ValidateStatusTransition(ctx, *req.CurrentStatus, *req.NewStatus)
	if err != nil {
		util.TransitionChecksFailed.Inc()
		return nil, err
	}

	result := "invalid"
	if valid {
		result = "valid"
	}
	util.TransitionChecksTotal.WithLabelValues(result).Inc()

	s.logger.Debug("Status transition checked",
		zap.String("current_status", *req.CurrentStatus),
		zap.String("new_status", *req.NewStatus),
		zap.Bool("valid", valid))

	return &ValidateTransitionResponse{
		Valid:         valid,
		CurrentStatus: *req.CurrentStatus,
		NewStatus:     *req.NewStatus,
	}, nil
}

// round2 rounds to two decimal places, halves away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// failureReason labels a calculation failure for metrics.
func failureReason(err error) string {
	switch {
	case errors.Is(err, models.ErrInvalidQuantity):
		return "invalid_quantity"
	case errors.Is(err, models.ErrInvalidUnitPrice):
		return "invalid_unit_price"
	case errors.Is(err, models.ErrInvalidItems):
		return "invalid_items"
	case errors.Is(err, models.ErrEmptyOrder):
		return "empty_order"
	case errors.Is(err, models.ErrInvalidTaxRate):
		return "invalid_tax_rate"
	case errors.Is(err, models.ErrInvalidItem):
		return "invalid_item"
	default:
		return "internal"
	}
}

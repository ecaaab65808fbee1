package models

// OrderItem represents a single line item in an order.
// It is immutable once constructed; NewOrderItem is the only way to
// obtain a valid value.
type OrderItem struct {
	productName string
	quantity    int
	unitPrice   float64
	constructed bool
}

// NewOrderItem validates and builds an order line item.
// Quantity is checked before unit price.
func NewOrderItem(productName string, quantity int, unitPrice float64) (OrderItem, error) {
	if quantity < 0 {
		return OrderItem{}, ErrInvalidQuantity
	}
	if unitPrice < 0 {
		return OrderItem{}, ErrInvalidUnitPrice
	}
	return OrderItem{
		productName: productName,
		quantity:    quantity,
		unitPrice:   unitPrice,
		constructed: true,
	}, nil
}

// ProductName returns the product name.
func (i OrderItem) ProductName() string { return i.productName }

// Quantity returns the ordered quantity.
func (i OrderItem) Quantity() int { return i.quantity }

// UnitPrice returns the price per unit.
func (i OrderItem) UnitPrice() float64 { return i.unitPrice }

// Total returns quantity * unit price. Zero quantity yields 0.
func (i OrderItem) Total() float64 {
	return float64(i.quantity) * i.unitPrice
}

// IsValid reports whether the item was built by NewOrderItem.
// A zero OrderItem is not a valid item.
func (i OrderItem) IsValid() bool { return i.constructed }

// OrderStatus is one of the fixed order lifecycle states.
// Inputs are normalized to lowercase before comparison.
type OrderStatus string

// Order statuses
const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ValidTransitions maps each status to the statuses directly reachable
// from it. delivered and cancelled are terminal. The table is built once
// at startup and never mutated.
var ValidTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:  {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

// IsValid reports whether s is a known order status.
func (s OrderStatus) IsValid() bool {
	_, ok := ValidTransitions[s]
	return ok
}

// CanTransitionTo reports whether target is a direct successor of s.
// A status is never a successor of itself.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, next := range ValidTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether s has no outgoing transitions.
func (s OrderStatus) IsTerminal() bool {
	return len(ValidTransitions[s]) == 0
}

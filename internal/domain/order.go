// Package domain contains the pure data model shared by all modules.
// Nothing in this package touches the network, the database, or the clock.
package domain

import "time"

// OrderStatus is the fixed order lifecycle enumeration. The lifecycle moves
// forward (Order Placed -> Delivered) but operators may set any status at any
// time; monotonicity is not enforced here.
type OrderStatus string

const (
	StatusOrderPlaced    OrderStatus = "Order Placed"
	StatusPacking        OrderStatus = "Packing"
	StatusShipped        OrderStatus = "Shipped"
	StatusOutForDelivery OrderStatus = "Out For Delivery"
	StatusDelivered      OrderStatus = "Delivered"
)

// OrderStatuses returns the full enumeration in lifecycle order.
// Aggregations iterate this slice so that status summaries always contain an
// entry for every status, including those with zero orders.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		StatusOrderPlaced,
		StatusPacking,
		StatusShipped,
		StatusOutForDelivery,
		StatusDelivered,
	}
}

// Valid reports whether s is one of the known lifecycle statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusOrderPlaced, StatusPacking, StatusShipped, StatusOutForDelivery, StatusDelivered:
		return true
	}
	return false
}

// OrderItem is a single line item within an order.
type OrderItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Size     string `json:"size"`
}

// Order is an order record as returned by the shop API.
type Order struct {
	ID               string      `json:"id"`
	Date             time.Time   `json:"date"`
	Amount           float64     `json:"amount"`
	Status           OrderStatus `json:"status"`
	Items            []OrderItem `json:"items"`
	Address          string      `json:"address"`
	PaymentMethod    string      `json:"payment_method"`
	PaymentConfirmed bool        `json:"payment_confirmed"`
}

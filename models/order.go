package models

import "time"

// OrderStatus represents the states an order could be in. No checkout
// exists in the demo, so no order ever leaves the fixture-empty list; the
// type is here because the orders screen renders it.
type OrderStatus string

const (
	StatusPlaced    OrderStatus = "PLACED"
	StatusConfirmed OrderStatus = "CONFIRMED"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCancelled OrderStatus = "CANCELLED"
)

type Order struct {
	ID        string      `json:"id"`
	Date      time.Time   `json:"date"`
	Status    OrderStatus `json:"status"`
	ItemCount int         `json:"item_count"`
	Total     float64     `json:"total"`
}

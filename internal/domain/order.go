package domain

import "time"

// OrderItem snapshots a cart line at checkout time.
type OrderItem struct {
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Order is a read-only historical record returned by the backend.
type Order struct {
	ID         string      `json:"id"`
	Date       time.Time   `json:"date"`
	Items      []OrderItem `json:"items"`
	Total      float64     `json:"total"`
	Discount   float64     `json:"discount"`
	FinalTotal float64     `json:"finalTotal"`
}

package models

import "time"

type Order struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	ProductID uint      `json:"product_id"`
	Quantity  uint      `json:"quantity"`
	Total     float64   `json:"total"`
	Status    string    `json:"status"`
	PaymentID uint      `json:"payment_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type OrderCreateRequest struct {
	ProductID uint    `json:"product_id"`
	Quantity  uint    `json:"quantity"`
	Total     float64 `json:"total"`
	Status    string  `json:"status"`
	PaymentID uint    `json:"payment_id,omitempty"`
}

type OrderUpdateRequest struct {
	Quantity  uint    `json:"quantity,omitempty"`
	Total     float64 `json:"total,omitempty"`
	Status    string  `json:"status,omitempty"`
	PaymentID uint    `json:"payment_id,omitempty"`
}

// OrderPage is one page of GET /orders.
type OrderPage struct {
	Page       int     `json:"page"`
	PageSize   int     `json:"page_size"`
	Total      int64   `json:"total"`
	TotalPages int     `json:"total_pages"`
	Data       []Order `json:"data"`
}

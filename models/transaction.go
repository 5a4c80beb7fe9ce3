package models

import "time"

// Transaction is immutable once recorded: there is no update or delete path.
type Transaction struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
	UserID      *int64    `json:"user_id,omitempty"`
}

type CreateTransactionRequest struct {
	Description string     `json:"description" binding:"required"`
	Amount      float64    `json:"amount"`
	Category    string     `json:"category" binding:"required"`
	Date        *time.Time `json:"date"`
	UserID      *int64     `json:"user_id"`
}

// CategorySpend is the result row of the highest-spending-category query.
type CategorySpend struct {
	Category   string  `json:"category"`
	TotalSpent float64 `json:"total_spent"`
}

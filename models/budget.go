package models

import "time"

type Budget struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	Category  string    `json:"category"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	UserID    *int64    `json:"user_id,omitempty"`
}

type CreateBudgetRequest struct {
	Name      string    `json:"name" binding:"required"`
	Amount    float64   `json:"amount"`
	Category  string    `json:"category" binding:"required"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
	UserID    *int64    `json:"user_id"`
}

type ExtendBudgetRequest struct {
	NewEndDate time.Time `json:"new_end_date" binding:"required"`
}

package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AlvinDakz/budgetease-api/models"
	"github.com/AlvinDakz/budgetease-api/repository"
)

type TransactionHandler struct {
	Transactions *repository.TransactionRepository
}

func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req models.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx, err := h.Transactions.Create(c.Request.Context(), req)
	if errors.Is(err, repository.ErrConstraintViolation) {
		c.JSON(http.StatusConflict, gin.H{"error": "Referenced user does not exist"})
		return
	}
	if err != nil {
		log.Printf("Error creating transaction: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
		return
	}

	c.JSON(http.StatusCreated, tx)
}

func (h *TransactionHandler) ListByDateRange(c *gin.Context) {
	start, err := time.Parse(time.RFC3339, c.Query("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start_date (expected RFC3339)"})
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end_date (expected RFC3339)"})
		return
	}

	transactions, err := h.Transactions.ListByDateRange(c.Request.Context(), start, end)
	if err != nil {
		log.Printf("Error listing transactions by date: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, transactions)
}

func (h *TransactionHandler) ListByCategory(c *gin.Context) {
	transactions, err := h.Transactions.ListByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		log.Printf("Error listing transactions by category: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, transactions)
}

func (h *TransactionHandler) ListByUser(c *gin.Context) {
	userID, ok := idParam(c, "user_id")
	if !ok {
		return
	}

	transactions, err := h.Transactions.ListByUser(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error listing transactions for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, transactions)
}

func (h *TransactionHandler) TotalSpent(c *gin.Context) {
	userID, ok := idParam(c, "user_id")
	if !ok {
		return
	}

	total, err := h.Transactions.TotalSpentByUser(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error totaling spend for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute total"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"total_spent": total})
}

func (h *TransactionHandler) Count(c *gin.Context) {
	count, err := h.Transactions.Count(c.Request.Context())
	if err != nil {
		log.Printf("Error counting transactions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count transactions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"total_transactions": count})
}

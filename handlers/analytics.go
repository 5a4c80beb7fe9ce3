package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlvinDakz/budgetease-api/repository"
)

type AnalyticsHandler struct {
	Analytics *repository.AnalyticsRepository
	Budgets   *repository.BudgetRepository
}

func (h *AnalyticsHandler) SpendingByCategory(c *gin.Context) {
	total, err := h.Analytics.SpendingByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		log.Printf("Error computing category spend: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute spending"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"total_spent": total})
}

func (h *AnalyticsHandler) TransactionCountByCategory(c *gin.Context) {
	count, err := h.Analytics.TransactionCountByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		log.Printf("Error counting category transactions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count transactions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *AnalyticsHandler) BudgetUtilization(c *gin.Context) {
	id, ok := idParam(c, "budget_id")
	if !ok {
		return
	}

	utilization, err := h.Budgets.UtilizationRatio(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		return
	}
	if err != nil {
		log.Printf("Error computing utilization for budget %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute utilization"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"utilization": utilization})
}

func (h *AnalyticsHandler) MonthlySpending(c *gin.Context) {
	userID, ok := idParam(c, "user_id")
	if !ok {
		return
	}

	total, err := h.Analytics.MonthlySpending(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error computing monthly spend for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute monthly spending"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"monthly_spending": total})
}

func (h *AnalyticsHandler) HighestSpendingCategory(c *gin.Context) {
	result, err := h.Analytics.HighestSpendingCategory(c.Request.Context())
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No transactions recorded"})
		return
	}
	if err != nil {
		log.Printf("Error finding highest spending category: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute highest spending category"})
		return
	}

	c.JSON(http.StatusOK, result)
}

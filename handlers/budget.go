package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AlvinDakz/budgetease-api/models"
	"github.com/AlvinDakz/budgetease-api/repository"
)

type BudgetHandler struct {
	Budgets *repository.BudgetRepository
	WS      *WSHandler
}

func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var req models.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	budget, err := h.Budgets.Create(c.Request.Context(), req)
	if errors.Is(err, repository.ErrConstraintViolation) {
		c.JSON(http.StatusConflict, gin.H{"error": "Referenced user does not exist"})
		return
	}
	if err != nil {
		log.Printf("Error creating budget: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create budget"})
		return
	}

	c.JSON(http.StatusCreated, budget)
}

func (h *BudgetHandler) GetBudget(c *gin.Context) {
	id, ok := idParam(c, "budget_id")
	if !ok {
		return
	}

	budget, err := h.Budgets.GetByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		return
	}
	if err != nil {
		log.Printf("Error fetching budget %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch budget"})
		return
	}

	c.JSON(http.StatusOK, budget)
}

func (h *BudgetHandler) ListByCategory(c *gin.Context) {
	budgets, err := h.Budgets.ListByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		log.Printf("Error listing budgets by category: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list budgets"})
		return
	}

	c.JSON(http.StatusOK, budgets)
}

func (h *BudgetHandler) ListByUser(c *gin.Context) {
	userID, ok := idParam(c, "user_id")
	if !ok {
		return
	}

	budgets, err := h.Budgets.ListByUser(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error listing budgets for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list budgets"})
		return
	}

	c.JSON(http.StatusOK, budgets)
}

func (h *BudgetHandler) TotalBudget(c *gin.Context) {
	userID, ok := idParam(c, "user_id")
	if !ok {
		return
	}

	total, err := h.Budgets.TotalByUser(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error totaling budgets for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute total"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"total_budget": total})
}

func (h *BudgetHandler) ExtendBudget(c *gin.Context) {
	id, ok := idParam(c, "budget_id")
	if !ok {
		return
	}

	var req models.ExtendBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	budget, err := h.Budgets.ExtendEndDate(c.Request.Context(), id, req.NewEndDate)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		return
	}
	if err != nil {
		log.Printf("Error extending budget %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to extend budget"})
		return
	}

	if h.WS != nil {
		h.WS.BroadcastUpdate(strconv.FormatInt(id, 10), "budget_extended")
	}

	c.JSON(http.StatusOK, budget)
}

func (h *BudgetHandler) CheckExceeded(c *gin.Context) {
	id, ok := idParam(c, "budget_id")
	if !ok {
		return
	}

	exceeded, err := h.Budgets.IsExceeded(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		return
	}
	if err != nil {
		log.Printf("Error checking budget %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check budget"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget_exceeded": exceeded})
}

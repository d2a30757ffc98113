package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/tripmate/internal/domain"
	"github.com/Domenick1991/tripmate/internal/service/state"
	"github.com/gin-gonic/gin"
)

type ExpenseHandler struct {
	store state.StateStore
}

type createExpenseRequest struct {
	Category      domain.ExpenseCategory `json:"category" binding:"omitempty,oneof=accommodation transport food activities shopping other"`
	Description   string                 `json:"description" binding:"required"`
	Amount        float64                `json:"amount" binding:"required,gt=0"`
	Currency      string                 `json:"currency" binding:"omitempty,len=3"`
	Date          time.Time              `json:"date"`
	Destination   string                 `json:"destination"`
	PaymentMethod string                 `json:"paymentMethod"`
}

type totalResponse struct {
	Currency string  `json:"currency"`
	Total    float64 `json:"total"`
}

func NewExpenseHandler(store state.StateStore) *ExpenseHandler {
	return &ExpenseHandler{store: store}
}

func (h *ExpenseHandler) Register(router *gin.RouterGroup) {
	router.POST("/expenses", h.create)
	router.GET("/expenses", h.list)
	router.GET("/expenses/total", h.total)
	router.DELETE("/expenses/:id", h.delete)
}

func (h *ExpenseHandler) create(c *gin.Context) {
	var req createExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	id, err := h.store.AddExpense(c.Request.Context(), domain.Expense{
		Category:      req.Category,
		Description:   req.Description,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Date:          req.Date,
		Destination:   req.Destination,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *ExpenseHandler) list(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetExpenses(c.Request.Context(), c.Query("userId")))
}

func (h *ExpenseHandler) total(c *gin.Context) {
	currency := c.DefaultQuery("currency", state.DefaultCurrency)
	c.JSON(http.StatusOK, totalResponse{
		Currency: currency,
		Total:    h.store.GetTotalExpenses(c.Request.Context(), currency),
	})
}

func (h *ExpenseHandler) delete(c *gin.Context) {
	if err := h.store.DeleteExpense(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

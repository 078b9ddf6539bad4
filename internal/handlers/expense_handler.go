package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/splitease/backend/internal/models"
	"github.com/splitease/backend/internal/service"
)

// ExpenseHandler serves the expense ledger endpoints.
type ExpenseHandler struct {
	expenses *service.ExpenseService
}

// NewExpenseHandler creates a handler around the expense service.
func NewExpenseHandler(expenses *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

type expenseResponse struct {
	ID          string `json:"id"`
	TripID      string `json:"trip_id"`
	Amount      string `json:"amount"`
	PaidByID    string `json:"paid_by_id"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	CreatedAt   int64  `json:"created_at"`
}

func toExpenseResponse(e *models.Expense) expenseResponse {
	return expenseResponse{
		ID:          e.ID,
		TripID:      e.TripID,
		Amount:      e.Amount.StringFixed(2),
		PaidByID:    e.PaidByID,
		Category:    string(e.Category),
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}

// RecordExpense appends an expense and updates the trip's balances.
func (h *ExpenseHandler) RecordExpense(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount      string `json:"amount" validate:"required"`
		PayerID     string `json:"payer_id" validate:"required"`
		Category    string `json:"category" validate:"required"`
		Description string `json:"description" validate:"max=255"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	expense, err := h.expenses.RecordExpense(r.Context(),
		chi.URLParam(r, "tripID"), req.PayerID, req.Amount, req.Category, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toExpenseResponse(expense))
}

// ListExpenses returns a trip's expense log.
func (h *ExpenseHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.expenses.ListExpenses(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]expenseResponse, len(expenses))
	for i, e := range expenses {
		out[i] = toExpenseResponse(e)
	}
	writeJSON(w, http.StatusOK, map[string]any{"expenses": out})
}

// DeleteExpense removes an expense record. Balances derived from it stay
// as they are.
func (h *ExpenseHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := h.expenses.DeleteExpense(r.Context(), chi.URLParam(r, "expenseID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/splitease/backend/internal/middleware"
	"github.com/splitease/backend/internal/service"
)

// SettlementHandler serves the settlement endpoints.
type SettlementHandler struct {
	settlements *service.SettlementService
}

// NewSettlementHandler creates a handler around the settlement service.
func NewSettlementHandler(settlements *service.SettlementService) *SettlementHandler {
	return &SettlementHandler{settlements: settlements}
}

// SettleDebt zeroes a single debt by ID.
func (h *SettlementHandler) SettleDebt(w http.ResponseWriter, r *http.Request) {
	if err := h.settlements.SettleDebt(r.Context(), chi.URLParam(r, "debtID")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"settled": true})
}

// SettleDebtBetween zeroes every debt from debtor to creditor within a
// trip. The authenticated caller must be the creditor.
func (h *SettlementHandler) SettleDebtBetween(w http.ResponseWriter, r *http.Request) {
	err := h.settlements.SettleDebtBetween(r.Context(),
		chi.URLParam(r, "tripID"),
		chi.URLParam(r, "debtorID"),
		chi.URLParam(r, "creditorID"),
		middleware.GetUserID(r.Context()),
	)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"settled": true})
}

package handlers

import (
	"net/http"

	"github.com/splitease/backend/internal/middleware"
	"github.com/splitease/backend/internal/models"
	"github.com/splitease/backend/internal/service"
)

// ReportHandler serves the per-user home summary.
type ReportHandler struct {
	reports *service.ReportService
}

// NewReportHandler creates a handler around the report service.
func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

type debtResponse struct {
	ID         string `json:"id"`
	TripID     string `json:"trip_id"`
	FromUserID string `json:"from_user_id"`
	ToUserID   string `json:"to_user_id"`
	Amount     string `json:"amount"`
}

func toDebtResponses(debts []*models.Debt) []debtResponse {
	out := make([]debtResponse, len(debts))
	for i, d := range debts {
		out[i] = debtResponse{
			ID:         d.ID,
			TripID:     d.TripID,
			FromUserID: d.FromUserID,
			ToUserID:   d.ToUserID,
			Amount:     d.Amount.StringFixed(2),
		}
	}
	return out
}

// Home returns the authenticated user's trips, outstanding debts in both
// directions and their totals.
func (h *ReportHandler) Home(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reports.HomeSummary(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	trips := make([]tripResponse, len(summary.Trips))
	for i, t := range summary.Trips {
		trips[i] = toTripResponse(t)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"trips":            trips,
		"to_pay":           toDebtResponses(summary.ToPay),
		"to_receive":       toDebtResponses(summary.ToReceive),
		"total_to_pay":     summary.TotalToPay.StringFixed(2),
		"total_to_receive": summary.TotalToReceive.StringFixed(2),
	})
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/splitease/backend/internal/middleware"
	"github.com/splitease/backend/internal/models"
	"github.com/splitease/backend/internal/service"
)

// TripHandler serves trip management and the per-trip dashboard.
type TripHandler struct {
	trips   *service.TripService
	reports *service.ReportService
}

// NewTripHandler creates a handler around the trip and report services.
func NewTripHandler(trips *service.TripService, reports *service.ReportService) *TripHandler {
	return &TripHandler{trips: trips, reports: reports}
}

type tripResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreatorID   string `json:"creator_id,omitempty"`
	CreatedAt   int64  `json:"created_at"`
}

func toTripResponse(t *models.Trip) tripResponse {
	return tripResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		CreatorID:   t.CreatorID,
		CreatedAt:   t.CreatedAt,
	}
}

type memberResponse struct {
	ID            string `json:"id"`
	TripID        string `json:"trip_id"`
	Name          string `json:"name"`
	ContactHandle string `json:"contact_handle"`
	UserID        string `json:"user_id"`
}

func toMemberResponse(m *models.Member) memberResponse {
	return memberResponse{
		ID:            m.ID,
		TripID:        m.TripID,
		Name:          m.Name,
		ContactHandle: m.ContactHandle,
		UserID:        m.UserID,
	}
}

// CreateTrip creates a trip with its initial roster.
func (h *TripHandler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name" validate:"required,max=100"`
		Description string `json:"description"`
		Members     []struct {
			Name          string `json:"name" validate:"required"`
			ContactHandle string `json:"contact_handle" validate:"required"`
		} `json:"members" validate:"dive"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	members := make([]service.MemberInput, len(req.Members))
	for i, m := range req.Members {
		members[i] = service.MemberInput{Name: m.Name, ContactHandle: m.ContactHandle}
	}

	trip, err := h.trips.CreateTrip(r.Context(), req.Name, req.Description, middleware.GetUserID(r.Context()), members)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTripResponse(trip))
}

// GetTrip returns the trip with its dashboard of outstanding debts.
func (h *TripHandler) GetTrip(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripID")

	trip, err := h.trips.GetTrip(r.Context(), tripID)
	if err != nil {
		writeError(w, err)
		return
	}

	debts, err := h.reports.TripDashboard(r.Context(), tripID)
	if err != nil {
		writeError(w, err)
		return
	}

	hasPaid, err := h.reports.HasPaidAnyExpense(r.Context(), tripID, middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"trip":                 toTripResponse(trip),
		"debts":                debts,
		"has_paid_any_expense": hasPaid,
	})
}

// DeleteTrip removes a trip and everything under it.
func (h *TripHandler) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	if err := h.trips.DeleteTrip(r.Context(), chi.URLParam(r, "tripID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddMember adds one person to the roster.
func (h *TripHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name          string `json:"name" validate:"required"`
		ContactHandle string `json:"contact_handle" validate:"required"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	member, err := h.trips.AddMember(r.Context(), chi.URLParam(r, "tripID"), req.Name, req.ContactHandle)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMemberResponse(member))
}

// ListMembers returns the roster in insertion order.
func (h *TripHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.trips.ListMembers(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]memberResponse, len(members))
	for i, m := range members {
		out[i] = toMemberResponse(m)
	}
	writeJSON(w, http.StatusOK, map[string]any{"members": out})
}

package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/splitease/backend/internal/models"
	"github.com/splitease/backend/internal/storage"
)

// DashboardEntry is one outstanding balance on a trip dashboard, enriched
// with display names and a ready-to-send reminder.
type DashboardEntry struct {
	DebtID           string          `json:"debt_id"`
	DebtorID         string          `json:"debtor_id"`
	DebtorName       string          `json:"debtor_name"`
	CreditorID       string          `json:"creditor_id"`
	CreditorName     string          `json:"creditor_name"`
	ContactHandle    string          `json:"contact_handle"`
	Amount           decimal.Decimal `json:"amount"`
	SuggestedMessage string          `json:"suggested_message"`
}

// HomeSummary aggregates one user's position across all their trips.
// Totals are zero, never absent, when the respective list is empty.
type HomeSummary struct {
	Trips          []*models.Trip
	ToPay          []*models.Debt
	ToReceive      []*models.Debt
	TotalToPay     decimal.Decimal
	TotalToReceive decimal.Decimal
}

// ReportService reads balances and expenses into per-trip and per-user
// views. It never mutates.
type ReportService struct {
	store storage.Store
}

// NewReportService creates a new ReportService with the given storage
// backend.
func NewReportService(store storage.Store) *ReportService {
	return &ReportService{store: store}
}

// TripDashboard lists every outstanding (non-zero) debt for a trip.
//
// The debtor's display name comes from the linked account: first name when
// present, username otherwise. Shadow accounts carry the member-provided
// name as their first name, so shadow members always render by the name
// they were added under. The contact handle is the debtor's roster entry.
func (s *ReportService) TripDashboard(ctx context.Context, tripID string) ([]DashboardEntry, error) {
	slog.Info("TripDashboard request received", "trip_id", tripID)

	trip, err := s.store.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	debts, err := s.store.ListDebtsByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	members, err := s.store.ListMembers(ctx, tripID)
	if err != nil {
		return nil, err
	}
	handleByUser := make(map[string]string, len(members))
	for _, m := range members {
		handleByUser[m.UserID] = m.ContactHandle
	}

	ids := make([]string, 0, len(debts)*2)
	for _, d := range debts {
		ids = append(ids, d.FromUserID, d.ToUserID)
	}
	users, err := s.store.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	entries := make([]DashboardEntry, 0, len(debts))
	for _, d := range debts {
		debtorName := d.FromUserID
		if u, ok := users[d.FromUserID]; ok {
			debtorName = u.DisplayName()
		}
		creditorName := d.ToUserID
		if u, ok := users[d.ToUserID]; ok {
			creditorName = u.DisplayName()
		}

		entries = append(entries, DashboardEntry{
			DebtID:        d.ID,
			DebtorID:      d.FromUserID,
			DebtorName:    debtorName,
			CreditorID:    d.ToUserID,
			CreditorName:  creditorName,
			ContactHandle: handleByUser[d.FromUserID],
			Amount:        d.Amount,
			SuggestedMessage: fmt.Sprintf(
				"Hi %s! Friendly reminder: you owe %s %s for the %s trip. Please settle up when you can.",
				debtorName, creditorName, d.Amount.StringFixed(2), trip.Name,
			),
		})
	}

	return entries, nil
}

// HomeSummary aggregates a user's trips, outstanding debts in both
// directions and their totals.
func (s *ReportService) HomeSummary(ctx context.Context, userID string) (*HomeSummary, error) {
	slog.Info("HomeSummary request received", "user_id", userID)

	if _, err := s.store.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}

	trips, err := s.store.ListTripsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	toPay, err := s.store.ListDebtsOwedBy(ctx, userID)
	if err != nil {
		return nil, err
	}
	toReceive, err := s.store.ListDebtsOwedTo(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &HomeSummary{
		Trips:          trips,
		ToPay:          toPay,
		ToReceive:      toReceive,
		TotalToPay:     decimal.Zero,
		TotalToReceive: decimal.Zero,
	}
	for _, d := range toPay {
		summary.TotalToPay = summary.TotalToPay.Add(d.Amount)
	}
	for _, d := range toReceive {
		summary.TotalToReceive = summary.TotalToReceive.Add(d.Amount)
	}

	return summary, nil
}

// HasPaidAnyExpense reports whether the user has paid at least one expense
// on the trip.
func (s *ReportService) HasPaidAnyExpense(ctx context.Context, tripID, userID string) (bool, error) {
	if _, err := s.store.GetTrip(ctx, tripID); err != nil {
		return false, err
	}
	return s.store.HasExpenseByPayer(ctx, tripID, userID)
}

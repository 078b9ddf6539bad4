package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitease/backend/internal/models"
)

func TestTripDashboard(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	trip, ids := env.createTrip(t, "Goa", "Ravi", "Priya")
	_, err := env.expenses.RecordExpense(ctx, trip.ID, ids["Ravi"], "100.00", "Food", "")
	require.NoError(t, err)

	entries, err := env.reports.TripDashboard(ctx, trip.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, ids["Priya"], e.DebtorID)
	assert.Equal(t, ids["Ravi"], e.CreditorID)
	assert.Equal(t, "Priya", e.DebtorName, "shadow members display by their provided name")
	assert.Equal(t, "555-Priya", e.ContactHandle)
	assert.True(t, e.Amount.Equal(amount("50.00")))
	assert.Contains(t, e.SuggestedMessage, "Priya")
	assert.Contains(t, e.SuggestedMessage, "Ravi")
	assert.Contains(t, e.SuggestedMessage, "50.00")
	assert.Contains(t, e.SuggestedMessage, "Goa")
}

func TestTripDashboardSkipsSettledDebts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	trip, ids := env.createTrip(t, "Goa", "Ravi", "Priya")
	_, err := env.expenses.RecordExpense(ctx, trip.ID, ids["Ravi"], "100.00", "Food", "")
	require.NoError(t, err)

	debt := env.debtBetween(t, trip.ID, ids["Priya"], ids["Ravi"])
	require.NotNil(t, debt)
	require.NoError(t, env.settlements.SettleDebt(ctx, debt.ID))

	entries, err := env.reports.TripDashboard(ctx, trip.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHomeSummaryTotals(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	trip, ids := env.createTrip(t, "Goa", "A", "B", "C")
	_, err := env.expenses.RecordExpense(ctx, trip.ID, ids["A"], "90.00", "Food", "")
	require.NoError(t, err)
	_, err = env.expenses.RecordExpense(ctx, trip.ID, ids["B"], "30.00", "Travel", "")
	require.NoError(t, err)

	// From A's perspective: owes B 10.00, is owed 30.00 each by B and C.
	summary, err := env.reports.HomeSummary(ctx, ids["A"])
	require.NoError(t, err)

	require.Len(t, summary.Trips, 1)
	assert.Equal(t, trip.ID, summary.Trips[0].ID)

	assert.Len(t, summary.ToPay, 1)
	assert.True(t, summary.TotalToPay.Equal(amount("10.00")), "total_to_pay = %s", summary.TotalToPay)

	assert.Len(t, summary.ToReceive, 2)
	assert.True(t, summary.TotalToReceive.Equal(amount("60.00")), "total_to_receive = %s", summary.TotalToReceive)
}

func TestHomeSummaryEmpty(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := models.NewUser("loner", "", "x")
	require.NoError(t, env.store.CreateUser(ctx, user))

	summary, err := env.reports.HomeSummary(ctx, user.ID)
	require.NoError(t, err)

	assert.Empty(t, summary.Trips)
	assert.Empty(t, summary.ToPay)
	assert.Empty(t, summary.ToReceive)
	assert.True(t, summary.TotalToPay.IsZero(), "totals must be zero, not absent")
	assert.True(t, summary.TotalToReceive.IsZero())
}

func TestHasPaidAnyExpense(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	trip, ids := env.createTrip(t, "Goa", "A", "B")
	_, err := env.expenses.RecordExpense(ctx, trip.ID, ids["A"], "20.00", "Other", "")
	require.NoError(t, err)

	paid, err := env.reports.HasPaidAnyExpense(ctx, trip.ID, ids["A"])
	require.NoError(t, err)
	assert.True(t, paid)

	paid, err = env.reports.HasPaidAnyExpense(ctx, trip.ID, ids["B"])
	require.NoError(t, err)
	assert.False(t, paid)
}

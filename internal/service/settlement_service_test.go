package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitease/backend/internal/storage"
)

func TestSettleDebtZeroesButKeepsRecord(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	trip, ids := env.createTrip(t, "Goa", "A", "B")
	_, err := env.expenses.RecordExpense(ctx, trip.ID, ids["A"], "100.00", "Food", "")
	require.NoError(t, err)

	debt := env.debtBetween(t, trip.ID, ids["B"], ids["A"])
	require.NotNil(t, debt)

	require.NoError(t, env.settlements.SettleDebt(ctx, debt.ID))

	settled, err := env.store.GetDebt(ctx, debt.ID)
	require.NoError(t, err)
	assert.True(t, settled.Amount.IsZero(), "amount = %s, want 0", settled.Amount)

	// Settling an already-zero debt is still fine.
	require.NoError(t, env.settlements.SettleDebt(ctx, debt.ID))
}

func TestSettleDebtUnknownID(t *testing.T) {
	env := newTestEnv(t)

	err := env.settlements.SettleDebt(context.Background(), "missing-debt")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSettleDebtBetweenRequiresCreditor(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	trip, ids := env.createTrip(t, "Goa", "A", "B")
	_, err := env.expenses.RecordExpense(ctx, trip.ID, ids["A"], "100.00", "Food", "")
	require.NoError(t, err)

	// The debtor cannot confirm their own settlement.
	err = env.settlements.SettleDebtBetween(ctx, trip.ID, ids["B"], ids["A"], ids["B"])
	require.ErrorIs(t, err, ErrNotAuthorized)

	debt := env.debtBetween(t, trip.ID, ids["B"], ids["A"])
	require.NotNil(t, debt)
	assert.True(t, debt.Amount.Equal(amount("50.00")), "amount changed on a rejected settlement")

	// The creditor can.
	require.NoError(t, env.settlements.SettleDebtBetween(ctx, trip.ID, ids["B"], ids["A"], ids["A"]))
	assert.Nil(t, env.debtBetween(t, trip.ID, ids["B"], ids["A"]))
}

func TestSettleDebtBetweenNoMatchingPair(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	trip, ids := env.createTrip(t, "Goa", "A", "B")

	// No expense ever recorded: there is no Debt(B->A) row.
	err := env.settlements.SettleDebtBetween(ctx, trip.ID, ids["B"], ids["A"], ids["A"])
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

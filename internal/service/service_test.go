package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/splitease/backend/internal/models"
	"github.com/splitease/backend/internal/storage/sqlite"
)

// testEnv wires every service against a real SQLite store on a temp file.
type testEnv struct {
	store       *sqlite.SQLiteStore
	trips       *TripService
	expenses    *ExpenseService
	settlements *SettlementService
	reports     *ReportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return &testEnv{
		store:       store,
		trips:       NewTripService(store),
		expenses:    NewExpenseService(store),
		settlements: NewSettlementService(store),
		reports:     NewReportService(store),
	}
}

// createTrip creates a trip with the given member names (contact handles are
// derived) and returns the trip plus a name -> account ID map.
func (e *testEnv) createTrip(t *testing.T, name string, memberNames ...string) (*models.Trip, map[string]string) {
	t.Helper()
	ctx := context.Background()

	inputs := make([]MemberInput, len(memberNames))
	for i, n := range memberNames {
		inputs[i] = MemberInput{Name: n, ContactHandle: "555-" + n}
	}

	trip, err := e.trips.CreateTrip(ctx, name, "", "", inputs)
	require.NoError(t, err)

	members, err := e.trips.ListMembers(ctx, trip.ID)
	require.NoError(t, err)

	ids := make(map[string]string, len(members))
	for _, m := range members {
		ids[m.Name] = m.UserID
	}
	return trip, ids
}

// debtBetween finds the outstanding debt from debtor to creditor within a
// trip, or nil when no non-zero row exists.
func (e *testEnv) debtBetween(t *testing.T, tripID, fromID, toID string) *models.Debt {
	t.Helper()

	debts, err := e.store.ListDebtsByTrip(context.Background(), tripID)
	require.NoError(t, err)
	for _, d := range debts {
		if d.FromUserID == fromID && d.ToUserID == toID {
			return d
		}
	}
	return nil
}

func amount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

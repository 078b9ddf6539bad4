package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestPerHeadShare(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		n      int
		want   string
	}{
		{"even two-way split", "100.00", 2, "50"},
		{"three-way split truncates the remainder", "100.00", 3, "33.33"},
		{"six-way split truncates, never rounds up", "100.00", 6, "16.66"},
		{"single member keeps the full amount", "42.50", 1, "42.5"},
		{"sub-cent shares truncate to zero", "0.01", 2, "0"},
		{"zero members yields zero", "10.00", 0, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PerHeadShare(dec(tt.amount), tt.n)
			if !got.Equal(dec(tt.want)) {
				t.Errorf("PerHeadShare(%s, %d) = %s, want %s", tt.amount, tt.n, got, tt.want)
			}
		})
	}
}

func TestSplitExpense(t *testing.T) {
	tests := []struct {
		name       string
		amount     string
		payer      string
		members    []string
		wantShare  string
		wantOwing  []string
	}{
		{
			name:      "two members, payer excluded",
			amount:    "100.00",
			payer:     "alice",
			members:   []string{"alice", "bob"},
			wantShare: "50",
			wantOwing: []string{"bob"},
		},
		{
			name:      "three members drop the remainder",
			amount:    "100.00",
			payer:     "alice",
			members:   []string{"alice", "bob", "carol"},
			wantShare: "33.33",
			wantOwing: []string{"bob", "carol"},
		},
		{
			name:      "payer not on roster still owes nothing",
			amount:    "30.00",
			payer:     "dave",
			members:   []string{"alice", "bob", "carol"},
			wantShare: "10",
			wantOwing: []string{"alice", "bob", "carol"},
		},
		{
			name:      "empty roster is a no-op",
			amount:    "100.00",
			payer:     "alice",
			members:   nil,
			wantShare: "0",
			wantOwing: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deltas := SplitExpense(dec(tt.amount), tt.payer, tt.members)
			if len(deltas) != len(tt.wantOwing) {
				t.Fatalf("got %d deltas, want %d", len(deltas), len(tt.wantOwing))
			}
			for i, d := range deltas {
				if d.FromUserID != tt.wantOwing[i] {
					t.Errorf("delta %d: from = %s, want %s", i, d.FromUserID, tt.wantOwing[i])
				}
				if d.ToUserID != tt.payer {
					t.Errorf("delta %d: to = %s, want %s", i, d.ToUserID, tt.payer)
				}
				if !d.Amount.Equal(dec(tt.wantShare)) {
					t.Errorf("delta %d: amount = %s, want %s", i, d.Amount, tt.wantShare)
				}
			}
		})
	}
}

func TestSplitExpenseNeverChargesPayer(t *testing.T) {
	deltas := SplitExpense(dec("75.00"), "bob", []string{"alice", "bob", "carol"})
	for _, d := range deltas {
		if d.FromUserID == "bob" {
			t.Errorf("payer received a debt delta: %+v", d)
		}
	}
	if len(deltas) != 2 {
		t.Errorf("expected 2 deltas, got %d", len(deltas))
	}
}

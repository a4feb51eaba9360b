package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidationError describes a single invariant violation found in an account.
type ValidationError struct {
	Invariant   int
	Account     int
	Entry       int // 1-based history position, 0 for account-level findings
	Description string
}

func (e ValidationError) Error() string {
	if e.Entry == 0 {
		return fmt.Sprintf("invariant %d [account %d]: %s", e.Invariant, e.Account, e.Description)
	}
	return fmt.Sprintf("invariant %d [account %d #%d]: %s", e.Invariant, e.Account, e.Entry, e.Description)
}

// Verify rebuilds an account's balance from its history alone and reports
// every place the history and the live balance disagree.
func Verify(a *Account) []ValidationError {
	var errs []ValidationError
	add := func(inv, entry int, format string, args ...any) {
		errs = append(errs, ValidationError{
			Invariant:   inv,
			Account:     a.number,
			Entry:       entry,
			Description: fmt.Sprintf(format, args...),
		})
	}

	// Invariant 1: history opens with CREATE.
	if len(a.history) == 0 {
		add(1, 0, "history is empty")
		return errs
	}
	if a.history[0].Kind != KindCreate {
		add(1, 1, "first entry is %s, want %s", a.history[0].Kind, KindCreate)
	}

	running := decimal.Zero
	for i, tx := range a.history {
		pos := i + 1

		// Invariant 5: amounts are non-negative; updates carry none.
		if tx.Amount.IsNegative() {
			add(5, pos, "negative amount %s", tx.Amount)
		}
		if tx.Kind == KindAccountUpdate && !tx.Amount.IsZero() {
			add(5, pos, "%s carries amount %s", tx.Kind, tx.Amount)
		}

		// Invariant 6: no more than 2 decimal places.
		if err := checkCents(tx.Amount); err != nil {
			add(6, pos, "amount %s has more than 2 decimal places", tx.Amount)
		}

		// Invariant 2: balance snapshots chain.
		running = running.Add(tx.Signed())
		if !tx.BalanceAfter.Equal(running) {
			add(2, pos, "balance after %s, expected %s", tx.BalanceAfter.StringFixed(2), running.StringFixed(2))
			running = tx.BalanceAfter
		}

		// Invariant 4: never negative.
		if tx.BalanceAfter.IsNegative() {
			add(4, pos, "balance after %s is negative", tx.BalanceAfter.StringFixed(2))
		}
	}

	// Invariant 3: last snapshot matches the live balance.
	last := a.history[len(a.history)-1]
	if !last.BalanceAfter.Equal(a.balance) {
		add(3, 0, "balance %s, history ends at %s", a.balance.StringFixed(2), last.BalanceAfter.StringFixed(2))
	}

	return errs
}

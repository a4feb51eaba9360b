package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Account holds a balance and the ordered history that produced it.
// Accounts returned by Bank are read-only snapshots; balances only change
// through the Bank's Deposit, Withdraw and Transfer.
type Account struct {
	number  int
	owner   string
	balance decimal.Decimal
	history []Transaction
}

// newAccount opens an account and records the opening balance as a CREATE entry.
func newAccount(number int, owner string, opening decimal.Decimal) *Account {
	a := &Account{number: number, owner: owner, balance: opening}
	a.record(KindCreate, opening, "Initial Deposit")
	return a
}

// Number returns the account number.
func (a *Account) Number() int { return a.number }

// Owner returns the current owner name.
func (a *Account) Owner() string { return a.owner }

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal { return a.balance }

// History returns a copy of the transaction history, oldest first.
func (a *Account) History() []Transaction {
	out := make([]Transaction, len(a.history))
	copy(out, a.history)
	return out
}

// deposit adds amount to the balance and records a DEPOSIT.
func (a *Account) deposit(amount decimal.Decimal, note string) error {
	return a.credit(KindDeposit, amount, note)
}

// withdraw removes amount from the balance and records a WITHDRAW.
// The account is left untouched when amount exceeds the balance.
func (a *Account) withdraw(amount decimal.Decimal, note string) error {
	return a.debit(KindWithdraw, amount, note)
}

// updateName replaces the owner name and records an ACCOUNT_UPDATE entry.
// A blank or identical name returns ErrNoChange.
func (a *Account) updateName(newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" || newName == a.owner {
		return ErrNoChange
	}
	old := a.owner
	a.owner = newName
	a.record(KindAccountUpdate, decimal.Zero, fmt.Sprintf("Name changed from '%s' to '%s'", old, newName))
	return nil
}

func (a *Account) credit(kind Kind, amount decimal.Decimal, note string) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	a.add(kind, amount, note)
	return nil
}

// add applies an already validated credit.
func (a *Account) add(kind Kind, amount decimal.Decimal, note string) {
	a.balance = a.balance.Add(amount)
	a.record(kind, amount, note)
}

func (a *Account) debit(kind Kind, amount decimal.Decimal, note string) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	if amount.GreaterThan(a.balance) {
		return fmt.Errorf("%w: balance %s, requested %s", ErrInsufficientFunds, a.balance.StringFixed(2), amount.StringFixed(2))
	}
	a.balance = a.balance.Sub(amount)
	a.record(kind, amount, note)
	return nil
}

func (a *Account) record(kind Kind, amount decimal.Decimal, note string) {
	a.history = append(a.history, Transaction{
		Kind:         kind,
		Amount:       amount,
		BalanceAfter: a.balance,
		Note:         note,
	})
}

// clone returns a detached copy safe to hand out of the Bank.
func (a *Account) clone() *Account {
	return &Account{
		number:  a.number,
		owner:   a.owner,
		balance: a.balance,
		history: a.History(),
	}
}

var hundred = decimal.NewFromInt(100)

// minExponent bounds how finely an amount may be written before any
// arithmetic is done on it.
const minExponent = -18

// checkAmount accepts positive amounts with at most two decimal places.
func checkAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: must be greater than zero", ErrInvalidAmount)
	}
	return checkCents(amount)
}

func checkCents(amount decimal.Decimal) error {
	if amount.Exponent() < minExponent {
		return fmt.Errorf("%w: more than 2 decimal places", ErrInvalidAmount)
	}
	scaled := amount.Mul(hundred)
	if !scaled.Equal(scaled.Floor()) {
		return fmt.Errorf("%w: more than 2 decimal places", ErrInvalidAmount)
	}
	return nil
}

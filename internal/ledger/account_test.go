package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestNewAccount_RecordsCreate(t *testing.T) {
	a := newAccount(1001, "Alice", dec("100.00"))

	assert.Equal(t, 1001, a.Number())
	assert.Equal(t, "Alice", a.Owner())
	assert.True(t, a.Balance().Equal(dec("100")))

	hist := a.History()
	require.Len(t, hist, 1)
	assert.Equal(t, KindCreate, hist[0].Kind)
	assert.True(t, hist[0].Amount.Equal(dec("100")))
	assert.True(t, hist[0].BalanceAfter.Equal(dec("100")))
	assert.Equal(t, "Initial Deposit", hist[0].Note)
}

func TestAccount_deposit(t *testing.T) {
	a := newAccount(1001, "Alice", dec("10"))

	require.NoError(t, a.deposit(dec("5.25"), "paycheck"))
	assert.True(t, a.Balance().Equal(dec("15.25")))

	hist := a.History()
	require.Len(t, hist, 2)
	assert.Equal(t, KindDeposit, hist[1].Kind)
	assert.True(t, hist[1].BalanceAfter.Equal(dec("15.25")))
	assert.Equal(t, "paycheck", hist[1].Note)
}

func TestAccount_deposit_InvalidAmount(t *testing.T) {
	tests := []string{"0", "-1", "0.001"}
	for _, amt := range tests {
		a := newAccount(1001, "Alice", dec("10"))
		err := a.deposit(dec(amt), "")
		require.ErrorIs(t, err, ErrInvalidAmount, "amount %s", amt)
		assert.True(t, a.Balance().Equal(dec("10")))
		assert.Len(t, a.History(), 1)
	}
}

func TestAccount_depositExtremeExponent(t *testing.T) {
	a := newAccount(1001, "Alice", dec("10"))

	amount := decimal.New(1, -5000000)
	err := a.deposit(amount, "")
	require.ErrorIs(t, err, ErrInvalidAmount)
	assert.Less(t, len(err.Error()), 100, "error must not spell out the amount")
	assert.True(t, a.Balance().Equal(dec("10")))

	require.ErrorIs(t, checkCents(decimal.New(100, -19)), ErrInvalidAmount)
	require.NoError(t, checkCents(decimal.New(100, -18)), "whole cents with trailing zeros")
}

func TestAccount_withdraw(t *testing.T) {
	a := newAccount(1001, "Alice", dec("50"))

	require.NoError(t, a.withdraw(dec("50"), "rent"))
	assert.True(t, a.Balance().IsZero())

	hist := a.History()
	require.Len(t, hist, 2)
	assert.Equal(t, KindWithdraw, hist[1].Kind)
	assert.True(t, hist[1].BalanceAfter.IsZero())
}

func TestAccount_withdraw_InsufficientFunds(t *testing.T) {
	a := newAccount(1001, "Alice", dec("20"))

	err := a.withdraw(dec("20.01"), "")
	require.ErrorIs(t, err, ErrInsufficientFunds)
	assert.True(t, a.Balance().Equal(dec("20")))
	assert.Len(t, a.History(), 1, "failed withdraw must not append")
}

func TestAccount_updateName(t *testing.T) {
	a := newAccount(1001, "Alice", dec("20"))

	require.NoError(t, a.updateName("Alicia"))
	assert.Equal(t, "Alicia", a.Owner())

	hist := a.History()
	require.Len(t, hist, 2)
	assert.Equal(t, KindAccountUpdate, hist[1].Kind)
	assert.True(t, hist[1].Amount.IsZero())
	assert.True(t, hist[1].BalanceAfter.Equal(dec("20")))
	assert.Equal(t, "Name changed from 'Alice' to 'Alicia'", hist[1].Note)
}

func TestAccount_updateName_NoChange(t *testing.T) {
	a := newAccount(1001, "Alice", dec("20"))

	for _, name := range []string{"", "   ", "Alice"} {
		assert.ErrorIs(t, a.updateName(name), ErrNoChange, "name %q", name)
	}
	assert.Equal(t, "Alice", a.Owner())
	assert.Len(t, a.History(), 1)
}

func TestAccountHistory_IsCopy(t *testing.T) {
	a := newAccount(1001, "Alice", dec("20"))

	hist := a.History()
	hist[0].Note = "tampered"
	assert.Equal(t, "Initial Deposit", a.History()[0].Note)
}

func TestTransactionSigned(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindCreate, "7"},
		{KindDeposit, "7"},
		{KindTransferIn, "7"},
		{KindWithdraw, "-7"},
		{KindTransferOut, "-7"},
		{KindAccountUpdate, "0"},
	}
	for _, tt := range tests {
		tx := Transaction{Kind: tt.kind, Amount: dec("7")}
		assert.True(t, tx.Signed().Equal(dec(tt.want)), "kind %s", tt.kind)
	}
}

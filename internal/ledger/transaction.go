package ledger

import "github.com/shopspring/decimal"

// Kind classifies a transaction in an account's history.
type Kind string

const (
	KindCreate        Kind = "CREATE"
	KindDeposit       Kind = "DEPOSIT"
	KindWithdraw      Kind = "WITHDRAW"
	KindTransferOut   Kind = "TRANSFER_OUT"
	KindTransferIn    Kind = "TRANSFER_IN"
	KindAccountUpdate Kind = "ACCOUNT_UPDATE"
)

// Transaction is one entry in an account's history. Entries are never
// modified once appended.
type Transaction struct {
	Kind         Kind
	Amount       decimal.Decimal
	BalanceAfter decimal.Decimal // account balance right after this entry
	Note         string
}

// Credits reports whether the transaction adds its amount to the balance.
func (t Transaction) Credits() bool {
	switch t.Kind {
	case KindCreate, KindDeposit, KindTransferIn:
		return true
	}
	return false
}

// Debits reports whether the transaction subtracts its amount from the balance.
func (t Transaction) Debits() bool {
	return t.Kind == KindWithdraw || t.Kind == KindTransferOut
}

// Signed returns the amount with the sign it applied to the balance.
// ACCOUNT_UPDATE entries return zero.
func (t Transaction) Signed() decimal.Decimal {
	switch {
	case t.Credits():
		return t.Amount
	case t.Debits():
		return t.Amount.Neg()
	}
	return decimal.Zero
}

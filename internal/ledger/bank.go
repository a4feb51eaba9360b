package ledger

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"

	"github.com/shopspring/decimal"
)

// FirstAccountNumber is the number given to the first account of a new Bank.
const FirstAccountNumber = 1001

// Bank owns a set of accounts, assigns their numbers and coordinates
// operations that span more than one account.
//
// A single mutex serializes every operation, so both legs of a transfer
// are observed together or not at all.
type Bank struct {
	mu         sync.Mutex
	accounts   map[int]*Account
	nextNumber int
	log        *slog.Logger
}

// Option configures a Bank.
type Option func(*Bank)

// WithFirstAccountNumber sets the number the first created account receives.
func WithFirstAccountNumber(n int) Option {
	return func(b *Bank) { b.nextNumber = n }
}

// WithLogger sets the logger used for lifecycle and transfer events.
func WithLogger(l *slog.Logger) Option {
	return func(b *Bank) { b.log = l }
}

// NewBank creates an empty Bank.
func NewBank(opts ...Option) *Bank {
	b := &Bank{
		accounts:   make(map[int]*Account),
		nextNumber: FirstAccountNumber,
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// CreateAccount opens an account with the given opening balance and
// returns its number. Numbers are never reused, even after deletion.
func (b *Bank) CreateAccount(owner string, initialDeposit decimal.Decimal) (int, error) {
	if initialDeposit.IsNegative() {
		return 0, fmt.Errorf("%w: initial deposit cannot be negative", ErrInvalidAmount)
	}
	if err := checkCents(initialDeposit); err != nil {
		return 0, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	number := b.nextNumber
	b.accounts[number] = newAccount(number, owner, initialDeposit)
	b.nextNumber++

	b.log.Debug("account created", "account", number, "owner", owner, "opening", initialDeposit.StringFixed(2))
	return number, nil
}

// Deposit adds amount to an account.
func (b *Bank) Deposit(number int, amount decimal.Decimal, note string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	acct, err := b.lookup(number)
	if err != nil {
		return err
	}
	if err := acct.deposit(amount, note); err != nil {
		return fmt.Errorf("deposit to account %d: %w", number, err)
	}
	return nil
}

// Withdraw removes amount from an account if the balance covers it.
func (b *Bank) Withdraw(number int, amount decimal.Decimal, note string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	acct, err := b.lookup(number)
	if err != nil {
		return err
	}
	if err := acct.withdraw(amount, note); err != nil {
		return fmt.Errorf("withdraw from account %d: %w", number, err)
	}
	return nil
}

// Transfer moves amount from one account to another. All checks run
// before either account is touched; on any error both are unchanged.
func (b *Bank) Transfer(from, to int, amount decimal.Decimal) error {
	if from == to {
		return fmt.Errorf("transfer %d -> %d: %w", from, to, ErrSelfTransfer)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	sender, ok := b.accounts[from]
	if !ok {
		return fmt.Errorf("sender account %d: %w", from, ErrNotFound)
	}
	receiver, ok := b.accounts[to]
	if !ok {
		return fmt.Errorf("receiver account %d: %w", to, ErrNotFound)
	}
	if err := checkAmount(amount); err != nil {
		return fmt.Errorf("transfer %d -> %d: %w", from, to, err)
	}
	if amount.GreaterThan(sender.balance) {
		return fmt.Errorf("transfer %d -> %d: %w: balance %s, requested %s",
			from, to, ErrInsufficientFunds, sender.balance.StringFixed(2), amount.StringFixed(2))
	}

	// The amount is already validated, so the credit leg cannot fail and
	// only runs after the debit succeeded.
	if err := sender.debit(KindTransferOut, amount, fmt.Sprintf("Transfer to account %d", to)); err != nil {
		return fmt.Errorf("transfer %d -> %d: %w", from, to, err)
	}
	receiver.add(KindTransferIn, amount, fmt.Sprintf("Transfer from account %d", from))

	b.log.Debug("transfer completed", "from", from, "to", to, "amount", amount.StringFixed(2))
	return nil
}

// UpdateAccount changes the owner name of an account.
// It returns ErrNoChange when newName is blank or already the owner.
func (b *Bank) UpdateAccount(number int, newName string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	acct, err := b.lookup(number)
	if err != nil {
		return err
	}
	if err := acct.updateName(newName); err != nil {
		return fmt.Errorf("update account %d: %w", number, err)
	}
	return nil
}

// DeleteAccount removes an account and its history. An account that still
// holds funds is only removed when force is set; otherwise
// ErrNeedsConfirmation is returned and nothing changes.
func (b *Bank) DeleteAccount(number int, force bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	acct, err := b.lookup(number)
	if err != nil {
		return err
	}
	if !acct.balance.IsZero() && !force {
		return fmt.Errorf("delete account %d (balance %s): %w", number, acct.balance.StringFixed(2), ErrNeedsConfirmation)
	}
	delete(b.accounts, number)

	b.log.Debug("account deleted", "account", number, "balance", acct.balance.StringFixed(2), "forced", force)
	return nil
}

// AccountExists reports whether an account number is registered.
func (b *Bank) AccountExists(number int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.accounts[number]
	return ok
}

// Account returns a detached, read-only copy of an account.
func (b *Bank) Account(number int) (*Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	acct, err := b.lookup(number)
	if err != nil {
		return nil, err
	}
	return acct.clone(), nil
}

// Accounts returns detached copies of all accounts sorted by number.
func (b *Bank) Accounts() []*Account {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]*Account, 0, len(b.accounts))
	for _, acct := range b.accounts {
		out = append(out, acct.clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].number < out[j].number })
	return out
}

// History returns the transaction history of an account, oldest first.
func (b *Bank) History(number int) ([]Transaction, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	acct, err := b.lookup(number)
	if err != nil {
		return nil, err
	}
	return acct.History(), nil
}

// Details summarizes an account for display.
type Details struct {
	Number           int
	Owner            string
	Balance          decimal.Decimal
	TransactionCount int
	Created          *Transaction // the CREATE entry, nil if missing
	LastActivity     *Transaction // nil when nothing happened after CREATE
}

// Details derives an account summary from its history.
func (b *Bank) Details(number int) (Details, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	acct, err := b.lookup(number)
	if err != nil {
		return Details{}, err
	}

	d := Details{
		Number:           acct.number,
		Owner:            acct.owner,
		Balance:          acct.balance,
		TransactionCount: len(acct.history),
	}
	for i := range acct.history {
		if acct.history[i].Kind == KindCreate {
			created := acct.history[i]
			d.Created = &created
			break
		}
	}
	if n := len(acct.history); n > 0 && acct.history[n-1].Kind != KindCreate {
		last := acct.history[n-1]
		d.LastActivity = &last
	}
	return d, nil
}

// Verify audits every account against its own history.
func (b *Bank) Verify() []ValidationError {
	b.mu.Lock()
	defer b.mu.Unlock()

	numbers := make([]int, 0, len(b.accounts))
	for n := range b.accounts {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	var errs []ValidationError
	for _, n := range numbers {
		errs = append(errs, Verify(b.accounts[n])...)
	}
	return errs
}

func (b *Bank) lookup(number int) (*Account, error) {
	acct, ok := b.accounts[number]
	if !ok {
		return nil, fmt.Errorf("account %d: %w", number, ErrNotFound)
	}
	return acct, nil
}

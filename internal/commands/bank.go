package commands

import (
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/passbook/internal/config"
	"github.com/cleared-dev/passbook/internal/id"
	"github.com/cleared-dev/passbook/internal/ledger"
)

func newBankCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "bank",
		Short: "Run the bank account management menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
			runBank(p, cfg, logger)
			return nil
		},
	}
}

type bankMenu struct {
	p    *prompter
	bank *ledger.Bank
	cfg  *config.Config
	log  *slog.Logger
}

func runBank(p *prompter, cfg *config.Config, logger *slog.Logger) {
	m := &bankMenu{
		p: p,
		bank: ledger.NewBank(
			ledger.WithFirstAccountNumber(cfg.Bank.FirstAccountNumber),
			ledger.WithLogger(logger),
		),
		cfg: cfg,
		log: logger,
	}

	for {
		p.banner("          BANK MANAGEMENT SYSTEM", 40)
		p.println("1. Create New Account")
		p.println("2. Deposit Money")
		p.println("3. Withdraw Money")
		p.println("4. Transfer Between Accounts")
		p.println("5. View Account Details")
		p.println("6. Update Account Information")
		p.println("7. Show All Accounts")
		p.println("8. Show Transaction History")
		p.println("9. Delete Account")
		p.println("10. Check Account Exists")
		p.println("11. Verify Ledger")
		p.println("12. Export Statement (CSV)")
		p.println("0. Exit")

		choice, ok := p.ask("Choose option: ")
		if !ok || choice == "0" {
			break
		}

		switch choice {
		case "1":
			m.create()
		case "2":
			m.deposit()
		case "3":
			m.withdraw()
		case "4":
			m.transfer()
		case "5":
			m.details()
		case "6":
			m.update()
		case "7":
			showAllAccounts(p, m.bank.Accounts(), m.sym())
		case "8":
			m.history()
		case "9":
			m.delete()
		case "10":
			m.exists()
		case "11":
			m.verify()
		case "12":
			m.export()
		default:
			p.println("Invalid option.")
		}
	}

	p.println()
	p.println("Thank you for using Bank Management System!")
	p.println("Program Ended.")
}

func (m *bankMenu) sym() string { return m.cfg.Bank.CurrencySymbol }

func (m *bankMenu) money(d decimal.Decimal) string { return formatMoney(m.sym(), d) }

// askAccount reads an account number; invalid input is reported and ok is false.
func (m *bankMenu) askAccount(label string) (int, bool) {
	answer, ok := m.p.ask(label)
	if !ok {
		return 0, false
	}
	n, err := id.ParseAccountNumber(answer)
	if err != nil {
		m.p.println(err)
		return 0, false
	}
	return n, true
}

func (m *bankMenu) create() {
	name, ok := m.p.ask("Enter owner name: ")
	if !ok {
		return
	}
	if name == "" {
		m.p.println("Owner name cannot be empty!")
		return
	}

	deposit, ok := m.p.askAmount("Enter initial deposit: ")
	if !ok {
		return
	}
	if deposit.IsNegative() {
		m.p.println("Initial deposit cannot be negative!")
		return
	}
	if deposit.IsZero() && m.cfg.Bank.ConfirmZeroDeposit && !m.p.confirm("Create account with zero balance?") {
		m.p.println("Account creation cancelled.")
		return
	}

	n, err := m.bank.CreateAccount(name, deposit)
	if err != nil {
		m.p.printf("Account creation failed: %v\n", err)
		return
	}
	m.p.printf("Account created! Account Number = %d\n", n)
}

func (m *bankMenu) deposit() {
	n, ok := m.askAccount("Account Number: ")
	if !ok {
		return
	}
	amount, ok := m.p.askAmount("Amount: ")
	if !ok {
		return
	}
	if !amount.IsPositive() {
		m.p.println("Deposit amount must be positive!")
		return
	}
	note, ok := m.p.ask("Note: ")
	if !ok {
		return
	}

	if err := m.bank.Deposit(n, amount, note); err != nil {
		m.p.printf("Deposit failed: %v\n", err)
		return
	}
	m.p.println("Deposit successful!")
	m.showAccount(n)
}

func (m *bankMenu) withdraw() {
	n, ok := m.askAccount("Account Number: ")
	if !ok {
		return
	}
	amount, ok := m.p.askAmount("Amount: ")
	if !ok {
		return
	}
	if !amount.IsPositive() {
		m.p.println("Withdrawal amount must be positive!")
		return
	}
	note, ok := m.p.ask("Note: ")
	if !ok {
		return
	}

	if err := m.bank.Withdraw(n, amount, note); err != nil {
		m.p.printf("Withdraw failed: %v\n", err)
		return
	}
	m.p.println("Withdraw successful!")
	m.showAccount(n)
}

func (m *bankMenu) transfer() {
	from, ok := m.askAccount("From Account: ")
	if !ok {
		return
	}
	to, ok := m.askAccount("To Account: ")
	if !ok {
		return
	}
	amount, ok := m.p.askAmount("Amount: ")
	if !ok {
		return
	}

	m.p.println()
	m.p.println("--- Before Transfer ---")
	m.p.printf("Sender Account %d: %s\n", from, m.balanceLine(from))
	m.p.printf("Receiver Account %d: %s\n", to, m.balanceLine(to))
	m.p.printf("Transfer Amount: %s\n", m.money(amount))

	if err := m.bank.Transfer(from, to, amount); err != nil {
		m.p.printf("Error: %v\n", err)
		m.p.println()
		m.p.println("Transfer failed.")
		return
	}

	m.p.println()
	m.p.println("--- After Transfer ---")
	m.p.printf("Sender Account %d: %s\n", from, m.balanceLine(from))
	m.p.printf("Receiver Account %d: %s\n", to, m.balanceLine(to))
	m.p.println()
	m.p.println("Transfer completed successfully!")
}

func (m *bankMenu) balanceLine(n int) string {
	acct, err := m.bank.Account(n)
	if err != nil {
		return "Account not found"
	}
	return "Balance: " + m.money(acct.Balance())
}

func (m *bankMenu) details() {
	n, ok := m.askAccount("Enter account number: ")
	if !ok {
		return
	}
	d, err := m.bank.Details(n)
	if err != nil {
		m.p.printf("Account %d not found!\n", n)
		return
	}
	showDetails(m.p, d, m.sym())
}

func (m *bankMenu) update() {
	n, ok := m.askAccount("Enter account number to update: ")
	if !ok {
		return
	}
	acct, err := m.bank.Account(n)
	if err != nil {
		m.p.printf("Account %d not found!\n", n)
		return
	}

	m.p.println()
	m.p.printf("--- Updating Account %d ---\n", n)
	m.p.printf("Current owner: %s\n", acct.Owner())
	m.p.printf("Current balance: %s\n", m.money(acct.Balance()))

	name, ok := m.p.ask("Enter new owner name: ")
	if !ok {
		return
	}

	switch err := m.bank.UpdateAccount(n, name); {
	case errors.Is(err, ledger.ErrNoChange):
		m.p.println("No changes made.")
	case err != nil:
		m.p.printf("Update failed: %v\n", err)
	default:
		m.p.printf("Account owner name updated: %s to %s\n", acct.Owner(), name)
		m.p.println("Account updated successfully!")
	}
}

func (m *bankMenu) history() {
	n, ok := m.askAccount("Enter account number: ")
	if !ok {
		return
	}
	acct, err := m.bank.Account(n)
	if err != nil {
		m.p.println("Account not found.")
		return
	}
	showHistory(m.p, acct, m.sym())
}

func (m *bankMenu) delete() {
	n, ok := m.askAccount("Enter account number: ")
	if !ok {
		return
	}
	acct, err := m.bank.Account(n)
	if err != nil {
		m.p.println("Account deletion failed: account not found.")
		return
	}

	err = m.bank.DeleteAccount(n, false)
	if errors.Is(err, ledger.ErrNeedsConfirmation) {
		m.p.printf("Warning: Account has %s balance! Withdraw all funds before deletion.\n", m.money(acct.Balance()))
		if !m.p.confirm("Do you want to force delete?") {
			m.p.println("Deletion cancelled.")
			return
		}
		err = m.bank.DeleteAccount(n, true)
	}
	if err != nil {
		m.p.printf("Account deletion failed: %v\n", err)
		return
	}
	m.log.Info("account deleted", "account", n)
	m.p.printf("Account %d (%s) deleted successfully.\n", n, acct.Owner())
}

func (m *bankMenu) exists() {
	n, ok := m.askAccount("Enter account number: ")
	if !ok {
		return
	}
	if !m.bank.AccountExists(n) {
		m.p.printf("Account %d does not exist.\n", n)
		return
	}
	m.p.printf("Account %d exists.\n", n)
	m.showAccount(n)
}

func (m *bankMenu) verify() {
	errs := m.bank.Verify()
	if len(errs) == 0 {
		m.p.printf("Ledger verified: %d account(s), no problems found.\n", len(m.bank.Accounts()))
		return
	}
	for _, e := range errs {
		m.p.println(e.Error())
	}
	m.log.Warn("ledger verification failed", "problems", len(errs))
	m.p.printf("%d problem(s) found.\n", len(errs))
}

func (m *bankMenu) export() {
	n, ok := m.askAccount("Enter account number: ")
	if !ok {
		return
	}
	path, ok := m.p.ask("Output file: ")
	if !ok {
		return
	}
	if path == "" {
		m.p.println("No file given.")
		return
	}
	if err := m.bank.ExportStatement(n, path); err != nil {
		m.p.printf("Export failed: %v\n", err)
		return
	}
	m.p.printf("Statement for account %d written to %s\n", n, path)
}

func (m *bankMenu) showAccount(n int) {
	acct, err := m.bank.Account(n)
	if err != nil {
		m.p.println("Account not found.")
		return
	}
	showAccount(m.p, acct, m.sym())
}

package commands

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/passbook/internal/ledger"
)

func formatMoney(sym string, d decimal.Decimal) string {
	return sym + d.StringFixed(2)
}

func showAccount(p *prompter, a *ledger.Account, sym string) {
	p.println()
	p.println("--- Account Info ---")
	p.printf("Account Number: %d\n", a.Number())
	p.printf("Owner: %s\n", a.Owner())
	p.printf("Balance: %s\n", formatMoney(sym, a.Balance()))
}

func showAllAccounts(p *prompter, accts []*ledger.Account, sym string) {
	if len(accts) == 0 {
		p.println("No accounts exist.")
		return
	}

	rule := strings.Repeat("=", 50)
	p.println()
	p.println("--- All Accounts ---")
	p.printf("Total Accounts: %d\n", len(accts))
	p.println(rule)
	for _, a := range accts {
		p.printf("AccNo: %d | Name: %s | Balance: %s\n", a.Number(), a.Owner(), formatMoney(sym, a.Balance()))
	}
	p.println(rule)
}

func showHistory(p *prompter, a *ledger.Account, sym string) {
	p.println()
	p.printf("--- Transaction History for Account %d (%s) ---\n", a.Number(), a.Owner())

	hist := a.History()
	if len(hist) == 0 {
		p.println("No transactions yet.")
		return
	}
	for i, tx := range hist {
		p.printf("%d. %-15s | Amount: %s | Balance: %s | %s\n",
			i+1, tx.Kind, formatMoney(sym, tx.Amount), formatMoney(sym, tx.BalanceAfter), tx.Note)
	}
	p.printf("Total Transactions: %d\n", len(hist))
}

func showDetails(p *prompter, d ledger.Details, sym string) {
	p.println()
	p.println("=== Account Details ===")
	p.printf("Account Number: %d\n", d.Number)
	p.printf("Owner Name: %s\n", d.Owner)
	p.printf("Current Balance: %s\n", formatMoney(sym, d.Balance))
	p.printf("Number of Transactions: %d\n", d.TransactionCount)

	if d.Created != nil {
		p.printf("Account Created: On initial deposit of %s\n", formatMoney(sym, d.Created.Amount))
	} else {
		p.println("Account Created: not recorded")
	}

	if d.LastActivity != nil {
		tx := d.LastActivity
		line := string(tx.Kind) + " of " + formatMoney(sym, tx.Amount)
		if tx.Note != "" {
			line += " (" + tx.Note + ")"
		}
		p.printf("Last Transaction: %s\n", line)
	} else {
		p.println("Last Transaction: No transactions yet")
	}
}

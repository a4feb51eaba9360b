package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// StatementHeader is the CSV header for an exported statement.
const StatementHeader = "seq,account_number,kind,amount,balance_after,note"

const (
	numFields       = 6
	colSeq          = 0
	colAccount      = 1
	colKind         = 2
	colAmount       = 3
	colBalanceAfter = 4
	colNote         = 5
)

// MarshalTransaction converts one history entry to a statement CSV row.
// seq is the 1-based position in the history.
func MarshalTransaction(account, seq int, tx Transaction) []string {
	row := make([]string, numFields)
	row[colSeq] = strconv.Itoa(seq)
	row[colAccount] = strconv.Itoa(account)
	row[colKind] = string(tx.Kind)
	row[colAmount] = tx.Amount.StringFixed(2)
	row[colBalanceAfter] = tx.BalanceAfter.StringFixed(2)
	row[colNote] = tx.Note
	return row
}

// WriteStatement writes an account's full history as CSV, header included.
func WriteStatement(w io.Writer, a *Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(StatementHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, tx := range a.history {
		if err := cw.Write(MarshalTransaction(a.number, i+1, tx)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// ExportStatement writes the statement of an account to path, creating
// parent directories as needed.
func (b *Bank) ExportStatement(number int, path string) error {
	acct, err := b.Account(number)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating statement dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating statement file: %w", err)
	}
	defer f.Close()

	if err := WriteStatement(f, acct); err != nil {
		return fmt.Errorf("writing statement: %w", err)
	}
	return nil
}

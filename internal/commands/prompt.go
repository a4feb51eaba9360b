package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// prompter reads answers line by line and writes prompts and output.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(r io.Reader, w io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(r), out: w}
}

// ask prints label and returns the trimmed next line. ok is false once input is exhausted.
func (p *prompter) ask(label string) (answer string, ok bool) {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		fmt.Fprintln(p.out)
		return "", false
	}
	return strings.TrimSpace(p.in.Text()), true
}

// confirm asks a yes/no question; only "yes" counts as agreement.
func (p *prompter) confirm(label string) bool {
	answer, ok := p.ask(label + " (yes/no): ")
	return ok && strings.EqualFold(answer, "yes")
}

// askAmount asks for a money amount. Unparseable input yields zero, which
// every caller then rejects as not positive.
func (p *prompter) askAmount(label string) (decimal.Decimal, bool) {
	answer, ok := p.ask(label)
	if !ok {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(answer)
	if err != nil {
		return decimal.Zero, true
	}
	return amount, true
}

func (p *prompter) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *prompter) println(args ...any) {
	fmt.Fprintln(p.out, args...)
}

// banner prints a title framed by rules of '=' characters.
func (p *prompter) banner(title string, width int) {
	rule := strings.Repeat("=", width)
	p.println()
	p.println(rule)
	p.println(title)
	p.println(rule)
}

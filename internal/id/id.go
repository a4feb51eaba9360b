package id

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEmpty is returned for a blank identifier.
var ErrEmpty = errors.New("identifier is empty")

// ParseAccountNumber parses a bank account number like "1001".
func ParseAccountNumber(s string) (int, error) {
	return parsePositive("account number", s)
}

// ParseEmployeeID parses a numeric employee ID.
func ParseEmployeeID(s string) (int, error) {
	return parsePositive("employee ID", s)
}

// Normalize trims a free-form identifier such as a membership or student ID.
func Normalize(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmpty
	}
	return s, nil
}

func parsePositive(what, s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("invalid %s: %w", what, ErrEmpty)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", what, s, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", what, s)
	}
	return n, nil
}

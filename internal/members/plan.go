package members

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidKind is returned when a membership type name is not recognized.
var ErrInvalidKind = errors.New("invalid membership type")

// Kind is the membership tier.
type Kind string

const (
	KindBasic   Kind = "basic"
	KindPremium Kind = "premium"
	KindFamily  Kind = "family"
)

// ParseKind parses a membership type name, ignoring case and surrounding space.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindBasic, KindPremium, KindFamily:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

// Plan is a membership tier plus, for family plans, the number of people covered.
type Plan struct {
	Kind       Kind
	FamilySize int // only meaningful for KindFamily
}

// Label is the display name of the plan.
func (p Plan) Label() string {
	switch p.Kind {
	case KindPremium:
		return "Premium"
	case KindFamily:
		return fmt.Sprintf("Family (%d members)", p.FamilySize)
	}
	return "Basic"
}

// Terms returns the monthly fee and perks of a plan.
func Terms(p Plan) (fee decimal.Decimal, perks []string) {
	switch p.Kind {
	case KindPremium:
		return decimal.RequireFromString("32.00"),
			[]string{"Gym Access", "Unlimited Group Classes", "Premium Permissions"}
	case KindFamily:
		return decimal.RequireFromString("329.99"),
			[]string{"Full Gym Access", "Kid Classes", "Family Pool"}
	}
	return decimal.RequireFromString("29.99"), []string{"Gym Access", "Locker"}
}

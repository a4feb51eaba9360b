package employees

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/passbook/internal/registry"
)

var (
	// ErrDuplicateID is returned when adding an employee whose ID is taken.
	ErrDuplicateID = errors.New("employee already exists")
	// ErrNotFound is returned for an unknown employee ID.
	ErrNotFound = errors.New("employee not found")
)

// Employee is one record in the registry.
type Employee struct {
	ID          int
	Name        string
	Role        string
	BaseSalary  decimal.Decimal
	AnnualBonus decimal.Decimal
}

// DefaultBonusRates maps roles to their annual bonus as a fraction of base salary.
func DefaultBonusRates() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"developer": decimal.RequireFromString("0.15"),
		"designer":  decimal.RequireFromString("0.10"),
		"manager":   decimal.RequireFromString("0.20"),
	}
}

// Bonus returns the annual bonus for a role. Roles without a rate get none.
func Bonus(role string, base decimal.Decimal, rates map[string]decimal.Decimal) decimal.Decimal {
	rate, ok := rates[role]
	if !ok {
		return decimal.Zero
	}
	return base.Mul(rate).Round(2)
}

// Registry holds employees keyed by ID.
type Registry struct {
	rates map[string]decimal.Decimal
	store *registry.Store[int, Employee]
}

// NewRegistry creates an empty Registry using the given bonus rates.
func NewRegistry(rates map[string]decimal.Decimal) *Registry {
	return &Registry{rates: rates, store: registry.New[int, Employee]()}
}

// Exists reports whether an employee ID is registered.
func (r *Registry) Exists(id int) bool {
	return r.store.Has(id)
}

// Add registers a new employee and computes its bonus.
func (r *Registry) Add(id int, name, role string, baseSalary decimal.Decimal) (Employee, error) {
	if r.store.Has(id) {
		return Employee{}, fmt.Errorf("employee %d: %w", id, ErrDuplicateID)
	}
	e := r.build(id, name, role, baseSalary)
	r.store.Put(id, e)
	return e, nil
}

// Update replaces an employee's name, role and salary and recomputes the bonus.
func (r *Registry) Update(id int, name, role string, baseSalary decimal.Decimal) (Employee, error) {
	if !r.store.Has(id) {
		return Employee{}, fmt.Errorf("employee %d: %w", id, ErrNotFound)
	}
	e := r.build(id, name, role, baseSalary)
	r.store.Put(id, e)
	return e, nil
}

// Delete removes an employee.
func (r *Registry) Delete(id int) error {
	if !r.store.Delete(id) {
		return fmt.Errorf("employee %d: %w", id, ErrNotFound)
	}
	return nil
}

// Get returns an employee by ID.
func (r *Registry) Get(id int) (Employee, bool) {
	return r.store.Get(id)
}

// All returns every employee sorted by ID.
func (r *Registry) All() []Employee {
	return r.store.Sorted()
}

func (r *Registry) build(id int, name, role string, baseSalary decimal.Decimal) Employee {
	return Employee{
		ID:          id,
		Name:        name,
		Role:        role,
		BaseSalary:  baseSalary,
		AnnualBonus: Bonus(role, baseSalary, r.rates),
	}
}

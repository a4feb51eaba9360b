package students

import (
	"errors"
	"fmt"

	"github.com/cleared-dev/passbook/internal/registry"
)

var (
	// ErrDuplicateID is returned when adding a student whose ID is taken.
	ErrDuplicateID = errors.New("student already exists")
	// ErrNotFound is returned for an unknown student ID.
	ErrNotFound = errors.New("student not found")
)

// Student is one roster entry.
type Student struct {
	ID    string
	Name  string
	Score int
}

// Roster holds students keyed by ID.
type Roster struct {
	store *registry.Store[string, Student]
}

// NewRoster creates an empty Roster.
func NewRoster() *Roster {
	return &Roster{store: registry.New[string, Student]()}
}

// Exists reports whether a student ID is registered.
func (r *Roster) Exists(id string) bool {
	return r.store.Has(id)
}

// Add registers a student.
func (r *Roster) Add(s Student) error {
	if r.store.Has(s.ID) {
		return fmt.Errorf("student %s: %w", s.ID, ErrDuplicateID)
	}
	r.store.Put(s.ID, s)
	return nil
}

// Update replaces a student's name and score.
func (r *Roster) Update(id, name string, score int) error {
	if !r.store.Has(id) {
		return fmt.Errorf("student %s: %w", id, ErrNotFound)
	}
	r.store.Put(id, Student{ID: id, Name: name, Score: score})
	return nil
}

// Remove deletes a student.
func (r *Roster) Remove(id string) error {
	if !r.store.Delete(id) {
		return fmt.Errorf("student %s: %w", id, ErrNotFound)
	}
	return nil
}

// List returns every student sorted by ID.
func (r *Roster) List() []Student {
	return r.store.Sorted()
}

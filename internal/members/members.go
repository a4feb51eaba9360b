// Package members keeps the fitness club membership list.
package members

import (
	"errors"
	"fmt"

	"github.com/cleared-dev/passbook/internal/registry"
)

var (
	// ErrDuplicateID is returned when adding a member whose ID is taken.
	ErrDuplicateID = errors.New("membership ID already exists")
	// ErrNotFound is returned for an unknown membership ID.
	ErrNotFound = errors.New("member not found")
)

// Member is one club member.
type Member struct {
	ID   string
	Name string
	Plan Plan
}

// Registry holds members keyed by membership ID.
type Registry struct {
	store *registry.Store[string, Member]
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{store: registry.New[string, Member]()}
}

// Exists reports whether a membership ID is taken.
func (r *Registry) Exists(id string) bool {
	return r.store.Has(id)
}

// Add registers a member. Family plans cover at least one person.
func (r *Registry) Add(m Member) error {
	if r.store.Has(m.ID) {
		return fmt.Errorf("member %s: %w", m.ID, ErrDuplicateID)
	}
	r.store.Put(m.ID, normalize(m))
	return nil
}

// Get returns a member by ID.
func (r *Registry) Get(id string) (Member, bool) {
	return r.store.Get(id)
}

// ByKind returns the members on a given tier, sorted by ID.
func (r *Registry) ByKind(kind Kind) []Member {
	var out []Member
	for _, m := range r.store.Sorted() {
		if m.Plan.Kind == kind {
			out = append(out, m)
		}
	}
	return out
}

// All returns every member grouped family, premium, then basic.
func (r *Registry) All() []Member {
	var out []Member
	for _, k := range []Kind{KindFamily, KindPremium, KindBasic} {
		out = append(out, r.ByKind(k)...)
	}
	return out
}

// Update changes a member's name and/or tier. Empty values keep the
// current setting. A member moving onto a family plan keeps its family
// size if it already had one, otherwise it covers one person.
func (r *Registry) Update(id, name string, kind Kind) (Member, error) {
	m, ok := r.store.Get(id)
	if !ok {
		return Member{}, fmt.Errorf("member %s: %w", id, ErrNotFound)
	}
	if name != "" {
		m.Name = name
	}
	if kind != "" && kind != m.Plan.Kind {
		size := 0
		if kind == KindFamily {
			size = 1
		}
		m.Plan = Plan{Kind: kind, FamilySize: size}
	}
	m = normalize(m)
	r.store.Put(id, m)
	return m, nil
}

// Delete removes a member.
func (r *Registry) Delete(id string) error {
	if !r.store.Delete(id) {
		return fmt.Errorf("member %s: %w", id, ErrNotFound)
	}
	return nil
}

func normalize(m Member) Member {
	if m.Plan.Kind == "" {
		m.Plan.Kind = KindBasic
	}
	switch {
	case m.Plan.Kind != KindFamily:
		m.Plan.FamilySize = 0
	case m.Plan.FamilySize < 1:
		m.Plan.FamilySize = 1
	}
	return m
}

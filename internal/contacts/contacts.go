// Package contacts holds the in-memory contact model shared by the
// extraction engine and the output formatters.
package contacts

import (
	"sort"
	"strings"
)

// Role identifies the header under which an address was observed.
type Role int

const (
	RoleFrom Role = iota
	RoleTo
	RoleCc
	RoleBcc
)

// String returns the lowercase form used in CSV and vCard output.
func (r Role) String() string {
	switch r {
	case RoleFrom:
		return "from"
	case RoleTo:
		return "to"
	case RoleCc:
		return "cc"
	case RoleBcc:
		return "bcc"
	default:
		return "unknown"
	}
}

// Candidate is a single address occurrence produced by an extractor.
// Candidates are transient: they exist only long enough to be folded
// into a registry.
type Candidate struct {
	Email string
	Name  string
	Role  Role
}

// Contact is the aggregate for one unique address.
type Contact struct {
	Email string // lowercase, the registry key; never reassigned
	Name  string // first non-empty display name seen; "" means unknown
	Role  Role   // role of the first observation; never changed
	Count int    // number of observations
}

// FrequentMinCount is the observation threshold for the frequent subset.
const FrequentMinCount = 3

// Registry maps normalized email addresses to contacts while preserving
// insertion order. It is not safe for concurrent use: a run owns exactly
// one registry and serializes all Observe calls, because the
// first-name-wins and first-role-wins rules are order-sensitive per key.
type Registry struct {
	byEmail map[string]*Contact
	order   []*Contact
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byEmail: make(map[string]*Contact)}
}

// Observe folds one candidate into the registry. The first observation
// of an address creates its contact; later observations increment the
// count, adopt the candidate's name only while no name is set, and never
// change the role.
func (r *Registry) Observe(c Candidate) {
	email := strings.ToLower(strings.TrimSpace(c.Email))
	if email == "" {
		return
	}
	if existing, ok := r.byEmail[email]; ok {
		existing.Count++
		if existing.Name == "" && c.Name != "" {
			existing.Name = c.Name
		}
		return
	}
	contact := &Contact{Email: email, Name: c.Name, Role: c.Role, Count: 1}
	r.byEmail[email] = contact
	r.order = append(r.order, contact)
}

// Len reports the number of unique contacts.
func (r *Registry) Len() int {
	return len(r.order)
}

// FrequentLen reports how many contacts meet FrequentMinCount.
func (r *Registry) FrequentLen() int {
	n := 0
	for _, c := range r.order {
		if c.Count >= FrequentMinCount {
			n++
		}
	}
	return n
}

// SortedByCount returns copies of the contacts ordered by descending
// count. The sort is stable, so equal counts keep insertion order.
func (r *Registry) SortedByCount() []Contact {
	out := make([]Contact, len(r.order))
	for i, c := range r.order {
		out[i] = *c
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// TopN returns at most n contacts in sorted order.
func (r *Registry) TopN(n int) []Contact {
	sorted := r.SortedByCount()
	if n >= 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

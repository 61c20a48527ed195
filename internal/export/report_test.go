package export

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mailsift/mailsift/internal/contacts"
)

func registryWithCounts(t *testing.T, counts map[string]int) *contacts.Registry {
	t.Helper()
	reg := contacts.NewRegistry()
	// Insertion order must be deterministic for tie-breaks, so observe
	// in a fixed order rather than ranging over the map.
	order := []string{"a@example.com", "b@example.com", "c@example.com", "d@example.com"}
	for _, email := range order {
		for i := 0; i < counts[email]; i++ {
			reg.Observe(contacts.Candidate{Email: email, Role: contacts.RoleFrom})
		}
	}
	return reg
}

func TestBuildReport(t *testing.T) {
	reg := registryWithCounts(t, map[string]int{
		"a@example.com": 1,
		"b@example.com": 5,
		"c@example.com": 3,
		"d@example.com": 2,
	})

	got := BuildReport(reg, 3)
	want := Report{
		TotalContacts:    4,
		FrequentContacts: 2,
		Top: []Entry{
			{Email: "b@example.com", Count: 5},
			{Email: "c@example.com", Count: 3},
			{Email: "d@example.com", Count: 2},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildReport_TopLongerThanRegistry(t *testing.T) {
	reg := registryWithCounts(t, map[string]int{"a@example.com": 1})

	got := BuildReport(reg, TopPreviewLen)
	if len(got.Top) != 1 {
		t.Errorf("Top has %d entries, want 1", len(got.Top))
	}
	if got.TotalContacts != 1 || got.FrequentContacts != 0 {
		t.Errorf("report = %+v, want total 1, frequent 0", got)
	}
}

func TestBuildReport_EmptyRegistry(t *testing.T) {
	got := BuildReport(contacts.NewRegistry(), TopPreviewLen)
	if got.TotalContacts != 0 || got.FrequentContacts != 0 || len(got.Top) != 0 {
		t.Errorf("report = %+v, want all zero", got)
	}
}

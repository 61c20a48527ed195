package export

import "github.com/mailsift/mailsift/internal/contacts"

// TopPreviewLen is the default length of a report's top-contacts list.
const TopPreviewLen = 10

// Entry is one line of the top-contacts preview.
type Entry struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Report carries the summary counters handed to the output boundary
// alongside the rendered text blobs.
type Report struct {
	TotalContacts    int     `json:"total_contacts"`
	FrequentContacts int     `json:"frequent_contacts"`
	Top              []Entry `json:"top"`
}

// BuildReport summarizes a registry: total and frequent counts plus the
// top n contacts by descending count.
func BuildReport(reg *contacts.Registry, n int) Report {
	top := reg.TopN(n)
	entries := make([]Entry, len(top))
	for i, c := range top {
		entries[i] = Entry{Email: c.Email, Name: c.Name, Count: c.Count}
	}
	return Report{
		TotalContacts:    reg.Len(),
		FrequentContacts: reg.FrequentLen(),
		Top:              entries,
	}
}

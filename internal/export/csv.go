// Package export serializes aggregated contacts into the portable
// output formats: CSV contact lists and a vCard 3.0 address book.
//
// Formatters are pure text builders over an already-sorted contact
// slice, so identical input always yields byte-identical output.
package export

import (
	"strconv"
	"strings"

	"github.com/mailsift/mailsift/internal/contacts"
)

// csvHeader is the fixed column set downstream consumers depend on.
const csvHeader = "Email,Name,Source,Message Count"

// CSV renders contacts as CSV text in the given order. Rows are joined
// with "\n"; the result carries no trailing newline.
func CSV(list []contacts.Contact) string {
	lines := make([]string, 0, len(list)+1)
	lines = append(lines, csvHeader)
	for _, c := range list {
		lines = append(lines, strings.Join([]string{
			csvField(c.Email),
			csvField(c.Name),
			csvField(c.Role.String()),
			strconv.Itoa(c.Count),
		}, ","))
	}
	return strings.Join(lines, "\n")
}

// FrequentCSV renders only the contacts whose count meets
// contacts.FrequentMinCount, with identical column formatting.
func FrequentCSV(list []contacts.Contact) string {
	frequent := make([]contacts.Contact, 0, len(list))
	for _, c := range list {
		if c.Count >= contacts.FrequentMinCount {
			frequent = append(frequent, c)
		}
	}
	return CSV(frequent)
}

// csvField quotes a field if and only if it holds a comma, a double
// quote, or a newline; embedded quotes are doubled. Anything else,
// including leading and trailing spaces, passes through untouched.
func csvField(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

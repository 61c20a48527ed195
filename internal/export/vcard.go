package export

import (
	"fmt"
	"strings"

	"github.com/mailsift/mailsift/internal/contacts"
)

// VCard renders contacts as a vCard 3.0 address book in the given
// order. Lines are joined with CRLF, as the format requires; the result
// carries no trailing terminator.
func VCard(list []contacts.Contact) string {
	var lines []string
	for _, c := range list {
		fn := c.Name
		if fn == "" {
			fn = c.Email
		}
		family, given := splitName(c.Name)
		lines = append(lines,
			"BEGIN:VCARD",
			"VERSION:3.0",
			"FN:"+fn,
			"N:"+family+";"+given+";;;",
			"EMAIL;TYPE=INTERNET:"+c.Email,
			fmt.Sprintf("NOTE:Source: %s, Messages: %d", c.Role, c.Count),
			"END:VCARD",
		)
	}
	return strings.Join(lines, "\r\n")
}

// splitName applies the N field rule: the last whitespace token is the
// family name and the preceding tokens, rejoined with single spaces,
// are the given name. A single token is entirely a given name.
func splitName(name string) (family, given string) {
	tokens := strings.Fields(name)
	switch len(tokens) {
	case 0:
		return "", ""
	case 1:
		return "", tokens[0]
	default:
		return tokens[len(tokens)-1], strings.Join(tokens[:len(tokens)-1], " ")
	}
}

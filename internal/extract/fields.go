package extract

import (
	"html"
	"regexp"
	"strings"

	"github.com/mailsift/mailsift/internal/contacts"
)

// Records come off the device malformed often enough that a strict XML
// parse is useless. Field extraction is shallow text scanning instead:
// find each known container block, then the address entries inside it.

type fieldContainer struct {
	re   *regexp.Regexp
	role contacts.Role
}

func containerRe(tag string) *regexp.Regexp {
	return regexp.MustCompile(`(?is)<` + tag + `\b[^>]*>(.*?)</` + tag + `\s*>`)
}

// fieldContainers is the closed set of recipient containers, in scan
// order. replyTo carries sender addresses, so it maps to the from role.
var fieldContainers = []fieldContainer{
	{containerRe("from"), contacts.RoleFrom},
	{containerRe("to"), contacts.RoleTo},
	{containerRe("cc"), contacts.RoleCc},
	{containerRe("bcc"), contacts.RoleBcc},
	{containerRe("replyTo"), contacts.RoleFrom},
}

var (
	addressEntryRe = regexp.MustCompile(`(?i)<address\b[^>]*>`)
	emailAttrRe    = regexp.MustCompile(`(?i)\bemail\s*=\s*(?:"([^"]*)"|'([^']*)')`)
	nameAttrRe     = regexp.MustCompile(`(?i)\bname\s*=\s*(?:"([^"]*)"|'([^']*)')`)
)

// ScanFields extracts address candidates from the structured recipient
// containers of one decoded record. Malformed or missing containers,
// entries, and attributes yield fewer candidates, never an error.
func ScanFields(text string) []contacts.Candidate {
	var out []contacts.Candidate
	for _, fc := range fieldContainers {
		for _, block := range fc.re.FindAllStringSubmatch(text, -1) {
			for _, entry := range addressEntryRe.FindAllString(block[1], -1) {
				email, ok := attrValue(emailAttrRe, entry)
				if !ok {
					continue
				}
				email = html.UnescapeString(email)
				if !strings.Contains(email, "@") {
					continue
				}
				name, _ := attrValue(nameAttrRe, entry)
				out = append(out, contacts.Candidate{
					Email: strings.ToLower(email),
					Name:  html.UnescapeString(name),
					Role:  fc.role,
				})
			}
		}
	}
	return out
}

// attrValue pulls a quoted attribute value out of one entry tag.
// Both double and single quotes appear in real records. Submatch
// indexes distinguish an empty value from a missing attribute.
func attrValue(re *regexp.Regexp, entry string) (string, bool) {
	m := re.FindStringSubmatchIndex(entry)
	if m == nil {
		return "", false
	}
	if m[2] >= 0 {
		return entry[m[2]:m[3]], true
	}
	return entry[m[4]:m[5]], true
}

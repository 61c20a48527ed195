package extract

import (
	"html"
	"regexp"
	"strings"

	"github.com/mailsift/mailsift/internal/contacts"
)

var (
	// Declarations and comments are removed entirely; their content is
	// never contact-bearing.
	xmlDeclRe = regexp.MustCompile(`(?s)<\?.*?\?>`)
	commentRe = regexp.MustCompile(`(?s)<!--.*?-->`)

	// A markup tag starts with a letter (or slash) and is followed by
	// whitespace, "/", or ">". That keeps angle-bracketed addresses like
	// <jane@example.com> out of the match: "jane@..." is not a tag name.
	markupTagRe = regexp.MustCompile(`(?s)</?[a-zA-Z][a-zA-Z0-9:_-]*(?:\s[^>]*)?/?>`)

	// headerPatternRe matches "From: Some Name <addr>" style lines that
	// devices copy into the preview text. The keyword decides the role.
	headerPatternRe = regexp.MustCompile(`(?i)\b(from|to|cc)\s*:\s*([^<>\r\n]*)<([^<>]+)>`)
)

var previewRoles = map[string]contacts.Role{
	"from": contacts.RoleFrom,
	"to":   contacts.RoleTo,
	"cc":   contacts.RoleCc,
}

// ScanPreview extracts address candidates from the free preview text of
// one decoded record. It strips markup, decodes entities, then collects
// every non-overlapping header-style match. Purely heuristic: junk in,
// nothing out, never an error.
func ScanPreview(text string) []contacts.Candidate {
	text = stripMarkup(text)

	var out []contacts.Candidate
	for _, m := range headerPatternRe.FindAllStringSubmatch(text, -1) {
		addr := strings.TrimSpace(m[3])
		if !strings.Contains(addr, "@") {
			continue
		}
		out = append(out, contacts.Candidate{
			Email: strings.ToLower(addr),
			Name:  strings.TrimSpace(m[2]),
			Role:  previewRoles[strings.ToLower(m[1])],
		})
	}
	return out
}

// stripMarkup reduces record markup to plain text. Entity decoding runs
// after tag removal so entity-encoded addresses (&lt;jane@x&gt;) survive
// as scannable angle-bracket text.
func stripMarkup(text string) string {
	text = xmlDeclRe.ReplaceAllString(text, "")
	text = commentRe.ReplaceAllString(text, "")
	text = markupTagRe.ReplaceAllString(text, " ")
	text = html.UnescapeString(text)

	// Fold non-breaking spaces to plain spaces; the header pattern's \s
	// matches ASCII whitespace only.
	text = strings.ReplaceAll(text, "\u00a0", " ")
	return text
}

package testutil

import (
	"fmt"
	"strings"
)

// Addr is one address entry in a built message record. An empty Email
// omits the email attribute; an empty Name omits the name attribute.
type Addr struct {
	Email string
	Name  string
}

// Record describes the fields of a message record to build. Values are
// written verbatim, so tests that need entity references or broken
// markup put them directly in the field values.
type Record struct {
	From    []Addr
	To      []Addr
	Cc      []Addr
	Bcc     []Addr
	ReplyTo []Addr
	Preview string
}

// BuildRecord renders r as the XML text of one message record.
func BuildRecord(r Record) string {
	var sb strings.Builder
	sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<message>\n")
	writeContainer(&sb, "from", r.From)
	writeContainer(&sb, "to", r.To)
	writeContainer(&sb, "cc", r.Cc)
	writeContainer(&sb, "bcc", r.Bcc)
	writeContainer(&sb, "replyTo", r.ReplyTo)
	if r.Preview != "" {
		fmt.Fprintf(&sb, "  <preview>%s</preview>\n", r.Preview)
	}
	sb.WriteString("</message>")
	return sb.String()
}

func writeContainer(sb *strings.Builder, tag string, addrs []Addr) {
	if len(addrs) == 0 {
		return
	}
	fmt.Fprintf(sb, "  <%s>", tag)
	for _, a := range addrs {
		sb.WriteString("<address")
		if a.Email != "" {
			fmt.Fprintf(sb, ` email="%s"`, a.Email)
		}
		if a.Name != "" {
			fmt.Fprintf(sb, ` name="%s"`, a.Name)
		}
		sb.WriteString("/>")
	}
	fmt.Fprintf(sb, "</%s>\n", tag)
}

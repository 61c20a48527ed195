// Package textutil provides text decoding and display utilities.
package textutil

import (
	"strings"
	"unicode/utf8"

	"github.com/gogs/chardet"
	"golang.org/x/text/encoding/unicode"
)

// Encodings a record can carry, as selected by the byte-order mark.
const (
	EncodingUTF8    = "utf-8"
	EncodingUTF16LE = "utf-16le"
	EncodingUTF16BE = "utf-16be"
)

// RecordEncoding reports which encoding DecodeRecord will use for raw.
// The first two bytes, read as a big-endian 16-bit value, decide:
// 0xFFFE selects UTF-16 little-endian, 0xFEFF selects UTF-16 big-endian,
// and anything else (including input shorter than two bytes) is UTF-8.
func RecordEncoding(raw []byte) string {
	if len(raw) >= 2 {
		switch uint16(raw[0])<<8 | uint16(raw[1]) {
		case 0xFFFE:
			return EncodingUTF16LE
		case 0xFEFF:
			return EncodingUTF16BE
		}
	}
	return EncodingUTF8
}

// DecodeRecord converts the raw bytes of one archive member into text.
// UTF-16 input is decoded with the byte order its mark announces; everything
// else is treated as UTF-8. Decoding never fails: invalid sequences become
// the replacement character.
func DecodeRecord(raw []byte) string {
	switch RecordEncoding(raw) {
	case EncodingUTF16LE:
		return decodeUTF16(raw[2:], unicode.LittleEndian)
	case EncodingUTF16BE:
		return decodeUTF16(raw[2:], unicode.BigEndian)
	default:
		return SanitizeUTF8(string(raw))
	}
}

func decodeUTF16(data []byte, order unicode.Endianness) string {
	decoded, err := unicode.UTF16(order, unicode.IgnoreBOM).NewDecoder().Bytes(data)
	if err != nil {
		return SanitizeUTF8(string(data))
	}
	return string(decoded)
}

// DetectCharset names the likely charset of a record that carries no
// byte-order mark and is not valid UTF-8. It is diagnostic only: extraction
// always decodes per DecodeRecord. Returns "" when detection is
// inconclusive.
func DetectCharset(raw []byte) string {
	// Detection works better on longer samples, so demand more
	// confidence from them.
	minConfidence := 30
	if len(raw) > 50 {
		minConfidence = 50
	}

	detector := chardet.NewTextDetector()
	result, err := detector.DetectBest(raw)
	if err != nil || result.Confidence < minConfidence {
		return ""
	}
	return result.Charset
}

// SanitizeUTF8 replaces invalid UTF-8 bytes with replacement character.
func SanitizeUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			sb.WriteRune('�')
			i++
		} else {
			sb.WriteRune(r)
			i += size
		}
	}
	return sb.String()
}

// SanitizeTerminal replaces control characters with spaces so untrusted
// text (contact names, member paths) cannot inject escape sequences into
// terminal output.
func SanitizeTerminal(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return ' '
		}
		return r
	}, s)
}

// TruncateRunes truncates a string to maxRunes runes (not bytes), adding "..." if truncated.
// This is UTF-8 safe and won't split multi-byte characters.
func TruncateRunes(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	if maxRunes <= 3 {
		return string(runes[:maxRunes])
	}
	return string(runes[:maxRunes-3]) + "..."
}

// FirstLine returns the first line of a string.
// Useful for extracting clean error messages from multi-line outputs.
// Leading newlines are trimmed before extracting the first line.
func FirstLine(s string) string {
	s = strings.TrimLeft(s, "\r\n")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		return s[:idx]
	}
	return s
}

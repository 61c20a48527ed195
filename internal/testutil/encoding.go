package testutil

import "unicode/utf16"

// EncodeUTF16LE encodes s as UTF-16 little-endian with a leading byte
// order mark, the way the backup device writes UTF-16 records.
func EncodeUTF16LE(s string) []byte {
	units := utf16.Encode([]rune(s))
	buf := make([]byte, 2, 2+2*len(units))
	buf[0], buf[1] = 0xFF, 0xFE
	for _, u := range units {
		buf = append(buf, byte(u), byte(u>>8))
	}
	return buf
}

// EncodeUTF16BE encodes s as UTF-16 big-endian with a leading byte
// order mark.
func EncodeUTF16BE(s string) []byte {
	units := utf16.Encode([]rune(s))
	buf := make([]byte, 2, 2+2*len(units))
	buf[0], buf[1] = 0xFE, 0xFF
	for _, u := range units {
		buf = append(buf, byte(u>>8), byte(u))
	}
	return buf
}

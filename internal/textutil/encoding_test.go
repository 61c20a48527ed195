package textutil

import (
	"strings"
	"testing"

	"github.com/mailsift/mailsift/internal/testutil"
)

func TestRecordEncoding(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{"UTF-16LE mark", []byte{0xFF, 0xFE, 'h', 0x00}, EncodingUTF16LE},
		{"UTF-16BE mark", []byte{0xFE, 0xFF, 0x00, 'h'}, EncodingUTF16BE},
		{"no mark", []byte("hello"), EncodingUTF8},
		{"empty", []byte{}, EncodingUTF8},
		{"single byte", []byte{0xFF}, EncodingUTF8},
		{"mark only", []byte{0xFF, 0xFE}, EncodingUTF16LE},
		{"mark not at start", []byte{'x', 0xFF, 0xFE}, EncodingUTF8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RecordEncoding(tt.input); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDecodeRecordUTF16(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		text  string
	}{
		{"little-endian ASCII", testutil.EncodeUTF16LE("Hello, World!"), "Hello, World!"},
		{"big-endian ASCII", testutil.EncodeUTF16BE("Hello, World!"), "Hello, World!"},
		{"little-endian accents", testutil.EncodeUTF16LE("Zoë Müller <zoe@example.com>"), "Zoë Müller <zoe@example.com>"},
		{"big-endian CJK", testutil.EncodeUTF16BE("山田太郎 <taro@example.jp>"), "山田太郎 <taro@example.jp>"},
		{"little-endian emoji", testutil.EncodeUTF16LE("Hi 👋"), "Hi 👋"},
		{"empty payload LE", []byte{0xFF, 0xFE}, ""},
		{"empty payload BE", []byte{0xFE, 0xFF}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeRecord(tt.input)
			if got != tt.text {
				t.Errorf("got %q, want %q", got, tt.text)
			}
			testutil.AssertValidUTF8(t, got)
		})
	}
}

func TestDecodeRecordUTF8(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{"plain ASCII", []byte("from: a@example.com"), "from: a@example.com"},
		{"valid UTF-8", []byte("café ☕"), "café ☕"},
		{"empty", []byte{}, ""},
		{"invalid byte replaced", []byte("Te\x80st"), "Te�st"},
		{"truncated sequence", []byte("abc\xc3"), "abc�"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeRecord(tt.input)
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
			testutil.AssertValidUTF8(t, got)
		})
	}
}

func TestDecodeRecordNeverFails(t *testing.T) {
	// Damaged payloads still decode to something valid.
	tests := []struct {
		name     string
		input    []byte
		contains string
	}{
		{"odd UTF-16 payload", append(testutil.EncodeUTF16LE("Hi"), 0x41), "Hi"},
		{"unpaired surrogate", []byte{0xFF, 0xFE, 0x3D, 0xD8, 'o', 0x00, 'k', 0x00}, "ok"},
		{"random bytes", []byte{0x01, 0x93, 0xAA, 0xFF, 0x00}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeRecord(tt.input)
			testutil.AssertValidUTF8(t, got)
			if tt.contains != "" && !strings.Contains(got, tt.contains) {
				t.Errorf("result %q should contain %q", got, tt.contains)
			}
		})
	}
}

func TestDetectCharset(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{"empty", []byte{}, ""},
		{"UTF-16LE mark", testutil.EncodeUTF16LE("detected by mark"), "UTF-16LE"},
		{"UTF-16BE mark", testutil.EncodeUTF16BE("detected by mark"), "UTF-16BE"},
		{"multibyte UTF-8", []byte("こんにちは世界。今日はいい天気ですね。連絡先を抽出します。"), "UTF-8"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectCharset(tt.input); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSanitizeUTF8(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"valid UTF-8 unchanged", "Hello, 世界!", "Hello, 世界!"},
		{"single invalid byte", "Hello\x80World", "Hello�World"},
		{"multiple invalid bytes", "Test\x80\x81\x82String", "Test���String"},
		{"truncated UTF-8 sequence", "Hello\xc3", "Hello�"},
		{"invalid continuation byte", "Test\xc3\x00End", "Test�\x00End"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SanitizeUTF8(tt.input)
			if result != tt.expected {
				t.Errorf("SanitizeUTF8(%q) = %q, want %q", tt.input, result, tt.expected)
			}
			testutil.AssertValidUTF8(t, result)
		})
	}
}

func TestSanitizeTerminal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text unchanged", "Jane Doe <jane@example.com>", "Jane Doe <jane@example.com>"},
		{"ANSI escape", "evil\x1b[31mred", "evil [31mred"},
		{"carriage return and newline", "line1\r\nline2", "line1  line2"},
		{"tab", "a\tb", "a b"},
		{"delete", "a\x7fb", "a b"},
		{"unicode preserved", "山田太郎", "山田太郎"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeTerminal(tt.input); got != tt.expected {
				t.Errorf("SanitizeTerminal(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxRunes int
		expected string
	}{
		{"short ASCII", "Hello", 10, "Hello"},
		{"exact length", "Hello", 5, "Hello"},
		{"truncate ASCII", "Hello World", 8, "Hello..."},
		{"empty string", "", 5, ""},
		{"max 3", "Hello", 3, "Hel"},
		{"max 4", "Hello", 4, "H..."},
		{"UTF-8 no truncate", "你好世界", 4, "你好世界"},
		{"UTF-8 truncate", "你好世界！", 4, "你..."},
		{"emoji", "Hello 👋 World", 9, "Hello ..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := TruncateRunes(tt.input, tt.maxRunes)
			if result != tt.expected {
				t.Errorf("TruncateRunes(%q, %d) = %q, want %q", tt.input, tt.maxRunes, result, tt.expected)
			}
		})
	}
}

func TestFirstLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"single line", "Hello World", "Hello World"},
		{"multi line", "First\nSecond\nThird", "First"},
		{"empty string", "", ""},
		{"trailing newline", "Hello\n", "Hello"},
		{"only newline", "\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FirstLine(tt.input)
			if result != tt.expected {
				t.Errorf("FirstLine(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

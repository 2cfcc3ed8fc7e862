// Package slug turns human-entered store names into URL-safe identifiers.
package slug

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	Separator = "-"
	// MaxLength bounds the base slug; suffixes added on collision come on top.
	MaxLength = 60

	fallbackPrefix = "store-"
)

var arabic = map[rune]string{
	'ا': "a", 'أ': "a", 'إ': "i", 'آ': "aa", 'ٱ': "a",
	'ب': "b", 'ت': "t", 'ث': "th", 'ج': "j", 'ح': "h",
	'خ': "kh", 'د': "d", 'ذ': "dh", 'ر': "r", 'ز': "z",
	'س': "s", 'ش': "sh", 'ص': "s", 'ض': "d", 'ط': "t",
	'ظ': "z", 'ع': "a", 'غ': "gh", 'ف': "f", 'ق': "q",
	'ك': "k", 'ل': "l", 'م': "m", 'ن': "n", 'ه': "h",
	'و': "w", 'ي': "y", 'ى': "a", 'ة': "h", 'ؤ': "w",
	'ئ': "y", 'ء': "", 'ـ': "",
	'٠': "0", '١': "1", '٢': "2", '٣': "3", '٤': "4",
	'٥': "5", '٦': "6", '٧': "7", '٨': "8", '٩': "9",
}

// letters NFKD leaves intact
var latin = map[rune]string{
	'ß': "ss", 'æ': "ae", 'ø': "o", 'œ': "oe",
	'đ': "d", 'ł': "l", 'þ': "th", 'ı': "i",
}

// Base returns the deterministic slug for name, or "" when nothing in it
// can be expressed in ASCII.
func Base(name string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	pendingSep := false
	write := func(s string) {
		if s == "" {
			return
		}
		if pendingSep && b.Len() > 0 {
			b.WriteString(Separator)
		}
		pendingSep = false
		b.WriteString(s)
	}

	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			write(string(r))
		case arabic[r] != "":
			write(arabic[r])
		case latin[r] != "":
			write(latin[r])
		default:
			if _, silent := arabic[r]; silent {
				continue
			}
			pendingSep = true
		}
	}

	out := b.String()
	if len(out) > MaxLength {
		out = strings.TrimRight(out[:MaxLength], Separator)
	}
	return out
}

// Generate returns Base(name), falling back to a timestamp token so the
// result is never empty.
func Generate(name string) string {
	return GenerateAt(name, time.Now())
}

func GenerateAt(name string, now time.Time) string {
	if s := Base(name); s != "" {
		return s
	}
	return fallbackPrefix + strconv.FormatInt(now.UnixNano(), 36)
}

// WithSuffix appends suffix to base, used to resolve collisions.
func WithSuffix(base, suffix string) string {
	if suffix == "" {
		return base
	}
	return base + Separator + suffix
}

package names

import (
	"strings"
	"unicode/utf8"
)

// Escape inserts EscapeCharacter before every occurrence of delimiter in s that is not already escaped, i.e. that is
// preceded by an even (possibly zero) run of escape characters. Escape characters are left alone; escaping them is
// the caller's responsibility. Bytes that are not valid UTF-8 are copied unchanged.
func Escape(s string, delimiter rune) string {
	var b strings.Builder
	b.Grow(len(s))
	run := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == delimiter && run%2 == 0 {
			b.WriteRune(EscapeCharacter)
		}
		if r == EscapeCharacter {
			run++
		} else {
			run = 0
		}
		b.WriteString(s[i : i+size])
		i += size
	}
	return b.String()
}

// Unescape removes the escape character in front of every escaped delimiter. Escaped escape characters ("\\") are
// kept as they are, and so is an escape character in front of any other character.
func Unescape(s string, delimiter rune) string {
	var b strings.Builder
	b.Grow(len(s))
	escaped := false
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		raw := s[i : i+size]
		i += size
		if escaped {
			if r != delimiter {
				b.WriteRune(EscapeCharacter)
			}
			b.WriteString(raw)
			escaped = false
			continue
		}
		if r == EscapeCharacter {
			escaped = true
			continue
		}
		b.WriteString(raw)
	}
	if escaped {
		b.WriteRune(EscapeCharacter)
	}
	return b.String()
}

// Split partitions s at every unescaped delimiter. The parts keep their escape characters. The result always has at
// least one element; Split("", d) returns [""].
func Split(s string, delimiter rune) []string {
	parts := make([]string, 0, strings.Count(s, string(delimiter))+1)
	start := 0
	escaped := false
	for i, r := range s {
		switch {
		case escaped:
			escaped = false
		case r == EscapeCharacter:
			escaped = true
		case r == delimiter:
			parts = append(parts, s[start:i])
			start = i + utf8.RuneLen(r)
		}
	}
	return append(parts, s[start:])
}

// Join escapes every unescaped component with respect to delimiter and joins them with it.
func Join(components []string, delimiter rune) string {
	escaped := make([]string, len(components))
	for i, c := range components {
		escaped[i] = Escape(c, delimiter)
	}
	return strings.Join(escaped, string(delimiter))
}

// CheckEscaped reports whether s is properly escaped with respect to delimiter: it contains no unescaped delimiter,
// every escape character is followed by another escape character or the delimiter, and no escape character is left
// dangling at the end.
func CheckEscaped(s string, delimiter rune) bool {
	escaped := false
	for _, r := range s {
		if escaped {
			if r != EscapeCharacter && r != delimiter {
				return false
			}
			escaped = false
			continue
		}
		if r == EscapeCharacter {
			escaped = true
		} else if r == delimiter {
			return false
		}
	}
	return !escaped
}

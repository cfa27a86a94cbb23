// Package normalize turns raw module paths and dependency names into
// comparable tokens.
//
// A token has every "/" rewritten to "\" and is then percent-encoded the way
// URI components are, so "\node_modules\" becomes "%5Cnode_modules%5C" and
// scoped names like "@babel/core" become "%40babel%5Ccore". Paths produced on
// POSIX and Windows hosts end up with the same token.
package normalize

import (
	"net/url"
	"strings"
)

// Separator is the escaped form of the canonical path separator.
const Separator = "%5C"

const upperHex = "0123456789ABCDEF"

// Value normalizes v when it is a string and returns "" for anything else.
func Value(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return String(s)
}

// String normalizes a raw path or dependency name. It never fails and is
// idempotent: escape sequences already present in raw are kept.
func String(raw string) string {
	raw = strings.ReplaceAll(raw, "/", `\`)

	var sb strings.Builder
	sb.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case isUnreserved(c):
			sb.WriteByte(c)
		case c == '%' && i+2 < len(raw) && isHex(raw[i+1]) && isHex(raw[i+2]):
			sb.WriteByte('%')
			sb.WriteByte(toUpperHex(raw[i+1]))
			sb.WriteByte(toUpperHex(raw[i+2]))
			i += 2
		default:
			sb.WriteByte('%')
			sb.WriteByte(upperHex[c>>4])
			sb.WriteByte(upperHex[c&15])
		}
	}
	return sb.String()
}

// Decode returns the display form of a token. The separator stays "\".
func Decode(token string) string {
	decoded, err := url.PathUnescape(token)
	if err != nil {
		return token
	}
	return decoded
}

// DecodeAll decodes every token in order.
func DecodeAll[T ~string](tokens []T) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = Decode(string(t))
	}
	return out
}

// isUnreserved matches the characters encodeURIComponent leaves intact.
func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func toUpperHex(c byte) byte {
	if 'a' <= c && c <= 'f' {
		return c - ('a' - 'A')
	}
	return c
}

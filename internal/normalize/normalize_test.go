package normalize

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty", raw: "", want: ""},
		{name: "plain name", raw: "left-pad", want: "left-pad"},
		{name: "posix path", raw: "/app/node_modules/react/index.js", want: "%5Capp%5Cnode_modules%5Creact%5Cindex.js"},
		{name: "windows path", raw: `C:\app\node_modules\react\index.js`, want: "C%3A%5Capp%5Cnode_modules%5Creact%5Cindex.js"},
		{name: "scoped package", raw: "@babel/core", want: "%40babel%5Ccore"},
		{name: "space and unicode", raw: "my lib/ü", want: "my%20lib%5C%C3%BC"},
		{name: "safe punctuation", raw: "a-b_c.d!e~f*g'h(i)", want: "a-b_c.d!e~f*g'h(i)"},
		{name: "reserved characters", raw: "a?b#c&d=e+f", want: "a%3Fb%23c%26d%3De%2Bf"},
		{name: "existing escape kept", raw: "%5cnode_modules%5C", want: "%5Cnode_modules%5C"},
		{name: "lone percent", raw: "100%", want: "100%25"},
		{name: "percent with one hex digit", raw: "%A", want: "%25A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := String(tt.raw); got != tt.want {
				t.Fatalf("String(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestValueNonString(t *testing.T) {
	for _, v := range []any{nil, 42, 3.5, true, []string{"react"}, map[string]any{}} {
		if got := Value(v); got != "" {
			t.Fatalf("Value(%#v) = %q, want empty", v, got)
		}
	}
	if got := Value("a/b"); got != "a%5Cb" {
		t.Fatalf("Value(\"a/b\") = %q", got)
	}
}

func TestDecode(t *testing.T) {
	if got := Decode(String("@scope/my pkg")); got != `@scope\my pkg` {
		t.Fatalf("unexpected decoded value %q", got)
	}
	if got := Decode("%zz"); got != "%zz" {
		t.Fatalf("expected invalid token to be returned unchanged, got %q", got)
	}
	got := DecodeAll([]string{"a%20b", "c"})
	if len(got) != 2 || got[0] != "a b" || got[1] != "c" {
		t.Fatalf("unexpected DecodeAll result %#v", got)
	}
}

func TestString_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("normalization is idempotent", prop.ForAll(
		func(s string) bool {
			once := String(s)
			return String(once) == once
		},
		gen.AnyString(),
	))

	properties.Property("normalized tokens contain no raw separators", prop.ForAll(
		func(s string) bool {
			out := String(s)
			for i := 0; i < len(out); i++ {
				if out[i] == '/' || out[i] == '\\' || out[i] == ' ' {
					return false
				}
			}
			return true
		},
		gen.AnyString(),
	))

	properties.Property("decode restores the backslash form", prop.ForAll(
		func(segments []string) bool {
			raw := strings.Join(segments, "/")
			return Decode(String(raw)) == strings.Join(segments, `\`)
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}

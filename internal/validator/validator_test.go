package validator

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/ethanolivertroy/bundle-checker/internal/models"
	"github.com/ethanolivertroy/bundle-checker/internal/normalize"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestValidate(t *testing.T) {
	bundled := paths(
		"/app/src/index.js",
		"/app/node_modules/react/index.js",
		"/app/node_modules/react/cjs/react.development.js",
		"/app/node_modules/moment/moment.js",
		"/app/node_modules/moment/locale/pl.js",
		"/app/vendor/lodash/lodash.js",
	)

	tests := []struct {
		name           string
		mandatory      []string
		disallowed     []string
		wantMissing    []string
		wantDisallowed []string
	}{
		{name: "empty sets", wantMissing: []string{}, wantDisallowed: []string{}},
		{
			name:           "mandatory bundled from node_modules",
			mandatory:      []string{"react", "moment"},
			wantMissing:    []string{},
			wantDisallowed: []string{},
		},
		{
			name:           "mandatory not bundled",
			mandatory:      []string{"left-pad", "react", "axios"},
			wantMissing:    []string{"left-pad", "axios"},
			wantDisallowed: []string{},
		},
		{
			name:           "mandatory bundled from outside node_modules",
			mandatory:      []string{"lodash"},
			wantMissing:    []string{"lodash"},
			wantDisallowed: []string{},
		},
		{
			name:           "mandatory parts bundled",
			mandatory:      []string{"react-dom", "mom"},
			wantMissing:    []string{"react-dom", "mom"},
			wantDisallowed: []string{},
		},
		{
			name:           "disallowed bundled once despite many files",
			disallowed:     []string{"moment", "axios", "react"},
			wantMissing:    []string{},
			wantDisallowed: []string{"moment", "react"},
		},
		{
			name:           "disallowed bundled from outside node_modules",
			disallowed:     []string{"lodash"},
			wantMissing:    []string{},
			wantDisallowed: []string{},
		},
		{
			name:           "both kinds of violation",
			mandatory:      []string{"left-pad"},
			disallowed:     []string{"moment"},
			wantMissing:    []string{"left-pad"},
			wantDisallowed: []string{"moment"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(bundled, normalize.Names(tt.mandatory), normalize.Names(tt.disallowed))
			if missing := normalize.DecodeAll(got.MissingMandatory); !reflect.DeepEqual(missing, tt.wantMissing) {
				t.Fatalf("MissingMandatory = %v, want %v", missing, tt.wantMissing)
			}
			if present := normalize.DecodeAll(got.PresentDisallowed); !reflect.DeepEqual(present, tt.wantDisallowed) {
				t.Fatalf("PresentDisallowed = %v, want %v", present, tt.wantDisallowed)
			}
			wantValid := len(tt.wantMissing) == 0 && len(tt.wantDisallowed) == 0
			if got.Valid() != wantValid {
				t.Fatalf("Valid() = %v, want %v", got.Valid(), wantValid)
			}
		})
	}
}

func TestValidateLeftPadScenario(t *testing.T) {
	result := Validate(
		[]models.ModulePath{models.ModulePath(normalize.String(`\node_modules\left-pad\index.js`))},
		normalize.Names([]string{"left-pad"}),
		nil,
	)
	if !result.Valid() {
		t.Fatalf("expected left-pad to satisfy the mandatory set, got %+v", result)
	}
}

func TestCheckConfigOverlap(t *testing.T) {
	cfg := models.ValidationConfig{
		Mandatory:  normalize.Names([]string{"a", "@scope/b", "c"}),
		Disallowed: normalize.Names([]string{"@scope/b", "a"}),
	}

	_, err := Check(paths("/node_modules/a/index.js"), cfg)
	if err == nil {
		t.Fatalf("expected overlap to be rejected")
	}
	var cfgErr *models.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %T", err)
	}
	if !strings.HasSuffix(err.Error(), `at the same time: a,@scope\b`) {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestCheckConfigDisjoint(t *testing.T) {
	cfg := models.ValidationConfig{
		Mandatory:  normalize.Names([]string{"a"}),
		Disallowed: normalize.Names([]string{"b"}),
	}
	result, err := Check(paths("/node_modules/a/index.js", "/node_modules/b/index.js"), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := normalize.DecodeAll(result.PresentDisallowed); !reflect.DeepEqual(got, []string{"b"}) {
		t.Fatalf("unexpected disallowed %v", got)
	}
}

func TestValidate_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("empty configuration is always valid", prop.ForAll(
		func(raw []string) bool {
			return Validate(paths(raw...), nil, nil).Valid()
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.Property("validation is deterministic", prop.ForAll(
		func(raw, mandatory, disallowed []string) bool {
			p := paths(raw...)
			m, d := normalize.Names(mandatory), normalize.Names(disallowed)
			return reflect.DeepEqual(Validate(p, m, d), Validate(p, m, d))
		},
		gen.SliceOf(gen.Identifier().Map(func(s string) string { return "/node_modules/" + s + "/index.js" })),
		gen.SliceOf(gen.Identifier()),
		gen.SliceOf(gen.Identifier()),
	))

	properties.TestingRun(t)
}

package validator

import (
	"testing"

	"github.com/ethanolivertroy/bundle-checker/internal/models"
	"github.com/ethanolivertroy/bundle-checker/internal/normalize"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func paths(raw ...string) []models.ModulePath {
	return normalize.Paths(raw)
}

func dep(raw string) models.DependencyName {
	return models.DependencyName(normalize.String(raw))
}

func TestAppearsInBundle(t *testing.T) {
	tests := []struct {
		name  string
		paths []models.ModulePath
		dep   string
		want  bool
	}{
		{name: "no paths", paths: nil, dep: "react", want: false},
		{name: "file inside package", paths: paths("/app/node_modules/react/index.js"), dep: "react", want: true},
		{name: "package root exactly", paths: paths(`\node_modules\react`), dep: "react", want: true},
		{name: "windows separators", paths: paths(`C:\app\node_modules\react\cjs\react.js`), dep: "react", want: true},
		{name: "name prefix of another package", paths: paths("/app/node_modules/react-dom/index.js"), dep: "react", want: false},
		{name: "name as suffix", paths: paths("/app/node_modules/preact/index.js"), dep: "react", want: false},
		{name: "outside node_modules", paths: paths("/app/src/react/index.js"), dep: "react", want: false},
		{name: "sub-path of package name", paths: paths("/app/node_modules/lodash/get.js"), dep: "lodash/get", want: false},
		{name: "scoped package", paths: paths("/app/node_modules/@babel/core/lib/index.js"), dep: "@babel/core", want: true},
		{name: "scope alone", paths: paths("/app/node_modules/@babel/core/lib/index.js"), dep: "@babel", want: true},
		{name: "nested node_modules", paths: paths("/app/node_modules/react-dom/node_modules/scheduler/index.js"), dep: "scheduler", want: true},
		{name: "second occurrence matches", paths: paths("/node_modules/react-dom/node_modules/react/index.js"), dep: "react", want: true},
		{name: "dot is literal", paths: paths("/app/node_modules/lodashXget/index.js"), dep: "lodash.get", want: false},
		{name: "dotted name", paths: paths("/app/node_modules/lodash.get/index.js"), dep: "lodash.get", want: true},
		{name: "any of several paths", paths: paths("/app/src/a.js", "/app/node_modules/moment/moment.js"), dep: "moment", want: true},
		{name: "empty dependency", paths: paths("/app/node_modules/moment/moment.js"), dep: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AppearsInBundle(tt.paths, dep(tt.dep)); got != tt.want {
				t.Fatalf("AppearsInBundle(%v, %q) = %v, want %v", tt.paths, tt.dep, got, tt.want)
			}
		})
	}
}

func TestAppearsInBundle_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("package root and files inside it match", prop.ForAll(
		func(name, rest string) bool {
			d := dep(name)
			return AppearsInBundle(paths(`\node_modules\`+name), d) &&
				AppearsInBundle(paths(`\node_modules\`+name+`\`+rest), d)
		},
		gen.Identifier(),
		gen.AlphaString(),
	))

	properties.Property("a longer package name does not match", prop.ForAll(
		func(name, suffix string) bool {
			return !AppearsInBundle(paths(`\node_modules\`+name+suffix), dep(name))
		},
		gen.Identifier(),
		gen.Identifier(),
	))

	properties.TestingRun(t)
}

package parsers

import (
	_ "embed"
	"encoding/json"
	"strings"

	"github.com/ethanolivertroy/bundle-checker/internal/models"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/stats.schema.json
var statsSchema string

var statsSchemaLoader = gojsonschema.NewStringLoader(statsSchema)

// WebpackStatsParser parses the JSON written by `webpack --json`
type WebpackStatsParser struct{}

// CanParse returns true for JSON files
func (p *WebpackStatsParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".json")
}

// stats represents the part of the webpack stats object we read
type stats struct {
	Modules []struct {
		Name string `json:"name"`
	} `json:"modules"`
}

// Parse extracts module names from stats content. Modules without a name
// are skipped.
func (p *WebpackStatsParser) Parse(filepath string, content []byte) ([]string, error) {
	if !json.Valid(content) {
		return nil, models.NewConfigError("%s file is not valid JSON", filepath)
	}

	result, err := gojsonschema.Validate(statsSchemaLoader, gojsonschema.NewBytesLoader(content))
	if err != nil {
		return nil, &models.ConfigError{Msg: filepath + " file could not be checked", Err: err}
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			details = append(details, e.String())
		}
		return nil, models.NewConfigError("%s file is not valid Webpack compilation object (%s)",
			filepath, strings.Join(details, "; "))
	}

	var s stats
	if err := json.Unmarshal(content, &s); err != nil {
		return nil, &models.ConfigError{Msg: filepath + " file is not valid JSON", Err: err}
	}

	names := make([]string, 0, len(s.Modules))
	for _, m := range s.Modules {
		if m.Name != "" {
			names = append(names, m.Name)
		}
	}
	return names, nil
}

package reporter

import "encoding/json"

// JSONReporter outputs the run summary in JSON format
type JSONReporter struct{}

// jsonOutput represents the JSON output structure
type jsonOutput struct {
	Summary    jsonSummary      `json:"summary"`
	Mandatory  []jsonDependency `json:"mandatory"`
	Disallowed []jsonDependency `json:"disallowed"`
}

type jsonSummary struct {
	Valid             bool   `json:"valid"`
	Source            string `json:"source,omitempty"`
	ModulesScanned    int    `json:"modules_scanned"`
	MissingMandatory  int    `json:"missing_mandatory"`
	PresentDisallowed int    `json:"present_disallowed"`
	FailOnInvalid     bool   `json:"fail_on_invalid"`
}

type jsonDependency struct {
	Name    string `json:"name"`
	Bundled bool   `json:"bundled"`
}

// Report generates JSON output for the given summary
func (r *JSONReporter) Report(summary Summary) ([]byte, error) {
	output := jsonOutput{
		Summary: jsonSummary{
			Valid:             summary.Result.Valid(),
			Source:            summary.Source,
			ModulesScanned:    summary.ModulesScanned,
			MissingMandatory:  len(summary.Result.MissingMandatory),
			PresentDisallowed: len(summary.Result.PresentDisallowed),
			FailOnInvalid:     summary.Config.FailOnInvalid,
		},
		Mandatory:  toJSONDependencies(summary.Mandatory()),
		Disallowed: toJSONDependencies(summary.Disallowed()),
	}

	return json.MarshalIndent(output, "", "  ")
}

func toJSONDependencies(deps []DependencyStatus) []jsonDependency {
	out := make([]jsonDependency, 0, len(deps))
	for _, d := range deps {
		out = append(out, jsonDependency{Name: d.Name, Bundled: d.Bundled})
	}
	return out
}

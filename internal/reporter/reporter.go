package reporter

import (
	"github.com/ethanolivertroy/bundle-checker/internal/models"
	"github.com/ethanolivertroy/bundle-checker/internal/normalize"
)

// Reporter is the interface for output formatters
type Reporter interface {
	// Report generates output for the given run summary
	Report(summary Summary) ([]byte, error)
}

// Summary is everything a report document needs about one run
type Summary struct {
	Source         string // stats file or URL the module list came from
	ModulesScanned int
	Config         models.ValidationConfig
	Result         models.ValidationResult
}

// DependencyStatus is the per-dependency view of a result
type DependencyStatus struct {
	Name    string
	Bundled bool
}

// Satisfied returns true if the dependency meets its expectation
func (d DependencyStatus) Satisfied(mandatory bool) bool {
	return d.Bundled == mandatory
}

// Mandatory lists every mandatory dependency with its bundled state
func (s Summary) Mandatory() []DependencyStatus {
	return statuses(s.Config.Mandatory, s.Result.MissingMandatory, false)
}

// Disallowed lists every disallowed dependency with its bundled state
func (s Summary) Disallowed() []DependencyStatus {
	return statuses(s.Config.Disallowed, s.Result.PresentDisallowed, true)
}

func statuses(set models.DependencySet, flagged []models.DependencyName, flaggedBundled bool) []DependencyStatus {
	out := make([]DependencyStatus, 0, len(set))
	for _, name := range set {
		isFlagged := models.DependencySet(flagged).Contains(name)
		out = append(out, DependencyStatus{
			Name:    normalize.Decode(string(name)),
			Bundled: isFlagged == flaggedBundled,
		})
	}
	return out
}

// Get returns a reporter for the specified format
func Get(format string) Reporter {
	switch format {
	case "json":
		return &JSONReporter{}
	case "sarif":
		return &SARIFReporter{}
	default:
		return &TerminalReporter{}
	}
}

// IsKnownFormat returns true for the formats Get understands
func IsKnownFormat(format string) bool {
	switch format {
	case "terminal", "json", "sarif":
		return true
	}
	return false
}

package reporter

import (
	"fmt"
	"strings"
)

// TerminalReporter outputs a human-readable summary of the run
type TerminalReporter struct{}

// Report generates terminal output for the given summary
func (r *TerminalReporter) Report(summary Summary) ([]byte, error) {
	var sb strings.Builder

	switch {
	case summary.Result.Valid():
		sb.WriteString(titleStyle.Render("BUNDLE CONTENT CHECK PASSED") + "\n")
	case summary.Config.FailOnInvalid:
		sb.WriteString(errorStyle.Render("BUNDLE CONTENT CHECK FAILED") + "\n")
	default:
		sb.WriteString(warningStyle.Render("BUNDLE CONTENT CHECK FAILED (advisory)") + "\n")
	}
	sb.WriteString(strings.Repeat("=", 60) + "\n\n")

	source := summary.Source
	if source == "" {
		source = "build"
	}
	sb.WriteString(subtitleStyle.Render(fmt.Sprintf("Scanned %d modules from %s", summary.ModulesScanned, source)) + "\n")

	writeSection(&sb, "Mandatory dependencies", summary.Mandatory(), true)
	writeSection(&sb, "Disallowed dependencies", summary.Disallowed(), false)

	return []byte(sb.String()), nil
}

func writeSection(sb *strings.Builder, title string, deps []DependencyStatus, mandatory bool) {
	if len(deps) == 0 {
		return
	}

	sb.WriteString("\n" + titleStyle.Render(title) + "\n")
	for _, d := range deps {
		state := "not bundled"
		if d.Bundled {
			state = "bundled"
		}
		if d.Satisfied(mandatory) {
			sb.WriteString(fmt.Sprintf("  %s %s %s\n", successStyle.Render("✓"), d.Name, subtitleStyle.Render("("+state+")")))
		} else {
			sb.WriteString(fmt.Sprintf("  %s %s %s\n", errorStyle.Render("✗"), d.Name, errorStyle.Render("("+state+")")))
		}
	}
}

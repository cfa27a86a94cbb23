package reporter

import (
	"fmt"
	"strings"

	"github.com/ethanolivertroy/bundle-checker/internal/models"
	"github.com/ethanolivertroy/bundle-checker/internal/normalize"
)

const toolName = "Bundle Content Validator"

// messageDelimiter joins the mandatory and disallowed messages
const messageDelimiter = "\r\n"

func msgProcessingStarted() string {
	return toolName + " started"
}

func msgFinished(status models.Status) string {
	result := "SUCCESS"
	if status != models.StatusSuccess {
		result = "FAILURE"
	}
	return fmt.Sprintf("%s finished; result: %s", toolName, result)
}

func msgMandatoryNotIncluded(names []models.DependencyName) string {
	return "Mandatory dependencies not included: " + strings.Join(normalize.DecodeAll(names), ",")
}

func msgDisallowedIncluded(names []models.DependencyName) string {
	return "Disallowed dependencies included: " + strings.Join(normalize.DecodeAll(names), ",")
}

// ViolationMessage renders the combined violation message of an invalid
// result, mandatory first. It returns "" for a valid result.
func ViolationMessage(result models.ValidationResult) string {
	var parts []string
	if len(result.MissingMandatory) > 0 {
		parts = append(parts, msgMandatoryNotIncluded(result.MissingMandatory))
	}
	if len(result.PresentDisallowed) > 0 {
		parts = append(parts, msgDisallowedIncluded(result.PresentDisallowed))
	}
	return strings.Join(parts, messageDelimiter)
}

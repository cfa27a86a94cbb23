// Package validator decides whether a bundle's module list satisfies the
// mandatory and disallowed dependency sets.
package validator

import (
	"strings"

	"github.com/ethanolivertroy/bundle-checker/internal/models"
	"github.com/ethanolivertroy/bundle-checker/internal/normalize"
)

// CheckConfig returns a ConfigError when a dependency is both mandatory and
// disallowed.
func CheckConfig(cfg models.ValidationConfig) error {
	overlap := normalize.Intersect(cfg.Mandatory, cfg.Disallowed)
	if len(overlap) > 0 {
		return models.NewConfigError(
			"The same dependencies can not be mandatory and disallowed at the same time: %s",
			joinDecoded(overlap),
		)
	}
	return nil
}

// Validate matches every mandatory and disallowed dependency against paths.
// Both result sequences follow the order of the configured sets.
func Validate(paths []models.ModulePath, mandatory, disallowed models.DependencySet) models.ValidationResult {
	result := models.ValidationResult{
		MissingMandatory:  []models.DependencyName{},
		PresentDisallowed: []models.DependencyName{},
	}

	for _, dep := range mandatory {
		if !AppearsInBundle(paths, dep) {
			result.MissingMandatory = append(result.MissingMandatory, dep)
		}
	}

	for _, dep := range normalize.Deduplicate(disallowed) {
		if AppearsInBundle(paths, dep) {
			result.PresentDisallowed = append(result.PresentDisallowed, dep)
		}
	}

	return result
}

// Check verifies cfg and, only if it is consistent, validates paths against it.
func Check(paths []models.ModulePath, cfg models.ValidationConfig) (models.ValidationResult, error) {
	if err := CheckConfig(cfg); err != nil {
		return models.ValidationResult{}, err
	}
	return Validate(paths, cfg.Mandatory, cfg.Disallowed), nil
}

func joinDecoded(names []models.DependencyName) string {
	return strings.Join(normalize.DecodeAll(names), ",")
}

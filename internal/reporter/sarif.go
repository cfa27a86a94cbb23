package reporter

import (
	"encoding/json"
	"fmt"
)

const (
	ruleMandatoryMissing   = "BCV001"
	ruleDisallowedIncluded = "BCV002"
)

// SARIFReporter outputs violations in SARIF format for GitHub Code Scanning
type SARIFReporter struct{}

// SARIF structures
type sarifReport struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri"`
	Rules          []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	ShortDescription sarifText       `json:"shortDescription"`
	FullDescription  sarifText       `json:"fullDescription"`
	Help             sarifText       `json:"help"`
	DefaultConfig    sarifRuleConfig `json:"defaultConfiguration"`
	Properties       sarifProperties `json:"properties"`
}

type sarifText struct {
	Text string `json:"text"`
}

type sarifRuleConfig struct {
	Level string `json:"level"`
}

type sarifProperties struct {
	Tags []string `json:"tags"`
}

type sarifResult struct {
	RuleID              string            `json:"ruleId"`
	RuleIndex           int               `json:"ruleIndex"`
	Level               string            `json:"level"`
	Message             sarifText         `json:"message"`
	Locations           []sarifLocation   `json:"locations"`
	PartialFingerprints map[string]string `json:"partialFingerprints"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifact `json:"artifactLocation"`
}

type sarifArtifact struct {
	URI string `json:"uri"`
}

// Report generates SARIF output for the given summary
func (r *SARIFReporter) Report(summary Summary) ([]byte, error) {
	level := "warning"
	if summary.Config.FailOnInvalid {
		level = "error"
	}

	report := sarifReport{
		Schema:  "https://json.schemastore.org/sarif-2.1.0.json",
		Version: "2.1.0",
		Runs: []sarifRun{{
			Tool: sarifTool{
				Driver: sarifDriver{
					Name:           "bundle-checker",
					Version:        "1.0.0",
					InformationURI: "https://github.com/ethanolivertroy/bundle-checker",
					Rules:          r.buildRules(level),
				},
			},
			Results: r.buildResults(summary, level),
		}},
	}

	return json.MarshalIndent(report, "", "  ")
}

func (r *SARIFReporter) buildRules(level string) []sarifRule {
	return []sarifRule{
		{
			ID:               ruleMandatoryMissing,
			Name:             "MandatoryDependencyMissing",
			ShortDescription: sarifText{Text: "Mandatory dependency not included in bundle"},
			FullDescription:  sarifText{Text: "A dependency configured as mandatory has no module under its node_modules package root."},
			Help:             sarifText{Text: "Import the dependency from the bundle entry points or remove it from the mandatory list."},
			DefaultConfig:    sarifRuleConfig{Level: level},
			Properties:       sarifProperties{Tags: []string{"bundle", "dependency", "mandatory"}},
		},
		{
			ID:               ruleDisallowedIncluded,
			Name:             "DisallowedDependencyIncluded",
			ShortDescription: sarifText{Text: "Disallowed dependency included in bundle"},
			FullDescription:  sarifText{Text: "At least one bundled module lives under the node_modules package root of a disallowed dependency."},
			Help:             sarifText{Text: "Remove the imports that pull the dependency in, or mark it as external."},
			DefaultConfig:    sarifRuleConfig{Level: level},
			Properties:       sarifProperties{Tags: []string{"bundle", "dependency", "disallowed"}},
		},
	}
}

func (r *SARIFReporter) buildResults(summary Summary, level string) []sarifResult {
	results := []sarifResult{}
	uri := summary.Source
	if uri == "" {
		uri = "stats.json"
	}

	add := func(ruleID string, ruleIndex int, msg, name string) {
		results = append(results, sarifResult{
			RuleID:    ruleID,
			RuleIndex: ruleIndex,
			Level:     level,
			Message:   sarifText{Text: msg},
			Locations: []sarifLocation{{
				PhysicalLocation: sarifPhysicalLocation{
					ArtifactLocation: sarifArtifact{URI: uri},
				},
			}},
			PartialFingerprints: map[string]string{
				"primaryLocationLineHash": fmt.Sprintf("%s:%s", ruleID, name),
			},
		})
	}

	for _, d := range summary.Mandatory() {
		if !d.Bundled {
			add(ruleMandatoryMissing, 0, fmt.Sprintf("Mandatory dependency %s is not included in the bundle", d.Name), d.Name)
		}
	}
	for _, d := range summary.Disallowed() {
		if d.Bundled {
			add(ruleDisallowedIncluded, 1, fmt.Sprintf("Disallowed dependency %s is included in the bundle", d.Name), d.Name)
		}
	}

	return results
}

package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ethanolivertroy/bundle-checker/internal/models"
	"github.com/ethanolivertroy/bundle-checker/internal/normalize"
)

// Option keys shared by config files and build hook options
const (
	KeyMandatory     = "mandatoryDependencies"
	KeyDisallowed    = "disallowedDependencies"
	KeyFailOnInvalid = "failOnInvalid"
	KeyStats         = "stats"
)

// Options is the decoded form of a raw option map
type Options struct {
	Validation models.ValidationConfig
	Stats      string
}

// DecodeOptions validates raw options and normalizes the dependency lists.
// Missing keys fall back to empty lists and failOnInvalid=false.
func DecodeOptions(raw map[string]any) (Options, error) {
	opts := Options{
		Validation: models.ValidationConfig{
			Mandatory:  models.DependencySet{},
			Disallowed: models.DependencySet{},
		},
	}

	var unknown []string
	for key := range raw {
		switch key {
		case KeyMandatory, KeyDisallowed, KeyFailOnInvalid, KeyStats:
		default:
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return Options{}, models.NewConfigError("unknown options: %s", strings.Join(unknown, ", "))
	}

	var err error
	if v, ok := raw[KeyMandatory]; ok {
		if opts.Validation.Mandatory, err = decodeNames("Mandatory", v); err != nil {
			return Options{}, err
		}
	}
	if v, ok := raw[KeyDisallowed]; ok {
		if opts.Validation.Disallowed, err = decodeNames("Disallowed", v); err != nil {
			return Options{}, err
		}
	}
	if v, ok := raw[KeyFailOnInvalid]; ok && v != nil {
		b, isBool := v.(bool)
		if !isBool {
			return Options{}, models.NewConfigError("%s should be a boolean, but is %s", KeyFailOnInvalid, typeName(v))
		}
		opts.Validation.FailOnInvalid = b
	}
	if v, ok := raw[KeyStats]; ok && v != nil {
		s, isString := v.(string)
		if !isString {
			return Options{}, models.NewConfigError("%s should be a string, but is %s", KeyStats, typeName(v))
		}
		opts.Stats = s
	}

	return opts, nil
}

// decodeNames accepts any list; entries that are not strings normalize to
// nothing and are dropped.
func decodeNames(kind string, v any) (models.DependencySet, error) {
	var raw []string
	switch list := v.(type) {
	case []string:
		raw = list
	case []any:
		for _, item := range list {
			if s, ok := item.(string); ok {
				raw = append(raw, s)
			}
		}
	default:
		return nil, models.NewConfigError("%s dependencies should be an array, but are %s", kind, typeName(v))
	}
	return normalize.Names(raw), nil
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int64, uint64, float64:
		return "number"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

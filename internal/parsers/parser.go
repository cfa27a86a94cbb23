package parsers

import "strings"

// Parser is the interface for compilation report parsers
type Parser interface {
	// CanParse returns true if this parser can handle the given filename
	CanParse(filename string) bool

	// Parse extracts raw module paths from the file content
	Parse(filepath string, content []byte) ([]string, error)
}

// GetAllParsers returns all available parsers
func GetAllParsers() []Parser {
	return []Parser{
		&WebpackStatsParser{},
		&ModuleListParser{},
	}
}

// ForFile returns the first parser that can handle filename, falling back to
// the webpack stats parser
func ForFile(filename string) Parser {
	lower := strings.ToLower(filename)
	for _, p := range GetAllParsers() {
		if p.CanParse(lower) {
			return p
		}
	}
	return &WebpackStatsParser{}
}

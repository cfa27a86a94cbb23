package parsers

import (
	"bufio"
	"bytes"
	"strings"
)

// ModuleListParser parses plain text files with one module path per line,
// as printed by bundlers that can only list their inputs
type ModuleListParser struct{}

// CanParse returns true for .txt files
func (p *ModuleListParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".txt")
}

// Parse returns every non-blank line that is not a # comment
func (p *ModuleListParser) Parse(filepath string, content []byte) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return names, nil
}

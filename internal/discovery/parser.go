package discovery

import (
	"fmt"
	"os"
	"regexp"

	"etd/internal/domain"
)

// Parser scans spec file source text for test declarations
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// Matches the declaration forms the runner understands:
//   test('title', ...)        test("title", ...)       test(`title`, ...)
//   test.skip('title', ...)   test.only('title', ...)  test.fixme('title', ...)
//   it('title', ...)          it.skip('title', ...)
// Describe blocks group tests and are not themselves runnable, so
// test.describe(...) is excluded by the negative modifier list.
var testDeclPattern = regexp.MustCompile("(?m)^\\s*(?:test|it)\\b(?:\\.(?:skip|only|fixme))?\\s*\\(\\s*(?:'((?:[^'\\\\]|\\\\.)*)'|\"((?:[^\"\\\\]|\\\\.)*)\"|`([^`]*)`)")

// FindTestCases finds all test declarations in a spec file, in source order.
// The returned index is the ordinal of the declaration within the file.
func (p *Parser) FindTestCases(filePath string) ([]domain.TestCase, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filePath, err)
	}

	matches := testDeclPattern.FindAllStringSubmatch(string(content), -1)

	var cases []domain.TestCase
	for i, m := range matches {
		title := m[1]
		if title == "" {
			title = m[2]
		}
		if title == "" {
			title = m[3]
		}
		if title == "" {
			continue
		}
		cases = append(cases, domain.TestCase{
			TestName: title,
			File:     filePath,
			Index:    i,
		})
	}

	return cases, nil
}

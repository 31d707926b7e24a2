// Package validation provides request-input validation for the screening API.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// Pre-compiled at package initialization and reused for all validations
var (
	// City codes are upper or lower case Latin letters and digits joined by
	// single hyphens, the shape used by the canonical city directory.
	cityCodeRegex = regexp.MustCompile(`^[A-Za-z0-9]+(-[A-Za-z0-9]+)*$`)

	// Dangerous substrings screened before any input reaches logs or the
	// upstream request line. strings.Contains is faster than regex here.
	dangerousPatterns = []string{
		"<script", "</script>", "javascript:", "onload=", "onerror=",
		"eval(", "expression(", "url(", "@import",
		"' or ", "\" or ", "union select", "drop table", "--", "/*", "*/",
		"; ", "| ", "& ", "`", "$(", "${",
		"../", "..\\", "%2e%2e", "file://",
	}
)

const maxCityCodeLength = 40

// ValidateCityCode checks the syntax of a city query parameter. Membership
// in the directory is not enforced: the upstream API owns coverage and may
// know cities the local directory does not.
func ValidateCityCode(input string) error {
	if input == "" {
		return fmt.Errorf("city code cannot be empty")
	}

	if len(input) > maxCityCodeLength {
		return fmt.Errorf("city code too long: %d characters", len(input))
	}

	lower := strings.ToLower(input)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(lower, pattern) {
			return fmt.Errorf("city code contains invalid sequence")
		}
	}

	if !cityCodeRegex.MatchString(input) {
		return fmt.Errorf("city code contains invalid characters")
	}

	return nil
}

// ValidateAssessmentID checks the syntax of an assessment id path parameter.
func ValidateAssessmentID(input string) error {
	if input == "" {
		return fmt.Errorf("assessment id cannot be empty")
	}

	if len(input) > 64 {
		return fmt.Errorf("assessment id too long: %d characters", len(input))
	}

	if !cityCodeRegex.MatchString(input) {
		return fmt.Errorf("assessment id contains invalid characters")
	}

	return nil
}

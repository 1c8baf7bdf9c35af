package utils

import (
	"math"
	"mime"
	"regexp"
	"strings"
)

var (
	// textContentTypePatterns is a slice of regular expressions that match content types
	// considered to be text-based. This includes "text/*", "application/json" and
	// "application/xhtml+xml".
	//nolint:gochecknoglobals // These are immutable, pre-compiled regex patterns and used as constants.
	textContentTypePatterns = []*regexp.Regexp{
		regexp.MustCompile("^text/.+"),
		regexp.MustCompile("^application/json$"),
		regexp.MustCompile(`^application/xhtml\+xml$`),
	}

	// horizontalSpacePattern matches runs of spaces and tabs.
	//nolint:gochecknoglobals // This is immutable, pre-compiled regex pattern and used as a constant.
	horizontalSpacePattern = regexp.MustCompile(`[ \t\x{00A0}]+`)
)

// SafeUint64ToInt64 converts a uint64 value to an int64 safely,
// ensuring that the value does not exceed the maximum limit of int64.
func SafeUint64ToInt64(val uint64) int64 {
	if val > math.MaxInt64 {
		return math.MaxInt64
	}

	return int64(val)
}

// IsTextContentType checks if the given content type represents a text-based format.
// It also checks that the charset, if present, is either "utf-8" or "us-ascii".
func IsTextContentType(contentType string) bool {
	parsedType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	for _, pattern := range textContentTypePatterns {
		if !pattern.MatchString(parsedType) {
			continue
		}

		charset := strings.ToLower(params["charset"])

		return charset == "" || charset == "utf-8" || charset == "us-ascii"
	}

	return false
}

// CollapseSpaces turns any run of whitespace, newlines included, into a single space.
func CollapseSpaces(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// NormalizeMultilineText trims every line, squeezes inner runs of spaces
// and keeps at most one blank line between paragraphs.
func NormalizeMultilineText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var (
		lines       = strings.Split(text, "\n")
		result      = make([]string, 0, len(lines))
		isLastBlank = true
	)

	for _, line := range lines {
		line = strings.TrimSpace(horizontalSpacePattern.ReplaceAllString(line, " "))
		if line == "" {
			if !isLastBlank {
				result = append(result, "")
			}

			isLastBlank = true

			continue
		}

		result = append(result, line)
		isLastBlank = false
	}

	return strings.TrimSpace(strings.Join(result, "\n"))
}

// ContainsAnyFold reports whether text contains any of the terms, ignoring case.
// Empty terms never match.
func ContainsAnyFold(text string, terms []string) bool {
	lowered := strings.ToLower(text)

	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term != "" && strings.Contains(lowered, term) {
			return true
		}
	}

	return false
}

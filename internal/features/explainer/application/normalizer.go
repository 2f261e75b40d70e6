package application

import (
	"regexp"
	"strings"
)

// Models sometimes wrap the JSON object in markdown fencing despite the
// instruction not to. The leading fence may carry a "json" tag in any case.
var (
	leadingFence  = regexp.MustCompile("(?is)^```(?:json)?\\s*")
	trailingFence = regexp.MustCompile("(?s)\\s*```$")
)

// StripFences removes a surrounding triple-backtick fence from content.
// Text that does not start with a fence passes through unchanged, which
// makes the transform idempotent.
func StripFences(content string) string {
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = leadingFence.ReplaceAllString(content, "")
	return trailingFence.ReplaceAllString(content, "")
}

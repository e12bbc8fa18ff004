package rules

import (
	"regexp"
	"strings"
)

var (
	headerPattern = regexp.MustCompile(`\A.*JSDoc.*\n\n`)
	footerPattern = regexp.MustCompile(`(?s)Documentation generated by \[JSDoc .*`)
)

// RemoveHeader drops the generator banner when it is the first paragraph.
func RemoveHeader(s string) string {
	return headerPattern.ReplaceAllLiteralString(s, "")
}

// RemoveFooter cuts the "generated by" credit and everything after it. The
// result is always trimmed, with or without a credit.
func RemoveFooter(s string) string {
	return strings.TrimSpace(footerPattern.ReplaceAllLiteralString(s, ""))
}

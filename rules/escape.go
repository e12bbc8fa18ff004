package rules

import "strings"

// ReplaceIndexFooter points the navigation "Home" link at the repository
// README and puts a rule above it.
func (s Settings) ReplaceIndexFooter(text string) string {
	return strings.ReplaceAll(text, "[Home](index.html", "<hr>[Home]("+s.BaseURL+"README.md")
}

// EscapeReturnBrackets keeps "→ {Type}" from being read as a template token.
func EscapeReturnBrackets(s string) string {
	return strings.ReplaceAll(s, "→ {", `→ \{`)
}

// EscapeOptionalTags keeps the <optional> marker of parameter tables visible.
func EscapeOptionalTags(s string) string {
	return strings.ReplaceAll(s, "<optional>", `\<optional>`)
}

// FixTableLineBreaks joins table rows the converter split across lines.
func FixTableLineBreaks(s string) string {
	return strings.ReplaceAll(s, " \n |", "|")
}

// EscapeAsteriskBullets stops "*   *" from opening emphasis inside a list item.
func EscapeAsteriskBullets(s string) string {
	return strings.ReplaceAll(s, "*   *", `*   \*`)
}

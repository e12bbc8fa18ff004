package rules

import (
	"regexp"
	"strings"
)

const codeBlockLanguage = "js"

var (
	indentPattern = regexp.MustCompile(`^(?: {4}|\t)`)
	fencePattern  = regexp.MustCompile("^(?:```|~~~)")
)

// FenceCodeBlocks wraps every run of indented lines in a fenced js block and
// strips one level of indentation from them. Fenced blocks already present
// in the text are copied through untouched.
func FenceCodeBlocks(s string) string {
	lines := strings.SplitAfter(s, "\n")
	var b strings.Builder
	b.Grow(len(s))

	inFence := false
	for i := 0; i < len(lines); {
		line := lines[i]
		if fencePattern.MatchString(line) {
			inFence = !inFence
		}
		if inFence || !indentPattern.MatchString(line) {
			b.WriteString(line)
			i++
			continue
		}

		b.WriteString("```" + codeBlockLanguage + "\n")
		for ; i < len(lines) && indentPattern.MatchString(lines[i]); i++ {
			b.WriteString(indentPattern.ReplaceAllString(lines[i], ""))
		}
		if !strings.HasSuffix(lines[i-1], "\n") {
			b.WriteString("\n")
		}
		b.WriteString("```")
		// A following blank line terminates the fence; anything else needs
		// its own line.
		if i < len(lines) && lines[i] != "" && !strings.HasPrefix(lines[i], "\n") {
			b.WriteString("\n")
		}
	}
	return b.String()
}

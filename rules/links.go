package rules

import (
	"regexp"
	"strings"
)

// TokenKind tells literal text apart from a delimiter match.
type TokenKind int

const (
	// Literal is text between matches, copied through unchanged.
	Literal TokenKind = iota
	// Match is text matched by the delimiter pattern.
	Match
)

// Token is a piece of text that either matched a delimiter pattern or sits
// between two matches.
type Token struct {
	Kind TokenKind
	Text string
}

// Tokenize splits s into alternating literal and match tokens. The sequence
// always starts and ends with a literal, either of which may be empty.
func Tokenize(pattern *regexp.Regexp, s string) []Token {
	var tokens []Token
	last := 0
	for _, loc := range pattern.FindAllStringIndex(s, -1) {
		tokens = append(tokens,
			Token{Kind: Literal, Text: s[last:loc[0]]},
			Token{Kind: Match, Text: s[loc[0]:loc[1]]},
		)
		last = loc[1]
	}
	return append(tokens, Token{Kind: Literal, Text: s[last:]})
}

// Reassemble joins tokens back together, passing every match through rewrite.
func Reassemble(tokens []Token, rewrite func(string) string) string {
	var b strings.Builder
	for _, t := range tokens {
		if t.Kind == Match {
			b.WriteString(rewrite(t.Text))
			continue
		}
		b.WriteString(t.Text)
	}
	return b.String()
}

var (
	sourceAnchorPattern = regexp.MustCompile(`[\w\d]*\.js\.html#line`)
	sourceFilePattern   = regexp.MustCompile(`[\w\d]*\.js\.html`)

	// ]( followed by any URL characters up to a .html page.
	moduleLinkPattern = regexp.MustCompile(`\]\([\w\d\-._~:/?#\[\]@!$&'()*\\+,;=` + "`" + `.]*\.html`)
)

// RewriteSourceURLs turns links into JSDoc's rendered source pages into links
// to the source files in the repository. JSDoc flattens paths with
// underscores and names line anchors "lineN"; GitHub wants slashes and "LN".
func (s Settings) RewriteSourceURLs(text string) string {
	text = Reassemble(Tokenize(sourceAnchorPattern, text), func(m string) string {
		m = strings.ReplaceAll(m, "_", "/")
		m = strings.ReplaceAll(m, "line", "L")
		return s.BaseURL + strings.ReplaceAll(m, ".js.html", ".js")
	})
	return Reassemble(Tokenize(sourceFilePattern, text), func(m string) string {
		m = strings.ReplaceAll(m, "_", "/")
		return s.BaseURL + strings.ReplaceAll(m, ".js.html", ".js")
	})
}

// RewriteModuleLinks points links between generated pages at the Markdown
// files the pipeline writes.
func (s Settings) RewriteModuleLinks(text string) string {
	return Reassemble(Tokenize(moduleLinkPattern, text), func(m string) string {
		return "](" + s.ModuleTarget(strings.TrimPrefix(m, "]("))
	})
}

// ModuleTarget maps the target of a generated-page link to its hosted
// Markdown file:
//
//	<top>.module_<name>.html -> <base><modules><name>/docs/API.md
//	<top>.html               -> <base>docs/global.md
//	<top>.<name>.html        -> <base><modules><name>/docs/global.md
//
// Anything that is neither a module page nor the top namespace page takes
// the last form.
func (s Settings) ModuleTarget(target string) string {
	modulePrefix := s.TopNamespace + ".module_"
	namespacePage := s.TopNamespace + ".html"

	switch {
	case strings.Contains(target, modulePrefix):
		name := strings.Replace(target, modulePrefix, "", 1)
		return s.BaseURL + s.ModulesPath + strings.ReplaceAll(name, ".html", "") + "/docs/API.md"
	case strings.Contains(target, namespacePage):
		return s.BaseURL + strings.Replace(target, namespacePage, "docs/global.md", 1)
	default:
		name := strings.Replace(target, s.TopNamespace+".", "", 1)
		return s.BaseURL + s.ModulesPath + strings.ReplaceAll(name, ".html", "") + "/docs/global.md"
	}
}

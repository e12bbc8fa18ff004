// Package rules holds the text rewrites that turn converted JSDoc pages into
// Markdown that reads well on GitHub. Every rule is a pure function and none
// of them fails: input that does not match is returned as is.
package rules

// Rule rewrites one formatting concern of a converted page.
type Rule func(string) string

// Settings are the repository constants some rules rewrite links against.
type Settings struct {
	BaseURL      string // e.g. "https://github.com/jpcx/deep-props/blob/master/"
	ModulesPath  string // e.g. "libs/"
	TopNamespace string // e.g. "deep-props"
}

type namedRule struct {
	name string
	rule Rule
}

// Chain applies the rules in a fixed order. Each rule sees the output of the
// one before it, so a single pass produces the final text.
type Chain struct {
	rules []namedRule
}

// NewChain builds the standard chain for the given settings.
func NewChain(s Settings) *Chain {
	return &Chain{rules: []namedRule{
		{"fence-code-blocks", FenceCodeBlocks},
		{"remove-header", RemoveHeader},
		{"remove-footer", RemoveFooter},
		{"rewrite-source-urls", s.RewriteSourceURLs},
		{"replace-index-footer", s.ReplaceIndexFooter},
		{"rewrite-module-links", s.RewriteModuleLinks},
		{"escape-return-brackets", EscapeReturnBrackets},
		{"escape-optional-tags", EscapeOptionalTags},
		{"fix-table-line-breaks", FixTableLineBreaks},
		{"escape-asterisk-bullets", EscapeAsteriskBullets},
	}}
}

// Names returns the rule names in application order.
func (c *Chain) Names() []string {
	names := make([]string, len(c.rules))
	for i, r := range c.rules {
		names[i] = r.name
	}
	return names
}

// Apply runs every rule over text.
func (c *Chain) Apply(text string) string {
	return c.Trace(text, nil)
}

// Trace is Apply with a callback invoked for each rule that changed the text.
func (c *Chain) Trace(text string, changed func(name string)) string {
	for _, r := range c.rules {
		next := r.rule(text)
		if changed != nil && next != text {
			changed(r.name)
		}
		text = next
	}
	return text
}

package rules

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testBaseURL = "https://github.com/jpcx/deep-props/blob/master/"

var testSettings = Settings{
	BaseURL:      testBaseURL,
	ModulesPath:  "libs/",
	TopNamespace: "deep-props",
}

func TestTokenize(t *testing.T) {
	got := Tokenize(regexp.MustCompile(`\d+`), "a1b22")
	assert.Equal(t, []Token{
		{Literal, "a"},
		{Match, "1"},
		{Literal, "b"},
		{Match, "22"},
		{Literal, ""},
	}, got)
}

func TestTokenize_NoMatch(t *testing.T) {
	got := Tokenize(regexp.MustCompile(`\d+`), "abc")
	assert.Equal(t, []Token{{Literal, "abc"}}, got)
}

func TestReassemble_KeepsLiterals(t *testing.T) {
	tokens := Tokenize(regexp.MustCompile(`x`), "axbxc")
	assert.Equal(t, "a[x]b[x]c", Reassemble(tokens, func(m string) string { return "[" + m + "]" }))
	assert.Equal(t, "axbxc", Reassemble(tokens, func(m string) string { return m }))
}

func TestRewriteSourceURLs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "line anchor",
			in:   "Foo_Bar.js.html#line42",
			want: testBaseURL + "Foo/Bar.js#L42",
		},
		{
			name: "line anchor in link",
			in:   "[line 7](libs_extract_index.js.html#line7)",
			want: "[line 7](" + testBaseURL + "libs/extract/index.js#L7)",
		},
		{
			name: "bare file",
			in:   "[index.js](libs_extract_index.js.html), next",
			want: "[index.js](" + testBaseURL + "libs/extract/index.js), next",
		},
		{
			name: "mixed",
			in:   "[a.js](a.js.html) [line 3](a.js.html#line3)",
			want: "[a.js](" + testBaseURL + "a.js) [line 3](" + testBaseURL + "a.js#L3)",
		},
		{
			name: "nothing to rewrite",
			in:   "see [docs](deep-props.html)",
			want: "see [docs](deep-props.html)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, testSettings.RewriteSourceURLs(tt.in))
		})
	}
}

func TestModuleTarget(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"module page", "deep-props.module_extract.html", testBaseURL + "libs/extract/docs/API.md"},
		{"top namespace page", "deep-props.html", testBaseURL + "docs/global.md"},
		{"other page", "deep-props.SomeOther.html", testBaseURL + "libs/SomeOther/docs/global.md"},
		{"untagged page", "module-extract.html", testBaseURL + "libs/module-extract/docs/global.md"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, testSettings.ModuleTarget(tt.target))
		})
	}
}

func TestRewriteModuleLinks(t *testing.T) {
	in := "* [extract](deep-props.module_extract.html)\n" +
		"* [deep-props](deep-props.html#.extract)\n" +
		"* [extract](deep-props.extract.html)\n" +
		"plain text (with parens)."
	want := "* [extract](" + testBaseURL + "libs/extract/docs/API.md)\n" +
		"* [deep-props](" + testBaseURL + "docs/global.md#.extract)\n" +
		"* [extract](" + testBaseURL + "libs/extract/docs/global.md)\n" +
		"plain text (with parens)."
	assert.Equal(t, want, testSettings.RewriteModuleLinks(in))
}

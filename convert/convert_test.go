package convert

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <title>JSDoc: Namespace: deep-props</title>
</head>
<body>
<div id="main">
    <h1 class="page-title">Namespace: deep-props</h1>
    <p>Returns <del>nothing</del> a list.</p>
    <table class="params">
        <thead><tr><th>Name</th><th>Type</th></tr></thead>
        <tbody><tr><td class="name"><code>host</code></td><td class="type">Object</td></tr></tbody>
    </table>
</div>
<nav><h2><a href="index.html">Home</a></h2></nav>
</body>
</html>`

func TestConvert(t *testing.T) {
	got, err := NewConverter().Convert(strings.NewReader(page))
	require.NoError(t, err)

	assert.Equal(t, "JSDoc: Namespace: deep-props", got.Title)

	md := string(got.Markdown)
	assert.Contains(t, md, "# Namespace: deep-props")
	assert.Contains(t, md, "~~nothing~~")
	assert.Contains(t, md, "[Home](index.html)")
	assert.Contains(t, md, "| Name")
	assert.Contains(t, md, "`host`")
}

func TestConvert_TitleFromDroppedHead(t *testing.T) {
	src := "<html><head><title>  JSDoc: Module: extract </title></head><body><h1>Module: extract</h1></body></html>"
	got, err := NewConverter().Convert(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, "JSDoc: Module: extract", got.Title)
	assert.NotContains(t, string(got.Markdown), "JSDoc")
}

func TestConvert_NoTitle(t *testing.T) {
	got, err := NewConverter().Convert(strings.NewReader("<p>text</p>"))
	require.NoError(t, err)

	assert.Empty(t, got.Title)
	assert.Equal(t, "text", strings.TrimSpace(string(got.Markdown)))
}

package convert

import (
	"fmt"
	"io"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/strikethrough"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/jpcx/jsdoc-markdown/pipeline/vo"
	"golang.org/x/net/html"
)

// Converter turns generated HTML pages into GitHub flavoured Markdown.
type Converter struct {
	conv *converter.Converter
}

func NewConverter() *Converter {
	return &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
				strikethrough.NewStrikethroughPlugin(),
			),
		),
	}
}

// Convert parses a whole HTML document and converts it to Markdown.
func (c *Converter) Convert(r io.Reader) (*vo.Page, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	// The base plugin drops <head> from doc while converting.
	title := extractTitle(doc)

	markdownBytes, err := c.conv.ConvertNode(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to convert HTML to markdown: %w", err)
	}

	return &vo.Page{
		Title:    title,
		Markdown: vo.Markdown(markdownBytes),
	}, nil
}

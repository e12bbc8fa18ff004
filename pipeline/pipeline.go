// Package pipeline reads the generated JSDoc pages, converts them to Markdown,
// rewrites them for GitHub and writes them into the repository.
package pipeline

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jpcx/jsdoc-markdown/config"
	"github.com/jpcx/jsdoc-markdown/convert"
	"github.com/jpcx/jsdoc-markdown/doctree"
	"github.com/jpcx/jsdoc-markdown/rules"
)

type Pipeline struct {
	cfg       config.Config
	converter *convert.Converter
	chain     *rules.Chain
	log       *slog.Logger
}

func New(cfg config.Config, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{
		cfg:       cfg,
		converter: convert.NewConverter(),
		chain:     rules.NewChain(cfg.Settings),
		log:       log,
	}
}

// Run loads, rewrites and writes every document. The first error aborts the
// run; files already written stay in place.
func (p *Pipeline) Run() error {
	if err := p.cfg.Validate(); err != nil {
		return err
	}
	tree, err := p.Load()
	if err != nil {
		return err
	}
	return p.Write(p.Transform(tree))
}

// Load reads and converts every source page into a tree keyed by document path.
func (p *Pipeline) Load() (*doctree.Tree, error) {
	tree := doctree.New()
	for _, doc := range p.cfg.Documents {
		src, err := os.ReadFile(p.cfg.Abs(doc.Source))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", doc.Path, err)
		}
		page, err := p.converter.Convert(bytes.NewReader(src))
		if err != nil {
			return nil, fmt.Errorf("failed to convert %s: %w", doc.Path, err)
		}
		p.log.Info("loaded document", "path", doc.Path, "source", doc.Source, "title", page.Title)
		tree.Set(doc.Path, string(page.Markdown))
	}
	return tree, nil
}

// Transform applies the rule chain to every leaf and returns the new tree.
func (p *Pipeline) Transform(tree *doctree.Tree) *doctree.Tree {
	return tree.Map(func(path, text string) string {
		return p.chain.Trace(text, func(rule string) {
			p.log.Debug("rule applied", "path", path, "rule", rule)
		})
	})
}

// Write stores each configured document, replacing existing files.
func (p *Pipeline) Write(tree *doctree.Tree) error {
	for _, doc := range p.cfg.Documents {
		text, ok := tree.Get(doc.Path)
		if !ok {
			return fmt.Errorf("document %s missing from tree", doc.Path)
		}
		dst := p.cfg.Abs(doc.Destination)
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", doc.Path, err)
		}
		if err := os.WriteFile(dst, []byte(text), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", doc.Path, err)
		}
		p.log.Info("wrote document", "path", doc.Path, "destination", doc.Destination, "bytes", len(text))
	}
	return nil
}

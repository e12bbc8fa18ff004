package config

import (
	"fmt"
	"path/filepath"

	"github.com/jpcx/jsdoc-markdown/pipeline/vo"
	"github.com/jpcx/jsdoc-markdown/rules"
)

type Config struct {
	// Root is the project checkout all document paths are relative to.
	Root string

	Settings  rules.Settings
	Documents []vo.Document
}

// Default returns the deep-props layout rooted at root.
func Default(root string) Config {
	return Config{
		Root: root,
		Settings: rules.Settings{
			BaseURL:      "https://github.com/jpcx/deep-props/blob/master/",
			ModulesPath:  "libs/",
			TopNamespace: "deep-props",
		},
		Documents: []vo.Document{
			{
				Path:        "global",
				Source:      "build/jsdoc/deep-props.html",
				Destination: "docs/global.md",
			},
			{
				Path:        "extract.API",
				Source:      "build/jsdoc/module-extract.html",
				Destination: "libs/extract/docs/API.md",
			},
			{
				Path:        "extract.global",
				Source:      "build/jsdoc/deep-props.extract.html",
				Destination: "libs/extract/docs/global.md",
			},
		},
	}
}

func (c Config) Validate() error {
	if c.Root == "" {
		return fmt.Errorf("root directory is required")
	}
	seen := map[string]bool{}
	for _, doc := range c.Documents {
		if doc.Path == "" || doc.Source == "" || doc.Destination == "" {
			return fmt.Errorf("document %q is incomplete", doc.Path)
		}
		if seen[doc.Path] {
			return fmt.Errorf("document %q is listed twice", doc.Path)
		}
		seen[doc.Path] = true
	}
	return nil
}

// Abs resolves a document path against the root.
func (c Config) Abs(rel string) string {
	return filepath.Join(c.Root, filepath.FromSlash(rel))
}

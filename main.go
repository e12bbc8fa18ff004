package main

import (
	"log/slog"
	"os"

	"github.com/jpcx/jsdoc-markdown/config"
	"github.com/jpcx/jsdoc-markdown/pipeline"
	"github.com/spf13/cobra"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := newRootCmd(log).Execute(); err != nil {
		log.Error("build failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd(log *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:           "jsdoc-markdown",
		Short:         "Convert the JSDoc HTML pages into the repository's Markdown docs",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			return pipeline.New(config.Default(wd), log).Run()
		},
	}
}

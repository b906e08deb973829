// Package cli implements the fauxdoc command-line interface.
package cli

import (
	"log/slog"
	mathrand "math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/fauxdoc/fauxdoc/pkg/fake"
	"github.com/fauxdoc/fauxdoc/pkg/logging"
	"github.com/fauxdoc/fauxdoc/pkg/renderer"
)

var (
	logLevel string
	seed     int64
)

var rootCmd = &cobra.Command{
	Use:   "fauxdoc",
	Short: "Render document templates with synthetic values",
	Long: `fauxdoc renders text templates (typically JSON skeletons) into
concrete documents by substituting {{generator(args)}} placeholders
with synthetic values: timestamps, hashes, random selections, and
fake data.

Examples:
  # Render a template file
  fauxdoc render event.json.tmpl

  # Render from stdin, five documents
  cat event.json.tmpl | fauxdoc render --count 5

  # List available generators
  fauxdoc generators`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "seed for deterministic output (0 = random)")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(generatorsCmd)
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

// newLogger builds the CLI logger from the --log-level flag.
func newLogger() *slog.Logger {
	return logging.New(logging.Config{Level: logging.ParseLevel(logLevel)})
}

// newRenderer builds a renderer honoring the --seed flag.
func newRenderer(log *slog.Logger) *renderer.DocumentRenderer {
	opts := []renderer.Option{renderer.WithLogger(log)}
	if seed != 0 {
		opts = append(opts,
			renderer.WithRand(mathrand.New(mathrand.NewPCG(uint64(seed), 0))),
			renderer.WithProvider(fake.NewSeededProvider(seed)),
		)
	}
	return renderer.New(opts...)
}

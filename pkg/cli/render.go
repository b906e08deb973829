package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	renderCount  int
	renderOutput string
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a template into one or more documents",
	Long: `Render a template into one or more documents.

The template is read from the given file, or from stdin when no file is
given. Each rendered document is written on its own line; --count
renders the template multiple times with independent values.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()

		template, err := readTemplate(args)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if renderOutput != "" {
			f, err := os.Create(renderOutput)
			if err != nil {
				return fmt.Errorf("create output file: %w", err)
			}
			defer f.Close()
			out = f
		}

		r := newRenderer(log)
		for i := 0; i < renderCount; i++ {
			document, err := r.Render(template)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(out, document); err != nil {
				return fmt.Errorf("write document: %w", err)
			}
		}

		log.Debug("render complete", "documents", renderCount)
		return nil
	},
}

func init() {
	renderCmd.Flags().IntVarP(&renderCount, "count", "c", 1, "number of documents to render")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "write documents to a file instead of stdout")
}

// readTemplate loads the template from the file argument or stdin.
func readTemplate(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read template: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read template from stdin: %w", err)
	}
	return string(data), nil
}

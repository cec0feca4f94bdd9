package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

const (
	docsFormatMarkdown = "markdown"
	docsFormatMan      = "man"
)

func NewGenDocsCommand() *cobra.Command {
	var (
		outDir string
		format string
	)

	cmd := &cobra.Command{
		Use:   "gendocs",
		Short: "Generate CLI reference pages",
		Long: `Generate reference pages for every emtaxi command, as Markdown
(default, into ./docs/cli) or as man pages (--format man).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := filepath.Abs(outDir)
			if err != nil {
				return fmt.Errorf("resolve %q: %w", outDir, err)
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create %q: %w", dir, err)
			}

			root := cmd.Root()
			root.DisableAutoGenTag = true

			switch format {
			case docsFormatMarkdown:
				err = doc.GenMarkdownTree(root, dir)
			case docsFormatMan:
				err = doc.GenManTree(root, &doc.GenManHeader{Title: "EMTAXI", Section: "1"}, dir)
			default:
				return fmt.Errorf("unknown format %q (want %s or %s)", format, docsFormatMarkdown, docsFormatMan)
			}
			if err != nil {
				return fmt.Errorf("generate %s docs: %w", format, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s docs written to %s\n", format, dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "outdir", "docs/cli", "output directory")
	cmd.Flags().StringVar(&format, "format", docsFormatMarkdown, "markdown or man")

	return cmd
}

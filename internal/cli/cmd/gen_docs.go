package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/chartdeck/internal/chart"
	xdgadapter "github.com/bnema/chartdeck/internal/infrastructure/xdg"
)

const dirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate man pages or markdown for the CLI and deck format",
	Long: `Generate documentation from the command definitions, plus a page
describing deck files: chart types and data source schemes.

Formats:
  man       groff pages, installed to ~/.local/share/man/man1 by default
  markdown  one .md file per command, written to ./docs by default

Set SOURCE_DATE_EPOCH to pin the date in generated man pages.`,
	Example: `  chartdeck gen-docs
  chartdeck gen-docs --format markdown --output ./site/cli`,
	Args: cobra.NoArgs,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "Output directory for generated docs")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "Output format: man, markdown")
}

func runGenDocs(cmd *cobra.Command, _ []string) error {
	outputDir, err := docsOutputDir(genDocsFormat, genDocsOutputDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	rootCmd.DisableAutoGenTag = true

	var ext string
	switch genDocsFormat {
	case "man":
		ext = ".1"
		err = doc.GenManTree(rootCmd, manHeader(), outputDir)
	case "markdown":
		ext = ".md"
		err = doc.GenMarkdownTree(rootCmd, outputDir)
		if err == nil {
			err = os.WriteFile(filepath.Join(outputDir, "chartdeck_decks.md"), []byte(deckReference()), 0o644)
		}
	}
	if err != nil {
		return fmt.Errorf("generate %s docs: %w", genDocsFormat, err)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Wrote %s docs to %s\n", genDocsFormat, outputDir)
	listGenerated(out, outputDir, ext)
	if genDocsFormat == "man" && genDocsOutputDir == "" {
		_, _ = fmt.Fprintln(out, "Run 'mandb' if 'man chartdeck' is not found.")
	}
	return nil
}

func docsOutputDir(format, dir string) (string, error) {
	switch format {
	case "man":
		if dir != "" {
			return dir, nil
		}
		manDir, err := xdgadapter.New().ManDir()
		if err != nil {
			return "", fmt.Errorf("resolve man directory: %w", err)
		}
		return manDir, nil
	case "markdown":
		if dir != "" {
			return dir, nil
		}
		return "docs", nil
	default:
		return "", fmt.Errorf("unsupported format %q (use: man, markdown)", format)
	}
}

func manHeader() *doc.GenManHeader {
	date := time.Now()
	if epoch, err := strconv.ParseInt(os.Getenv("SOURCE_DATE_EPOCH"), 10, 64); err == nil {
		date = time.Unix(epoch, 0).UTC()
	}
	return &doc.GenManHeader{
		Title:   "CHARTDECK",
		Section: "1",
		Source:  "chartdeck " + buildInfo.Version,
		Manual:  "chartdeck Manual",
		Date:    &date,
	}
}

func listGenerated(w io.Writer, dir, ext string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ext {
			_, _ = fmt.Fprintf(w, "  - %s\n", e.Name())
		}
	}
}

// deckReference renders the markdown page for deck files.
func deckReference() string {
	var b strings.Builder
	b.WriteString("## chartdeck decks\n\n")
	b.WriteString("A deck is a YAML file with a `title` and a list of `panels`. ")
	b.WriteString("Each panel has a `label` and `slots`; each slot has `type`, `title`, `source`, `params` and `options`.\n\n")

	b.WriteString("### Chart types\n\n")
	tags := chart.DefaultRegistry().Tags()
	slices.Sort(tags)
	for _, tag := range tags {
		fmt.Fprintf(&b, "- `%s`\n", tag)
	}
	b.WriteString("\nUnknown or empty types are drawn as `line`.\n\n")

	b.WriteString("### Data sources\n\n")
	b.WriteString("| Source | Params |\n|---|---|\n")
	b.WriteString("| `path.csv`, `file:`, `http(s)://` | `date`, `value`, `category`, `layout` |\n")
	b.WriteString("| `sqlite:path.db` | `table`, `date`, `value`, `category`, `layout` |\n")
	b.WriteString("| `wave:` | `n`, `period`, `amp`, `base`, `noise`, `seed`, `start`, `step` |\n")
	b.WriteString("| `expr:` | `y`, `n`, `seed`, `start`, `step`, `category` |\n")
	b.WriteString("\nRelative paths resolve against the deck's directory unless `data.base_dir` is set.\n")
	return b.String()
}

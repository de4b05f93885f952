package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/chartdeck/internal/convert"
	"github.com/bnema/chartdeck/internal/logging"
)

var (
	convertRecord string
	convertFields []string
	convertSQLite string
	convertTable  string
)

var convertCmd = &cobra.Command{
	Use:   "convert <input.rdf> [output.csv]",
	Short: "Convert an RDF/XML export into a deck data source",
	Long: `Extract one row per record element from an RDF/XML document.

The record namespace is detected from the first record, so exports from
different publishers work unchanged. Output is CSV (stdout when no output
file is given) or, with --sqlite, a table in a SQLite database that decks
can read through a sqlite: source.

The defaults match the Bologna bike counter export.

Examples:
  chartdeck convert counts.rdf counts.csv
  chartdeck convert counts.rdf --sqlite counts.db --table counts
  chartdeck convert data.rdf --record item --fields name,value,date`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVar(&convertRecord, "record", convert.DefaultRecord, "record element name")
	convertCmd.Flags().StringSliceVar(&convertFields, "fields", convert.DefaultFields(), "fields to extract, in column order")
	convertCmd.Flags().StringVar(&convertSQLite, "sqlite", "", "write to this SQLite database instead of CSV")
	convertCmd.Flags().StringVar(&convertTable, "table", "counts", "table name for --sqlite")
}

func runConvert(cmd *cobra.Command, args []string) (err error) {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()

	in, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = in.Close() }()

	table, err := convert.Decode(ctx, in, convert.Options{Record: convertRecord, Fields: convertFields})
	if err != nil {
		return fmt.Errorf("decode %s: %w", args[0], err)
	}
	logging.FromContext(ctx).Debug().
		Str("namespace", table.Namespace).
		Int("records", len(table.Rows)).
		Msg("rdf decoded")

	switch {
	case convertSQLite != "":
		if err := table.WriteSQLite(ctx, convertSQLite, convertTable); err != nil {
			return fmt.Errorf("write sqlite: %w", err)
		}
	case len(args) == 2:
		f, createErr := os.Create(args[1])
		if createErr != nil {
			return fmt.Errorf("create output: %w", createErr)
		}
		defer func() {
			if closeErr := f.Close(); err == nil && closeErr != nil {
				err = closeErr
			}
		}()
		if err := table.WriteCSV(f); err != nil {
			return err
		}
	default:
		return table.WriteCSV(cmd.OutOrStdout())
	}

	report(cmd.ErrOrStderr(), len(table.Rows), table.Namespace)
	return nil
}

func report(w io.Writer, n int, namespace string) {
	theme := GetApp().Theme
	fmt.Fprintf(w, "%s converted %d records %s\n", theme.CheckMark(true), n, theme.Subtle.Render("("+namespace+")"))
}

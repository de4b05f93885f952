package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/chartdeck/internal/chart"
	"github.com/bnema/chartdeck/internal/cli/styles"
	"github.com/bnema/chartdeck/internal/domain/entity"
	"github.com/bnema/chartdeck/internal/infrastructure/datasource"
)

const probeConcurrency = 4

var errDeckInvalid = errors.New("deck has problems")

var (
	validateProbe   bool
	validateTimeout time.Duration
)

var validateCmd = &cobra.Command{
	Use:   "validate <deck.yaml>",
	Short: "Check a deck file and its data sources",
	Long: `Parse a deck and report its slides and charts.

Every chart type and data-source scheme is checked. With --probe every
distinct source is also loaded, a few at a time, and its row count shown.

Examples:
  chartdeck validate examples/bikes.yaml
  chartdeck validate --probe examples/bikes.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().BoolVarP(&validateProbe, "probe", "p", false, "load every data source")
	validateCmd.Flags().DurationVar(&validateTimeout, "timeout", 30*time.Second, "probe timeout")
}

// probeResult is the outcome of loading one source.
type probeResult struct {
	rows int
	err  error
}

func runValidate(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	theme := app.Theme
	out := cmd.OutOrStdout()

	deck, err := app.LoadDeck(args[0])
	if err != nil {
		fmt.Fprintf(out, "%s %s\n", theme.CheckMark(false), err)
		return errDeckInvalid
	}

	sources, pool := app.Sources(deck)
	defer func() { _ = pool.Close() }()

	var probes map[string]probeResult
	if validateProbe {
		ctx, cancel := context.WithTimeout(app.Ctx(), validateTimeout)
		probes = probeSources(ctx, sources, deckRefs(deck))
		cancel()
	}

	registry := chart.DefaultRegistry()
	table := styles.NewReportTable(theme, "SLIDE", "SLOT", "TYPE", "SOURCE", "STATUS")
	problems := 0
	for _, p := range deck.Panels {
		for _, s := range p.Slots {
			ref, status, ok := slotStatus(registry, sources, probes, s)
			if !ok {
				problems++
			}
			table.Row(p.DisplayLabel(), string(s.ID), string(s.Type), ref, theme.CheckMark(ok)+" "+status)
		}
	}

	title := deck.Title
	if title == "" {
		title = deck.Path
	}
	fmt.Fprintln(out, theme.Title.Render(styles.IconChart+" "+title))
	fmt.Fprintln(out, table.Render())
	fmt.Fprintln(out, theme.Subtle.Render(fmt.Sprintf("%d slides, %d charts, %d sources",
		len(deck.Panels), deck.SlotCount(), len(deck.Sources()))))

	if problems > 0 {
		fmt.Fprintf(out, "%s %d problem(s)\n", theme.CheckMark(false), problems)
		return errDeckInvalid
	}
	fmt.Fprintf(out, "%s deck is valid\n", theme.CheckMark(true))
	return nil
}

// deckRefs lists every source the deck will load, defaults included.
func deckRefs(deck *entity.Deck) []entity.DataSourceRef {
	seen := make(map[string]bool)
	var refs []entity.DataSourceRef
	for _, p := range deck.Panels {
		for _, s := range p.Slots {
			ref := effectiveSource(s)
			if seen[ref.Key()] {
				continue
			}
			seen[ref.Key()] = true
			refs = append(refs, ref)
		}
	}
	return refs
}

func effectiveSource(s entity.Slot) entity.DataSourceRef {
	if s.Source.IsZero() {
		return chart.DefaultSource(s.Type)
	}
	return s.Source
}

// probeSources loads refs concurrently. A failing source does not stop
// the others.
func probeSources(ctx context.Context, sources *datasource.Resolver, refs []entity.DataSourceRef) map[string]probeResult {
	results := make([]probeResult, len(refs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(probeConcurrency)
	for i, ref := range refs {
		g.Go(func() error {
			rows, err := sources.Load(gctx, ref)
			results[i] = probeResult{rows: len(rows), err: err}
			return nil
		})
	}
	_ = g.Wait()

	byKey := make(map[string]probeResult, len(refs))
	for i, ref := range refs {
		byKey[ref.Key()] = results[i]
	}
	return byKey
}

func slotStatus(registry *chart.Registry, sources *datasource.Resolver, probes map[string]probeResult, s entity.Slot) (source, status string, ok bool) {
	ref := effectiveSource(s)
	source = ref.URI
	if s.Source.IsZero() {
		source = "(default) " + ref.URI
	}

	if err := sources.Check(ref); err != nil {
		return source, err.Error(), false
	}
	note := "ok"
	if s.Type != "" && !registry.Known(s.Type) {
		// Unknown types fall back to the default chart.
		note = fmt.Sprintf("unknown type %q, drawn as line", s.Type)
	}
	if probes == nil {
		return source, note, true
	}
	res, found := probes[ref.Key()]
	switch {
	case !found:
		return source, "not probed", true
	case res.err != nil:
		return source, res.err.Error(), false
	case note != "ok":
		return source, fmt.Sprintf("%s, %d rows", note, res.rows), true
	default:
		return source, fmt.Sprintf("%d rows", res.rows), true
	}
}

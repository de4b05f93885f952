package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/chartdeck/internal/cli/model"
	"github.com/bnema/chartdeck/internal/logging"
	"github.com/bnema/chartdeck/internal/ui/mainloop"
)

const (
	defaultRenderWidth  = 100
	defaultRenderHeight = 30
)

var (
	renderSlide   int
	renderAll     bool
	renderWidth   int
	renderHeight  int
	renderTimeout time.Duration
)

var renderCmd = &cobra.Command{
	Use:   "render <deck.yaml>",
	Short: "Print a slide without the interactive viewer",
	Long: `Render one slide (or every slide) to stdout.

The slide goes through the same pipeline as the viewer: navigating to it
mounts its charts and disposes the ones that fall out of the window.
Without --all the full viewer frame is printed; with --all each slide's
charts are printed in order under a heading.

Size defaults to the terminal, or 100x30 when stdout is not a terminal.

Examples:
  chartdeck render examples/bikes.yaml --slide 2
  chartdeck render examples/bikes.yaml --all --width 80 > deck.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().IntVarP(&renderSlide, "slide", "s", 1, "slide to render (1-based)")
	renderCmd.Flags().BoolVarP(&renderAll, "all", "a", false, "render every slide")
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "output width in columns")
	renderCmd.Flags().IntVar(&renderHeight, "height", 0, "output height in rows")
	renderCmd.Flags().DurationVar(&renderTimeout, "timeout", time.Minute, "give up waiting for data after this long")
}

func runRender(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	deck, err := app.LoadDeck(args[0])
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(app.Ctx(), renderTimeout)
	defer cancel()
	log := logging.FromContext(ctx)

	width, height := renderWidth, renderHeight
	if tw, th, ok := terminalSize(os.Stdout); ok {
		if width <= 0 {
			width = tw
		}
		if height <= 0 {
			height = th
		}
	}
	if width <= 0 {
		width = defaultRenderWidth
	}
	if height <= 0 {
		height = defaultRenderHeight
	}

	out := cmd.OutOrStdout()
	queue := mainloop.NewQueue(ctx)
	sources, pool := app.Sources(deck)
	defer func() {
		if closeErr := pool.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("close sqlite sources")
		}
	}()

	opts := app.DeckOptions(queue, sources, app.Toolkit(queue, out), width, height)
	opts.Hits = model.NewPlainHitTester()
	opts.Mouse = false
	// A static frame must show the target slide, not the start of a slide.
	opts.Transition = 0

	m, err := model.NewDeckModel(ctx, deck, opts)
	if err != nil {
		return err
	}
	defer m.Close()

	show := func(i int) error {
		m.GoTo(i)
		if err := queue.RunUntilIdle(ctx); err != nil {
			return fmt.Errorf("render slide %d: %w", i+1, err)
		}
		return nil
	}

	if !renderAll {
		if renderSlide < 1 || renderSlide > len(deck.Panels) {
			return fmt.Errorf("slide %d out of range (deck has %d)", renderSlide, len(deck.Panels))
		}
		if err := show(renderSlide - 1); err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, m.View())
		return err
	}

	for i, p := range deck.Panels {
		if err := show(i); err != nil {
			return err
		}
		heading := app.Theme.Title.Render(fmt.Sprintf("── %s (%d/%d)", p.DisplayLabel(), i+1, len(deck.Panels)))
		if _, err := fmt.Fprintf(out, "%s\n%s\n\n", heading, m.SlideView(i)); err != nil {
			return err
		}
	}
	return nil
}

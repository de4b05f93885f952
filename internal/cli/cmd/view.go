package cmd

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/bnema/chartdeck/internal/cli/model"
	"github.com/bnema/chartdeck/internal/infrastructure/config"
	"github.com/bnema/chartdeck/internal/logging"
	"github.com/bnema/chartdeck/internal/ui/mainloop"
)

var errNotATerminal = errors.New("view needs an interactive terminal; use 'chartdeck render' instead")

var (
	viewNoMouse bool
	viewRadius  int
	viewNoWatch bool
)

var viewCmd = &cobra.Command{
	Use:   "view <deck.yaml>",
	Short: "Open a deck in the interactive viewer",
	Long: `Open a deck in the full-screen viewer.

Page with ←/→ (or h/l), jump with 1-9, or drag the slides with the mouse.
Charts are drawn for the visible slide and its neighbours only; the
window size is set by carousel.window_radius.

Edits to the config file apply while the viewer runs (colors and
animation; window radius and mouse capture need a restart).

Examples:
  chartdeck view examples/bikes.yaml
  chartdeck view --radius 0 big-deck.yaml   # draw only the visible slide`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.Flags().BoolVar(&viewNoMouse, "no-mouse", false, "disable mouse capture")
	viewCmd.Flags().IntVar(&viewRadius, "radius", -1, "override carousel.window_radius")
	viewCmd.Flags().BoolVar(&viewNoWatch, "no-watch", false, "do not reload the config file on change")
}

func runView(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return errNotATerminal
	}

	deck, err := app.LoadDeck(args[0])
	if err != nil {
		return err
	}

	ctx := app.Ctx()
	log := logging.FromContext(ctx)

	queue := mainloop.NewQueue(ctx)
	sources, pool := app.Sources(deck)
	defer func() {
		if closeErr := pool.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("close sqlite sources")
		}
	}()

	width, height, _ := terminalSize(os.Stdout)
	opts := app.DeckOptions(queue, sources, app.Toolkit(queue, os.Stdout), width, height)
	if viewNoMouse {
		opts.Mouse = false
	}
	if viewRadius >= 0 {
		opts.Radius = viewRadius
	}

	m, err := model.NewDeckModel(ctx, deck, opts)
	if err != nil {
		return err
	}
	defer m.Close()

	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if opts.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(m, progOpts...)

	if app.Manager != nil && !viewNoWatch {
		app.Manager.OnConfigChange(func(cfg *config.Config) {
			p.Send(model.ConfigMsg{Config: cfg})
		})
		if err := app.Manager.Watch(); err != nil {
			log.Warn().Err(err).Msg("config watch unavailable")
		}
	}

	log.Info().
		Str("deck", deck.Path).
		Int("panels", len(deck.Panels)).
		Int("radius", opts.Radius).
		Msg("viewer started")

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}

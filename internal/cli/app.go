// Package cli wires configuration, logging and the chart pipeline for the
// chartdeck commands.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/bnema/chartdeck/internal/chart"
	"github.com/bnema/chartdeck/internal/cli/model"
	"github.com/bnema/chartdeck/internal/cli/styles"
	"github.com/bnema/chartdeck/internal/domain/build"
	"github.com/bnema/chartdeck/internal/domain/entity"
	"github.com/bnema/chartdeck/internal/infrastructure/config"
	"github.com/bnema/chartdeck/internal/infrastructure/datasource"
	"github.com/bnema/chartdeck/internal/infrastructure/deckfile"
	"github.com/bnema/chartdeck/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/chartdeck/internal/logging"
	"github.com/bnema/chartdeck/internal/ui/mainloop"
)

// AppOptions controls NewApp.
type AppOptions struct {
	// ConfigDir overrides the XDG config directory.
	ConfigDir string
	// LogToStderr mirrors logs to stderr. The viewer owns the terminal and
	// leaves it off.
	LogToStderr bool
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// Context with logger
	ctx        context.Context
	cancel     context.CancelFunc
	logCleanup func()
}

// NewApp loads config and sets up logging. A broken config file falls back
// to defaults so every command still runs; the error is logged.
func NewApp(opts AppOptions) (*App, error) {
	var mgrOpts []config.ManagerOption
	if opts.ConfigDir != "" {
		mgrOpts = append(mgrOpts, config.WithConfigDir(opts.ConfigDir))
	}

	cfg := config.DefaultConfig()
	mgr, mgrErr := config.NewManager(mgrOpts...)
	if mgrErr == nil {
		if mgrErr = mgr.Load(); mgrErr == nil {
			cfg = mgr.Get()
		}
	}

	logDir := cfg.Logging.LogDir
	if logDir == "" {
		logDir, _ = config.GetLogDir()
	}
	logger, logCleanup, logErr := logging.NewWithFile(
		logging.Config{Level: logging.ParseLevel(cfg.Logging.Level), Format: cfg.Logging.Format, TimeFormat: "15:04:05"},
		logging.FileConfig{
			Enabled:       cfg.Logging.EnableFileLog && logDir != "",
			LogDir:        logDir,
			MaxSizeMB:     cfg.Logging.MaxSizeMB,
			MaxBackups:    cfg.Logging.MaxBackups,
			MaxAgeDays:    cfg.Logging.MaxAgeDays,
			Compress:      cfg.Logging.Compress,
			WriteToStderr: opts.LogToStderr,
		},
	)
	if logErr != nil {
		// Fall back to stderr-only (or silent) logging.
		logger, logCleanup, _ = logging.NewWithFile(
			logging.Config{Level: logging.ParseLevel(cfg.Logging.Level), Format: cfg.Logging.Format, TimeFormat: "15:04:05"},
			logging.FileConfig{WriteToStderr: opts.LogToStderr},
		)
		logger.Warn().Err(logErr).Str("log_dir", logDir).Msg("file logging disabled")
	}
	if mgrErr != nil {
		logger.Warn().Err(mgrErr).Msg("config not loaded, using defaults")
		mgr = nil
	}

	ctx, cancel := context.WithCancel(logging.WithContext(context.Background(), logger))

	return &App{
		Config:     cfg,
		Manager:    mgr,
		Theme:      styles.NewTheme(cfg),
		ctx:        ctx,
		cancel:     cancel,
		logCleanup: logCleanup,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.cancel != nil {
		a.cancel()
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// LoadDeck reads a deck file.
func (a *App) LoadDeck(path string) (*entity.Deck, error) {
	deck, err := deckfile.Load(path)
	if err != nil {
		return nil, err
	}
	logging.FromContext(a.ctx).Debug().
		Str("deck", deck.Path).
		Int("panels", len(deck.Panels)).
		Int("slots", deck.SlotCount()).
		Msg("deck loaded")
	return deck, nil
}

// Sources builds the data-source resolver for deck. Relative sources
// resolve against the deck directory unless data.base_dir is set.
func (a *App) Sources(deck *entity.Deck) (*datasource.Resolver, *sqlite.Pool) {
	base := a.Config.Data.BaseDir
	if base == "" {
		base = deckfile.Dir(deck)
	}
	return datasource.NewDefault(a.ctx, datasource.Options{
		BaseDir:     base,
		HTTPTimeout: time.Duration(a.Config.Data.HTTPTimeoutSeconds) * time.Second,
		CacheSize:   a.Config.Data.CacheSize,
	})
}

// Palette converts the configured palette for the chart toolkit.
func (a *App) Palette() chart.Palette {
	p := a.Config.Appearance.Palette
	return chart.Palette{
		Series: append([]string(nil), p.Series...),
		Axis:   p.Axis,
		Muted:  p.Muted,
		Error:  p.Error,
	}
}

// Toolkit returns the shared chart toolkit, probed on first use against out.
func (a *App) Toolkit(queue *mainloop.Queue, out io.Writer) *mainloop.Lazy[*chart.Toolkit] {
	probe := chart.ProbeConfig{
		Output:  out,
		Palette: a.Palette(),
		Profile: a.Config.Appearance.ColorProfile,
		Timeout: time.Duration(a.Config.Toolkit.ProbeTimeoutMs) * time.Millisecond,
	}
	ctx := logging.WithComponent(a.ctx, "toolkit")
	return mainloop.NewLazy(queue, func() (*chart.Toolkit, error) {
		return chart.Probe(ctx, probe)
	})
}

// DeckOptions fills model options from config.
func (a *App) DeckOptions(queue *mainloop.Queue, sources *datasource.Resolver, toolkit chart.ToolkitSource, width, height int) model.DeckOptions {
	c := a.Config.Carousel
	return model.DeckOptions{
		Theme:          a.Theme,
		Registry:       chart.DefaultRegistry(),
		Sources:        sources,
		Toolkit:        toolkit,
		Queue:          queue,
		Radius:         c.WindowRadius,
		SwipeThreshold: c.SwipeThreshold,
		Transition:     time.Duration(c.TransitionMs) * time.Millisecond,
		Easing:         c.Easing,
		CoalesceResize: c.CoalesceResize,
		Mouse:          c.Mouse,
		Width:          width,
		Height:         height,
	}
}

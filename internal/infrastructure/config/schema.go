package config

// Config represents the complete configuration for chartdeck.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging" toml:"logging"`
	Carousel   CarouselConfig   `mapstructure:"carousel" yaml:"carousel" toml:"carousel"`
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" toml:"appearance"`
	Data       DataConfig       `mapstructure:"data" yaml:"data" toml:"data"`
	// Toolkit controls detection of the shared chart drawing toolkit.
	Toolkit ToolkitConfig `mapstructure:"toolkit" yaml:"toolkit" toml:"toolkit"`
}

// LoggingConfig controls log level, format and the session log files.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" jsonschema:"enum=console,enum=json"`
	// LogDir defaults to $XDG_STATE_HOME/chartdeck/logs.
	LogDir string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir"`
	// EnableFileLog writes interactive sessions to a rotated file, since the
	// terminal belongs to the UI.
	EnableFileLog bool `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log"`
	MaxSizeMB     int  `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb"`
	MaxBackups    int  `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups"`
	MaxAgeDays    int  `mapstructure:"max_age_days" yaml:"max_age_days" toml:"max_age_days"`
	Compress      bool `mapstructure:"compress" yaml:"compress" toml:"compress"`
}

// Easing names a track transition curve.
type Easing string

const (
	EasingLinear    Easing = "linear"
	EasingOutQuad   Easing = "out-quad"
	EasingOutCubic  Easing = "out-cubic"
	EasingInOutQuad Easing = "in-out-quad"
	EasingInOutSine Easing = "in-out-sine"
)

// Easings lists the supported transition curves.
func Easings() []Easing {
	return []Easing{EasingLinear, EasingOutQuad, EasingOutCubic, EasingInOutQuad, EasingInOutSine}
}

// CarouselConfig tunes navigation and the resource window.
type CarouselConfig struct {
	// WindowRadius is how many panels on each side of the current one keep
	// their charts mounted.
	WindowRadius int `mapstructure:"window_radius" yaml:"window_radius" toml:"window_radius" jsonschema:"minimum=0"`
	// SwipeThreshold is the fraction of the viewport width a drag must
	// exceed to change panels.
	SwipeThreshold float64 `mapstructure:"swipe_threshold" yaml:"swipe_threshold" toml:"swipe_threshold" jsonschema:"exclusiveMinimum=0,exclusiveMaximum=1"`
	// TransitionMs is the track animation length; 0 disables it.
	TransitionMs int    `mapstructure:"transition_ms" yaml:"transition_ms" toml:"transition_ms" jsonschema:"minimum=0"`
	Easing       Easing `mapstructure:"easing" yaml:"easing" toml:"easing" jsonschema:"enum=linear,enum=out-quad,enum=out-cubic,enum=in-out-quad,enum=in-out-sine"`
	// CoalesceResize collapses bursts of resize events into one remount.
	CoalesceResize bool `mapstructure:"coalesce_resize" yaml:"coalesce_resize" toml:"coalesce_resize"`
	// Mouse enables clicking controls and dragging the track.
	Mouse bool `mapstructure:"mouse" yaml:"mouse" toml:"mouse"`
}

// AppearanceConfig holds chart colors.
type AppearanceConfig struct {
	// ColorProfile forces the output profile instead of detecting it.
	ColorProfile string        `mapstructure:"color_profile" yaml:"color_profile" toml:"color_profile" jsonschema:"enum=auto,enum=ascii,enum=ansi,enum=ansi256,enum=truecolor"`
	Palette      PaletteConfig `mapstructure:"palette" yaml:"palette" toml:"palette"`
}

// PaletteConfig entries are ANSI 256 indices ("39") or hex colors ("#4682b4").
type PaletteConfig struct {
	Series []string `mapstructure:"series" yaml:"series" toml:"series"`
	Axis   string   `mapstructure:"axis" yaml:"axis" toml:"axis"`
	Muted  string   `mapstructure:"muted" yaml:"muted" toml:"muted"`
	Error  string   `mapstructure:"error" yaml:"error" toml:"error"`
}

// DataConfig controls data-source loading.
type DataConfig struct {
	HTTPTimeoutSeconds int `mapstructure:"http_timeout_seconds" yaml:"http_timeout_seconds" toml:"http_timeout_seconds" jsonschema:"minimum=1"`
	// BaseDir overrides the deck directory for relative sources.
	BaseDir string `mapstructure:"base_dir" yaml:"base_dir" toml:"base_dir"`
	// CacheSize bounds how many sources stay cached; 0 keeps all of them.
	CacheSize int `mapstructure:"cache_size" yaml:"cache_size" toml:"cache_size" jsonschema:"minimum=0"`
}

// ToolkitConfig controls the chart toolkit probe.
type ToolkitConfig struct {
	ProbeTimeoutMs int `mapstructure:"probe_timeout_ms" yaml:"probe_timeout_ms" toml:"probe_timeout_ms" jsonschema:"minimum=1"`
}

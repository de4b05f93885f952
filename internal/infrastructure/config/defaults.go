package config

const (
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 5
	defaultLogMaxAgeDays = 7

	defaultWindowRadius   = 1
	defaultSwipeThreshold = 0.15
	defaultTransitionMs   = 220

	defaultHTTPTimeoutSeconds = 30
	defaultProbeTimeoutMs     = 2000
)

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

// DefaultConfig returns the default configuration values for chartdeck.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:         defaultLogLevel,
			Format:        defaultLogFormat,
			LogDir:        getDefaultLogDir(),
			EnableFileLog: true,
			MaxSizeMB:     defaultLogMaxSizeMB,
			MaxBackups:    defaultLogMaxBackups,
			MaxAgeDays:    defaultLogMaxAgeDays,
			Compress:      true,
		},
		Carousel: CarouselConfig{
			WindowRadius:   defaultWindowRadius,
			SwipeThreshold: defaultSwipeThreshold,
			TransitionMs:   defaultTransitionMs,
			Easing:         EasingOutCubic,
			CoalesceResize: true,
			Mouse:          true,
		},
		Appearance: AppearanceConfig{
			ColorProfile: "auto",
			Palette: PaletteConfig{
				// steelblue, crimson, green, purple
				Series: []string{"#4682b4", "#e11d48", "#22c55e", "#a855f7"},
				Axis:   "244",
				Muted:  "240",
				Error:  "#ef4444",
			},
		},
		Data: DataConfig{
			HTTPTimeoutSeconds: defaultHTTPTimeoutSeconds,
		},
		Toolkit: ToolkitConfig{
			ProbeTimeoutMs: defaultProbeTimeoutMs,
		},
	}
}

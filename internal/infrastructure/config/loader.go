// Package config loads chartdeck settings from TOML with viper, applies
// CHARTDECK_ environment overrides and watches the file for changes.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config        *Config
	viper         *viper.Viper
	mu            sync.RWMutex
	callbacks     []func(*Config)
	watching      bool
	configDir     string
	createDefault bool
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithConfigDir reads config.toml from dir instead of the XDG location.
func WithConfigDir(dir string) ManagerOption {
	return func(m *Manager) { m.configDir = dir }
}

// WithoutDefaultFile keeps Load from writing a default config.toml when
// none exists.
func WithoutDefaultFile() ManagerOption {
	return func(m *Manager) { m.createDefault = false }
}

// NewManager creates a new configuration manager.
func NewManager(opts ...ManagerOption) (*Manager, error) {
	m := &Manager{
		viper:         viper.New(),
		callbacks:     make([]func(*Config), 0),
		createDefault: true,
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.configDir == "" {
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		m.configDir = configDir
	}

	v := m.viper
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(m.configDir)

	// CHARTDECK_CAROUSEL_WINDOW_RADIUS overrides carousel.window_radius, etc.
	v.SetEnvPrefix("CHARTDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Shorter names shared with logging.NewFromEnv.
	if err := v.BindEnv("logging.level", "CHARTDECK_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind CHARTDECK_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "CHARTDECK_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind CHARTDECK_LOG_FORMAT: %w", err)
	}

	return m, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile = m.configFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}
	if !m.createDefault {
		return nil
	}

	if err := m.createDefaultConfig(); err != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configDir,
			err,
		)
	}
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read newly created config file: %w", err)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))

	easing := Easing(strings.ToLower(strings.TrimSpace(string(config.Carousel.Easing))))
	config.Carousel.Easing = EasingOutCubic
	for _, e := range Easings() {
		if e == easing {
			config.Carousel.Easing = e
		}
	}

	switch p := strings.ToLower(strings.TrimSpace(config.Appearance.ColorProfile)); p {
	case "ascii", "ansi", "ansi256", "truecolor":
		config.Appearance.ColorProfile = p
	default:
		config.Appearance.ColorProfile = "auto"
	}

	palette := &config.Appearance.Palette
	for i, c := range palette.Series {
		palette.Series[i] = strings.TrimSpace(c)
	}
	palette.Axis = strings.TrimSpace(palette.Axis)
	palette.Muted = strings.TrimSpace(palette.Muted)
	palette.Error = strings.TrimSpace(palette.Error)

	config.Data.BaseDir = strings.TrimSpace(config.Data.BaseDir)
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	configCopy.Appearance.Palette.Series = append([]string(nil), m.config.Appearance.Palette.Series...)
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used, or
// where it would be created.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return m.configFile()
}

func (m *Manager) configFile() string {
	return filepath.Join(m.configDir, "config.toml")
}

// createDefaultConfig creates a default configuration file.
func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return err
	}
	return WriteConfigOrdered(DefaultConfig(), m.configFile())
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setLoggingDefaults(defaults)
	m.setCarouselDefaults(defaults)
	m.setAppearanceDefaults(defaults)
	m.setDataDefaults(defaults)
	m.viper.SetDefault("toolkit.probe_timeout_ms", defaults.Toolkit.ProbeTimeoutMs)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

func (m *Manager) setCarouselDefaults(defaults *Config) {
	m.viper.SetDefault("carousel.window_radius", defaults.Carousel.WindowRadius)
	m.viper.SetDefault("carousel.swipe_threshold", defaults.Carousel.SwipeThreshold)
	m.viper.SetDefault("carousel.transition_ms", defaults.Carousel.TransitionMs)
	m.viper.SetDefault("carousel.easing", string(defaults.Carousel.Easing))
	m.viper.SetDefault("carousel.coalesce_resize", defaults.Carousel.CoalesceResize)
	m.viper.SetDefault("carousel.mouse", defaults.Carousel.Mouse)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	m.viper.SetDefault("appearance.color_profile", defaults.Appearance.ColorProfile)
	m.viper.SetDefault("appearance.palette.series", defaults.Appearance.Palette.Series)
	m.viper.SetDefault("appearance.palette.axis", defaults.Appearance.Palette.Axis)
	m.viper.SetDefault("appearance.palette.muted", defaults.Appearance.Palette.Muted)
	m.viper.SetDefault("appearance.palette.error", defaults.Appearance.Palette.Error)
}

func (m *Manager) setDataDefaults(defaults *Config) {
	m.viper.SetDefault("data.http_timeout_seconds", defaults.Data.HTTPTimeoutSeconds)
	m.viper.SetDefault("data.base_dir", defaults.Data.BaseDir)
	m.viper.SetDefault("data.cache_size", defaults.Data.CacheSize)
}

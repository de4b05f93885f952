package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var colorRe = regexp.MustCompile(`^(#[0-9a-fA-F]{6}|[0-9]{1,3})$`)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateCarousel(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)
	validationErrors = append(validationErrors, validateData(config)...)

	if config.Toolkit.ProbeTimeoutMs < 1 {
		validationErrors = append(validationErrors, "toolkit.probe_timeout_ms must be positive")
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level must be one of: trace, debug, info, warn, error, disabled (got: %s)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be console or json (got: %s)", config.Logging.Format))
	}
	if config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be positive")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_age_days must be non-negative")
	}
	return validationErrors
}

func validateCarousel(config *Config) []string {
	var validationErrors []string
	c := config.Carousel
	if c.WindowRadius < 0 {
		validationErrors = append(validationErrors, "carousel.window_radius must be non-negative")
	}
	if c.SwipeThreshold <= 0 || c.SwipeThreshold >= 1 {
		validationErrors = append(validationErrors, fmt.Sprintf("carousel.swipe_threshold must be between 0 and 1 exclusive (got: %g)", c.SwipeThreshold))
	}
	if c.TransitionMs < 0 || c.TransitionMs > 5000 {
		validationErrors = append(validationErrors, "carousel.transition_ms must be between 0 and 5000")
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	var validationErrors []string
	p := config.Appearance.Palette
	if len(p.Series) == 0 {
		validationErrors = append(validationErrors, "appearance.palette.series must list at least one color")
	}
	check := func(key, value string) {
		if value == "" && key != "appearance.palette.series" {
			return
		}
		if !validColor(value) {
			validationErrors = append(validationErrors, fmt.Sprintf("%s must be an ANSI index (0-255) or #rrggbb (got: %q)", key, value))
		}
	}
	for _, c := range p.Series {
		check("appearance.palette.series", c)
	}
	check("appearance.palette.axis", p.Axis)
	check("appearance.palette.muted", p.Muted)
	check("appearance.palette.error", p.Error)
	return validationErrors
}

func validColor(s string) bool {
	if !colorRe.MatchString(s) {
		return false
	}
	if strings.HasPrefix(s, "#") {
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && n <= 255
}

func validateData(config *Config) []string {
	var validationErrors []string
	if config.Data.HTTPTimeoutSeconds < 1 {
		validationErrors = append(validationErrors, "data.http_timeout_seconds must be positive")
	}
	if config.Data.CacheSize < 0 {
		validationErrors = append(validationErrors, "data.cache_size must be non-negative")
	}
	return validationErrors
}

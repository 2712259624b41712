package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
)

var ErrContentDirRequired = errors.New("articles config: content directory is required")
var ErrGeneratorFeatureRequired = errors.New("articles config: generator feature must be enabled to configure the generator")
var ErrGeneratorOutputDirRequired = errors.New("articles config: generator output directory is required when the generator is enabled")
var ErrLoggingProviderRequired = errors.New("articles config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("articles config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("articles config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("articles config: logging format is invalid")

// Config aggregates feature flags and adapter bindings for the articles module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Content   ContentConfig
	Generator GeneratorConfig
	Logging   LoggingConfig
	Features  Features
}

// ContentConfig captures filesystem and parser behaviour for article ingestion.
type ContentConfig struct {
	// Dir is the root directory where article sources live.
	Dir string
	// Pattern limits discovered files to those matching the glob (defaults to "*.md").
	Pattern string
	// Recursive controls whether sub-directories are traversed.
	Recursive bool
	Parser    ParserConfig
}

// ParserConfig mirrors interfaces.ParseOptions for runtime configuration.
type ParserConfig struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// GeneratorConfig captures behaviour for the static build.
type GeneratorConfig struct {
	Enabled          bool
	OutputDir        string
	BaseURL          string
	SiteTitle        string
	CleanBuild       bool
	IncludeDrafts    bool
	GenerateFeed     bool
	GenerateManifest bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Features toggles module functionality.
type Features struct {
	Generator bool
	Logger    bool
}

// DefaultConfig returns opinionated defaults for an embedded article store.
func DefaultConfig() Config {
	return Config{
		Content: ContentConfig{
			Dir:       "content",
			Pattern:   "*.md",
			Recursive: true,
		},
		Generator: GeneratorConfig{
			OutputDir:        "dist",
			SiteTitle:        "Articles",
			CleanBuild:       true,
			GenerateFeed:     false,
			GenerateManifest: true,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
		Features: Features{},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Content.Dir) == "" {
		return ErrContentDirRequired
	}
	if cfg.Generator.Enabled {
		if !cfg.Features.Generator {
			return ErrGeneratorFeatureRequired
		}
		if strings.TrimSpace(cfg.Generator.OutputDir) == "" {
			return ErrGeneratorOutputDirRequired
		}
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}

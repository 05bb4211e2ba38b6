// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/jonathan/md-icon-localize/internal/cache"
	"github.com/jonathan/md-icon-localize/internal/schemas"
	"github.com/jonathan/md-icon-localize/internal/types"
)

// DefaultFile is the config file picked up from the working directory when
// no --config flag is given.
const DefaultFile = "mdicon.json"

// Config represents the CLI configuration that can be loaded from a JSON file
// and overridden by MDICON_* environment variables. All fields are optional.
type Config struct {
	Include             []string `json:"include,omitempty" env:"MDICON_INCLUDE" envSeparator:","`                                                      // Source roots to scan
	OutDir              string   `json:"out_dir,omitempty" env:"MDICON_OUT_DIR"`                                                                       // Where font assets are copied
	Variant             string   `json:"variant,omitempty" env:"MDICON_VARIANT" validate:"omitempty,variant"`                                          // outlined, rounded or sharp
	AdditionalIconNames []string `json:"additional_icon_names,omitempty" env:"MDICON_ADDITIONAL_ICON_NAMES" envSeparator:"," validate:"dive,iconname"` // Names built at runtime
	Extensions          []string `json:"extensions,omitempty" env:"MDICON_EXTENSIONS" envSeparator:","`                                                // Source file extensions
	CacheDir            string   `json:"cache_dir,omitempty" env:"MDICON_CACHE_DIR"`                                                                   // Local build cache
	RegistryURL         string   `json:"registry_url,omitempty" env:"MDICON_REGISTRY_URL" validate:"omitempty,url"`                                    // Codepoint document base URL
	FontsURL            string   `json:"fonts_url,omitempty" env:"MDICON_FONTS_URL" validate:"omitempty,url"`                                          // Subset stylesheet endpoint
	Verbose             bool     `json:"verbose,omitempty" env:"MDICON_VERBOSE"`                                                                       // Print detailed debug information
}

// Defaults returns the configuration used for any value left unset.
func Defaults() Config {
	return Config{
		Include:  []string{"src"},
		OutDir:   "public",
		Variant:  string(types.DefaultVariant),
		CacheDir: cache.DefaultDir,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	// Catches misspelled keys, which Unmarshal silently drops
	if err := schemas.Validate(schemas.Config, data); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return nil, fmt.Errorf("config file %s: %s", path, validationErr.Summary())
		}
		return nil, err
	}

	return &cfg, nil
}

// Load reads the config file at path (optional when it does not exist and
// path is DefaultFile), applies environment overrides and fills defaults.
// The result is validated.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		switch {
		case err == nil:
			cfg = loaded
		case path == DefaultFile && errors.Is(err, os.ErrNotExist):
			// no project config; env and defaults only
		default:
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	merged := cfg.MergeWithDefaults(Defaults())
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// ApplyEnv overrides fields with any MDICON_* environment variables that are set.
func (c *Config) ApplyEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if len(result.Include) == 0 {
		result.Include = defaults.Include
	}
	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}
	if result.Variant == "" {
		result.Variant = defaults.Variant
	}
	if len(result.AdditionalIconNames) == 0 {
		result.AdditionalIconNames = defaults.AdditionalIconNames
	}
	if len(result.Extensions) == 0 {
		result.Extensions = defaults.Extensions
	}
	if result.CacheDir == "" {
		result.CacheDir = defaults.CacheDir
	}
	if result.RegistryURL == "" {
		result.RegistryURL = defaults.RegistryURL
	}
	if result.FontsURL == "" {
		result.FontsURL = defaults.FontsURL
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("config error: %w", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("'%s' %s", fe.Field(), describe(fe)))
	}
	return fmt.Errorf("config error: %s", strings.Join(msgs, "; "))
}

// ParsedVariant returns the configured variant.
func (c *Config) ParsedVariant() (types.Variant, error) {
	return types.ParseVariant(c.Variant)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "variant":
		return fmt.Sprintf("must be outlined, rounded or sharp (got %q)", fe.Value())
	case "iconname":
		return fmt.Sprintf("must contain only lowercase letters and underscores (got %q)", fe.Value())
	case "url":
		return fmt.Sprintf("must be a valid URL (got %q)", fe.Value())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegister(v, "variant", func(fl validator.FieldLevel) bool {
		_, err := types.ParseVariant(fl.Field().String())
		return err == nil
	})
	mustRegister(v, "iconname", func(fl validator.FieldLevel) bool {
		return types.IsIconName(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("failed to register %s validation: %v", tag, err))
	}
}

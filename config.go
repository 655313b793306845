package localekit

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

// Config mirrors the LocaleMap options for twelve-factor setups where
// locale wiring comes from the environment. Fallback graphs and custom
// loaders stay in code; pass them as extra options to NewFromConfig.
type Config struct {
	SupportedLocales []string `env:"LOCALE_SUPPORTED,required,notEmpty" envSeparator:","`
	DefaultLocale    string   `env:"LOCALE_DEFAULT,required,notEmpty"`
	AssetSource      string   `env:"LOCALE_ASSETS_SRC,required,notEmpty"`
	BaseFileNames    []string `env:"LOCALE_BASE_FILES" envSeparator:"," envDefault:"_"`
	AutoClean        bool     `env:"LOCALE_AUTO_CLEAN" envDefault:"true"`
}

// ConfigFromEnv reads Config from environment variables.
func ConfigFromEnv() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}
	return cfg, nil
}

// NewFromConfig builds a LocaleMap from cfg, applying any extra options
// on top (fallback graph, custom loader, logger).
func NewFromConfig(cfg Config, opts ...Option) (*LocaleMap, error) {
	base := []Option{
		WithSupportedLocales(cfg.SupportedLocales...),
		WithDefaultLocale(cfg.DefaultLocale),
		WithAssetSource(cfg.AssetSource),
		WithBaseFileNames(cfg.BaseFileNames...),
		WithAutoClean(cfg.AutoClean),
	}
	return New(append(base, opts...)...)
}

package localekit

import (
	"log/slog"
	"strings"

	"github.com/dmitrymomot/localekit/pkg/langdata"
	"github.com/dmitrymomot/localekit/pkg/loader"
)

// Option configures a LocaleMap.
type Option func(*LocaleMap)

// WithSupportedLocales declares the locale codes the map serves. The
// exact form of each code doubles as the asset path component, e.g.
// "en-US" loads from "{src}/en-US/".
func WithSupportedLocales(codes ...string) Option {
	return func(m *LocaleMap) {
		m.supportedCodes = codes
	}
}

// WithDefaultLocale sets the locale loaded when no explicit target is
// given and no locale is current. Required; must be one of the
// supported locales.
func WithDefaultLocale(code string) Option {
	return func(m *LocaleMap) {
		m.defaultCode = code
	}
}

// WithFallbacks declares the fallback graph: each key consults its
// value locales, in order, when a message is missing. Keys and values
// must be supported locales.
func WithFallbacks(fallbacks map[string][]string) Option {
	return func(m *LocaleMap) {
		m.fallbackCodes = fallbacks
	}
}

// WithAssetSource sets where bundles are fetched from. Sources starting
// with http:// or https:// use an HTTP loader; everything else is
// treated as a local directory. WithLoader overrides this.
func WithAssetSource(src string) Option {
	return func(m *LocaleMap) {
		m.assetSource = src
	}
}

// WithLoader injects a custom asset loader (S3, Redis, embedded FS,
// or a cached wrapper; see pkg/loader).
func WithLoader(l loader.Loader) Option {
	return func(m *LocaleMap) {
		if l != nil {
			m.loader = l
		}
	}
}

// WithBaseFileNames sets the bundle file names fetched per locale,
// without extension. A name containing "/" nests the fragment under
// that path in the bundle. Defaults to "_".
func WithBaseFileNames(names ...string) Option {
	return func(m *LocaleMap) {
		if len(names) > 0 {
			m.baseFileNames = names
		}
	}
}

// WithAutoClean controls whether Load drops bundles outside the new
// fallback closure. Defaults to true; disable to keep previously
// loaded locales resident.
func WithAutoClean(clean bool) Option {
	return func(m *LocaleMap) {
		m.autoClean = clean
	}
}

// WithLogger sets the logger for asset-load failures and missing
// messages. If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(m *LocaleMap) {
		if l != nil {
			m.log = l
		}
	}
}

// WithLanguageData injects a shared display-metadata registry. A fresh
// registry is constructed when omitted.
func WithLanguageData(reg *langdata.Registry) Option {
	return func(m *LocaleMap) {
		if reg != nil {
			m.reg = reg
		}
	}
}

// WithMissingKeyHandler registers a hook invoked when a lookup misses
// the whole fallback graph, before the identifier is returned as-is.
// Useful for surfacing untranslated keys in development.
func WithMissingKeyHandler(fn func(locale, id string)) Option {
	return func(m *LocaleMap) {
		m.missingKey = fn
	}
}

func sourceLoader(src string) loader.Loader {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return loader.NewHTTP(src)
	}
	return loader.NewDir(src)
}

package localekit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/localekit/pkg/langdata"
	"github.com/dmitrymomot/localekit/pkg/loader"
	"github.com/dmitrymomot/localekit/pkg/plural"
	"github.com/dmitrymomot/localekit/pkg/timeago"
)

// LocaleMap resolves localized messages across a fallback graph of
// supported locales. Construct with New, point it at an asset source,
// then Load a locale before looking messages up.
//
// A LocaleMap is safe for concurrent use: lookups take a read lock and
// Load swaps state under the write lock after all fetching is done.
type LocaleMap struct {
	reg        *langdata.Registry
	log        *slog.Logger
	missingKey func(locale, id string)

	// configuration captured by options, resolved during New
	supportedCodes []string
	defaultCode    string
	fallbackCodes  map[string][]string
	assetSource    string
	baseFileNames  []string
	autoClean      bool
	loader         loader.Loader

	supported      map[string]Locale   // canonical code -> locale
	ordered        []Locale            // configuration order
	pathComponents map[string]string   // canonical code -> configured code
	fallbacks      map[string][]string // canonical code -> canonical codes
	defaultLocale  Locale

	loadMu sync.Mutex // serializes Loads

	mu       sync.RWMutex
	assets   map[string]map[string]any // canonical code -> bundle
	current  string                    // canonical code, "" before first Load
	cardinal plural.Rule
	ordinal  plural.Rule
	wording  timeago.Language
}

// New builds a LocaleMap from options. Every supported locale, fallback
// key and value, and the default locale must be a well-formed tag with
// a known language; any failure rejects the whole configuration.
func New(opts ...Option) (*LocaleMap, error) {
	m := &LocaleMap{
		log:           slog.New(slog.DiscardHandler),
		baseFileNames: []string{"_"},
		autoClean:     true,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.reg == nil {
		m.reg = langdata.NewRegistry()
	}
	if m.loader == nil {
		if m.assetSource == "" {
			return nil, fmt.Errorf("%w: asset source or loader is required", ErrInvalidConfig)
		}
		m.loader = sourceLoader(m.assetSource)
	}
	if len(m.supportedCodes) == 0 {
		return nil, fmt.Errorf("%w: at least one supported locale is required", ErrInvalidConfig)
	}
	if m.defaultCode == "" {
		return nil, fmt.Errorf("%w: default locale is required", ErrInvalidConfig)
	}

	m.supported = make(map[string]Locale, len(m.supportedCodes))
	m.pathComponents = make(map[string]string, len(m.supportedCodes))
	for _, code := range m.supportedCodes {
		locale, err := ParseLocale(m.reg, code)
		if err != nil {
			return nil, fmt.Errorf("%w: supported locale %q: %v", ErrInvalidConfig, code, err)
		}
		m.supported[locale.Code()] = locale
		m.ordered = append(m.ordered, locale)
		m.pathComponents[locale.Code()] = code
	}

	defaultLocale, err := ParseLocale(m.reg, m.defaultCode)
	if err != nil {
		return nil, fmt.Errorf("%w: default locale %q: %v", ErrInvalidConfig, m.defaultCode, err)
	}
	if _, ok := m.supported[defaultLocale.Code()]; !ok {
		return nil, fmt.Errorf("%w: default locale %q is not supported", ErrInvalidConfig, m.defaultCode)
	}
	m.defaultLocale = defaultLocale

	m.fallbacks = make(map[string][]string, len(m.fallbackCodes))
	for from, to := range m.fallbackCodes {
		fromLocale, err := ParseLocale(m.reg, from)
		if err != nil {
			return nil, fmt.Errorf("%w: fallback key %q: %v", ErrInvalidConfig, from, err)
		}
		targets := make([]string, 0, len(to))
		for _, code := range to {
			toLocale, err := ParseLocale(m.reg, code)
			if err != nil {
				return nil, fmt.Errorf("%w: fallback %q of %q: %v", ErrInvalidConfig, code, from, err)
			}
			if _, ok := m.supported[toLocale.Code()]; !ok {
				return nil, fmt.Errorf("%w: fallback %q of %q is not a supported locale", ErrInvalidConfig, code, from)
			}
			targets = append(targets, toLocale.Code())
		}
		m.fallbacks[fromLocale.Code()] = targets
	}

	m.assets = make(map[string]map[string]any)
	return m, nil
}

// SupportedLocales returns all configured locales in configuration
// order.
func (m *LocaleMap) SupportedLocales() []Locale {
	return append([]Locale(nil), m.ordered...)
}

// SupportsLocale reports whether code canonicalizes to a supported
// locale.
func (m *LocaleMap) SupportsLocale(code string) bool {
	locale, err := ParseLocale(m.reg, code)
	if err != nil {
		return false
	}
	_, ok := m.supported[locale.Code()]
	return ok
}

// CurrentLocale returns the loaded locale. The boolean is false before
// the first successful Load.
func (m *LocaleMap) CurrentLocale() (Locale, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == "" {
		return Locale{}, false
	}
	return m.supported[m.current], true
}

// DefaultLocale returns the configured default locale.
func (m *LocaleMap) DefaultLocale() Locale {
	return m.defaultLocale
}

// Load fetches the bundles for a locale and its whole fallback closure,
// then atomically makes that locale current. With no argument it
// reloads the current locale, or the default before the first Load.
//
// Load panics when the target locale is not supported: that is a
// configuration bug, not a runtime condition. Fetch and parse failures
// return an error wrapping ErrAssetLoad and leave live state untouched.
func (m *LocaleMap) Load(ctx context.Context, locale ...string) error {
	m.loadMu.Lock()
	defer m.loadMu.Unlock()

	target := m.loadTarget(locale)
	codes := m.fallbackClosure(target)

	bundles := make([]map[string]any, len(codes))
	g, ctx := errgroup.WithContext(ctx)
	for i, code := range codes {
		g.Go(func() error {
			bundle, err := m.loadSingle(ctx, code)
			if err != nil {
				return err
			}
			bundles[i] = bundle
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		m.log.Error("locale load failed", "locale", target, "error", err)
		return err
	}

	base := m.supported[target].Language()

	m.mu.Lock()
	if m.autoClean {
		m.assets = make(map[string]map[string]any, len(codes))
	}
	for i, code := range codes {
		m.assets[code] = bundles[i]
	}
	m.current = target
	m.cardinal = plural.ForLocale(target, plural.Cardinal)
	m.ordinal = plural.ForLocale(target, plural.Ordinal)
	m.wording = timeago.ForLanguage(base)
	m.mu.Unlock()

	m.log.Debug("locale loaded", "locale", target, "closure", codes)
	return nil
}

// loadTarget picks the canonical code to load: explicit argument,
// current locale, then default.
func (m *LocaleMap) loadTarget(locale []string) string {
	if len(locale) > 0 && locale[0] != "" {
		parsed, err := ParseLocale(m.reg, locale[0])
		if err != nil {
			panic(fmt.Sprintf("localekit: unsupported locale %q", locale[0]))
		}
		if _, ok := m.supported[parsed.Code()]; !ok {
			panic(fmt.Sprintf("localekit: unsupported locale %q", locale[0]))
		}
		return parsed.Code()
	}

	m.mu.RLock()
	current := m.current
	m.mu.RUnlock()
	if current != "" {
		return current
	}
	return m.defaultLocale.Code()
}

// fallbackClosure walks the fallback graph depth-first from code. The
// visited set keeps cyclic graphs from recursing forever.
func (m *LocaleMap) fallbackClosure(code string) []string {
	visited := make(map[string]bool)
	var order []string
	var walk func(string)
	walk = func(c string) {
		if visited[c] {
			return
		}
		visited[c] = true
		order = append(order, c)
		for _, next := range m.fallbacks[c] {
			walk(next)
		}
	}
	walk(code)
	return order
}

// loadSingle fetches and merges every base file of one locale into a
// fresh bundle.
func (m *LocaleMap) loadSingle(ctx context.Context, code string) (map[string]any, error) {
	component, ok := m.pathComponents[code]
	if !ok {
		panic(fmt.Sprintf("localekit: fallback locale %q is not a supported locale", code))
	}

	bundle := make(map[string]any)
	for _, base := range m.baseFileNames {
		path, data, err := m.fetchBase(ctx, component, base)
		if err != nil {
			return nil, fmt.Errorf("%w: locale %q: %v", ErrAssetLoad, code, err)
		}
		var fragment any
		if err := loader.Decode(path, data, &fragment); err != nil {
			return nil, fmt.Errorf("%w: locale %q: %v", ErrAssetLoad, code, err)
		}
		applyDeep(bundle, base, fragment)
	}
	return bundle, nil
}

// fetchBase tries the JSON spelling of a base file first and falls back
// to YAML when the JSON asset does not exist.
func (m *LocaleMap) fetchBase(ctx context.Context, component, base string) (string, []byte, error) {
	jsonPath := component + "/" + base + ".json"
	data, err := m.loader.Fetch(ctx, jsonPath)
	if err == nil {
		return jsonPath, data, nil
	}
	if !errors.Is(err, loader.ErrNotFound) {
		return "", nil, err
	}

	yamlPath := component + "/" + base + ".yaml"
	yamlData, yamlErr := m.loader.Fetch(ctx, yamlPath)
	if yamlErr != nil {
		// report the JSON miss, the primary spelling
		return "", nil, err
	}
	return yamlPath, yamlData, nil
}

// applyDeep assigns fragment into bundle under the "/"-separated path
// given by name, creating intermediate objects as needed.
func applyDeep(bundle map[string]any, name string, fragment any) {
	parts := strings.Split(name, "/")
	node := bundle
	for _, part := range parts[:len(parts)-1] {
		child, ok := node[part].(map[string]any)
		if !ok {
			child = make(map[string]any)
			node[part] = child
		}
		node = child
	}
	node[parts[len(parts)-1]] = fragment
}

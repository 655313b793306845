package middlewares

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/localekit/pkg/bcp47"
	"github.com/dmitrymomot/localekit/pkg/logger"
)

// localeKey is the context key for the negotiated locale resolution.
type localeKey struct{}

// LocaleConfig configures the Locale middleware.
type LocaleConfig struct {
	// CookieName, when set, lets a cookie override the Accept-Language
	// header so users can pin a language explicitly.
	CookieName string
}

// LocaleOption configures LocaleConfig.
type LocaleOption func(*LocaleConfig)

// WithLocaleCookie enables the cookie override under the given name.
func WithLocaleCookie(name string) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.CookieName = name
	}
}

// Locale returns middleware that negotiates the request's locale
// against the supported list and stores the resolution in the request
// context. The cookie override (if configured) is consulted before the
// Accept-Language header; when nothing matches, defaultLocale wins.
//
// The supported codes are canonicalized once at construction;
// construction panics on a malformed code, which is a configuration
// bug.
func Locale(supported []string, defaultLocale string, opts ...LocaleOption) func(http.Handler) http.Handler {
	cfg := &LocaleConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	available, err := bcp47.CanonicalizeList(supported)
	if err != nil {
		panic("middlewares: malformed supported locale: " + err.Error())
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requested := requestedLocales(r, cfg.CookieName)

			resolution, ok := bcp47.Resolve(available, requested, defaultLocale)
			if !ok {
				resolution = bcp47.Resolution{DataLocale: defaultLocale}
			}

			ctx := context.WithValue(r.Context(), localeKey{}, resolution)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// requestedLocales builds the canonical priority list from the cookie
// override and the Accept-Language header, skipping malformed tags.
func requestedLocales(r *http.Request, cookieName string) []string {
	var raw []string
	if cookieName != "" {
		if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
			raw = append(raw, c.Value)
		}
	}
	raw = append(raw, ParseAcceptLanguage(r.Header.Get("Accept-Language"))...)

	valid := raw[:0]
	for _, tag := range raw {
		if bcp47.Validate(tag) {
			valid = append(valid, tag)
		}
	}
	canonical, err := bcp47.CanonicalizeList(valid)
	if err != nil {
		return nil
	}
	return canonical
}

// GetLocale extracts the negotiated locale code from the context.
// Returns an empty string when the Locale middleware is not used.
func GetLocale(ctx context.Context) string {
	if res, ok := ctx.Value(localeKey{}).(bcp47.Resolution); ok {
		return res.DataLocale
	}
	return ""
}

// GetResolution extracts the full resolution, including any Unicode
// extension sequence the request carried.
func GetResolution(ctx context.Context) (bcp47.Resolution, bool) {
	res, ok := ctx.Value(localeKey{}).(bcp47.Resolution)
	return res, ok
}

// LocaleExtractor returns a ContextExtractor for use with logger.New.
// Adds "locale" to every log entry carrying a negotiated locale.
func LocaleExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if code := GetLocale(ctx); code != "" {
			return slog.String("locale", code), true
		}
		return slog.Attr{}, false
	}
}

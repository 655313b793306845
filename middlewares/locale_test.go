package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit/middlewares"
	"github.com/dmitrymomot/localekit/pkg/bcp47"
)

func TestParseAcceptLanguage(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		header string
		want   []string
	}{
		{"empty", "", nil},
		{"single", "en-US", []string{"en-US"}},
		{"quality ordering", "pt;q=0.8,en-US,en;q=0.9", []string{"en-US", "en", "pt"}},
		{"wildcard skipped", "*,en;q=0.5", []string{"en"}},
		{"malformed quality defaults to 1", "en;q=nope,pt;q=0.9", []string{"en", "pt"}},
		{"stable for equal quality", "en-US,pt-BR", []string{"en-US", "pt-BR"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, middlewares.ParseAcceptLanguage(tc.header))
		})
	}
}

func negotiated(t *testing.T, mw func(http.Handler) http.Handler, req *http.Request) bcp47.Resolution {
	t.Helper()
	var res bcp47.Resolution
	var ok bool
	handler := mw(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		res, ok = middlewares.GetResolution(r.Context())
	}))
	handler.ServeHTTP(httptest.NewRecorder(), req)
	require.True(t, ok)
	return res
}

func TestLocaleMiddleware(t *testing.T) {
	t.Parallel()

	supported := []string{"en", "en-US", "pt-BR"}
	mw := middlewares.Locale(supported, "en-US")

	t.Run("exact match", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "pt-BR,en;q=0.8")
		assert.Equal(t, "pt-BR", negotiated(t, mw, req).DataLocale)
	})

	t.Run("prefix truncation", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "pt-PT")
		// pt-PT truncates to pt, which is not supported; falls through
		// to the default
		assert.Equal(t, "en-US", negotiated(t, mw, req).DataLocale)
	})

	t.Run("case-insensitive request tags", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "PT-br")
		assert.Equal(t, "pt-BR", negotiated(t, mw, req).DataLocale)
	})

	t.Run("no header uses default", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Equal(t, "en-US", negotiated(t, mw, req).DataLocale)
	})

	t.Run("unicode extension reported", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "en-US-u-co-phonebk")
		res := negotiated(t, mw, req)
		assert.Equal(t, "en-US", res.DataLocale)
		assert.Equal(t, "-u-co-phonebk", res.Extension)
	})

	t.Run("cookie override wins", func(t *testing.T) {
		t.Parallel()
		cookieMW := middlewares.Locale(supported, "en-US", middlewares.WithLocaleCookie("lang"))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "en")
		req.AddCookie(&http.Cookie{Name: "lang", Value: "pt-BR"})
		assert.Equal(t, "pt-BR", negotiated(t, cookieMW, req).DataLocale)
	})

	t.Run("malformed tags are skipped", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "not_a_tag!!,pt-BR;q=0.5")
		assert.Equal(t, "pt-BR", negotiated(t, mw, req).DataLocale)
	})

	t.Run("malformed supported list panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			middlewares.Locale([]string{"not a tag"}, "en")
		})
	})
}

func TestGetLocaleWithoutMiddleware(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, middlewares.GetLocale(req.Context()))
}

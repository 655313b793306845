// Package middlewares provides HTTP middleware for locale negotiation.
//
// The Locale middleware parses the Accept-Language header (and an
// optional language cookie), negotiates against the application's
// supported locales using RFC 4647 lookup matching, and stores the
// resolution in the request context:
//
//	r := chi.NewRouter()
//	r.Use(middlewares.Locale(
//	    []string{"en", "en-US", "pt-BR"},
//	    "en-US",
//	    middlewares.WithLocaleCookie("lang"),
//	))
//
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//	    locale := middlewares.GetLocale(r.Context())
//	    // ...
//	})
//
// GetResolution additionally exposes any Unicode extension sequence
// ("-u-ca-buddhist") the winning request tag carried.
package middlewares

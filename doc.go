// Package localekit resolves and formats localized messages for BCP-47
// locales. A LocaleMap owns a set of supported locales, a fallback
// graph between them, and the message bundles loaded for the current
// locale and its fallback closure.
//
// Message bundles are JSON or YAML files fetched through a pluggable
// loader (local directory, embedded FS, HTTP, S3, Redis; see
// pkg/loader). Lookups walk dotted identifiers through the current
// bundle and then depth-first through the fallback graph; a total miss
// degrades to the identifier itself, so rendering never fails.
//
//	m, err := localekit.New(
//	    localekit.WithSupportedLocales("en", "en-US", "pt-BR"),
//	    localekit.WithDefaultLocale("en-US"),
//	    localekit.WithFallbacks(map[string][]string{
//	        "en-US": {"en"},
//	        "pt-BR": {"en-US"},
//	    }),
//	    localekit.WithAssetSource("res/lang"),
//	    localekit.WithBaseFileNames("common"),
//	)
//	if err != nil {
//	    // configuration is invalid
//	}
//	if err := m.Load(ctx); err != nil {
//	    // assets unavailable; live state untouched
//	}
//	m.Get("common.message_id")
//	m.GetFormatted("common.greeting", localekit.Vars{"name": "Ana"})
//	m.GetFormatted("common.items", localekit.Quantity(3))
//
// Formatting arguments augment the identifier before lookup: a Gender
// appends "_male"/"_female", a Quantity appends "_empty"/"_one"/
// "_multiple" and injects the $number variable. Placeholders use the
// $name syntax; "$$" escapes a literal dollar sign and unresolved
// placeholders render as "undefined".
//
// Low-level tag validation, canonicalization and negotiation live in
// pkg/bcp47 and work without a LocaleMap.
package localekit

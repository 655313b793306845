// Package langdata provides read-only display metadata for language tags:
// English and native language names, writing direction, and country
// (region) names and codes.
//
// All lookups go through a Registry constructed once at startup and
// passed explicitly to the components that need it. The registry is
// immutable after construction and safe for concurrent use; there is no
// package-level global state.
//
// Name data comes from golang.org/x/text/language/display; the registry
// only adds the thin lookups the locale engine needs (base-subtag
// validity, RTL detection, country-code parsing).
package langdata

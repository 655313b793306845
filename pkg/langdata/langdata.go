package langdata

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Direction is the writing direction of a language.
type Direction int

const (
	LeftToRight Direction = iota
	RightToLeft
)

// rtlLanguages lists primary language subtags written right-to-left in
// their customary script.
var rtlLanguages = map[string]struct{}{
	"ar": {}, "arc": {}, "ckb": {}, "dv": {}, "fa": {}, "he": {},
	"ku": {}, "ps": {}, "sd": {}, "ug": {}, "ur": {}, "yi": {},
}

// Registry resolves display metadata for language and region subtags.
// Construct one with NewRegistry and share it by pointer; it performs no
// writes after construction.
type Registry struct {
	languages display.Namer
	regions   display.Namer
}

// NewRegistry builds a registry backed by the English display-name
// tables.
func NewRegistry() *Registry {
	return &Registry{
		languages: display.English.Languages(),
		regions:   display.English.Regions(),
	}
}

// KnownLanguage reports whether lang is a registered primary language
// subtag with display data available.
func (r *Registry) KnownLanguage(lang string) bool {
	base, err := language.ParseBase(lang)
	if err != nil {
		return false
	}
	return r.languages.Name(base) != ""
}

// UniversalName returns the English name of the language identified by
// lang ("pt" -> "Portuguese"), or "" when unknown.
func (r *Registry) UniversalName(lang string) string {
	base, err := language.ParseBase(lang)
	if err != nil {
		return ""
	}
	return r.languages.Name(base)
}

// NativeName returns the language's name in the language itself
// ("pt" -> "Português"), or "" when unknown. The first letter is
// uppercased for presentation.
func (r *Registry) NativeName(lang string) string {
	base, err := language.ParseBase(lang)
	if err != nil {
		return ""
	}
	name := display.Self.Name(language.Make(base.String()))
	return upperFirst(name)
}

// Direction returns the writing direction for the primary language
// subtag. Unknown languages default to left-to-right.
func (r *Registry) Direction(lang string) Direction {
	if _, ok := rtlLanguages[lang]; ok {
		return RightToLeft
	}
	return LeftToRight
}

// Country is an ISO 3166-1 region with display data.
type Country struct {
	region language.Region
	name   string
}

// Country resolves a 2-letter, 3-letter or 3-digit region code into a
// Country. The boolean is false for unknown or user-assigned codes.
func (r *Registry) Country(code string) (Country, bool) {
	region, err := language.ParseRegion(code)
	if err != nil {
		return Country{}, false
	}
	name := r.regions.Name(region)
	if name == "" {
		return Country{}, false
	}
	return Country{region: region, name: name}, true
}

// Alpha2 returns the two-letter ISO 3166-1 code ("BR").
func (c Country) Alpha2() string {
	return c.region.String()
}

// Alpha3 returns the three-letter ISO 3166-1 code ("BRA").
func (c Country) Alpha3() string {
	return c.region.ISO3()
}

// Name returns the English country name ("Brazil").
func (c Country) Name() string {
	return c.name
}

func (c Country) String() string {
	return c.name
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

package localekit

import (
	"fmt"

	"github.com/dmitrymomot/localekit/pkg/bcp47"
	"github.com/dmitrymomot/localekit/pkg/langdata"
)

// Locale is a validated, canonicalized BCP-47 locale with display
// metadata resolved through a langdata.Registry. The zero value is not
// usable; construct with ParseLocale.
type Locale struct {
	tag bcp47.Tag
	reg *langdata.Registry
}

// ParseLocale validates code, canonicalizes it, and checks that its
// primary language is known to the registry. A structurally valid tag
// whose language the registry has no data for fails with
// ErrUnknownLanguage.
func ParseLocale(reg *langdata.Registry, code string) (Locale, error) {
	tag, err := bcp47.Parse(code)
	if err != nil {
		return Locale{}, fmt.Errorf("parsing locale %q: %w", code, err)
	}
	if !reg.KnownLanguage(tag.BaseLanguage()) {
		return Locale{}, fmt.Errorf("%w: %q", ErrUnknownLanguage, tag.BaseLanguage())
	}
	return Locale{tag: tag, reg: reg}, nil
}

// Tag returns the decomposed canonical tag.
func (l Locale) Tag() bcp47.Tag {
	return l.tag
}

// Code returns the canonical tag string ("pt-BR"), the unique key for
// this locale.
func (l Locale) Code() string {
	return l.tag.String()
}

// Language returns the primary language subtag.
func (l Locale) Language() string {
	return l.tag.BaseLanguage()
}

// Direction returns the customary writing direction of the language.
func (l Locale) Direction() langdata.Direction {
	return l.reg.Direction(l.Language())
}

// UniversalName returns the English name of the language
// ("Portuguese").
func (l Locale) UniversalName() string {
	return l.reg.UniversalName(l.Language())
}

// NativeName returns the language's name in the language itself
// ("Português").
func (l Locale) NativeName() string {
	return l.reg.NativeName(l.Language())
}

// Country returns the region subtag as a Country, when the tag carries
// one that the registry recognizes.
func (l Locale) Country() (langdata.Country, bool) {
	if l.tag.Region == "" {
		return langdata.Country{}, false
	}
	return l.reg.Country(l.tag.Region)
}

// String renders the locale for display: "Português (Brazil)" when a
// country is present, the native name alone otherwise.
func (l Locale) String() string {
	if country, ok := l.Country(); ok {
		return l.NativeName() + " (" + country.Name() + ")"
	}
	return l.NativeName()
}

// Package plural selects plural categories for counts, following Unicode
// CLDR category names. It provides cardinal ("1 item") and ordinal
// ("1st") selection per language, with locale-specific overrides and
// fallback from exact locale to primary language to a generic default.
package plural

import "strings"

// Type distinguishes cardinal from ordinal selection.
type Type int

const (
	Cardinal Type = iota
	Ordinal
)

// Plural category constants as defined by Unicode CLDR.
// Not all languages use all categories.
const (
	Zero  = "zero"
	One   = "one"
	Two   = "two"
	Few   = "few"
	Many  = "many"
	Other = "other"
)

// Rule determines which plural category to use for a given count.
type Rule func(n int64) string

// DefaultRule provides a generic rule that works reasonably well for
// languages without specific rules.
var DefaultRule Rule = func(n int64) string {
	if n == 0 {
		return Zero
	}
	n = abs(n)
	switch {
	case n == 1:
		return One
	case n >= 2 && n <= 4:
		return Few
	case n > 4 && n < 20:
		return Many
	default:
		return Other
	}
}

// EnglishRule implements cardinal rules for English and similar
// languages: zero (0), one (1), other.
var EnglishRule Rule = func(n int64) string {
	switch abs(n) {
	case 0:
		return Zero
	case 1:
		return One
	default:
		return Other
	}
}

// SlavicRule implements cardinal rules for Slavic languages
// (Polish, Russian, Czech, Ukrainian, etc.).
var SlavicRule Rule = func(n int64) string {
	if n == 0 {
		return Zero
	}
	n = abs(n)
	if n == 1 {
		return One
	}
	mod10 := n % 10
	mod100 := n % 100
	if mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14) {
		return Few
	}
	return Many
}

// RomanceRule implements cardinal rules for French, Italian and
// Portuguese: one (0, 1), many (1e6+), other.
var RomanceRule Rule = func(n int64) string {
	a := abs(n)
	switch {
	case a == 0 || a == 1:
		return One
	case a >= 1000000:
		return Many
	default:
		return Other
	}
}

// EuropeanPortugueseRule differs from the pt rule: only exactly one is
// singular.
var EuropeanPortugueseRule Rule = func(n int64) string {
	a := abs(n)
	switch {
	case a == 1:
		return One
	case a >= 1000000:
		return Many
	default:
		return Other
	}
}

// SpanishRule implements cardinal rules for Spanish: one (1),
// many (1e6+), other.
var SpanishRule Rule = func(n int64) string {
	a := abs(n)
	switch {
	case a == 1:
		return One
	case a >= 1000000:
		return Many
	default:
		return Other
	}
}

// GermanicRule implements cardinal rules for German, Dutch, Swedish,
// Norwegian and Danish: one (1), other.
var GermanicRule Rule = func(n int64) string {
	if abs(n) == 1 {
		return One
	}
	return Other
}

// AsianRule covers languages without grammatical plural forms
// (Japanese, Chinese, Korean, Thai, Vietnamese).
var AsianRule Rule = func(_ int64) string {
	return Other
}

// ArabicRule implements the full six-category Arabic cardinal rules.
var ArabicRule Rule = func(n int64) string {
	switch abs(n) {
	case 0:
		return Zero
	case 1:
		return One
	case 2:
		return Two
	}
	mod100 := abs(n) % 100
	switch {
	case mod100 >= 3 && mod100 <= 10:
		return Few
	case mod100 >= 11 && mod100 <= 99:
		return Many
	default:
		return Other
	}
}

// EnglishOrdinalRule selects ordinal categories for English:
// 1st (one), 2nd (two), 3rd (few), everything else including the teens
// (other).
var EnglishOrdinalRule Rule = func(n int64) string {
	a := abs(n)
	mod10 := a % 10
	mod100 := a % 100
	switch {
	case mod10 == 1 && mod100 != 11:
		return One
	case mod10 == 2 && mod100 != 12:
		return Two
	case mod10 == 3 && mod100 != 13:
		return Few
	default:
		return Other
	}
}

// DefaultOrdinalRule covers the many languages whose ordinals do not
// inflect.
var DefaultOrdinalRule Rule = func(_ int64) string {
	return Other
}

// localeRules holds exact-locale cardinal overrides consulted before the
// per-language tables.
var localeRules = map[string]Rule{
	"pt-PT": EuropeanPortugueseRule,
}

// ForLanguage returns the rule for a primary language subtag. Unknown
// languages fall back to DefaultRule (cardinal) or DefaultOrdinalRule
// (ordinal).
func ForLanguage(lang string, t Type) Rule {
	lang = strings.ToLower(lang)
	if len(lang) > 3 {
		lang = lang[:2]
	}

	if t == Ordinal {
		switch lang {
		case "en":
			return EnglishOrdinalRule
		default:
			return DefaultOrdinalRule
		}
	}

	switch lang {
	case "en":
		return EnglishRule
	case "pl", "ru", "cs", "uk", "hr", "sr", "sk", "sl", "bg":
		return SlavicRule
	case "fr", "it", "pt":
		return RomanceRule
	case "es":
		return SpanishRule
	case "de", "nl", "sv", "no", "nb", "nn", "da", "is":
		return GermanicRule
	case "ja", "zh", "cmn", "yue", "ko", "th", "vi", "id", "ms":
		return AsianRule
	case "ar":
		return ArabicRule
	default:
		return DefaultRule
	}
}

// ForLocale returns the rule for a canonical locale tag, consulting
// exact-locale overrides before the per-language tables.
func ForLocale(locale string, t Type) Rule {
	if t == Cardinal {
		if rule, ok := localeRules[locale]; ok {
			return rule
		}
	}
	lang := locale
	if i := strings.IndexByte(locale, '-'); i > 0 {
		lang = locale[:i]
	}
	return ForLanguage(lang, t)
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

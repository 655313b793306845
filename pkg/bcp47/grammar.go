package bcp47

import (
	"regexp"
	"strings"
)

// Regular expression fragments mirroring the ABNF productions of
// RFC 5646 section 2.1. All matching is case-insensitive and anchored.
const (
	// extlang = 3ALPHA *2("-" 3ALPHA)
	expExtlang = `[a-z]{3}(?:-[a-z]{3}){0,2}`

	// language = 2*3ALPHA ["-" extlang] / 4ALPHA / 5*8ALPHA
	expLanguage = `(?:[a-z]{2,3}(?:-` + expExtlang + `)?|[a-z]{4}|[a-z]{5,8})`

	// script = 4ALPHA
	expScript = `[a-z]{4}`

	// region = 2ALPHA / 3DIGIT
	expRegion = `(?:[a-z]{2}|[0-9]{3})`

	// variant = 5*8alphanum / (DIGIT 3alphanum)
	expVariant = `(?:[a-z0-9]{5,8}|[0-9][a-z0-9]{3})`

	// singleton = DIGIT / %x41-57 / %x59-5A / %x61-77 / %x79-7A
	// ("x" is reserved for private use)
	expSingleton = `[0-9a-wy-z]`

	// extension = singleton 1*("-" 2*8alphanum)
	expExtension = expSingleton + `(?:-[a-z0-9]{2,8})+`

	// privateuse = "x" 1*("-" 1*8alphanum)
	expPrivateUse = `x(?:-[a-z0-9]{1,8})+`

	// irregular grandfathered tags registered during the RFC 3066 era
	expIrregular = `(?:en-gb-oed` +
		`|i-(?:ami|bnn|default|enochian|hak|klingon|lux|mingo|navajo|pwn|tao|tay|tsu)` +
		`|sgn-(?:be-fr|be-nl|ch-de))`

	// regular grandfathered tags that happen to match the langtag production
	expRegular = `(?:art-lojban|cel-gaulish|no-bok|no-nyn` +
		`|zh-(?:guoyu|hakka|min|min-nan|xiang))`

	expGrandfathered = `(?:` + expIrregular + `|` + expRegular + `)`

	// langtag = language ["-" script] ["-" region] *("-" variant)
	//           *("-" extension) ["-" privateuse]
	expLangtag = expLanguage +
		`(?:-` + expScript + `)?` +
		`(?:-` + expRegion + `)?` +
		`(?:-` + expVariant + `)*` +
		`(?:-` + expExtension + `)*` +
		`(?:-` + expPrivateUse + `)?`
)

var (
	// Language-Tag = langtag / privateuse / grandfathered
	reLanguageTag = regexp.MustCompile(`(?i)^(?:` + expLangtag + `|` + expPrivateUse + `|` + expGrandfathered + `)$`)

	reGrandfathered = regexp.MustCompile(`(?i)^` + expGrandfathered + `$`)
	reVariant       = regexp.MustCompile(`^` + expVariant + `$`)
	reExtSequence   = regexp.MustCompile(`(?i)-` + expExtension)
)

// Validate reports whether tag is a structurally valid BCP-47 language
// tag: it matches the Language-Tag production of RFC 5646 section 2.1 and
// contains no duplicate variant subtags and no duplicate singleton
// subtags outside a private-use suffix. Matching is case-insensitive and
// covers the whole string.
func Validate(tag string) bool {
	if tag == "" {
		return false
	}
	if !reLanguageTag.MatchString(tag) {
		return false
	}
	return !hasDuplicateSubtags(tag)
}

// hasDuplicateSubtags scans the subtags of an already grammar-valid tag
// and reports repeated variants or repeated extension singletons. The
// scan stops at the private-use singleton: duplicates inside an "x-"
// suffix are allowed.
func hasDuplicateSubtags(tag string) bool {
	lower := strings.ToLower(tag)
	if reGrandfathered.MatchString(lower) {
		return false
	}

	parts := strings.Split(lower, "-")

	var variants map[string]struct{}
	var singletons map[string]struct{}
	inExtension := false

	for i, part := range parts {
		if i == 0 {
			continue
		}
		if part == "x" {
			break
		}
		if len(part) == 1 {
			if singletons == nil {
				singletons = make(map[string]struct{})
			}
			if _, dup := singletons[part]; dup {
				return true
			}
			singletons[part] = struct{}{}
			inExtension = true
			continue
		}
		if inExtension {
			continue
		}
		if reVariant.MatchString(part) {
			if variants == nil {
				variants = make(map[string]struct{})
			}
			if _, dup := variants[part]; dup {
				return true
			}
			variants[part] = struct{}{}
		}
	}
	return false
}

package bcp47

import (
	"regexp"
	"strings"
)

// reUnicodeExtSeq matches Unicode extension sequences ("-u-ca-buddhist"),
// which carry negotiation options rather than language identity and are
// stripped before lookup matching.
var reUnicodeExtSeq = regexp.MustCompile(`(?i)-u(?:-[0-9a-z]{2,8})+`)

// CanonicalizeList validates and canonicalizes every code in the list,
// removing duplicates while preserving first-seen order. Any invalid
// code fails the whole list with ErrMalformedTag.
func CanonicalizeList(codes []string) ([]string, error) {
	seen := make([]string, 0, len(codes))
	for _, code := range codes {
		if !Validate(code) {
			return nil, ErrMalformedTag
		}
		canonical := Canonicalize(code)
		duplicate := false
		for _, s := range seen {
			if s == canonical {
				duplicate = true
				break
			}
		}
		if !duplicate {
			seen = append(seen, canonical)
		}
	}
	return seen, nil
}

// BestAvailable returns the longest non-empty prefix of locale that is an
// element of available, using the fallback truncation of RFC 4647
// section 3.4: on each miss the candidate is cut at its last hyphen, also
// dropping a preceding singleton that would otherwise be left dangling.
// Both arguments must be canonical tags.
func BestAvailable(available []string, locale string) (string, bool) {
	candidate := locale
	for candidate != "" {
		for _, avail := range available {
			if avail == candidate {
				return candidate, true
			}
		}
		pos := strings.LastIndexByte(candidate, '-')
		if pos < 0 {
			break
		}
		if pos >= 2 && candidate[pos-2] == '-' {
			pos -= 2
		}
		candidate = candidate[:pos]
	}
	return "", false
}

// LookupResult reports the outcome of lookup matching. When the winning
// requested tag carried a Unicode extension sequence, Extension holds the
// sequence (with its leading hyphen) and ExtensionIndex its character
// offset within the requested tag.
type LookupResult struct {
	Locale         string
	Extension      string
	ExtensionIndex int
}

// Lookup compares the requested priority list against available and
// returns the best available locale per RFC 4647 lookup matching. Unicode
// extension sequences are stripped from each requested tag before
// matching and reported separately. The second return value is false when
// no requested tag matched.
func Lookup(available, requested []string) (LookupResult, bool) {
	for _, req := range requested {
		noExt := reUnicodeExtSeq.ReplaceAllString(req, "")
		match, ok := BestAvailable(available, noExt)
		if !ok {
			continue
		}
		res := LookupResult{Locale: match}
		if req != noExt {
			res.Extension = reUnicodeExtSeq.FindString(req)
			if idx := strings.Index(req, res.Extension); idx > 0 {
				res.ExtensionIndex = idx
			}
		}
		return res, true
	}
	return LookupResult{}, false
}

// Resolution is the outcome of locale resolution: the locale whose data
// should be used, plus any Unicode extension carried by the request.
type Resolution struct {
	DataLocale     string
	Extension      string
	ExtensionIndex int
}

// Resolve determines the best available locale for the requested priority
// list. When no requested tag matches, defaultLocale (if non-empty) is
// substituted. The boolean reports whether any locale was resolved at
// all.
func Resolve(available, requested []string, defaultLocale string) (Resolution, bool) {
	if r, ok := Lookup(available, requested); ok {
		return Resolution{
			DataLocale:     r.Locale,
			Extension:      r.Extension,
			ExtensionIndex: r.ExtensionIndex,
		}, true
	}
	if defaultLocale != "" {
		return Resolution{DataLocale: defaultLocale}, true
	}
	return Resolution{}, false
}

// UnicodeExtensionSubtags splits a Unicode extension sequence (as
// reported by Lookup) into its attributes, keys and types. Multi-subtag
// types are joined back with hyphens, so "-u-attr-co-phonebk" yields
// ["attr", "co", "phonebk"].
func UnicodeExtensionSubtags(extension string) []string {
	ext := strings.TrimPrefix(extension, "-")
	parts := strings.Split(ext, "-")
	if len(parts) < 2 || parts[0] != "u" {
		return nil
	}
	parts = parts[1:]

	var out []string
	var typeParts []string
	seenKey := false

	for _, part := range parts {
		switch {
		case len(part) == 2 && seenKey:
			// next key: flush the accumulated type of the previous one
			if len(typeParts) > 0 {
				out = append(out, strings.Join(typeParts, "-"))
				typeParts = nil
			}
			out = append(out, part)
		case len(part) == 2:
			seenKey = true
			out = append(out, part)
		case seenKey:
			typeParts = append(typeParts, part)
		default:
			// attributes precede the first key
			out = append(out, part)
		}
	}
	if len(typeParts) > 0 {
		out = append(out, strings.Join(typeParts, "-"))
	}
	return out
}

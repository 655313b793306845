package bcp47

import "strings"

// Tag is the decomposed form of a canonical BCP-47 language tag. Tags
// are immutable value types: they are created by Parse and compared via
// their canonical string form.
type Tag struct {
	// Language is the primary language subtag ("pt", "cmn"). Empty for
	// private-use-only and grandfathered tags.
	Language string

	// Extlangs holds extended language subtags following a 2-3 letter
	// primary language.
	Extlangs []string

	// Script is the 4-letter titlecased script subtag, if any ("Hans").
	Script string

	// Region is the 2-letter uppercased or 3-digit region subtag ("BR").
	Region string

	// Variants holds registered variant subtags in order.
	Variants []string

	// Extensions holds each extension sequence without the leading
	// hyphen ("u-co-phonebk"), in canonical order.
	Extensions []string

	// PrivateUse holds the subtags following the "x" singleton.
	PrivateUse []string

	canonical string
}

// Parse validates code against the BCP-47 grammar and returns its
// canonical, decomposed form. It returns ErrEmptyTag for an empty string
// and ErrMalformedTag when the grammar or duplicate-subtag checks fail.
func Parse(code string) (Tag, error) {
	if code == "" {
		return Tag{}, ErrEmptyTag
	}
	if !Validate(code) {
		return Tag{}, ErrMalformedTag
	}

	canonical := Canonicalize(code)
	tag := Tag{canonical: canonical}

	// Grandfathered tags without a preferred value survive
	// canonicalization as-is and do not decompose into subtags.
	if reGrandfathered.MatchString(canonical) {
		return tag, nil
	}

	parts := strings.Split(canonical, "-")
	i := 0

	if parts[0] == "x" {
		tag.PrivateUse = parts[1:]
		return tag, nil
	}

	tag.Language = parts[i]
	i++

	// extlangs only follow a shortest-form (2-3 letter) primary subtag
	if len(tag.Language) <= 3 {
		for i < len(parts) && len(parts[i]) == 3 && isAlpha(parts[i]) && len(tag.Extlangs) < 3 {
			tag.Extlangs = append(tag.Extlangs, parts[i])
			i++
		}
	}

	if i < len(parts) && len(parts[i]) == 4 && isAlpha(parts[i]) {
		tag.Script = parts[i]
		i++
	}

	if i < len(parts) && (len(parts[i]) == 2 && isAlpha(parts[i]) || len(parts[i]) == 3 && isDigits(parts[i])) {
		tag.Region = parts[i]
		i++
	}

	for i < len(parts) && len(parts[i]) > 1 {
		tag.Variants = append(tag.Variants, parts[i])
		i++
	}

	for i < len(parts) {
		singleton := parts[i]
		j := i + 1
		for j < len(parts) && len(parts[j]) > 1 {
			j++
		}
		if singleton == "x" {
			tag.PrivateUse = parts[i+1 : j]
		} else {
			tag.Extensions = append(tag.Extensions, strings.Join(parts[i:j], "-"))
		}
		i = j
	}

	return tag, nil
}

// String returns the canonical string form of the tag, which is the
// unique map key for the locale it identifies.
func (t Tag) String() string {
	return t.canonical
}

// BaseLanguage returns the primary language subtag, or the full
// canonical form for tags that do not decompose (private-use,
// grandfathered).
func (t Tag) BaseLanguage() string {
	if t.Language == "" {
		return t.canonical
	}
	return t.Language
}

// IsGrandfathered reports whether the tag is a grandfathered RFC 3066
// registration that has no preferred modern replacement.
func (t Tag) IsGrandfathered() bool {
	return t.Language == "" && len(t.PrivateUse) == 0 && t.canonical != ""
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

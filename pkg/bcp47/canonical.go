package bcp47

import (
	"sort"
	"strings"
)

// Canonicalize returns the canonical, case-regularized form of tag
// following RFC 5646 section 4.5. The tag must already be structurally
// valid per Validate; Canonicalize performs no validation of its own.
//
// Canonicalize is idempotent: applying it to its own output yields the
// same string.
func Canonicalize(tag string) string {
	tag = regularizeCase(tag)
	tag = sortExtensionSequences(tag)

	// Whole-tag rewrite for redundant and grandfathered tags.
	if preferred, ok := redundantTags[tag]; ok {
		tag = preferred
	}

	return rewriteSubtags(tag)
}

// regularizeCase lowercases the tag, then re-cases non-initial subtags:
// two-letter subtags become uppercase (regions, "en-CA") and four-letter
// subtags become titlecase (scripts, "az-Latn"). The pass stops at the
// first singleton other than "x", since extension subtags keep their
// lowercase form.
func regularizeCase(tag string) string {
	parts := strings.Split(strings.ToLower(tag), "-")
	for i := 1; i < len(parts); i++ {
		switch {
		case len(parts[i]) == 2:
			parts[i] = strings.ToUpper(parts[i])
		case len(parts[i]) == 4:
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		case len(parts[i]) == 1 && parts[i] != "x":
			return strings.Join(parts, "-")
		}
	}
	return strings.Join(parts, "-")
}

// sortExtensionSequences orders extension sequences into byte-wise ASCII
// order by singleton subtag (RFC 5646 section 4.5 step 1). With one or
// zero sequences the tag is returned unchanged.
func sortExtensionSequences(tag string) string {
	locs := reExtSequence.FindAllStringIndex(tag, -1)
	if len(locs) < 2 {
		return tag
	}

	seqs := make([]string, len(locs))
	for i, loc := range locs {
		seqs[i] = tag[loc[0]:loc[1]]
	}
	sort.Strings(seqs)

	// Valid tags keep extension sequences contiguous, so the sorted run
	// replaces the span from the first to the last original sequence.
	return tag[:locs[0][0]] + strings.Join(seqs, "") + tag[locs[len(locs)-1][1]:]
}

// rewriteSubtags replaces individual subtags by their preferred value
// (RFC 5646 section 4.5 step 3). A registered extlang is promoted to its
// preferred primary subtag, and the macrolanguage prefix preceding it is
// dropped when it matches the extlang's registered prefix.
func rewriteSubtags(tag string) string {
	parts := strings.Split(tag, "-")
	for i := 0; i < len(parts); i++ {
		if preferred, ok := redundantSubtags[parts[i]]; ok {
			parts[i] = preferred
			continue
		}
		if entry, ok := extlangPrefixes[parts[i]]; ok {
			parts[i] = entry.preferred
			if i == 1 && entry.prefix == parts[0] {
				parts = parts[1:]
				i--
			}
		}
	}
	return strings.Join(parts, "-")
}

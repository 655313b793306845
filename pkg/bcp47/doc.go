// Package bcp47 validates, canonicalizes and negotiates BCP-47 language
// tags as defined by RFC 5646, without consulting the full IANA registry.
//
// The package covers three concerns:
//
//   - Structural validation against the RFC 5646 section 2.1 ABNF grammar,
//     including rejection of duplicate variant and singleton subtags.
//   - Canonicalization per RFC 5646 section 4.5: case regularization,
//     extension-sequence reordering, and preferred-value rewrites for
//     redundant and grandfathered tags and subtags.
//   - Lookup matching per RFC 4647 section 3.4: progressive prefix
//     truncation of a requested priority list against an available set,
//     with Unicode extension sequences separated out before matching.
//
// Canonical tags are plain strings and are safe to use as map keys: two
// tags identify the same locale exactly when their canonical forms are
// byte-equal.
//
// # Basic Usage
//
//	if !bcp47.Validate("PT-br") {
//		// reject input
//	}
//	canonical := bcp47.Canonicalize("PT-br") // "pt-BR"
//
//	tag, err := bcp47.Parse("zh-cmn-Hans")
//	// tag.String() == "cmn-Hans"
//
// # Negotiation
//
//	res, ok := bcp47.Resolve(
//		[]string{"en", "en-US", "pt-BR"},
//		[]string{"en-US-u-co-phonebk"},
//		"en",
//	)
//	// res.DataLocale == "en-US", res.Extension == "-u-co-phonebk"
package bcp47

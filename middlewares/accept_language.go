package middlewares

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength caps header parsing to bound work on
// oversized Accept-Language values.
const maxAcceptLanguageLength = 4096

// weightedTag is one Accept-Language entry with its quality value.
type weightedTag struct {
	tag     string
	quality float64
}

// ParseAcceptLanguage parses an Accept-Language header into language
// tags ordered by descending quality. Wildcards and malformed quality
// values are skipped; a missing q defaults to 1.
//
// "en-US,en;q=0.9,pt;q=0.8" yields ["en-US", "en", "pt"].
func ParseAcceptLanguage(header string) []string {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var tags []weightedTag
	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		quality := 1.0
		langPart, qPart, hasQuality := strings.Cut(part, ";")
		langPart = strings.TrimSpace(langPart)

		if hasQuality {
			qPart = strings.TrimSpace(qPart)
			if strings.HasPrefix(qPart, "q=") {
				if q, err := strconv.ParseFloat(qPart[2:], 64); err == nil && q >= 0 && q <= 1 {
					quality = q
				}
			}
		}

		if langPart != "" && langPart != "*" {
			tags = append(tags, weightedTag{tag: langPart, quality: quality})
		}
	}

	slices.SortStableFunc(tags, func(a, b weightedTag) int {
		return cmp.Compare(b.quality, a.quality)
	})

	ordered := make([]string, len(tags))
	for i, t := range tags {
		ordered[i] = t.tag
	}
	return ordered
}

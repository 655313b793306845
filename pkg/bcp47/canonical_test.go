package bcp47_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/localekit/pkg/bcp47"
)

func TestCanonicalize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		// case regularization
		{"en", "en"},
		{"EN", "en"},
		{"en-us", "en-US"},
		{"PT-br", "pt-BR"},
		{"pt-BR", "pt-BR"},
		{"AZ-latn-az", "az-Latn-AZ"},
		{"sGn-Be-fR", "sfb"},
		// subtags after a true singleton keep lowercase; "x" does not
		// stop the re-casing pass
		{"en-CA-x-ca", "en-CA-x-CA"},
		{"AZ-LATN-X-LATN", "az-Latn-x-Latn"},
		{"en-u-ca-buddhist", "en-u-ca-buddhist"},
		// redundant and grandfathered whole tags
		{"no-bok", "nb"},
		{"No-Nyn", "nn"},
		{"art-lojban", "jbo"},
		{"i-klingon", "tlh"},
		{"zh-min-nan", "nan"},
		{"ZH-GUOYU", "cmn"},
		// deprecated subtags
		{"en-BU", "en-MM"},
		{"de-DD", "de-DE"},
		{"iw", "he"},
		{"in-ID", "id-ID"},
		// extlang promotion drops a redundant prefix
		{"zh-cmn", "cmn"},
		{"zh-cmn-Hans", "cmn-Hans"},
		{"zh-yue", "yue"},
		{"ar-afb", "afb"},
		// extension sequences sorted by singleton
		{"en-b-warble-a-babble", "en-a-babble-b-warble"},
		{"en-US-u-islamcal-a-myext", "en-US-a-myext-u-islamcal"},
		// private use untouched
		{"x-private-USE", "x-private-use"},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, bcp47.Canonicalize(tc.in))
		})
	}
}

func TestCanonicalizeIdempotent(t *testing.T) {
	t.Parallel()

	tags := []string{
		"en", "EN-us", "PT-br", "zh-cmn-Hans", "no-bok", "en-b-bbb-a-aaa",
		"az-latn-az", "en-BU", "sgn-BE-FR", "x-notes", "de-CH-1901",
	}
	for _, tag := range tags {
		t.Run(tag, func(t *testing.T) {
			t.Parallel()
			once := bcp47.Canonicalize(tag)
			assert.Equal(t, once, bcp47.Canonicalize(once))
		})
	}
}

func TestCanonicalizeCaseInvariance(t *testing.T) {
	t.Parallel()

	assert.Equal(t, bcp47.Canonicalize("pt-BR"), bcp47.Canonicalize("PT-br"))
	assert.Equal(t, bcp47.Canonicalize("AZ-LATN-AZ"), bcp47.Canonicalize("az-latn-az"))
}

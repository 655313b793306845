package bcp47_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/localekit/pkg/bcp47"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := []string{
		"en",
		"en-US",
		"pt-BR",
		"PT-br",
		"az-Latn",
		"az-Latn-AZ",
		"zh-cmn-Hans-CN",
		"sl-rozaj-biske",
		"de-CH-1901",
		"es-419",
		"en-US-u-islamcal",
		"zh-CN-a-myext-x-private",
		"x-whatever",
		"x-private-use",
		"en-a-myext-b-another",
		"i-default",
		"i-klingon",
		"sgn-BE-FR",
		"art-lojban",
		"no-bok",
		"zh-min-nan",
		"en-GB-oed",
		"hy-Latn-IT-arevela",
		"de-DE-u-co-phonebk",
	}
	for _, tag := range valid {
		t.Run("accepts "+tag, func(t *testing.T) {
			t.Parallel()
			assert.True(t, bcp47.Validate(tag))
		})
	}

	invalid := []string{
		"",
		"de-419-DE",       // region cannot follow region
		"a-DE",            // one-letter primary language
		"ar-a-aaa-b-bbb-a-ccc", // duplicate singleton
		"de-DE-1901-1901", // duplicate variant
		"en-",
		"-en",
		"en--US",
		"x",            // bare private-use singleton
		"i-notregistered",
		"toolongsubtag1",
		"en US",
		"f-Latn",
	}
	for _, tag := range invalid {
		name := tag
		if name == "" {
			name = "empty"
		}
		t.Run("rejects "+name, func(t *testing.T) {
			t.Parallel()
			assert.False(t, bcp47.Validate(tag))
		})
	}
}

func TestValidateDuplicates(t *testing.T) {
	t.Parallel()

	t.Run("duplicate variants rejected case-insensitively", func(t *testing.T) {
		t.Parallel()
		assert.False(t, bcp47.Validate("de-DE-1901-1901"))
		assert.False(t, bcp47.Validate("sl-rozaj-Rozaj"))
	})

	t.Run("duplicate singletons rejected", func(t *testing.T) {
		t.Parallel()
		assert.False(t, bcp47.Validate("en-a-bbb-a-ccc"))
	})

	t.Run("duplicates inside private use allowed", func(t *testing.T) {
		t.Parallel()
		assert.True(t, bcp47.Validate("en-a-bbb-x-a-ccc"))
		assert.True(t, bcp47.Validate("x-dupe-dupe"))
	})
}

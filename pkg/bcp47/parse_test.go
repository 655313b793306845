package bcp47_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit/pkg/bcp47"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("simple language", func(t *testing.T) {
		t.Parallel()
		tag, err := bcp47.Parse("en")
		require.NoError(t, err)
		assert.Equal(t, "en", tag.Language)
		assert.Equal(t, "en", tag.String())
	})

	t.Run("language and region", func(t *testing.T) {
		t.Parallel()
		tag, err := bcp47.Parse("PT-br")
		require.NoError(t, err)
		assert.Equal(t, "pt", tag.Language)
		assert.Equal(t, "BR", tag.Region)
		assert.Equal(t, "pt-BR", tag.String())
	})

	t.Run("full tag decomposes", func(t *testing.T) {
		t.Parallel()
		tag, err := bcp47.Parse("hy-Latn-IT-arevela")
		require.NoError(t, err)
		assert.Equal(t, "hy", tag.Language)
		assert.Equal(t, "Latn", tag.Script)
		assert.Equal(t, "IT", tag.Region)
		assert.Equal(t, []string{"arevela"}, tag.Variants)
	})

	t.Run("numeric region", func(t *testing.T) {
		t.Parallel()
		tag, err := bcp47.Parse("es-419")
		require.NoError(t, err)
		assert.Equal(t, "es", tag.Language)
		assert.Equal(t, "419", tag.Region)
	})

	t.Run("extensions and private use", func(t *testing.T) {
		t.Parallel()
		tag, err := bcp47.Parse("en-US-u-islamcal-x-notes")
		require.NoError(t, err)
		assert.Equal(t, "en", tag.Language)
		assert.Equal(t, "US", tag.Region)
		assert.Equal(t, []string{"u-islamcal"}, tag.Extensions)
		assert.Equal(t, []string{"notes"}, tag.PrivateUse)
	})

	t.Run("extlang promoted during canonicalization", func(t *testing.T) {
		t.Parallel()
		tag, err := bcp47.Parse("zh-cmn-Hans")
		require.NoError(t, err)
		assert.Equal(t, "cmn", tag.Language)
		assert.Equal(t, "Hans", tag.Script)
		assert.Equal(t, "cmn-Hans", tag.String())
	})

	t.Run("private use only", func(t *testing.T) {
		t.Parallel()
		tag, err := bcp47.Parse("x-whatever")
		require.NoError(t, err)
		assert.Empty(t, tag.Language)
		assert.Equal(t, []string{"whatever"}, tag.PrivateUse)
		assert.Equal(t, "x-whatever", tag.BaseLanguage())
	})

	t.Run("grandfathered without preferred value", func(t *testing.T) {
		t.Parallel()
		tag, err := bcp47.Parse("i-default")
		require.NoError(t, err)
		assert.True(t, tag.IsGrandfathered())
		assert.Equal(t, "i-default", tag.String())
	})

	t.Run("grandfathered with preferred value decomposes", func(t *testing.T) {
		t.Parallel()
		tag, err := bcp47.Parse("no-bok")
		require.NoError(t, err)
		assert.False(t, tag.IsGrandfathered())
		assert.Equal(t, "nb", tag.Language)
		assert.Equal(t, "nb", tag.String())
	})

	t.Run("empty tag", func(t *testing.T) {
		t.Parallel()
		_, err := bcp47.Parse("")
		require.ErrorIs(t, err, bcp47.ErrEmptyTag)
	})

	t.Run("malformed tag", func(t *testing.T) {
		t.Parallel()
		_, err := bcp47.Parse("not a tag")
		require.ErrorIs(t, err, bcp47.ErrMalformedTag)
	})

	t.Run("base language strips region", func(t *testing.T) {
		t.Parallel()
		tag, err := bcp47.Parse("pt-BR")
		require.NoError(t, err)
		assert.Equal(t, "pt", tag.BaseLanguage())
	})
}

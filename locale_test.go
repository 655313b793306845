package localekit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit"
	"github.com/dmitrymomot/localekit/pkg/langdata"
)

func TestParseLocale(t *testing.T) {
	t.Parallel()

	reg := langdata.NewRegistry()

	t.Run("canonicalizes the tag", func(t *testing.T) {
		t.Parallel()
		l, err := localekit.ParseLocale(reg, "PT-br")
		require.NoError(t, err)
		assert.Equal(t, "pt-BR", l.Code())
		assert.Equal(t, "pt", l.Language())
	})

	t.Run("display metadata", func(t *testing.T) {
		t.Parallel()
		l, err := localekit.ParseLocale(reg, "pt-BR")
		require.NoError(t, err)
		assert.Equal(t, "Português", l.NativeName())
		assert.Equal(t, "Portuguese", l.UniversalName())
		assert.Equal(t, langdata.LeftToRight, l.Direction())

		country, ok := l.Country()
		require.True(t, ok)
		assert.Equal(t, "Brazil", country.Name())
		assert.Equal(t, "BRA", country.Alpha3())

		assert.Equal(t, "Português (Brazil)", l.String())
	})

	t.Run("no region means no country", func(t *testing.T) {
		t.Parallel()
		l, err := localekit.ParseLocale(reg, "pt")
		require.NoError(t, err)
		_, ok := l.Country()
		assert.False(t, ok)
		assert.Equal(t, "Português", l.String())
	})

	t.Run("rtl language", func(t *testing.T) {
		t.Parallel()
		l, err := localekit.ParseLocale(reg, "ar-EG")
		require.NoError(t, err)
		assert.Equal(t, langdata.RightToLeft, l.Direction())
	})

	t.Run("malformed tag", func(t *testing.T) {
		t.Parallel()
		_, err := localekit.ParseLocale(reg, "not a tag")
		require.Error(t, err)
	})

	t.Run("unknown language", func(t *testing.T) {
		t.Parallel()
		_, err := localekit.ParseLocale(reg, "zz-ZZ")
		require.ErrorIs(t, err, localekit.ErrUnknownLanguage)
	})
}

package langdata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit/pkg/langdata"
)

func TestRegistryLanguages(t *testing.T) {
	t.Parallel()

	reg := langdata.NewRegistry()

	t.Run("known language", func(t *testing.T) {
		t.Parallel()
		assert.True(t, reg.KnownLanguage("pt"))
		assert.True(t, reg.KnownLanguage("en"))
		assert.True(t, reg.KnownLanguage("ja"))
	})

	t.Run("unknown language", func(t *testing.T) {
		t.Parallel()
		assert.False(t, reg.KnownLanguage("zz"))
		assert.False(t, reg.KnownLanguage(""))
		assert.False(t, reg.KnownLanguage("not-a-subtag"))
	})

	t.Run("universal name", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Portuguese", reg.UniversalName("pt"))
		assert.Equal(t, "English", reg.UniversalName("en"))
		assert.Empty(t, reg.UniversalName("zz"))
	})

	t.Run("native name is titlecased", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Português", reg.NativeName("pt"))
		assert.Equal(t, "English", reg.NativeName("en"))
	})
}

func TestRegistryDirection(t *testing.T) {
	t.Parallel()

	reg := langdata.NewRegistry()

	assert.Equal(t, langdata.RightToLeft, reg.Direction("ar"))
	assert.Equal(t, langdata.RightToLeft, reg.Direction("he"))
	assert.Equal(t, langdata.LeftToRight, reg.Direction("en"))
	// unknown languages default to left-to-right
	assert.Equal(t, langdata.LeftToRight, reg.Direction("zz"))
}

func TestRegistryCountry(t *testing.T) {
	t.Parallel()

	reg := langdata.NewRegistry()

	t.Run("alpha-2 code", func(t *testing.T) {
		t.Parallel()
		c, ok := reg.Country("BR")
		require.True(t, ok)
		assert.Equal(t, "Brazil", c.Name())
		assert.Equal(t, "BR", c.Alpha2())
		assert.Equal(t, "BRA", c.Alpha3())
	})

	t.Run("alpha-3 code", func(t *testing.T) {
		t.Parallel()
		c, ok := reg.Country("BRA")
		require.True(t, ok)
		assert.Equal(t, "BR", c.Alpha2())
	})

	t.Run("case-insensitive", func(t *testing.T) {
		t.Parallel()
		c, ok := reg.Country("br")
		require.True(t, ok)
		assert.Equal(t, "Brazil", c.Name())
	})

	t.Run("unknown code", func(t *testing.T) {
		t.Parallel()
		_, ok := reg.Country("XZ")
		assert.False(t, ok)
	})
}

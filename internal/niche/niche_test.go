package niche

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogShape(t *testing.T) {
	assert.Len(t, Keywords, 10)
	assert.Len(t, Regions, 10)

	for name, kws := range Keywords {
		assert.GreaterOrEqual(t, len(kws), 4, "niche %q has too few keywords", name)
		assert.LessOrEqual(t, len(kws), 6, "niche %q has too many keywords", name)
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	assert.Len(t, names, len(Keywords))
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i])
	}
}

func TestKeywordsFor(t *testing.T) {
	kws := KeywordsFor("Gaming & Tech")
	assert.Equal(t, []string{
		"gaming shorts",
		"tech facts",
		"game tips shorts",
		"tech news shorts",
		"gaming moments",
	}, kws)

	// Mutating the copy must not touch the catalog.
	kws[0] = "changed"
	assert.Equal(t, "gaming shorts", Keywords["Gaming & Tech"][0])

	assert.Nil(t, KeywordsFor("No Such Niche"))
}

func TestIsSupportedRegion(t *testing.T) {
	assert.True(t, IsSupportedRegion("US"))
	assert.True(t, IsSupportedRegion("JP"))
	assert.False(t, IsSupportedRegion("ZZ"))
	assert.False(t, IsSupportedRegion("us"))
}

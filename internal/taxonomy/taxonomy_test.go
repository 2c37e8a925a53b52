package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultReturnsSharedInstance(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestCompoundIngredientsPrecedeParents(t *testing.T) {
	tax := Default()
	pos := make(map[string]int, len(tax.Ingredients))
	for i, term := range tax.Ingredients {
		pos[term.Canonical] = i
	}
	for _, term := range tax.Ingredients {
		for _, parent := range term.Suppresses {
			parentPos, ok := pos[parent]
			if !ok {
				continue
			}
			assert.Less(t, pos[term.Canonical], parentPos,
				"%s must be listed before %s", term.Canonical, parent)
		}
	}
}

func TestChickenBrothGuard(t *testing.T) {
	tax := Default()
	assert.False(t, tax.AllowedBy("chicken", "soup with chicken broth"))
	assert.True(t, tax.AllowedBy("chicken", "chicken soup with chicken broth"))
	assert.True(t, tax.AllowedBy("chicken", "chicken pasta"))
}

func TestSweetPotatoGuard(t *testing.T) {
	tax := Default()
	assert.False(t, tax.AllowedBy("sweet", "sweet potato soup"))
	assert.True(t, tax.AllowedBy("sweet", "sweet and sour sweet potato"))
}

func TestUnknownCanonicalAlwaysAllowed(t *testing.T) {
	assert.True(t, Default().AllowedBy("garlic", "anything at all"))
}

func TestSurfacesFor(t *testing.T) {
	tax := Default()
	assert.Contains(t, tax.SurfacesFor("pasta"), "spaghetti")
	assert.Nil(t, tax.SurfacesFor("unobtainium"))
}

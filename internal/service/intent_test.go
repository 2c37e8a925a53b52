package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/culinate/recipe-engine/internal/taxonomy"
)

func newExtractor() *IntentExtractor {
	return NewIntentExtractor(taxonomy.Default())
}

func TestExtractPreferencesChickenPasta(t *testing.T) {
	prefs := newExtractor().ExtractPreferences("chicken pasta")
	assert.Contains(t, prefs.Ingredients, "chicken")
	assert.Contains(t, prefs.Ingredients, "pasta")
}

func TestCompoundSuppressesParent(t *testing.T) {
	prefs := newExtractor().ExtractPreferences("sweet potato soup")
	assert.Contains(t, prefs.Ingredients, "sweet_potato")
	assert.NotContains(t, prefs.Ingredients, "potato")
}

func TestSweetPotatoDoesNotTriggerSweetMood(t *testing.T) {
	prefs := newExtractor().ExtractPreferences("sweet potato soup")
	assert.NotEqual(t, "sweet", prefs.Mood)
}

func TestSweetMoodStillFiresOnItsOwn(t *testing.T) {
	prefs := newExtractor().ExtractPreferences("something sweet for dessert")
	assert.Equal(t, "sweet", prefs.Mood)
}

func TestChickenBrothAloneDoesNotRegisterChicken(t *testing.T) {
	prefs := newExtractor().ExtractPreferences("vegetable soup with chicken broth")
	assert.NotContains(t, prefs.Ingredients, "chicken")
}

func TestChickenPlusBrothStillRegisters(t *testing.T) {
	prefs := newExtractor().ExtractPreferences("chicken soup with chicken broth")
	assert.Contains(t, prefs.Ingredients, "chicken")
}

func TestSingleCuisineFirstHitWins(t *testing.T) {
	// "tacos" sits earlier in the cuisine priority order than "teriyaki".
	prefs := newExtractor().ExtractPreferences("teriyaki tacos")
	assert.Equal(t, "mexican", prefs.Cuisine)
}

func TestIngredientsOrderedAndDeduplicated(t *testing.T) {
	prefs := newExtractor().ExtractPreferences("chicken chicken pasta with more chicken")
	count := 0
	for _, ing := range prefs.Ingredients {
		if ing == "chicken" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestExtractPreferencesPure(t *testing.T) {
	e := newExtractor()
	text := "quick one pot sweet potato curry for a weeknight dinner"
	first := e.ExtractPreferences(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, e.ExtractPreferences(text))
	}
}

func TestNoMatchLeavesFieldsEmpty(t *testing.T) {
	prefs := newExtractor().ExtractPreferences("xyzzy plugh")
	assert.True(t, prefs.IsEmpty())
}

func TestCategoricalAxes(t *testing.T) {
	prefs := newExtractor().ExtractPreferences("cozy slow cooker dinner for the holiday weekend")
	assert.Equal(t, "dinner", prefs.MealType)
	assert.Equal(t, "slow_cooked", prefs.CookingMethod)
	assert.Equal(t, "holiday", prefs.Occasion)
	assert.Equal(t, "comfort", prefs.Mood)
}

func TestCookingStylesAreAFlagSet(t *testing.T) {
	prefs := newExtractor().ExtractPreferences("easy one pot meal prep ideas")
	assert.Contains(t, prefs.CookingStyles, "easy")
	assert.Contains(t, prefs.CookingStyles, "one_pot")
	assert.Contains(t, prefs.CookingStyles, "meal_prep")
}

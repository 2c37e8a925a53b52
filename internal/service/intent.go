package service

import (
	"strings"

	"github.com/culinate/recipe-engine/internal/taxonomy"
)

// IntentExtractor turns free text into structured Preferences by matching
// against the shared taxonomy. It holds no mutable state; extraction is
// pure and deterministic.
type IntentExtractor struct {
	tax *taxonomy.Taxonomy
}

// NewIntentExtractor creates an extractor over the given taxonomy.
func NewIntentExtractor(tax *taxonomy.Taxonomy) *IntentExtractor {
	return &IntentExtractor{tax: tax}
}

// ExtractPreferences matches the text against every taxonomy category.
// Matching is case-insensitive substring containment. Compound ingredients
// are scanned before their generic parents and suppress them; guards are
// evaluated before any term can match. A no-match on an axis leaves the
// field empty, never errors.
func (e *IntentExtractor) ExtractPreferences(text string) Preferences {
	lower := strings.ToLower(text)
	prefs := Preferences{}

	suppressed := make(map[string]bool)
	seen := make(map[string]bool)
	for _, term := range e.tax.Ingredients {
		if suppressed[term.Canonical] || seen[term.Canonical] {
			continue
		}
		if !containsAny(lower, term.Surfaces) {
			continue
		}
		if !e.tax.AllowedBy(term.Canonical, lower) {
			continue
		}
		seen[term.Canonical] = true
		prefs.Ingredients = append(prefs.Ingredients, term.Canonical)
		for _, parent := range term.Suppresses {
			suppressed[parent] = true
		}
	}

	prefs.Cuisine = e.firstMatch(lower, e.tax.Cuisines)
	prefs.MealType = e.firstMatch(lower, e.tax.MealTypes)
	prefs.CookingMethod = e.firstMatch(lower, e.tax.CookingMethods)
	prefs.TimeConstraint = e.firstMatch(lower, e.tax.TimeConstraints)
	prefs.Occasion = e.firstMatch(lower, e.tax.Occasions)
	prefs.Mood = e.firstMatch(lower, e.tax.Moods)

	for _, term := range e.tax.CookingStyles {
		if containsAny(lower, term.Surfaces) && e.tax.AllowedBy(term.Canonical, lower) {
			prefs.CookingStyles = append(prefs.CookingStyles, term.Canonical)
		}
	}

	return prefs
}

// firstMatch resolves a single-value axis: the first term in priority order
// with a surface-form hit wins. Never scored.
func (e *IntentExtractor) firstMatch(lower string, terms []taxonomy.Term) string {
	for _, term := range terms {
		if containsAny(lower, term.Surfaces) && e.tax.AllowedBy(term.Canonical, lower) {
			return term.Canonical
		}
	}
	return ""
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}

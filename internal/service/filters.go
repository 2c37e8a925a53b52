package service

import "strings"

// Keyword groups for filter extraction. Independent of the preference
// taxonomy: these map straight to the store's structured columns.
var (
	quickEasyKeywords = []string{"quick", "fast", "easy", "weeknight", "speedy", "in a hurry"}
	onePotKeywords    = []string{"one pot", "one-pot", "one pan", "skillet"}
	kidKeywords       = []string{"kid", "kids", "family", "mild"}
	leftoverKeywords  = []string{"leftover", "leftovers", "meal prep", "meal-prep", "batch cook"}

	// Ordered: the first group with a hit sets the meal role.
	mealRoleKeywords = []struct {
		role     string
		keywords []string
	}{
		{"breakfast", []string{"breakfast", "brunch"}},
		{"lunch", []string{"lunch"}},
		{"dinner", []string{"dinner", "supper"}},
		{"dessert", []string{"dessert"}},
		{"snack", []string{"snack", "appetizer"}},
	}
)

// quickMealMaxMinutes is the implied ceiling when the text asks for
// something quick or easy.
const quickMealMaxMinutes = 30

// ExtractFilters derives hard constraints from free text. It is independent
// of preference extraction and never errors; text with no filter keywords
// yields the zero value.
func ExtractFilters(text string) IntelligenceFilters {
	lower := strings.ToLower(text)
	filters := IntelligenceFilters{}

	if containsAny(lower, quickEasyKeywords) {
		filters.MaxTimeMinutes = quickMealMaxMinutes
		filters.IsEasy = true
	}
	for _, group := range mealRoleKeywords {
		if containsAny(lower, group.keywords) {
			filters.MealRole = group.role
			break
		}
	}
	if containsAny(lower, onePotKeywords) {
		filters.IsOnePot = true
	}
	if containsAny(lower, kidKeywords) {
		filters.KidFriendly = true
	}
	if containsAny(lower, leftoverKeywords) {
		filters.LeftoverFriendly = true
	}

	return filters
}

// MergeFilters overlays caller-supplied values on text-derived ones.
// Supplied values always win, including explicit zeroes.
func MergeFilters(overrides *FilterOverrides, derived IntelligenceFilters) IntelligenceFilters {
	if overrides == nil {
		return derived
	}
	merged := derived
	if overrides.MealRole != nil {
		merged.MealRole = *overrides.MealRole
	}
	if overrides.MaxTimeMinutes != nil {
		merged.MaxTimeMinutes = *overrides.MaxTimeMinutes
	}
	if overrides.IsEasy != nil {
		merged.IsEasy = *overrides.IsEasy
	}
	if overrides.IsOnePot != nil {
		merged.IsOnePot = *overrides.IsOnePot
	}
	if overrides.KidFriendly != nil {
		merged.KidFriendly = *overrides.KidFriendly
	}
	if overrides.LeftoverFriendly != nil {
		merged.LeftoverFriendly = *overrides.LeftoverFriendly
	}
	return merged
}

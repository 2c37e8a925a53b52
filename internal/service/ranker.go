package service

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// rankAndExplain derives recipe types, scores candidates against the pantry
// and attaches explanation clauses. Sorting is stable: pantry ties keep
// retrieval order. Truncation to the requested limit happens in the caller,
// after verification and fallback.
func (s *SearchService) rankAndExplain(candidates []RecipeCandidate, prefs Preferences, filters IntelligenceFilters, pantry []string, explain bool) []RecipeCandidate {
	for i := range candidates {
		candidates[i].RecipeTypes = deriveRecipeTypes(candidates[i])
	}

	if len(pantry) > 0 {
		for i := range candidates {
			pct := pantryMatchPercent(candidates[i].Ingredients, pantry)
			candidates[i].PantryMatch = &pct
		}
		sort.SliceStable(candidates, func(i, j int) bool {
			return *candidates[i].PantryMatch > *candidates[j].PantryMatch
		})
	}

	if explain {
		for i := range candidates {
			candidates[i].Explanations = s.explain(candidates[i], prefs)
		}
	}
	return candidates
}

// pantryMatchPercent is matched ingredients over total, as a percentage
// rounded to one decimal. An ingredient line counts as matched when any
// pantry item appears in it.
func pantryMatchPercent(ingredients []string, pantry []string) float64 {
	if len(ingredients) == 0 {
		return 0
	}
	normalized := make([]string, 0, len(pantry))
	for _, item := range pantry {
		item = strings.ToLower(strings.TrimSpace(item))
		if item != "" {
			normalized = append(normalized, item)
		}
	}
	matched := 0
	for _, line := range ingredients {
		lower := strings.ToLower(line)
		for _, item := range normalized {
			if strings.Contains(lower, item) {
				matched++
				break
			}
		}
	}
	return math.Round(float64(matched)/float64(len(ingredients))*1000) / 10
}

// deriveRecipeTypes tags a candidate from its structured columns.
func deriveRecipeTypes(c RecipeCandidate) []string {
	var types []string
	if c.TotalMinutes > 0 && c.TotalMinutes <= quickMealMaxMinutes {
		types = append(types, "quick")
	}
	if c.IsEasy {
		types = append(types, "easy")
	}
	if c.IsOnePot {
		types = append(types, "one-pot")
	}
	if c.KidFriendly {
		types = append(types, "kid-friendly")
	}
	if c.LeftoverFriendly {
		types = append(types, "leftover-friendly")
	}
	if c.MealRole != "" {
		types = append(types, c.MealRole)
	}
	return types
}

// explain builds additive clauses from fields already on the candidate.
// Missing optional fields simply omit their clause.
func (s *SearchService) explain(c RecipeCandidate, prefs Preferences) []string {
	var clauses []string
	if c.TotalMinutes > 0 {
		clauses = append(clauses, fmt.Sprintf("ready in %d minutes", c.TotalMinutes))
	}
	if c.IsOnePot {
		clauses = append(clauses, "made in one pot")
	}
	if c.KidFriendly {
		clauses = append(clauses, "kid-friendly")
	}
	if c.LeftoverFriendly {
		clauses = append(clauses, "keeps well as leftovers")
	}
	if c.MealRole != "" {
		clauses = append(clauses, "works as "+c.MealRole)
	}
	if matched := s.matchedIngredientNames(c, prefs.Ingredients); len(matched) > 0 {
		clauses = append(clauses, "uses "+strings.Join(matched, ", "))
	}
	if c.PantryMatch != nil {
		clauses = append(clauses, fmt.Sprintf("%.1f%% of ingredients in your pantry", *c.PantryMatch))
	}
	return clauses
}

// matchedIngredientNames reports which requested ingredients this recipe
// actually contains, by surface form, in readable form.
func (s *SearchService) matchedIngredientNames(c RecipeCandidate, ingredients []string) []string {
	haystack := strings.ToLower(c.Title + " " + strings.Join(c.Ingredients, " "))
	var matched []string
	for _, canonical := range ingredients {
		if containsAny(haystack, s.intent.tax.SurfacesFor(canonical)) {
			matched = append(matched, strings.ReplaceAll(canonical, "_", " "))
		}
	}
	return matched
}

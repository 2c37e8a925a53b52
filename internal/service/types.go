package service

import (
	"time"

	"github.com/culinate/recipe-engine/internal/model"
)

// Preferences is the structured inference of what the user wants, derived
// from free text. Empty fields mean the text gave no signal on that axis.
type Preferences struct {
	Ingredients    []string `json:"ingredients,omitempty"`
	Cuisine        string   `json:"cuisine,omitempty"`
	CookingStyles  []string `json:"cooking_styles,omitempty"`
	MealType       string   `json:"meal_type,omitempty"`
	CookingMethod  string   `json:"cooking_method,omitempty"`
	TimeConstraint string   `json:"time_constraint,omitempty"`
	Occasion       string   `json:"occasion,omitempty"`
	Mood           string   `json:"mood,omitempty"`
}

// IsEmpty reports whether no axis produced a signal.
func (p Preferences) IsEmpty() bool {
	return len(p.Ingredients) == 0 && p.Cuisine == "" && len(p.CookingStyles) == 0 &&
		p.MealType == "" && p.CookingMethod == "" && p.TimeConstraint == "" &&
		p.Occasion == "" && p.Mood == ""
}

// IntelligenceFilters are the hard constraints applied during retrieval,
// distinct from Preferences. Zero values mean "not constrained".
type IntelligenceFilters struct {
	MealRole         string `json:"meal_role,omitempty"`
	MaxTimeMinutes   int    `json:"max_time,omitempty"`
	IsEasy           bool   `json:"is_easy,omitempty"`
	IsOnePot         bool   `json:"is_one_pot,omitempty"`
	KidFriendly      bool   `json:"kid_friendly,omitempty"`
	LeftoverFriendly bool   `json:"leftover_friendly,omitempty"`
}

// IsZero reports whether no constraint is set.
func (f IntelligenceFilters) IsZero() bool {
	return f == IntelligenceFilters{}
}

// FilterOverrides carries caller-supplied filter values. Pointer fields
// distinguish "not supplied" from an explicit zero; supplied values always
// win over text-derived ones.
type FilterOverrides struct {
	MealRole         *string `json:"meal_role,omitempty"`
	MaxTimeMinutes   *int    `json:"max_time,omitempty"`
	IsEasy           *bool   `json:"is_easy,omitempty"`
	IsOnePot         *bool   `json:"is_one_pot,omitempty"`
	KidFriendly      *bool   `json:"kid_friendly,omitempty"`
	LeftoverFriendly *bool   `json:"leftover_friendly,omitempty"`
}

// SessionState is the per-session memory: which recipes this session has
// already been shown, and what it last asked for.
type SessionState struct {
	ID              string
	ShownRecipeIDs  []int64
	LastPreferences *Preferences
	LastInteraction time.Time
}

// RecipeCandidate is a transient, per-call view of a recipe enriched with
// derived types, an optional pantry score and optional explanations.
type RecipeCandidate struct {
	model.Recipe
	RecipeTypes  []string `json:"recipe_types,omitempty"`
	PantryMatch  *float64 `json:"pantry_match,omitempty"`
	Explanations []string `json:"explanations,omitempty"`
}

// SearchRequest is the engine's input contract.
type SearchRequest struct {
	Query               string
	SessionID           string
	Filters             *FilterOverrides
	ExcludeIDs          []int64
	Limit               int
	IncludeExplanations bool
	UserPantry          []string
}

// FiltersApplied reports what actually constrained the result set, plus the
// fallback flags: FallbackUsed means at least one relaxation rung ran, and
// ExclusionsRemoved means the exclusion set had to be cleared as well.
type FiltersApplied struct {
	Ingredients       []string `json:"ingredients,omitempty"`
	Cuisine           string   `json:"cuisine,omitempty"`
	MealRole          string   `json:"meal_role,omitempty"`
	MaxTimeMinutes    int      `json:"max_time,omitempty"`
	IsEasy            bool     `json:"is_easy,omitempty"`
	IsOnePot          bool     `json:"is_one_pot,omitempty"`
	KidFriendly       bool     `json:"kid_friendly,omitempty"`
	LeftoverFriendly  bool     `json:"leftover_friendly,omitempty"`
	FallbackUsed      bool     `json:"fallback_used,omitempty"`
	ExclusionsRemoved bool     `json:"exclusions_removed,omitempty"`
}

// SearchMetadata describes how the search was executed.
type SearchMetadata struct {
	Query               string `json:"query"`
	HasSessionMemory    bool   `json:"has_session_memory"`
	HasPantryData       bool   `json:"has_pantry_data"`
	IntelligenceEnabled bool   `json:"intelligence_enabled"`
	ExplanationMode     bool   `json:"explanation_mode"`
}

// SearchResult is the assembled output of one search call.
type SearchResult struct {
	Recipes        []RecipeCandidate `json:"recipes"`
	FiltersApplied FiltersApplied    `json:"filters_applied"`
	Metadata       SearchMetadata    `json:"search_metadata"`
	SessionID      string            `json:"session_id"`
}

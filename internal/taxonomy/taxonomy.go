// Package taxonomy holds the static keyword tables the intent extractor
// matches free text against. The tables are built once at process start and
// never mutated; consumers share the same instance.
package taxonomy

import "strings"

// Term maps a canonical name to the surface forms that signal it in free
// text. Order within a category is significant: compound terms are listed
// before the generic parents they suppress, and the first cuisine hit wins.
type Term struct {
	Canonical string
	Surfaces  []string
	// Suppresses lists canonical names that must not co-occur with this
	// term in a single query (e.g. "sweet_potato" suppresses "potato").
	Suppresses []string
}

// Guard is an override predicate evaluated for a canonical term before the
// generic substring scan. Returning false vetoes the match even when a
// surface form is present. Guards are ordered and additive.
type Guard struct {
	Canonical string
	Allow     func(text string) bool
}

// Taxonomy is the full keyword table set. Category slices are ordered by
// match priority.
type Taxonomy struct {
	Ingredients     []Term
	Cuisines        []Term
	MealTypes       []Term
	CookingMethods  []Term
	TimeConstraints []Term
	Occasions       []Term
	Moods           []Term
	CookingStyles   []Term
	Guards          []Guard
}

var shared = build()

// Default returns the process-wide taxonomy.
func Default() *Taxonomy {
	return shared
}

// SurfacesFor returns the surface forms of an ingredient canonical, or nil
// when the canonical is unknown.
func (t *Taxonomy) SurfacesFor(canonical string) []string {
	for _, term := range t.Ingredients {
		if term.Canonical == canonical {
			return term.Surfaces
		}
	}
	return nil
}

func build() *Taxonomy {
	return &Taxonomy{
		Ingredients: []Term{
			// Compounds first so they win over their generic parents.
			{Canonical: "sweet_potato", Surfaces: []string{"sweet potato", "sweet potatoes", "yam", "yams"}, Suppresses: []string{"potato"}},
			{Canonical: "green_onion", Surfaces: []string{"green onion", "green onions", "scallion", "scallions", "spring onion"}, Suppresses: []string{"onion"}},
			{Canonical: "coconut_milk", Surfaces: []string{"coconut milk", "coconut cream"}, Suppresses: []string{"milk"}},
			{Canonical: "peanut_butter", Surfaces: []string{"peanut butter"}, Suppresses: []string{"butter", "peanut"}},
			{Canonical: "ground_beef", Surfaces: []string{"ground beef", "minced beef", "hamburger meat"}, Suppresses: []string{"beef"}},

			{Canonical: "chicken", Surfaces: []string{"chicken", "chicken breast", "chicken thigh", "chicken thighs"}},
			{Canonical: "beef", Surfaces: []string{"beef", "steak", "brisket"}},
			{Canonical: "pork", Surfaces: []string{"pork", "bacon", "ham", "sausage"}},
			{Canonical: "salmon", Surfaces: []string{"salmon"}},
			{Canonical: "shrimp", Surfaces: []string{"shrimp", "prawn", "prawns"}},
			{Canonical: "tofu", Surfaces: []string{"tofu", "bean curd"}},
			{Canonical: "pasta", Surfaces: []string{"pasta", "spaghetti", "penne", "noodle", "noodles", "linguine", "fettuccine", "macaroni"}},
			{Canonical: "rice", Surfaces: []string{"rice", "risotto", "fried rice"}},
			{Canonical: "potato", Surfaces: []string{"potato", "potatoes"}},
			{Canonical: "onion", Surfaces: []string{"onion", "onions"}},
			{Canonical: "garlic", Surfaces: []string{"garlic"}},
			{Canonical: "tomato", Surfaces: []string{"tomato", "tomatoes", "marinara"}},
			{Canonical: "mushroom", Surfaces: []string{"mushroom", "mushrooms"}},
			{Canonical: "spinach", Surfaces: []string{"spinach"}},
			{Canonical: "broccoli", Surfaces: []string{"broccoli"}},
			{Canonical: "cheese", Surfaces: []string{"cheese", "cheddar", "mozzarella", "parmesan", "feta"}},
			{Canonical: "egg", Surfaces: []string{"egg", "eggs", "omelet", "omelette", "frittata"}},
			{Canonical: "beans", Surfaces: []string{"beans", "black bean", "chickpea", "chickpeas", "lentil", "lentils"}},
			{Canonical: "milk", Surfaces: []string{"milk", "cream"}},
			{Canonical: "butter", Surfaces: []string{"butter"}},
			{Canonical: "peanut", Surfaces: []string{"peanut", "peanuts"}},
		},
		Cuisines: []Term{
			// Fixed priority order: the first entry with a surface-form
			// hit wins, so broad cuisines sit above narrow ones.
			{Canonical: "italian", Surfaces: []string{"italian", "parmesan", "risotto", "lasagna", "carbonara"}},
			{Canonical: "mexican", Surfaces: []string{"mexican", "taco", "tacos", "burrito", "enchilada", "quesadilla", "salsa"}},
			{Canonical: "chinese", Surfaces: []string{"chinese", "stir fry", "stir-fry", "soy sauce", "lo mein"}},
			{Canonical: "indian", Surfaces: []string{"indian", "curry", "masala", "tikka", "dal"}},
			{Canonical: "thai", Surfaces: []string{"thai", "pad thai", "coconut curry"}},
			{Canonical: "japanese", Surfaces: []string{"japanese", "teriyaki", "sushi", "ramen", "miso"}},
			{Canonical: "mediterranean", Surfaces: []string{"mediterranean", "greek", "hummus", "tzatziki"}},
			{Canonical: "french", Surfaces: []string{"french", "ratatouille", "coq au vin"}},
			{Canonical: "american", Surfaces: []string{"american", "bbq", "barbecue", "burger", "burgers"}},
		},
		MealTypes: []Term{
			{Canonical: "breakfast", Surfaces: []string{"breakfast", "brunch", "morning"}},
			{Canonical: "lunch", Surfaces: []string{"lunch", "midday"}},
			{Canonical: "dinner", Surfaces: []string{"dinner", "supper", "tonight"}},
			{Canonical: "dessert", Surfaces: []string{"dessert", "cake", "cookie", "cookies", "treat"}},
			{Canonical: "snack", Surfaces: []string{"snack", "snacks", "appetizer", "finger food"}},
		},
		CookingMethods: []Term{
			{Canonical: "slow_cooked", Surfaces: []string{"slow cooker", "slow-cooked", "slow cooked", "crockpot", "crock pot"}},
			{Canonical: "pressure_cooked", Surfaces: []string{"instant pot", "pressure cooker"}},
			{Canonical: "grilled", Surfaces: []string{"grill", "grilled", "grilling"}},
			{Canonical: "baked", Surfaces: []string{"bake", "baked", "baking", "oven"}},
			{Canonical: "roasted", Surfaces: []string{"roast", "roasted", "roasting"}},
			{Canonical: "fried", Surfaces: []string{"fried", "pan-fried", "deep fried"}},
			{Canonical: "steamed", Surfaces: []string{"steam", "steamed"}},
			{Canonical: "no_cook", Surfaces: []string{"no cook", "no-cook", "raw"}},
		},
		TimeConstraints: []Term{
			{Canonical: "quick", Surfaces: []string{"quick", "fast", "speedy", "in a hurry", "30 minutes", "under 30", "15 minutes"}},
			{Canonical: "slow", Surfaces: []string{"all day", "low and slow", "weekend project"}},
		},
		Occasions: []Term{
			{Canonical: "weeknight", Surfaces: []string{"weeknight", "weekday", "after work"}},
			{Canonical: "party", Surfaces: []string{"party", "crowd", "entertaining", "potluck", "game day"}},
			{Canonical: "holiday", Surfaces: []string{"holiday", "thanksgiving", "christmas", "festive"}},
			{Canonical: "date_night", Surfaces: []string{"date night", "romantic", "anniversary"}},
			{Canonical: "weekend", Surfaces: []string{"weekend", "sunday", "saturday"}},
		},
		Moods: []Term{
			{Canonical: "comfort", Surfaces: []string{"comfort", "comforting", "cozy", "hearty", "warming"}},
			{Canonical: "healthy", Surfaces: []string{"healthy", "light", "fresh", "nutritious", "clean eating"}},
			{Canonical: "indulgent", Surfaces: []string{"indulgent", "decadent", "rich"}},
			{Canonical: "spicy", Surfaces: []string{"spicy", "fiery", "hot and spicy"}},
			{Canonical: "sweet", Surfaces: []string{"sweet", "sugary"}},
		},
		CookingStyles: []Term{
			{Canonical: "one_pot", Surfaces: []string{"one pot", "one-pot", "single pot", "skillet", "sheet pan", "sheet-pan"}},
			{Canonical: "meal_prep", Surfaces: []string{"meal prep", "meal-prep", "batch cook", "batch cooking", "make ahead"}},
			{Canonical: "kid_friendly", Surfaces: []string{"kid friendly", "kid-friendly", "kids", "family friendly", "family-friendly", "picky eater"}},
			{Canonical: "budget", Surfaces: []string{"budget", "cheap", "inexpensive", "affordable"}},
			{Canonical: "easy", Surfaces: []string{"easy", "simple", "beginner", "effortless"}},
		},
		Guards: []Guard{
			// "chicken broth"/"chicken stock" as a pantry item should not
			// register a chicken preference unless chicken shows up on its
			// own elsewhere in the text.
			{Canonical: "chicken", Allow: func(text string) bool {
				stripped := strings.ReplaceAll(text, "chicken broth", "")
				stripped = strings.ReplaceAll(stripped, "chicken stock", "")
				return strings.Contains(stripped, "chicken")
			}},
			// "sweet potato" must not light up the "sweet" flavor tag.
			{Canonical: "sweet", Allow: func(text string) bool {
				stripped := strings.ReplaceAll(text, "sweet potato", "")
				stripped = strings.ReplaceAll(stripped, "sweet potatoes", "")
				return strings.Contains(stripped, "sweet")
			}},
		},
	}
}

// AllowedBy runs the guard list for a canonical term. Terms without a guard
// are always allowed.
func (t *Taxonomy) AllowedBy(canonical, text string) bool {
	for _, g := range t.Guards {
		if g.Canonical == canonical {
			return g.Allow(text)
		}
	}
	return true
}

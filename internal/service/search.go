package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/culinate/recipe-engine/internal/model"
	"github.com/culinate/recipe-engine/internal/store"
	"github.com/culinate/recipe-engine/internal/taxonomy"
)

// DefaultSearchLimit is the result count when the caller does not ask for
// a specific limit.
const DefaultSearchLimit = 10

// DefaultSearchLimitCeiling caps the store-side scan size regardless of how
// large the exclusion set grows.
const DefaultSearchLimitCeiling = 100

// SearchService is the recipe search engine: it extracts intent and filters
// from the query text, retrieves candidates from the store with progressive
// batch sizing, relaxes constraints when retrieval starves, ranks against
// the pantry and assembles the response.
type SearchService struct {
	recipes      store.RecipeStore
	sessions     SessionStore
	intent       *IntentExtractor
	logger       *zap.Logger
	defaultLimit int
	limitCeiling int
}

// SearchOption configures a SearchService.
type SearchOption func(*SearchService)

// WithDefaultLimit sets the result count used when a request has no limit.
func WithDefaultLimit(n int) SearchOption {
	return func(s *SearchService) {
		if n > 0 {
			s.defaultLimit = n
		}
	}
}

// WithLimitCeiling sets the hard cap on the store-side scan size.
func WithLimitCeiling(n int) SearchOption {
	return func(s *SearchService) {
		if n > 0 {
			s.limitCeiling = n
		}
	}
}

// NewSearchService creates the engine.
func NewSearchService(recipes store.RecipeStore, sessions SessionStore, logger *zap.Logger, opts ...SearchOption) *SearchService {
	s := &SearchService{
		recipes:      recipes,
		sessions:     sessions,
		intent:       NewIntentExtractor(taxonomy.Default()),
		logger:       logger,
		defaultLimit: DefaultSearchLimit,
		limitCeiling: DefaultSearchLimitCeiling,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search runs one query through the full pipeline. The returned error is
// non-nil only when the initial retrieval attempt itself failed; the result
// is well-formed either way so callers can still render it.
func (s *SearchService) Search(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = s.defaultLimit
	}
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	prefs := s.intent.ExtractPreferences(req.Query)
	filters := MergeFilters(req.Filters, ExtractFilters(req.Query))

	state, err := s.sessions.GetOrCreate(ctx, sessionID)
	if err != nil {
		// Session memory is best-effort; search proceeds without it.
		s.logger.Warn("session lookup failed", zap.String("session_id", sessionID), zap.Error(err))
		state = &SessionState{ID: sessionID}
	}
	exclusions := unionIDs(req.ExcludeIDs, state.ShownRecipeIDs)

	keywords := s.keywordsFor(prefs)
	searchLimit := progressiveSearchLimit(limit, len(exclusions), s.limitCeiling)

	rows, initialErr := s.recipes.Search(ctx, buildStoreQuery(keywords, filters, exclusions, searchLimit))
	if initialErr != nil {
		s.logger.Error("initial retrieval failed",
			zap.String("query", req.Query), zap.Error(initialErr))
		rows = nil
	}
	verified := s.verify(rows, prefs.Ingredients)

	applied := appliedFrom(prefs, filters)
	if len(verified) == 0 && !filters.IsZero() && len(exclusions) > 0 {
		var outcome fallbackOutcome
		verified, outcome = s.runFallback(ctx, keywords, prefs.Ingredients, exclusions, limit)
		applied.FallbackUsed = outcome.fallbackUsed
		applied.ExclusionsRemoved = outcome.exclusionsRemoved
	}

	candidates := make([]RecipeCandidate, 0, len(verified))
	for _, r := range verified {
		candidates = append(candidates, RecipeCandidate{Recipe: r})
	}
	ranked := s.rankAndExplain(candidates, prefs, filters, req.UserPantry, req.IncludeExplanations)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	// Retrieval already happened; record what we are about to show even if
	// the caller goes away mid-response.
	recordCtx := context.WithoutCancel(ctx)
	shown := make([]int64, 0, len(ranked))
	for _, c := range ranked {
		shown = append(shown, c.ID)
	}
	if len(shown) > 0 {
		if err := s.sessions.RecordShown(recordCtx, sessionID, shown); err != nil {
			s.logger.Warn("failed to record shown ids", zap.String("session_id", sessionID), zap.Error(err))
		}
	}
	if err := s.sessions.RememberPreferences(recordCtx, sessionID, prefs); err != nil {
		s.logger.Warn("failed to store preferences", zap.String("session_id", sessionID), zap.Error(err))
	}

	result := &SearchResult{
		Recipes:        ranked,
		FiltersApplied: applied,
		Metadata: SearchMetadata{
			Query:               req.Query,
			HasSessionMemory:    len(state.ShownRecipeIDs) > 0,
			HasPantryData:       len(req.UserPantry) > 0,
			IntelligenceEnabled: true,
			ExplanationMode:     req.IncludeExplanations,
		},
		SessionID: sessionID,
	}
	return result, initialErr
}

// GetRecipe fetches one recipe for the detail endpoint.
func (s *SearchService) GetRecipe(ctx context.Context, id int64) (*model.Recipe, error) {
	return s.recipes.GetByID(ctx, id)
}

// progressiveSearchLimit scales the store-side scan with the exclusion-set
// size: the more a session has already seen, the wider the scan has to be
// to still surface unseen matches. Capped at the ceiling.
func progressiveSearchLimit(requested, excluded, ceiling int) int {
	var multiplier int
	switch {
	case excluded == 0:
		multiplier = 3
	case excluded < 20:
		multiplier = 5
	case excluded < 50:
		multiplier = 8
	default:
		multiplier = 13
	}
	limit := requested * multiplier
	if limit > ceiling {
		limit = ceiling
	}
	return limit
}

// keywordsFor flattens the requested ingredients into their surface forms,
// the OR-group the store matches against.
func (s *SearchService) keywordsFor(prefs Preferences) []string {
	var keywords []string
	for _, canonical := range prefs.Ingredients {
		keywords = append(keywords, s.intent.tax.SurfacesFor(canonical)...)
	}
	return keywords
}

func buildStoreQuery(keywords []string, filters IntelligenceFilters, exclusions []int64, limit int) store.Query {
	return store.Query{
		Keywords:         keywords,
		MealRole:         filters.MealRole,
		MaxTotalMinutes:  filters.MaxTimeMinutes,
		IsEasy:           filters.IsEasy,
		IsOnePot:         filters.IsOnePot,
		KidFriendly:      filters.KidFriendly,
		LeftoverFriendly: filters.LeftoverFriendly,
		ExcludeIDs:       exclusions,
		Limit:            limit,
	}
}

// verify drops candidates that do not genuinely contain every requested
// ingredient: the store's LIKE scan is an OR over keywords, so a row may
// match one ingredient but miss another.
func (s *SearchService) verify(rows []model.Recipe, ingredients []string) []model.Recipe {
	if len(ingredients) == 0 {
		return rows
	}
	verified := make([]model.Recipe, 0, len(rows))
	for _, r := range rows {
		if s.matchesAllIngredients(r, ingredients) {
			verified = append(verified, r)
		}
	}
	return verified
}

func (s *SearchService) matchesAllIngredients(r model.Recipe, ingredients []string) bool {
	haystack := strings.ToLower(r.Title + " " + strings.Join(r.Ingredients, " "))
	for _, canonical := range ingredients {
		if !containsAny(haystack, s.intent.tax.SurfacesFor(canonical)) {
			return false
		}
	}
	return true
}

func appliedFrom(prefs Preferences, filters IntelligenceFilters) FiltersApplied {
	return FiltersApplied{
		Ingredients:      prefs.Ingredients,
		Cuisine:          prefs.Cuisine,
		MealRole:         filters.MealRole,
		MaxTimeMinutes:   filters.MaxTimeMinutes,
		IsEasy:           filters.IsEasy,
		IsOnePot:         filters.IsOnePot,
		KidFriendly:      filters.KidFriendly,
		LeftoverFriendly: filters.LeftoverFriendly,
	}
}

func unionIDs(a, b []int64) []int64 {
	seen := make(map[int64]struct{}, len(a)+len(b))
	out := make([]int64, 0, len(a)+len(b))
	for _, ids := range [][]int64{a, b} {
		for _, id := range ids {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

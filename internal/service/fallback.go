package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/culinate/recipe-engine/internal/model"
)

// fallbackOutcome reports which relaxation rungs ran. fallbackUsed is set
// once any rung runs; exclusionsRemoved only when the exclusion set had to
// be cleared as well. Neither flag is ever reset once set.
type fallbackOutcome struct {
	fallbackUsed      bool
	exclusionsRemoved bool
}

// runFallback relaxes constraints in order when strict retrieval starves:
// rung 1 drops the hard filters but keeps exclusions, rung 2 drops the
// exclusions too, rung 3 reports empty. A nonempty rung stops the ladder.
// Store errors during relaxation are logged and treated as empty rungs;
// only the initial, un-relaxed attempt can fail the search.
func (s *SearchService) runFallback(ctx context.Context, keywords []string, ingredients []string, exclusions []int64, limit int) ([]model.Recipe, fallbackOutcome) {
	outcome := fallbackOutcome{fallbackUsed: true}

	searchLimit := progressiveSearchLimit(limit, len(exclusions), s.limitCeiling)
	rows, err := s.recipes.Search(ctx, buildStoreQuery(keywords, IntelligenceFilters{}, exclusions, searchLimit))
	if err != nil {
		s.logger.Warn("fallback retrieval without filters failed", zap.Error(err))
		rows = nil
	}
	if verified := s.verify(rows, ingredients); len(verified) > 0 {
		return verified, outcome
	}

	outcome.exclusionsRemoved = true
	searchLimit = progressiveSearchLimit(limit, 0, s.limitCeiling)
	rows, err = s.recipes.Search(ctx, buildStoreQuery(keywords, IntelligenceFilters{}, nil, searchLimit))
	if err != nil {
		s.logger.Warn("fallback retrieval without exclusions failed", zap.Error(err))
		rows = nil
	}
	if verified := s.verify(rows, ingredients); len(verified) > 0 {
		return verified, outcome
	}

	// Rung 3: nothing matched even fully relaxed. Reported, not fatal.
	return nil, outcome
}

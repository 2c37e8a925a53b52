package store

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/culinate/recipe-engine/internal/model"
)

// defaultTimeout bounds every store call when none is configured.
const defaultTimeout = 5 * time.Second

// GormStore implements RecipeStore over a gorm connection (postgres in
// production, sqlite in tests and local dev).
type GormStore struct {
	db      *gorm.DB
	logger  *zap.Logger
	timeout time.Duration
}

// NewGormStore creates a store; timeout <= 0 uses the default.
func NewGormStore(db *gorm.DB, logger *zap.Logger, timeout time.Duration) *GormStore {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &GormStore{db: db, logger: logger, timeout: timeout}
}

// Search runs the contract query: keyword OR-group over title+ingredients,
// structured filters, id exclusion, limit. Rows come back in id order so
// retrieval order is deterministic.
func (s *GormStore) Search(ctx context.Context, q Query) ([]model.Recipe, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	query := s.db.WithContext(ctx).Model(&model.Recipe{})

	if len(q.Keywords) > 0 {
		ingredientsCol := "LOWER(ingredients)"
		if s.db.Dialector.Name() == "postgres" {
			ingredientsCol = "LOWER(ingredients::text)"
		}
		var clause *gorm.DB
		for _, kw := range q.Keywords {
			like := "%" + strings.ToLower(kw) + "%"
			cond := s.db.Where("LOWER(title) LIKE ? OR "+ingredientsCol+" LIKE ?", like, like)
			if clause == nil {
				clause = cond
			} else {
				clause = clause.Or(cond)
			}
		}
		query = query.Where(clause)
	}

	if q.MealRole != "" {
		query = query.Where("meal_role = ?", q.MealRole)
	}
	if q.MaxTotalMinutes > 0 {
		query = query.Where("total_minutes <= ?", q.MaxTotalMinutes)
	}
	if q.IsEasy {
		query = query.Where("is_easy = ?", true)
	}
	if q.IsOnePot {
		query = query.Where("is_one_pot = ?", true)
	}
	if q.KidFriendly {
		query = query.Where("kid_friendly = ?", true)
	}
	if q.LeftoverFriendly {
		query = query.Where("leftover_friendly = ?", true)
	}
	if len(q.ExcludeIDs) > 0 {
		query = query.Where("id NOT IN ?", q.ExcludeIDs)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	var recipes []model.Recipe
	if err := query.Order("id ASC").Find(&recipes).Error; err != nil {
		s.logger.Warn("recipe store search failed",
			zap.Int("keywords", len(q.Keywords)),
			zap.Int("excluded", len(q.ExcludeIDs)),
			zap.Error(err))
		return nil, err
	}
	return recipes, nil
}

// GetByID fetches a single recipe.
func (s *GormStore) GetByID(ctx context.Context, id int64) (*model.Recipe, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

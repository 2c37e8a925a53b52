package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/culinate/recipe-engine/internal/model"
)

func setupStore(t *testing.T) *GormStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Recipe{}))

	recipes := []model.Recipe{
		{Title: "One-Pot Chicken Pasta", Ingredients: model.JSONBStringArray{"chicken breast", "penne pasta"}, TotalMinutes: 30, MealRole: "dinner", IsEasy: true, IsOnePot: true},
		{Title: "Beef Stew", Ingredients: model.JSONBStringArray{"beef", "carrots", "potatoes"}, TotalMinutes: 120, MealRole: "dinner"},
		{Title: "Chicken Salad", Ingredients: model.JSONBStringArray{"chicken", "lettuce"}, TotalMinutes: 15, MealRole: "lunch", IsEasy: true},
		{Title: "Veggie Frittata", Ingredients: model.JSONBStringArray{"eggs", "spinach"}, TotalMinutes: 28, MealRole: "breakfast", IsEasy: true, KidFriendly: true},
	}
	for i := range recipes {
		require.NoError(t, db.Create(&recipes[i]).Error)
	}
	return NewGormStore(db, zap.NewNop(), time.Second)
}

func TestSearchMatchesTitleOrIngredients(t *testing.T) {
	s := setupStore(t)

	got, err := s.Search(context.Background(), Query{Keywords: []string{"chicken"}})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "One-Pot Chicken Pasta", got[0].Title)
	assert.Equal(t, "Chicken Salad", got[1].Title)
}

func TestSearchKeywordsAreORed(t *testing.T) {
	s := setupStore(t)

	got, err := s.Search(context.Background(), Query{Keywords: []string{"beef", "spinach"}})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSearchStructuredFilters(t *testing.T) {
	s := setupStore(t)

	got, err := s.Search(context.Background(), Query{MealRole: "dinner", MaxTotalMinutes: 60})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "One-Pot Chicken Pasta", got[0].Title)

	got, err = s.Search(context.Background(), Query{IsEasy: true, KidFriendly: true})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Veggie Frittata", got[0].Title)
}

func TestSearchExcludesIDs(t *testing.T) {
	s := setupStore(t)

	all, err := s.Search(context.Background(), Query{Keywords: []string{"chicken"}})
	require.NoError(t, err)
	require.Len(t, all, 2)

	got, err := s.Search(context.Background(), Query{Keywords: []string{"chicken"}, ExcludeIDs: []int64{all[0].ID}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, all[1].ID, got[0].ID)
}

func TestSearchLimit(t *testing.T) {
	s := setupStore(t)

	got, err := s.Search(context.Background(), Query{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestGetByID(t *testing.T) {
	s := setupStore(t)

	all, err := s.Search(context.Background(), Query{})
	require.NoError(t, err)
	require.NotEmpty(t, all)

	got, err := s.GetByID(context.Background(), all[0].ID)
	require.NoError(t, err)
	assert.Equal(t, all[0].Title, got.Title)

	_, err = s.GetByID(context.Background(), 99999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

// Package store defines the query contract the search engine consumes from
// the persistent recipe store, plus the gorm-backed implementation.
package store

import (
	"context"

	"github.com/culinate/recipe-engine/internal/model"
)

// Query is one retrieval request. Keywords are OR-ed substring matches over
// title and ingredients; the structured fields are hard equality/ceiling
// constraints; ExcludeIDs are omitted from the result; Limit caps the scan.
type Query struct {
	Keywords         []string
	MealRole         string
	MaxTotalMinutes  int
	IsEasy           bool
	IsOnePot         bool
	KidFriendly      bool
	LeftoverFriendly bool
	ExcludeIDs       []int64
	Limit            int
}

// RecipeStore is the persistence contract the engine depends on.
type RecipeStore interface {
	Search(ctx context.Context, q Query) ([]model.Recipe, error)
	GetByID(ctx context.Context, id int64) (*model.Recipe, error)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/culinate/recipe-engine/internal/model"
	"github.com/culinate/recipe-engine/internal/store"
)

// MockRecipeStore is a mock implementation of the recipe store contract
type MockRecipeStore struct {
	mock.Mock
}

// Search mocks the Search method
func (m *MockRecipeStore) Search(ctx context.Context, q store.Query) ([]model.Recipe, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Recipe), args.Error(1)
}

// GetByID mocks the GetByID method
func (m *MockRecipeStore) GetByID(ctx context.Context, id int64) (*model.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

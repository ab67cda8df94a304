// Package http contains testify mocks for the use case interfaces consumed
// by the HTTP handlers.
package http

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/linkdeck/linkdeck/internal/entity"
)

type MockCategoryUseCase struct {
	mock.Mock
}

func NewMockCategoryUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCategoryUseCase {
	m := &MockCategoryUseCase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCategoryUseCase) List(ctx context.Context, userID int64, page, perPage int) (*entity.Page[entity.Category], error) {
	args := m.Called(ctx, userID, page, perPage)
	if result, ok := args.Get(0).(*entity.Page[entity.Category]); ok {
		return result, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryUseCase) Create(ctx context.Context, userID int64, name, description, color string) (*entity.Category, error) {
	args := m.Called(ctx, userID, name, description, color)
	if cat, ok := args.Get(0).(*entity.Category); ok {
		return cat, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryUseCase) Get(ctx context.Context, userID, id int64) (*entity.Category, error) {
	args := m.Called(ctx, userID, id)
	if cat, ok := args.Get(0).(*entity.Category); ok {
		return cat, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryUseCase) Update(ctx context.Context, userID, id int64, changes entity.CategoryChanges) (*entity.Category, error) {
	args := m.Called(ctx, userID, id, changes)
	if cat, ok := args.Get(0).(*entity.Category); ok {
		return cat, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryUseCase) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

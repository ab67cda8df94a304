// Package usecase contains testify mocks for the repository interfaces
// consumed by the use cases.
package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/linkdeck/linkdeck/internal/entity"
)

type MockCategoryRepository struct {
	mock.Mock
}

func NewMockCategoryRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCategoryRepository {
	m := &MockCategoryRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCategoryRepository) Create(ctx context.Context, userID int64, name, description, color string) (*entity.Category, error) {
	args := m.Called(ctx, userID, name, description, color)
	if cat, ok := args.Get(0).(*entity.Category); ok {
		return cat, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	args := m.Called(ctx, id)
	if cat, ok := args.Get(0).(*entity.Category); ok {
		return cat, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryRepository) GetOwned(ctx context.Context, id, userID int64) (*entity.Category, error) {
	args := m.Called(ctx, id, userID)
	if cat, ok := args.Get(0).(*entity.Category); ok {
		return cat, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context, userID int64, limit, offset int) ([]entity.Category, error) {
	args := m.Called(ctx, userID, limit, offset)
	if cats, ok := args.Get(0).([]entity.Category); ok {
		return cats, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryRepository) Count(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryRepository) Recent(ctx context.Context, userID int64, limit int) ([]entity.Category, error) {
	args := m.Called(ctx, userID, limit)
	if cats, ok := args.Get(0).([]entity.Category); ok {
		return cats, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryRepository) Update(ctx context.Context, id int64, changes entity.CategoryChanges) (*entity.Category, error) {
	args := m.Called(ctx, id, changes)
	if cat, ok := args.Get(0).(*entity.Category); ok {
		return cat, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/linkdeck/linkdeck/internal/entity"
)

type MockLinkRepository struct {
	mock.Mock
}

func NewMockLinkRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLinkRepository {
	m := &MockLinkRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockLinkRepository) Create(ctx context.Context, userID, categoryID int64, name, url, description string) (*entity.ReferralLink, error) {
	args := m.Called(ctx, userID, categoryID, name, url, description)
	if link, ok := args.Get(0).(*entity.ReferralLink); ok {
		return link, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLinkRepository) GetByID(ctx context.Context, id int64) (*entity.ReferralLink, error) {
	args := m.Called(ctx, id)
	if link, ok := args.Get(0).(*entity.ReferralLink); ok {
		return link, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLinkRepository) List(ctx context.Context, userID int64, categoryID *int64, limit, offset int) ([]entity.ReferralLink, error) {
	args := m.Called(ctx, userID, categoryID, limit, offset)
	if links, ok := args.Get(0).([]entity.ReferralLink); ok {
		return links, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLinkRepository) Count(ctx context.Context, userID int64, categoryID *int64) (int64, error) {
	args := m.Called(ctx, userID, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLinkRepository) SumClicks(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLinkRepository) Recent(ctx context.Context, userID int64, limit int) ([]entity.ReferralLink, error) {
	args := m.Called(ctx, userID, limit)
	if links, ok := args.Get(0).([]entity.ReferralLink); ok {
		return links, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLinkRepository) TopByClicks(ctx context.Context, userID int64, limit int) ([]entity.ReferralLink, error) {
	args := m.Called(ctx, userID, limit)
	if links, ok := args.Get(0).([]entity.ReferralLink); ok {
		return links, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLinkRepository) ListByCategory(ctx context.Context, categoryID int64) ([]entity.ReferralLink, error) {
	args := m.Called(ctx, categoryID)
	if links, ok := args.Get(0).([]entity.ReferralLink); ok {
		return links, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLinkRepository) Update(ctx context.Context, id int64, changes entity.LinkChanges) (*entity.ReferralLink, error) {
	args := m.Called(ctx, id, changes)
	if link, ok := args.Get(0).(*entity.ReferralLink); ok {
		return link, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLinkRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

package http

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/linkdeck/linkdeck/internal/entity"
)

type MockLinkUseCase struct {
	mock.Mock
}

func NewMockLinkUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLinkUseCase {
	m := &MockLinkUseCase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockLinkUseCase) List(ctx context.Context, userID int64, page, perPage int, categoryID *int64) (*entity.Page[entity.ReferralLink], error) {
	args := m.Called(ctx, userID, page, perPage, categoryID)
	if result, ok := args.Get(0).(*entity.Page[entity.ReferralLink]); ok {
		return result, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLinkUseCase) Create(ctx context.Context, userID, categoryID int64, name, url, description string) (*entity.ReferralLink, error) {
	args := m.Called(ctx, userID, categoryID, name, url, description)
	if link, ok := args.Get(0).(*entity.ReferralLink); ok {
		return link, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLinkUseCase) Get(ctx context.Context, userID, id int64) (*entity.ReferralLink, error) {
	args := m.Called(ctx, userID, id)
	if link, ok := args.Get(0).(*entity.ReferralLink); ok {
		return link, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLinkUseCase) Update(ctx context.Context, userID, id int64, changes entity.LinkChanges) (*entity.ReferralLink, error) {
	args := m.Called(ctx, userID, id, changes)
	if link, ok := args.Get(0).(*entity.ReferralLink); ok {
		return link, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLinkUseCase) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

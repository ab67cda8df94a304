package http

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/linkdeck/linkdeck/internal/entity"
)

type MockDashboardUseCase struct {
	mock.Mock
}

func NewMockDashboardUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDashboardUseCase {
	m := &MockDashboardUseCase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockDashboardUseCase) Summary(ctx context.Context, userID int64) (*entity.Dashboard, error) {
	args := m.Called(ctx, userID)
	if d, ok := args.Get(0).(*entity.Dashboard); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

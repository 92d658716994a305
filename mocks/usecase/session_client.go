package usecase

import (
	"context"

	"github.com/avydrenko/shortdash/internal/api"
	"github.com/stretchr/testify/mock"
)

// MockSessionClient is a mock of the session client used by the use cases.
type MockSessionClient struct {
	mock.Mock
}

func NewMockSessionClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSessionClient {
	m := &MockSessionClient{}
	m.Mock.Test(t)
	return m
}

func (m *MockSessionClient) Login(ctx context.Context, in api.LoginInput) error {
	args := m.Called(ctx, in)
	return args.Error(0)
}

func (m *MockSessionClient) Signup(ctx context.Context, in api.SignupInput) error {
	args := m.Called(ctx, in)
	return args.Error(0)
}

func (m *MockSessionClient) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

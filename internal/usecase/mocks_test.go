package usecase

import (
	"context"

	"github.com/gitx-cli/gitx/internal/domain"
	"github.com/stretchr/testify/mock"
)

// Mock for HostingClient
type mockHostingClient struct{ mock.Mock }

func (m *mockHostingClient) AuthStatus(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockHostingClient) LatestReleaseTag(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *mockHostingClient) DefaultBranch(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *mockHostingClient) CreateRelease(ctx context.Context, release *domain.Release) error {
	args := m.Called(ctx, release)
	return args.Error(0)
}

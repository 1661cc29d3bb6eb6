package cmd

import (
	"context"

	"github.com/gitx-cli/gitx/internal/domain"
	"github.com/stretchr/testify/mock"
)

// Mock for GitClient
type mockGitClient struct{ mock.Mock }

func (m *mockGitClient) Available() error {
	args := m.Called()
	return args.Error(0)
}
func (m *mockGitClient) LsRemote(ctx context.Context, ref string) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}
func (m *mockGitClient) CloneInto(ctx context.Context, dir, ref string) error {
	args := m.Called(ctx, dir, ref)
	return args.Error(0)
}
func (m *mockGitClient) OriginURL() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}
func (m *mockGitClient) WorktreeRoot() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}
func (m *mockGitClient) Passthrough(ctx context.Context, cmdArgs []string) error {
	args := m.Called(ctx, cmdArgs)
	return args.Error(0)
}

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

// Mock for EditorService
type mockEditorService struct{ mock.Mock }

func (m *mockEditorService) CollectNotes(ctx context.Context, version string) (string, error) {
	args := m.Called(ctx, version)
	return args.String(0), args.Error(1)
}

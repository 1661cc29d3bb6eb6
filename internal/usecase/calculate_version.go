package usecase

import (
	"context"

	"github.com/gitx-cli/gitx/internal/domain"
	"github.com/gitx-cli/gitx/internal/repository"
)

// CalculateVersionUseCase computes the next release version from the
// platform's release history.
type CalculateVersionUseCase struct {
	Hosting repository.HostingClient
}

// Execute runs the use case. A failed or empty release-history query is
// treated as "no prior release", never as a hard error.
func (uc *CalculateVersionUseCase) Execute(ctx context.Context, inc domain.Increment) (*domain.Version, error) {
	latestTag, err := uc.Hosting.LatestReleaseTag(ctx)
	if err != nil {
		latestTag = ""
	}
	return domain.NextVersion(latestTag, inc), nil
}

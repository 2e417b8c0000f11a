package usecases

import (
	"context"
	"fmt"

	"crowdfund/internal/application/project/dto"
	"crowdfund/internal/domain/project"
	"crowdfund/internal/shared/errors"
	"crowdfund/internal/shared/logger"
)

type ListProjectsCommand struct {
	OrganizationID uint
}

type ListProjectsUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewListProjectsUseCase(projectRepo project.Repository, logger logger.Interface) *ListProjectsUseCase {
	return &ListProjectsUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context, cmd ListProjectsCommand) ([]dto.ProjectDTO, error) {
	if cmd.OrganizationID == 0 {
		return nil, errors.NewValidationError("organization id is required")
	}

	projects, err := uc.projectRepo.ListByOrganizationID(ctx, cmd.OrganizationID)
	if err != nil {
		uc.logger.Errorw("failed to list projects", "organization_id", cmd.OrganizationID, "error", err)
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return dto.ProjectsToDTO(projects), nil
}

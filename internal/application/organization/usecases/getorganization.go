package usecases

import (
	"context"
	"fmt"

	"crowdfund/internal/application/organization/dto"
	"crowdfund/internal/domain/organization"
	"crowdfund/internal/shared/logger"
)

type GetOrganizationCommand struct {
	OrganizationID uint
}

type GetOrganizationUseCase struct {
	organizationRepo organization.Repository
	logger           logger.Interface
}

func NewGetOrganizationUseCase(organizationRepo organization.Repository, logger logger.Interface) *GetOrganizationUseCase {
	return &GetOrganizationUseCase{
		organizationRepo: organizationRepo,
		logger:           logger,
	}
}

func (uc *GetOrganizationUseCase) Execute(ctx context.Context, cmd GetOrganizationCommand) (*dto.OrganizationDTO, error) {
	org, err := uc.organizationRepo.GetByID(ctx, cmd.OrganizationID)
	if err != nil {
		uc.logger.Errorw("failed to load organization", "organization_id", cmd.OrganizationID, "error", err)
		return nil, fmt.Errorf("failed to load organization: %w", err)
	}
	if org == nil {
		return nil, organization.NewNotFoundError(cmd.OrganizationID)
	}

	result := dto.OrganizationToDTO(org)
	return &result, nil
}

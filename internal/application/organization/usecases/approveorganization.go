package usecases

import (
	"context"
	"fmt"

	"crowdfund/internal/application/organization/dto"
	"crowdfund/internal/domain/organization"
	"crowdfund/internal/shared/errors"
	"crowdfund/internal/shared/logger"
)

type ApproveOrganizationCommand struct {
	OrganizationID uint
}

// ApproveOrganizationUseCase marks an organization as approved by an admin,
// unlocking wallet creation and projects for it.
type ApproveOrganizationUseCase struct {
	organizationRepo organization.Repository
	logger           logger.Interface
}

func NewApproveOrganizationUseCase(organizationRepo organization.Repository, logger logger.Interface) *ApproveOrganizationUseCase {
	return &ApproveOrganizationUseCase{
		organizationRepo: organizationRepo,
		logger:           logger,
	}
}

func (uc *ApproveOrganizationUseCase) Execute(ctx context.Context, cmd ApproveOrganizationCommand) (*dto.OrganizationDTO, error) {
	uc.logger.Infow("executing approve organization use case", "organization_id", cmd.OrganizationID)

	if cmd.OrganizationID == 0 {
		return nil, errors.NewValidationError("organization id is required")
	}

	org, err := uc.organizationRepo.GetByID(ctx, cmd.OrganizationID)
	if err != nil {
		uc.logger.Errorw("failed to load organization", "organization_id", cmd.OrganizationID, "error", err)
		return nil, fmt.Errorf("failed to load organization: %w", err)
	}
	if org == nil {
		return nil, organization.NewNotFoundError(cmd.OrganizationID)
	}

	org.Approve()
	if err := uc.organizationRepo.Update(ctx, org); err != nil {
		uc.logger.Errorw("failed to update organization", "organization_id", cmd.OrganizationID, "error", err)
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	uc.logger.Infow("organization approved", "organization_id", org.ID())

	result := dto.OrganizationToDTO(org)
	return &result, nil
}

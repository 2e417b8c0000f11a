package usecases

import (
	"context"
	"fmt"

	"crowdfund/internal/application/organization/dto"
	"crowdfund/internal/domain/organization"
	"crowdfund/internal/shared/errors"
	"crowdfund/internal/shared/logger"
)

type CreateOrganizationCommand struct {
	Name          string
	LegalInfo     string
	CreatedByUUID string
}

// CreateOrganizationUseCase registers an organization pending admin
// approval.
type CreateOrganizationUseCase struct {
	organizationRepo organization.Repository
	logger           logger.Interface
}

func NewCreateOrganizationUseCase(organizationRepo organization.Repository, logger logger.Interface) *CreateOrganizationUseCase {
	return &CreateOrganizationUseCase{
		organizationRepo: organizationRepo,
		logger:           logger,
	}
}

func (uc *CreateOrganizationUseCase) Execute(ctx context.Context, cmd CreateOrganizationCommand) (*dto.OrganizationDTO, error) {
	uc.logger.Infow("executing create organization use case", "name", cmd.Name)

	org, err := organization.NewOrganization(cmd.Name, cmd.CreatedByUUID, cmd.LegalInfo)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.organizationRepo.Create(ctx, org); err != nil {
		uc.logger.Errorw("failed to persist organization", "name", cmd.Name, "error", err)
		return nil, fmt.Errorf("failed to persist organization: %w", err)
	}

	uc.logger.Infow("organization created", "organization_id", org.ID())

	result := dto.OrganizationToDTO(org)
	return &result, nil
}

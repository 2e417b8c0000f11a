package usecases

import (
	"context"
	"fmt"

	"crowdfund/internal/application/organization/dto"
	"crowdfund/internal/domain/organization"
	"crowdfund/internal/shared/logger"
)

type ListOrganizationsUseCase struct {
	organizationRepo organization.Repository
	logger           logger.Interface
}

func NewListOrganizationsUseCase(organizationRepo organization.Repository, logger logger.Interface) *ListOrganizationsUseCase {
	return &ListOrganizationsUseCase{
		organizationRepo: organizationRepo,
		logger:           logger,
	}
}

func (uc *ListOrganizationsUseCase) Execute(ctx context.Context) ([]dto.OrganizationDTO, error) {
	orgs, err := uc.organizationRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list organizations", "error", err)
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}

	return dto.OrganizationsToDTO(orgs), nil
}

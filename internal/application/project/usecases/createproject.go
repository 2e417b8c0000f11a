package usecases

import (
	"context"
	"fmt"
	"time"

	"crowdfund/internal/application/project/dto"
	"crowdfund/internal/domain/organization"
	"crowdfund/internal/domain/project"
	"crowdfund/internal/shared/errors"
	"crowdfund/internal/shared/logger"
)

type CreateProjectCommand struct {
	OrganizationID uint
	Name           string
	Description    string
	LocationText   string
	Currency       string
	MinPerUser     int64
	MaxPerUser     int64
	InvestmentCap  int64
	StartDate      time.Time
	EndDate        time.Time
	CreatedByUUID  string
}

// CreateProjectUseCase creates a campaign under an approved organization.
// The markdown description is rendered and sanitized at creation time.
type CreateProjectUseCase struct {
	projectRepo      project.Repository
	organizationRepo organization.Repository
	logger           logger.Interface
}

func NewCreateProjectUseCase(
	projectRepo project.Repository,
	organizationRepo organization.Repository,
	logger logger.Interface,
) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo:      projectRepo,
		organizationRepo: organizationRepo,
		logger:           logger,
	}
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, cmd CreateProjectCommand) (*dto.ProjectDTO, error) {
	uc.logger.Infow("executing create project use case",
		"organization_id", cmd.OrganizationID, "name", cmd.Name)

	org, err := uc.organizationRepo.GetByID(ctx, cmd.OrganizationID)
	if err != nil {
		uc.logger.Errorw("failed to load organization", "organization_id", cmd.OrganizationID, "error", err)
		return nil, fmt.Errorf("failed to load organization: %w", err)
	}
	if org == nil {
		return nil, organization.NewNotFoundError(cmd.OrganizationID)
	}
	if !org.Approved() {
		return nil, organization.NewNotApprovedError(cmd.OrganizationID)
	}

	descriptionHTML, err := renderDescription(cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	p, err := project.NewProject(project.NewProjectParams{
		OrganizationID:  cmd.OrganizationID,
		Name:            cmd.Name,
		Description:     cmd.Description,
		DescriptionHTML: descriptionHTML,
		LocationText:    cmd.LocationText,
		Currency:        cmd.Currency,
		MinPerUser:      cmd.MinPerUser,
		MaxPerUser:      cmd.MaxPerUser,
		InvestmentCap:   cmd.InvestmentCap,
		StartDate:       cmd.StartDate,
		EndDate:         cmd.EndDate,
		CreatedByUUID:   cmd.CreatedByUUID,
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.projectRepo.Create(ctx, p); err != nil {
		uc.logger.Errorw("failed to persist project", "name", cmd.Name, "error", err)
		return nil, fmt.Errorf("failed to persist project: %w", err)
	}

	uc.logger.Infow("project created", "project_id", p.ID())

	result := dto.ProjectToDTO(p)
	return &result, nil
}

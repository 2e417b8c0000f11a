package usecases

import (
	"context"
	"fmt"

	"crowdfund/internal/application/project/dto"
	"crowdfund/internal/domain/document"
	"crowdfund/internal/domain/project"
	"crowdfund/internal/shared/errors"
	"crowdfund/internal/shared/logger"
)

type AddProjectImageCommand struct {
	ProjectID uint
	// Main sets the image as the project's main image instead of appending
	// to the gallery.
	Main  bool
	Image document.SaveRequest
}

// AddProjectImageUseCase stores an uploaded image and links it to the
// project.
type AddProjectImageUseCase struct {
	projectRepo  project.Repository
	documentRepo document.Repository
	logger       logger.Interface
}

func NewAddProjectImageUseCase(
	projectRepo project.Repository,
	documentRepo document.Repository,
	logger logger.Interface,
) *AddProjectImageUseCase {
	return &AddProjectImageUseCase{
		projectRepo:  projectRepo,
		documentRepo: documentRepo,
		logger:       logger,
	}
}

func (uc *AddProjectImageUseCase) Execute(ctx context.Context, cmd AddProjectImageCommand) (*dto.ProjectDTO, error) {
	uc.logger.Infow("executing add project image use case", "project_id", cmd.ProjectID, "main", cmd.Main)

	p, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to load project", "project_id", cmd.ProjectID, "error", err)
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	if p == nil {
		return nil, project.NewNotFoundError(cmd.ProjectID)
	}

	doc, err := document.NewDocument(cmd.Image)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.documentRepo.Create(ctx, doc); err != nil {
		uc.logger.Errorw("failed to store image", "project_id", cmd.ProjectID, "error", err)
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	if cmd.Main {
		p.SetMainImage(doc.ID())
	} else {
		p.AddGalleryImages([]uint{doc.ID()})
	}

	if err := uc.projectRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update project", "project_id", cmd.ProjectID, "error", err)
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	uc.logger.Infow("project image added", "project_id", p.ID(), "document_id", doc.ID())

	result := dto.ProjectToDTO(p)
	return &result, nil
}

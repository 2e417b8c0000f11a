package usecases

import (
	"context"
	"fmt"

	"crowdfund/internal/domain/document"
	"crowdfund/internal/shared/errors"
	"crowdfund/internal/shared/logger"
)

type GetDocumentCommand struct {
	DocumentID uint
}

// GetDocumentUseCase fetches a stored document with its content for
// download.
type GetDocumentUseCase struct {
	documentRepo document.Repository
	logger       logger.Interface
}

func NewGetDocumentUseCase(documentRepo document.Repository, logger logger.Interface) *GetDocumentUseCase {
	return &GetDocumentUseCase{
		documentRepo: documentRepo,
		logger:       logger,
	}
}

func (uc *GetDocumentUseCase) Execute(ctx context.Context, cmd GetDocumentCommand) (*document.Document, error) {
	if cmd.DocumentID == 0 {
		return nil, errors.NewValidationError("document id is required")
	}

	doc, err := uc.documentRepo.GetByID(ctx, cmd.DocumentID)
	if err != nil {
		uc.logger.Errorw("failed to load document", "document_id", cmd.DocumentID, "error", err)
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	if doc == nil {
		return nil, errors.NewNotFoundError("document not found")
	}

	return doc, nil
}

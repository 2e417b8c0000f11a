package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"crowdfund/internal/application/document/usecases"
	"crowdfund/internal/shared/logger"
	"crowdfund/internal/shared/utils"
)

// DocumentHandler serves stored document downloads.
type DocumentHandler struct {
	getUC  *usecases.GetDocumentUseCase
	logger logger.Interface
}

func NewDocumentHandler(getUC *usecases.GetDocumentUseCase, logger logger.Interface) *DocumentHandler {
	return &DocumentHandler{
		getUC:  getUC,
		logger: logger,
	}
}

// DownloadDocument streams the document content with its stored content
// type.
func (h *DocumentHandler) DownloadDocument(c *gin.Context) {
	documentID, err := utils.ParseUintParam(c, "id", "document")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	doc, err := h.getUC.Execute(c.Request.Context(), usecases.GetDocumentCommand{DocumentID: documentID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Name()))
	c.Data(http.StatusOK, doc.ContentType(), doc.Data())
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crowdfund/internal/application/organization/usecases"
	"crowdfund/internal/shared/constants"
	"crowdfund/internal/shared/errors"
	"crowdfund/internal/shared/logger"
	"crowdfund/internal/shared/utils"
)

type CreateOrganizationRequest struct {
	Name      string `json:"name" binding:"required" validate:"required,max=255"`
	LegalInfo string `json:"legal_info"`
}

type OrganizationHandler struct {
	createUC  *usecases.CreateOrganizationUseCase
	getUC     *usecases.GetOrganizationUseCase
	listUC    *usecases.ListOrganizationsUseCase
	approveUC *usecases.ApproveOrganizationUseCase
	logger    logger.Interface
}

func NewOrganizationHandler(
	createUC *usecases.CreateOrganizationUseCase,
	getUC *usecases.GetOrganizationUseCase,
	listUC *usecases.ListOrganizationsUseCase,
	approveUC *usecases.ApproveOrganizationUseCase,
	logger logger.Interface,
) *OrganizationHandler {
	return &OrganizationHandler{
		createUC:  createUC,
		getUC:     getUC,
		listUC:    listUC,
		approveUC: approveUC,
		logger:    logger,
	}
}

func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	userUUID := c.GetString(constants.ContextKeyUserUUID)
	if userUUID == "" {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	var req CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateOrganizationCommand{
		Name:          req.Name,
		LegalInfo:     req.LegalInfo,
		CreatedByUUID: userUUID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Organization created, pending approval")
}

func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	organizationID, err := utils.ParseUintParam(c, "id", "organization")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetOrganizationCommand{OrganizationID: organizationID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ApproveOrganization is admin-only.
func (h *OrganizationHandler) ApproveOrganization(c *gin.Context) {
	organizationID, err := utils.ParseUintParam(c, "id", "organization")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.approveUC.Execute(c.Request.Context(), usecases.ApproveOrganizationCommand{OrganizationID: organizationID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"crowdfund/internal/application/project/usecases"
	"crowdfund/internal/domain/document"
	"crowdfund/internal/shared/constants"
	"crowdfund/internal/shared/errors"
	"crowdfund/internal/shared/logger"
	"crowdfund/internal/shared/utils"
)

type CreateProjectRequest struct {
	OrganizationID uint      `json:"organization_id" binding:"required" validate:"required,gt=0"`
	Name           string    `json:"name" binding:"required" validate:"required,max=255"`
	Description    string    `json:"description"`
	LocationText   string    `json:"location_text" validate:"max=255"`
	Currency       string    `json:"currency" validate:"omitempty,len=3"`
	MinPerUser     int64     `json:"min_per_user" binding:"required" validate:"required,gt=0"`
	MaxPerUser     int64     `json:"max_per_user" binding:"required" validate:"required,gt=0"`
	InvestmentCap  int64     `json:"investment_cap" binding:"required" validate:"required,gt=0"`
	StartDate      time.Time `json:"start_date" binding:"required" validate:"required"`
	EndDate        time.Time `json:"end_date" binding:"required" validate:"required"`
}

type ProjectHandler struct {
	createUC   *usecases.CreateProjectUseCase
	getUC      *usecases.GetProjectUseCase
	listUC     *usecases.ListProjectsUseCase
	addImageUC *usecases.AddProjectImageUseCase
	logger     logger.Interface
}

func NewProjectHandler(
	createUC *usecases.CreateProjectUseCase,
	getUC *usecases.GetProjectUseCase,
	listUC *usecases.ListProjectsUseCase,
	addImageUC *usecases.AddProjectImageUseCase,
	logger logger.Interface,
) *ProjectHandler {
	return &ProjectHandler{
		createUC:   createUC,
		getUC:      getUC,
		listUC:     listUC,
		addImageUC: addImageUC,
		logger:     logger,
	}
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userUUID := c.GetString(constants.ContextKeyUserUUID)
	if userUUID == "" {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateProjectCommand{
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
		Description:    req.Description,
		LocationText:   req.LocationText,
		Currency:       req.Currency,
		MinPerUser:     req.MinPerUser,
		MaxPerUser:     req.MaxPerUser,
		InvestmentCap:  req.InvestmentCap,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		CreatedByUUID:  userUUID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Project created")
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetProjectCommand{ProjectID: projectID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ListProjects optionally filters by organization via query parameter.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	var organizationID uint
	if raw := c.Query("organization_id"); raw != "" {
		id, err := utils.ParseUintQuery(c, "organization_id", "organization")
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		organizationID = id
	}

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListProjectsCommand{OrganizationID: organizationID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// AddProjectImage uploads a gallery or main image for the project.
func (h *ProjectHandler) AddProjectImage(c *gin.Context) {
	userUUID := c.GetString(constants.ContextKeyUserUUID)
	if userUUID == "" {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	projectID, err := utils.ParseUintParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("image file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("could not read uploaded image"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("could not read uploaded image"))
		return
	}

	result, err := h.addImageUC.Execute(c.Request.Context(), usecases.AddProjectImageCommand{
		ProjectID: projectID,
		Main:      c.Query("main") == "true",
		Image: document.SaveRequest{
			Name:          fileHeader.Filename,
			ContentType:   fileHeader.Header.Get("Content-Type"),
			Data:          data,
			CreatedByUUID: userUUID,
		},
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

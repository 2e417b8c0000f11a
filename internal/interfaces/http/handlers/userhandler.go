package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crowdfund/internal/application/user/usecases"
	"crowdfund/internal/shared/constants"
	"crowdfund/internal/shared/errors"
	"crowdfund/internal/shared/logger"
	"crowdfund/internal/shared/utils"
)

type UpdateProfileRequest struct {
	FirstName   string `json:"first_name" binding:"required" validate:"required,max=100"`
	LastName    string `json:"last_name" binding:"required" validate:"required,max=100"`
	PhoneNumber string `json:"phone_number" validate:"max=50"`
}

type UserHandler struct {
	getUserUC    *usecases.GetUserUseCase
	listUsersUC  *usecases.ListUsersUseCase
	updateUserUC *usecases.UpdateUserUseCase
	deleteUserUC *usecases.DeleteUserUseCase
	logger       logger.Interface
}

func NewUserHandler(
	getUserUC *usecases.GetUserUseCase,
	listUsersUC *usecases.ListUsersUseCase,
	updateUserUC *usecases.UpdateUserUseCase,
	deleteUserUC *usecases.DeleteUserUseCase,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		getUserUC:    getUserUC,
		listUsersUC:  listUsersUC,
		updateUserUC: updateUserUC,
		deleteUserUC: deleteUserUC,
		logger:       logger,
	}
}

// Me returns the authenticated user's profile.
func (h *UserHandler) Me(c *gin.Context) {
	userUUID := c.GetString(constants.ContextKeyUserUUID)
	if userUUID == "" {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	result, err := h.getUserUC.Execute(c.Request.Context(), usecases.GetUserCommand{UserUUID: userUUID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userUUID := c.GetString(constants.ContextKeyUserUUID)
	if userUUID == "" {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUserUC.Execute(c.Request.Context(), usecases.UpdateUserCommand{
		UserUUID:    userUUID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ListUsers is admin-only.
func (h *UserHandler) ListUsers(c *gin.Context) {
	result, err := h.listUsersUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// DeleteUser is admin-only.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, err := utils.ParseUintParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUserUC.Execute(c.Request.Context(), usecases.DeleteUserCommand{UserID: userID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User deleted", nil)
}

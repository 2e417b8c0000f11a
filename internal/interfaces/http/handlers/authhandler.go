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

type RegisterRequest struct {
	Email       string `json:"email" binding:"required" validate:"required,email"`
	Password    string `json:"password" binding:"required" validate:"required,min=8"`
	FirstName   string `json:"first_name" binding:"required" validate:"required,max=100"`
	LastName    string `json:"last_name" binding:"required" validate:"required,max=100"`
	PhoneNumber string `json:"phone_number" validate:"max=50"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`
}

// AuthHandler serves registration, login and email confirmation.
type AuthHandler struct {
	registerUC *usecases.RegisterUserUseCase
	loginUC    *usecases.LoginUserUseCase
	confirmUC  *usecases.ConfirmEmailUseCase
	resendUC   *usecases.ResendConfirmationUseCase
	logger     logger.Interface
}

func NewAuthHandler(
	registerUC *usecases.RegisterUserUseCase,
	loginUC *usecases.LoginUserUseCase,
	confirmUC *usecases.ConfirmEmailUseCase,
	resendUC *usecases.ResendConfirmationUseCase,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		confirmUC:  confirmUC,
		resendUC:   resendUC,
		logger:     logger,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterUserCommand{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Registration successful, please confirm your email")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginUserCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *AuthHandler) ConfirmEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("confirmation token is required"))
		return
	}

	if err := h.confirmUC.Execute(c.Request.Context(), usecases.ConfirmEmailCommand{Token: token}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Email confirmed", nil)
}

func (h *AuthHandler) ResendConfirmation(c *gin.Context) {
	userUUID := c.GetString(constants.ContextKeyUserUUID)
	if userUUID == "" {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	if err := h.resendUC.Execute(c.Request.Context(), usecases.ResendConfirmationCommand{UserUUID: userUUID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Confirmation mail sent", nil)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crowdfund/internal/application/wallet/usecases"
	"crowdfund/internal/domain/wallet"
	"crowdfund/internal/shared/constants"
	"crowdfund/internal/shared/errors"
	"crowdfund/internal/shared/logger"
	"crowdfund/internal/shared/utils"
)

type CreateWalletRequest struct {
	Address string `json:"address" binding:"required" validate:"required,max=255"`
}

type SignedTransactionRequest struct {
	SignedTransaction string `json:"signed_transaction" binding:"required" validate:"required"`
}

// WalletHandler serves wallet registration and the organization and project
// wallet creation flows.
type WalletHandler struct {
	createUserWalletUC *usecases.CreateUserWalletUseCase
	getWalletUC        *usecases.GetWalletUseCase
	generateOrgTxUC    *usecases.GenerateOrganizationWalletTxUseCase
	generateProjTxUC   *usecases.GenerateProjectWalletTxUseCase
	confirmTxUC        *usecases.ConfirmWalletTxUseCase
	logger             logger.Interface
}

func NewWalletHandler(
	createUserWalletUC *usecases.CreateUserWalletUseCase,
	getWalletUC *usecases.GetWalletUseCase,
	generateOrgTxUC *usecases.GenerateOrganizationWalletTxUseCase,
	generateProjTxUC *usecases.GenerateProjectWalletTxUseCase,
	confirmTxUC *usecases.ConfirmWalletTxUseCase,
	logger logger.Interface,
) *WalletHandler {
	return &WalletHandler{
		createUserWalletUC: createUserWalletUC,
		getWalletUC:        getWalletUC,
		generateOrgTxUC:    generateOrgTxUC,
		generateProjTxUC:   generateProjTxUC,
		confirmTxUC:        confirmTxUC,
		logger:             logger,
	}
}

func (h *WalletHandler) CreateWallet(c *gin.Context) {
	userUUID := c.GetString(constants.ContextKeyUserUUID)
	if userUUID == "" {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	var req CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUserWalletUC.Execute(c.Request.Context(), usecases.CreateUserWalletCommand{
		UserUUID: userUUID,
		Address:  req.Address,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Wallet created")
}

func (h *WalletHandler) GetMyWallet(c *gin.Context) {
	userUUID := c.GetString(constants.ContextKeyUserUUID)
	if userUUID == "" {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	result, err := h.getWalletUC.Execute(c.Request.Context(), usecases.GetWalletCommand{OwnerUUID: userUUID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// GenerateOrganizationWalletTx returns the unsigned transaction that creates
// the organization's wallet on chain.
func (h *WalletHandler) GenerateOrganizationWalletTx(c *gin.Context) {
	userUUID := c.GetString(constants.ContextKeyUserUUID)
	if userUUID == "" {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	organizationID, err := utils.ParseUintParam(c, "id", "organization")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.generateOrgTxUC.Execute(c.Request.Context(), usecases.GenerateOrganizationWalletTxCommand{
		OrganizationID: organizationID,
		UserUUID:       userUUID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *WalletHandler) ConfirmOrganizationWalletTx(c *gin.Context) {
	organizationID, err := utils.ParseUintParam(c, "id", "organization")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.confirmWalletTx(c, wallet.TypeOrganization, organizationID)
}

// GenerateProjectWalletTx returns the unsigned transaction that creates the
// project's wallet on chain.
func (h *WalletHandler) GenerateProjectWalletTx(c *gin.Context) {
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

	result, err := h.generateProjTxUC.Execute(c.Request.Context(), usecases.GenerateProjectWalletTxCommand{
		ProjectID: projectID,
		UserUUID:  userUUID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *WalletHandler) ConfirmProjectWalletTx(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.confirmWalletTx(c, wallet.TypeProject, projectID)
}

func (h *WalletHandler) confirmWalletTx(c *gin.Context, walletType wallet.Type, targetID uint) {
	var req SignedTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.confirmTxUC.Execute(c.Request.Context(), usecases.ConfirmWalletTxCommand{
		WalletType:        walletType,
		TargetID:          targetID,
		SignedTransaction: req.SignedTransaction,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Wallet activated")
}

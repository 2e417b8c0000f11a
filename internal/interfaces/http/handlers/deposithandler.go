package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"crowdfund/internal/application/deposit/usecases"
	"crowdfund/internal/domain/document"
	"crowdfund/internal/shared/constants"
	"crowdfund/internal/shared/errors"
	"crowdfund/internal/shared/logger"
	"crowdfund/internal/shared/utils"
)

type ApproveDepositRequest struct {
	Amount int64 `json:"amount" binding:"required" validate:"required,gt=0"`
}

type GenerateMintTxRequest struct {
	ToWalletHash string `json:"to_wallet_hash" binding:"required" validate:"required"`
}

// DepositHandler serves the deposit workflow: create, approve, mint
// transaction generation and confirmation.
type DepositHandler struct {
	createUC         *usecases.CreateDepositUseCase
	deleteUC         *usecases.DeleteDepositUseCase
	approveUC        *usecases.ApproveDepositUseCase
	generateMintUC   *usecases.GenerateMintTxUseCase
	confirmMintUC    *usecases.ConfirmMintTxUseCase
	listUC           *usecases.ListDepositsUseCase
	listUserUC       *usecases.ListUserDepositsUseCase
	getByReferenceUC *usecases.GetDepositByReferenceUseCase
	logger           logger.Interface
}

func NewDepositHandler(
	createUC *usecases.CreateDepositUseCase,
	deleteUC *usecases.DeleteDepositUseCase,
	approveUC *usecases.ApproveDepositUseCase,
	generateMintUC *usecases.GenerateMintTxUseCase,
	confirmMintUC *usecases.ConfirmMintTxUseCase,
	listUC *usecases.ListDepositsUseCase,
	listUserUC *usecases.ListUserDepositsUseCase,
	getByReferenceUC *usecases.GetDepositByReferenceUseCase,
	logger logger.Interface,
) *DepositHandler {
	return &DepositHandler{
		createUC:         createUC,
		deleteUC:         deleteUC,
		approveUC:        approveUC,
		generateMintUC:   generateMintUC,
		confirmMintUC:    confirmMintUC,
		listUC:           listUC,
		listUserUC:       listUserUC,
		getByReferenceUC: getByReferenceUC,
		logger:           logger,
	}
}

// CreateDeposit opens a deposit for the authenticated user. The response
// carries the reference code the user must put on the bank transfer.
func (h *DepositHandler) CreateDeposit(c *gin.Context) {
	userUUID := c.GetString(constants.ContextKeyUserUUID)
	if userUUID == "" {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateDepositCommand{UserUUID: userUUID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Deposit created")
}

func (h *DepositHandler) ListMyDeposits(c *gin.Context) {
	userUUID := c.GetString(constants.ContextKeyUserUUID)
	if userUUID == "" {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	result, err := h.listUserUC.Execute(c.Request.Context(), usecases.ListUserDepositsCommand{UserUUID: userUUID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// DeleteDeposit is an admin-only unconditional removal.
func (h *DepositHandler) DeleteDeposit(c *gin.Context) {
	depositID, err := utils.ParseUintParam(c, "id", "deposit")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteDepositCommand{DepositID: depositID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Deposit deleted", nil)
}

// ApproveDeposit records the matched bank transfer. It takes a multipart
// form: an amount field plus the supporting document file.
func (h *DepositHandler) ApproveDeposit(c *gin.Context) {
	approverUUID := c.GetString(constants.ContextKeyUserUUID)
	if approverUUID == "" {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	depositID, err := utils.ParseUintParam(c, "id", "deposit")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var form struct {
		Amount int64 `form:"amount" binding:"required"`
	}
	if err := c.ShouldBind(&form); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("amount is required"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("supporting document file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("could not read uploaded file"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("could not read uploaded file"))
		return
	}

	result, err := h.approveUC.Execute(c.Request.Context(), usecases.ApproveDepositCommand{
		DepositID:    depositID,
		ApproverUUID: approverUUID,
		Amount:       form.Amount,
		Document: document.SaveRequest{
			Name:          fileHeader.Filename,
			ContentType:   fileHeader.Header.Get("Content-Type"),
			Data:          data,
			CreatedByUUID: approverUUID,
		},
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// GenerateMintTx returns the unsigned mint transaction for an approved
// deposit.
func (h *DepositHandler) GenerateMintTx(c *gin.Context) {
	userUUID := c.GetString(constants.ContextKeyUserUUID)
	if userUUID == "" {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	depositID, err := utils.ParseUintParam(c, "id", "deposit")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req GenerateMintTxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.generateMintUC.Execute(c.Request.Context(), usecases.GenerateMintTxCommand{
		DepositID:       depositID,
		ToWalletHash:    req.ToWalletHash,
		RequestedByUUID: userUUID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ConfirmMintTx posts the signed mint transaction and records its hash.
func (h *DepositHandler) ConfirmMintTx(c *gin.Context) {
	depositID, err := utils.ParseUintParam(c, "id", "deposit")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SignedTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.confirmMintUC.Execute(c.Request.Context(), usecases.ConfirmMintTxCommand{
		DepositID:         depositID,
		SignedTransaction: req.SignedTransaction,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ListDeposits is the admin reconciliation listing, filtered by approval
// state.
func (h *DepositHandler) ListDeposits(c *gin.Context) {
	approved := c.DefaultQuery("approved", "false") == "true"

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListDepositsCommand{Approved: approved})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// GetDepositByReference finds a deposit by the code on a bank statement.
func (h *DepositHandler) GetDepositByReference(c *gin.Context) {
	reference := c.Query("reference")
	if reference == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("reference is required"))
		return
	}

	result, err := h.getByReferenceUC.Execute(c.Request.Context(), usecases.GetDepositByReferenceCommand{Reference: reference})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/khata-ledger/backend/internal/application/usecase/transaction"
	"github.com/khata-ledger/backend/internal/domain/entity"
	domainerror "github.com/khata-ledger/backend/internal/domain/error"
	"github.com/khata-ledger/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles ledger entry endpoints.
type TransactionController struct {
	recordUseCase *transaction.RecordTransactionUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
	listUseCase   *transaction.ListTransactionsUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	recordUseCase *transaction.RecordTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	listUseCase *transaction.ListTransactionsUseCase,
) *TransactionController {
	return &TransactionController{
		recordUseCase: recordUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		listUseCase:   listUseCase,
	}
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	input := transaction.ListTransactionsInput{}

	if customerIDStr := ctx.Query("customerId"); customerIDStr != "" {
		customerID, err := uuid.Parse(customerIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid customer ID format",
			})
			return
		}
		input.CustomerID = &customerID
	}

	if mainTypeStr := ctx.Query("mainType"); mainTypeStr != "" {
		mainType := entity.MainType(mainTypeStr)
		input.MainType = &mainType
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve transactions",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	input, ok := bindRecordInput(ctx)
	if !ok {
		return
	}

	output, err := c.recordUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Update handles PUT /transactions/:id requests. The entry is re-valued
// from scratch, exactly as if it were recorded anew.
func (c *TransactionController) Update(ctx *gin.Context) {
	transactionID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	recordInput, ok := bindRecordInput(ctx)
	if !ok {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), transaction.UpdateTransactionInput{
		TransactionID:          transactionID,
		RecordTransactionInput: recordInput,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests. Single entries are
// removed outright, there is no recycle bin for them.
func (c *TransactionController) Delete(ctx *gin.Context) {
	transactionID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		TransactionID: transactionID,
	}); err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// bindRecordInput parses and converts the shared create/update payload,
// answering 400 itself on failure.
func bindRecordInput(ctx *gin.Context) (transaction.RecordTransactionInput, bool) {
	var req dto.RecordTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return transaction.RecordTransactionInput{}, false
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid customer ID format",
		})
		return transaction.RecordTransactionInput{}, false
	}

	return transaction.RecordTransactionInput{
		CustomerID:  customerID,
		MainType:    entity.MainType(req.MainType),
		Type:        req.Type,
		Date:        req.Date,
		CropType:    req.CropType,
		WeightInput: req.WeightInput,
		Rate:        decimal.NewFromFloat(req.Rate),
		AmountPaid:  decimal.NewFromFloat(req.AmountPaid),
		Hours:       req.Hours,
		Minutes:     req.Minutes,
		NumTrolleys: req.NumTrolleys,
		Amount:      decimal.NewFromFloat(req.Amount),
		Details:     req.Details,
		BillPhoto:   req.BillPhoto,
	}, true
}

// handleTransactionError maps transaction and customer errors to HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		ctx.JSON(statusCodeForTransactionError(txnErr.Code), dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
			Field: txnErr.Field,
		})
		return
	}

	// Recording against a missing customer surfaces as a customer error.
	var cusErr *domainerror.CustomerError
	if errors.As(err, &cusErr) {
		ctx.JSON(statusCodeForCustomerError(cusErr.Code), dto.ErrorResponse{
			Error: cusErr.Message,
			Code:  string(cusErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForTransactionError maps transaction error codes to HTTP status codes.
func statusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidMainType,
		domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeInvalidCropType,
		domainerror.ErrCodeZeroWeight,
		domainerror.ErrCodeZeroTotalAmount,
		domainerror.ErrCodeAmountOutOfRange,
		domainerror.ErrCodeMissingDate,
		domainerror.ErrCodeBillPhotoTooLarge:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

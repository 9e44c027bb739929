// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/khata-ledger/backend/internal/application/usecase/customer"
	domainerror "github.com/khata-ledger/backend/internal/domain/error"
	"github.com/khata-ledger/backend/internal/integration/entrypoint/dto"
)

// CustomerController handles customer endpoints.
type CustomerController struct {
	createUseCase      *customer.CreateCustomerUseCase
	updateUseCase      *customer.UpdateCustomerUseCase
	listUseCase        *customer.ListCustomersUseCase
	getUseCase         *customer.GetCustomerUseCase
	deleteUseCase      *customer.DeleteCustomerUseCase
	restoreUseCase     *customer.RestoreCustomerUseCase
	listDeletedUseCase *customer.ListDeletedCustomersUseCase
}

// NewCustomerController creates a new customer controller instance.
func NewCustomerController(
	createUseCase *customer.CreateCustomerUseCase,
	updateUseCase *customer.UpdateCustomerUseCase,
	listUseCase *customer.ListCustomersUseCase,
	getUseCase *customer.GetCustomerUseCase,
	deleteUseCase *customer.DeleteCustomerUseCase,
	restoreUseCase *customer.RestoreCustomerUseCase,
	listDeletedUseCase *customer.ListDeletedCustomersUseCase,
) *CustomerController {
	return &CustomerController{
		createUseCase:      createUseCase,
		updateUseCase:      updateUseCase,
		listUseCase:        listUseCase,
		getUseCase:         getUseCase,
		deleteUseCase:      deleteUseCase,
		restoreUseCase:     restoreUseCase,
		listDeletedUseCase: listDeletedUseCase,
	}
}

// List handles GET /customers requests.
func (c *CustomerController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve customers",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerListResponse(output))
}

// Get handles GET /customers/:id requests.
func (c *CustomerController) Get(ctx *gin.Context) {
	customerID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), customer.GetCustomerInput{
		CustomerID: customerID,
	})
	if err != nil {
		c.handleCustomerError(ctx, err)
		return
	}

	response := dto.CustomerDetailResponse{
		ID:           output.Customer.ID.String(),
		Name:         output.Customer.Name,
		Phone:        output.Customer.Phone,
		Address:      output.Customer.Address,
		AccessKey:    output.Customer.AccessKey,
		Due:          output.Due,
		CreatedAt:    output.Customer.CreatedAt,
		Transactions: make([]dto.TransactionResponse, len(output.Transactions)),
	}
	for i, txn := range output.Transactions {
		response.Transactions[i] = dto.ToTransactionResponse(txn)
	}
	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /customers requests.
func (c *CustomerController) Create(ctx *gin.Context) {
	var req dto.CreateCustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeEmptyCustomerName),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), customer.CreateCustomerInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		c.handleCustomerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateCustomerResponse{
		ID:            output.ID.String(),
		Name:          output.Name,
		Phone:         output.Phone,
		Address:       output.Address,
		AccessKey:     output.AccessKey,
		DuplicateName: output.DuplicateName,
	})
}

// Update handles PUT /customers/:id requests.
func (c *CustomerController) Update(ctx *gin.Context) {
	customerID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateCustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeEmptyCustomerName),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), customer.UpdateCustomerInput{
		CustomerID: customerID,
		Name:       req.Name,
		Phone:      req.Phone,
		Address:    req.Address,
	})
	if err != nil {
		c.handleCustomerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UpdateCustomerResponse{
		ID:      output.ID.String(),
		Name:    output.Name,
		Phone:   output.Phone,
		Address: output.Address,
	})
}

// Delete handles DELETE /customers/:id requests. The customer moves to the
// recently-deleted state, nothing is destroyed yet.
func (c *CustomerController) Delete(ctx *gin.Context) {
	customerID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), customer.DeleteCustomerInput{
		CustomerID: customerID,
	}); err != nil {
		c.handleCustomerError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Restore handles POST /customers/:id/restore requests.
func (c *CustomerController) Restore(ctx *gin.Context) {
	customerID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if _, err := c.restoreUseCase.Execute(ctx.Request.Context(), customer.RestoreCustomerInput{
		CustomerID: customerID,
	}); err != nil {
		c.handleCustomerError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListDeleted handles GET /customers/deleted requests.
func (c *CustomerController) ListDeleted(ctx *gin.Context) {
	output, err := c.listDeletedUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve deleted customers",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDeletedCustomerListResponse(output))
}

// parseIDParam parses the :id URL parameter, answering 400 itself on failure.
func parseIDParam(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

// handleCustomerError maps customer errors to HTTP responses.
func (c *CustomerController) handleCustomerError(ctx *gin.Context, err error) {
	var cusErr *domainerror.CustomerError
	if errors.As(err, &cusErr) {
		ctx.JSON(statusCodeForCustomerError(cusErr.Code), dto.ErrorResponse{
			Error: cusErr.Message,
			Code:  string(cusErr.Code),
			Field: cusErr.Field,
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForCustomerError maps customer error codes to HTTP status codes.
func statusCodeForCustomerError(code domainerror.CustomerErrorCode) int {
	switch code {
	case domainerror.ErrCodeCustomerNotFound,
		domainerror.ErrCodeAccessKeyNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCustomerNotDeleted:
		return http.StatusConflict
	case domainerror.ErrCodeEmptyCustomerName,
		domainerror.ErrCodeCustomerNameTooLong,
		domainerror.ErrCodeInvalidPhone,
		domainerror.ErrCodeAddressTooLong:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

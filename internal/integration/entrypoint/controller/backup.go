package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khata-ledger/backend/internal/application/usecase/backup"
	domainerror "github.com/khata-ledger/backend/internal/domain/error"
	"github.com/khata-ledger/backend/internal/integration/entrypoint/dto"
)

// BackupController handles backup export and merge-import endpoints.
type BackupController struct {
	exportUseCase *backup.ExportBackupUseCase
	importUseCase *backup.ImportBackupUseCase
}

// NewBackupController creates a new backup controller instance.
func NewBackupController(
	exportUseCase *backup.ExportBackupUseCase,
	importUseCase *backup.ImportBackupUseCase,
) *BackupController {
	return &BackupController{
		exportUseCase: exportUseCase,
		importUseCase: importUseCase,
	}
}

// Export handles GET /backup/export requests. The full store, deleted
// records included, is returned as a single JSON document.
func (c *BackupController) Export(ctx *gin.Context) {
	output, err := c.exportUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to export backup",
		})
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="khata-backup.json"`)
	ctx.JSON(http.StatusOK, output.Document)
}

// Import handles POST /backup/import requests. The raw body is the backup
// document; sanitizing and merging is the use case's job.
func (c *BackupController) Import(ctx *gin.Context) {
	payload, err := ctx.GetRawData()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Failed to read request body",
		})
		return
	}

	output, err := c.importUseCase.Execute(ctx.Request.Context(), backup.ImportBackupInput{
		Payload: payload,
	})
	if err != nil {
		c.handleBackupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ImportBackupResponse{
		CustomersCreated:     output.CustomersCreated,
		CustomersMerged:      output.CustomersMerged,
		TransactionsImported: output.TransactionsImported,
		ExpensesImported:     output.ExpensesImported,
		RecordsDropped:       output.RecordsDropped,
	})
}

// handleBackupError maps backup errors to HTTP responses.
func (c *BackupController) handleBackupError(ctx *gin.Context, err error) {
	var bkpErr *domainerror.BackupError
	if errors.As(err, &bkpErr) {
		ctx.JSON(statusCodeForBackupError(bkpErr.Code), dto.ErrorResponse{
			Error: bkpErr.Message,
			Code:  string(bkpErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForBackupError maps backup error codes to HTTP status codes.
func statusCodeForBackupError(code domainerror.BackupErrorCode) int {
	switch code {
	case domainerror.ErrCodeBackupTooLarge:
		return http.StatusRequestEntityTooLarge
	case domainerror.ErrCodeBackupNotObject,
		domainerror.ErrCodeBackupEmpty,
		domainerror.ErrCodeBackupMalformed:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

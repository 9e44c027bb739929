package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khata-ledger/backend/internal/application/usecase/portal"
	domainerror "github.com/khata-ledger/backend/internal/domain/error"
	"github.com/khata-ledger/backend/internal/integration/entrypoint/dto"
)

// PortalController serves the public read-only customer statement.
type PortalController struct {
	statementUseCase *portal.GetStatementUseCase
}

// NewPortalController creates a new portal controller instance.
func NewPortalController(statementUseCase *portal.GetStatementUseCase) *PortalController {
	return &PortalController{
		statementUseCase: statementUseCase,
	}
}

// Statement handles GET /portal/:accessKey requests. Unknown and revoked
// keys answer identically so a key leaks nothing once its customer is gone.
func (c *PortalController) Statement(ctx *gin.Context) {
	output, err := c.statementUseCase.Execute(ctx.Request.Context(), portal.GetStatementInput{
		AccessKey: ctx.Param("accessKey"),
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrAccessKeyNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "Invalid or expired access key",
				Code:  string(domainerror.ErrCodeAccessKeyNotFound),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStatementResponse(output))
}

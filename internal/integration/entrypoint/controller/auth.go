package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khata-ledger/backend/internal/application/usecase/auth"
	domainerror "github.com/khata-ledger/backend/internal/domain/error"
	"github.com/khata-ledger/backend/internal/integration/entrypoint/dto"
)

// AuthController handles the PIN gate endpoints.
type AuthController struct {
	unlockUseCase    *auth.UnlockUseCase
	setPinUseCase    *auth.SetPinUseCase
	pinStatusUseCase *auth.PinStatusUseCase
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(
	unlockUseCase *auth.UnlockUseCase,
	setPinUseCase *auth.SetPinUseCase,
	pinStatusUseCase *auth.PinStatusUseCase,
) *AuthController {
	return &AuthController{
		unlockUseCase:    unlockUseCase,
		setPinUseCase:    setPinUseCase,
		pinStatusUseCase: pinStatusUseCase,
	}
}

// Status handles GET /auth/status requests.
func (c *AuthController) Status(ctx *gin.Context) {
	output, err := c.pinStatusUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to load PIN status",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.PinStatusResponse{PinSet: output.PinSet})
}

// Unlock handles POST /auth/unlock requests.
func (c *AuthController) Unlock(ctx *gin.Context) {
	var req dto.UnlockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.unlockUseCase.Execute(ctx.Request.Context(), auth.UnlockInput{
		Pin: req.Pin,
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UnlockResponse{
		Token:     output.Token,
		ExpiresAt: output.ExpiresAt,
	})
}

// SetPin handles POST /auth/pin requests. Setting the first PIN needs no
// current PIN; changing one does.
func (c *AuthController) SetPin(ctx *gin.Context) {
	var req dto.SetPinRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.setPinUseCase.Execute(ctx.Request.Context(), auth.SetPinInput{
		CurrentPin: req.CurrentPin,
		NewPin:     req.NewPin,
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SetPinResponse{Success: output.Success})
}

// handleAuthError maps auth errors to HTTP responses.
func (c *AuthController) handleAuthError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrInvalidPin):
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Incorrect PIN",
			Code:  string(domainerror.ErrCodeInvalidPin),
		})
	case errors.Is(err, domainerror.ErrPinNotSet):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: "No PIN has been set yet",
			Code:  string(domainerror.ErrCodePinNotSet),
		})
	case errors.Is(err, domainerror.ErrWeakPin):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "PIN must be at least 4 digits",
			Code:  string(domainerror.ErrCodeWeakPin),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

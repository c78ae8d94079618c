package handler

import (
	"errors"
	"net/http"
	"warehouse-service/internal/ledger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// writeError translates a ledger error into the HTTP response for write
// endpoints. Storage faults are logged with operation context and surfaced
// as a generic failure.
func writeError(c echo.Context, log *zap.Logger, operation string, err error) error {
	var verr *ledger.ValidationError
	if errors.As(err, &verr) {
		log.Warn("Validation failed",
			zap.String("operation", operation),
			zap.String("reason", verr.Reason))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": verr.Reason})
	}

	var cerr *ledger.ConflictError
	if errors.As(err, &cerr) {
		log.Warn("Conflict",
			zap.String("operation", operation),
			zap.String("reason", cerr.Reason))
		return c.JSON(http.StatusConflict, echo.Map{"error": cerr.Reason})
	}

	switch {
	case errors.Is(err, ledger.ErrProductNotFound),
		errors.Is(err, ledger.ErrBatchNotFound),
		errors.Is(err, ledger.ErrRecordNotFound):
		log.Warn("Referenced record not found",
			zap.String("operation", operation),
			zap.Error(err))
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	}

	log.Error("Storage failure",
		zap.String("operation", operation),
		zap.Error(err))
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
}

// listError degrades read endpoints to an empty list on storage failure so
// reporting views never propagate the fault to the caller.
func listError(c echo.Context, log *zap.Logger, operation string, err error) error {
	log.Error("Failed to load list",
		zap.String("operation", operation),
		zap.Error(err))
	return c.JSON(http.StatusInternalServerError, []struct{}{})
}

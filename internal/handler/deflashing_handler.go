package handler

import (
	"net/http"
	"time"
	"warehouse-service/internal/ledger"
	"warehouse-service/internal/model"
	"warehouse-service/pkg/database"
	"warehouse-service/pkg/logger"
	"warehouse-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CreateDeflashing handles recording a rework pass
func CreateDeflashing(c echo.Context) error {
	log := logger.FromContext(c)

	var req ledger.DeflashingInput
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	defer prometheus.TrackDBOperation("transaction")(time.Now())
	entry, err := ledger.CreateDeflashing(database.GetDB(), req)
	if err != nil {
		return writeError(c, log, "deflashing.create", err)
	}

	prometheus.RecordLedgerOperation("deflashing", "create")
	log.Info("Deflashing entry recorded",
		zap.Uint("entry_id", entry.ID),
		zap.String("computer_code", entry.ComputerCode),
		zap.Int("qty_in", entry.QtyIn),
		zap.Int("qty_out", entry.QtyOut))
	return c.JSON(http.StatusCreated, entry)
}

// DeflashingHistory handles listing rework entries, optionally filtered by
// production type
func DeflashingHistory(c echo.Context) error {
	log := logger.FromContext(c)
	productionType := model.ProductionType(c.QueryParam("production_type"))

	defer prometheus.TrackDBOperation("query")(time.Now())
	entries, err := ledger.DeflashingHistory(database.GetDB(), productionType)
	if err != nil {
		return listError(c, log, "deflashing.history", err)
	}

	log.Info("Deflashing history retrieved", zap.Int("count", len(entries)))
	return c.JSON(http.StatusOK, entries)
}

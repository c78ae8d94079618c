package handler

import (
	"net/http"
	"time"
	"warehouse-service/internal/ledger"
	"warehouse-service/pkg/database"
	"warehouse-service/pkg/logger"
	"warehouse-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CreateIncoming handles recording a new receipt batch
func CreateIncoming(c echo.Context) error {
	log := logger.FromContext(c)

	var req ledger.IncomingInput
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	batch, err := ledger.CreateBatch(database.GetDB(), req)
	if err != nil {
		return writeError(c, log, "incoming.create", err)
	}

	prometheus.RecordLedgerOperation("incoming", "create")
	log.Info("Incoming batch recorded",
		zap.Uint("batch_id", batch.ID),
		zap.String("computer_code", batch.ComputerCode),
		zap.Int("received_qty", batch.ReceivedQty))
	return c.JSON(http.StatusCreated, batch)
}

// ListOpenIncoming handles listing open receipt batches with their
// inspection history
func ListOpenIncoming(c echo.Context) error {
	log := logger.FromContext(c)

	defer prometheus.TrackDBOperation("query")(time.Now())
	batches, err := ledger.OpenBatches(database.GetDB())
	if err != nil {
		return listError(c, log, "incoming.open", err)
	}

	log.Info("Open incoming batches retrieved", zap.Int("count", len(batches)))
	return c.JSON(http.StatusOK, batches)
}

// ListIncomingHistory handles listing fully drawn-down batches
func ListIncomingHistory(c echo.Context) error {
	log := logger.FromContext(c)

	defer prometheus.TrackDBOperation("query")(time.Now())
	batches, err := ledger.ClosedBatches(database.GetDB())
	if err != nil {
		return listError(c, log, "incoming.history", err)
	}

	log.Info("Incoming history retrieved", zap.Int("count", len(batches)))
	return c.JSON(http.StatusOK, batches)
}

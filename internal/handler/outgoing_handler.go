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

// CreateOutgoing handles recording a shipment
func CreateOutgoing(c echo.Context) error {
	log := logger.FromContext(c)

	var req ledger.OutgoingInput
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	entry, err := ledger.CreateOutgoing(database.GetDB(), req)
	if err != nil {
		return writeError(c, log, "outgoing.create", err)
	}

	prometheus.RecordLedgerOperation("outgoing", "create")
	log.Info("Outgoing entry recorded",
		zap.Uint("entry_id", entry.ID),
		zap.String("computer_code", entry.ComputerCode),
		zap.Int("qty_out", entry.QtyOut))
	return c.JSON(http.StatusCreated, entry)
}

// OutgoingHistory handles listing all shipments
func OutgoingHistory(c echo.Context) error {
	log := logger.FromContext(c)

	defer prometheus.TrackDBOperation("query")(time.Now())
	entries, err := ledger.OutgoingHistory(database.GetDB())
	if err != nil {
		return listError(c, log, "outgoing.history", err)
	}

	log.Info("Outgoing history retrieved", zap.Int("count", len(entries)))
	return c.JSON(http.StatusOK, entries)
}

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

// ReleaseRequest defines the payload moving quantity from an incoming batch
// into inspection
type ReleaseRequest struct {
	BatchID           uint   `json:"batch_id"`
	Qty               int    `json:"qty"`
	ResponsiblePerson string `json:"responsible_person"`
}

// OutcomeRequest defines the payload recording an accepted/rejected/spare
// split against an inspection record
type OutcomeRequest struct {
	RecordID          uint   `json:"record_id"`
	OkQty             int    `json:"ok_qty"`
	NgQty             int    `json:"ng_qty"`
	SpareQty          int    `json:"spare_qty"`
	ResponsiblePerson string `json:"responsible_person"`
}

// ReleaseToInspection handles drawing quantity from a batch into the
// inspection workflow
func ReleaseToInspection(c echo.Context) error {
	log := logger.FromContext(c)

	var req ReleaseRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	defer prometheus.TrackDBOperation("transaction")(time.Now())
	if err := ledger.Release(database.GetDB(), req.BatchID, req.Qty, req.ResponsiblePerson); err != nil {
		return writeError(c, log, "inspection.release", err)
	}

	prometheus.RecordLedgerOperation("inspection", "release")
	log.Info("Quantity released to inspection",
		zap.Uint("batch_id", req.BatchID),
		zap.Int("qty", req.Qty))
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// RecordInspectionOutcome handles recording one outcome batch
func RecordInspectionOutcome(c echo.Context) error {
	log := logger.FromContext(c)

	var req OutcomeRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	defer prometheus.TrackDBOperation("transaction")(time.Now())
	result, err := ledger.RecordOutcome(database.GetDB(), req.RecordID, req.OkQty, req.NgQty, req.SpareQty, req.ResponsiblePerson)
	if err != nil {
		return writeError(c, log, "inspection.outcome", err)
	}

	prometheus.RecordLedgerOperation("inspection", "outcome")
	log.Info("Inspection outcome recorded",
		zap.Uint("record_id", req.RecordID),
		zap.Int("remaining", result.Remaining),
		zap.String("status", string(result.Status)))
	return c.JSON(http.StatusOK, result)
}

// InspectionQueue handles listing batches with releasable quantity,
// oldest-first
func InspectionQueue(c echo.Context) error {
	log := logger.FromContext(c)

	defer prometheus.TrackDBOperation("query")(time.Now())
	queue, err := ledger.Queue(database.GetDB())
	if err != nil {
		return listError(c, log, "inspection.queue", err)
	}

	log.Info("Inspection queue retrieved", zap.Int("count", len(queue)))
	return c.JSON(http.StatusOK, queue)
}

// PendingInspections handles listing records awaiting a verdict
func PendingInspections(c echo.Context) error {
	log := logger.FromContext(c)

	defer prometheus.TrackDBOperation("query")(time.Now())
	records, err := ledger.PendingOutcomes(database.GetDB())
	if err != nil {
		return listError(c, log, "inspection.pending", err)
	}

	log.Info("Pending inspections retrieved", zap.Int("count", len(records)))
	return c.JSON(http.StatusOK, records)
}

// InspectionHistory handles listing the full outcome audit trail
func InspectionHistory(c echo.Context) error {
	log := logger.FromContext(c)

	defer prometheus.TrackDBOperation("query")(time.Now())
	logs, err := ledger.OutcomeHistory(database.GetDB())
	if err != nil {
		return listError(c, log, "inspection.history", err)
	}

	log.Info("Inspection history retrieved", zap.Int("count", len(logs)))
	return c.JSON(http.StatusOK, logs)
}

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

// Dashboard handles computing the per-product stock rollup
func Dashboard(c echo.Context) error {
	log := logger.FromContext(c)

	defer prometheus.TrackDBOperation("query")(time.Now())
	rows, err := ledger.ComputeDashboard(database.GetDB())
	if err != nil {
		return listError(c, log, "dashboard.compute", err)
	}

	// Refresh the stock gauges so scrapes track the latest computation
	for _, row := range rows {
		prometheus.UpdateProductStock(row.ComputerCode, string(row.ProductionType), float64(row.FinalStock))
	}

	log.Info("Dashboard computed", zap.Int("products", len(rows)))
	return c.JSON(http.StatusOK, rows)
}

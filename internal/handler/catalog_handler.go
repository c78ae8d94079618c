package handler

import (
	"net/http"
	"strconv"
	"time"
	"warehouse-service/internal/ledger"
	"warehouse-service/pkg/database"
	"warehouse-service/pkg/logger"
	"warehouse-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListProducts handles retrieving the product catalog
func ListProducts(c echo.Context) error {
	log := logger.FromContext(c)

	defer prometheus.TrackDBOperation("query")(time.Now())
	products, err := ledger.ListProducts(database.GetDB())
	if err != nil {
		return listError(c, log, "catalog.list", err)
	}

	log.Info("Products retrieved successfully", zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, products)
}

// CreateProduct handles creating a new catalog entry
func CreateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Creating new product")

	var req ledger.ProductInput
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	product, err := ledger.CreateProduct(database.GetDB(), req)
	if err != nil {
		return writeError(c, log, "catalog.create", err)
	}

	prometheus.RecordLedgerOperation("catalog", "create")
	log.Info("Product created successfully",
		zap.Uint("product_id", product.ID),
		zap.String("computer_code", product.ComputerCode))
	return c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles updating an existing catalog entry
func UpdateProduct(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Warn("Invalid product id", zap.String("id", c.Param("id")))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
	}

	var req ledger.ProductInput
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	product, err := ledger.UpdateProduct(database.GetDB(), uint(id), req)
	if err != nil {
		return writeError(c, log, "catalog.update", err)
	}

	prometheus.RecordLedgerOperation("catalog", "update")
	log.Info("Product updated successfully",
		zap.Uint("product_id", product.ID),
		zap.String("computer_code", product.ComputerCode))
	return c.JSON(http.StatusOK, product)
}

// DeleteProduct handles deleting a catalog entry
func DeleteProduct(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Warn("Invalid product id", zap.String("id", c.Param("id")))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if err := ledger.DeleteProduct(database.GetDB(), uint(id)); err != nil {
		return writeError(c, log, "catalog.delete", err)
	}

	prometheus.RecordLedgerOperation("catalog", "delete")
	log.Info("Product deleted successfully", zap.Uint64("product_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Product deleted successfully"})
}

// LookupProduct handles finding one product by computer code or part no
func LookupProduct(c echo.Context) error {
	log := logger.FromContext(c)
	keyword := c.QueryParam("code")

	defer prometheus.TrackDBOperation("query")(time.Now())
	product, err := ledger.LookupProduct(database.GetDB(), keyword)
	if err != nil {
		return writeError(c, log, "catalog.lookup", err)
	}

	log.Info("Product lookup succeeded",
		zap.String("keyword", keyword),
		zap.String("computer_code", product.ComputerCode))
	return c.JSON(http.StatusOK, product)
}

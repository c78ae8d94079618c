package ledger_test

import (
	"fmt"
	"testing"
	"time"
	"warehouse-service/internal/ledger"
	"warehouse-service/internal/model"
	"warehouse-service/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens an isolated in-memory sqlite database migrated with the full
// schema. Each test gets its own named database so parallel tests never see
// each other's rows.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func createProduct(t *testing.T, db *gorm.DB, code string, baseline int) *model.Product {
	t.Helper()

	product, err := ledger.CreateProduct(db, ledger.ProductInput{
		ComputerCode:   code,
		PartNo:         "PN-" + code,
		ProductName:    "Part " + code,
		ProductionType: model.ProductionTypeHT,
		InitialStock:   baseline,
	})
	require.NoError(t, err)
	return product
}

func createBatch(t *testing.T, db *gorm.DB, code string, qty int) *model.IncomingBatch {
	t.Helper()

	batch, err := ledger.CreateBatch(db, ledger.IncomingInput{
		Date:              time.Now(),
		ComputerCode:      code,
		PartNo:            "PN-" + code,
		ProductName:       "Part " + code,
		ReceivedQty:       qty,
		Batch:             1,
		ResponsiblePerson: "operator",
	})
	require.NoError(t, err)
	return batch
}

package ledger_test

import (
	"testing"
	"warehouse-service/internal/ledger"
	"warehouse-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardEmptyCatalog(t *testing.T) {
	db := testDB(t)

	rows, err := ledger.ComputeDashboard(db)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDashboardEndToEnd(t *testing.T) {
	db := testDB(t)
	createProduct(t, db, "ABC123", 0)

	batch := createBatch(t, db, "ABC123", 100)
	require.NoError(t, ledger.Release(db, batch.ID, 100, "op"))

	var record model.InspectionRecord
	require.NoError(t, db.Where("batch_id = ?", batch.ID).First(&record).Error)
	result, err := ledger.RecordOutcome(db, record.ID, 90, 10, 0, "inspector")
	require.NoError(t, err)
	assert.Equal(t, model.InspectionStatusDone, result.Status)

	_, err = ledger.CreateOutgoing(db, ledger.OutgoingInput{
		ComputerCode:      "ABC123",
		QtyOut:            50,
		ResponsiblePerson: "shipper",
	})
	require.NoError(t, err)

	rows, err := ledger.ComputeDashboard(db)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "ABC123", row.ComputerCode)
	assert.Equal(t, 100, row.TotalIncoming)
	assert.Equal(t, 90, row.TotalAfterOQC)
	assert.Equal(t, 50, row.TotalOutgoing)
	assert.Zero(t, row.TotalDeflashingQty)
	assert.Equal(t, 140, row.FinalStock) // 0 + 100 + 90 + 0 - 50
}

// Deflashing quantity enters the final stock twice: once through the
// baseline credit at create time and again through the aggregation-time
// re-sum. The production system has always reported stock this way; this
// test pins the behavior so any "fix" is a deliberate business decision,
// not an accident.
func TestDashboardCountsDeflashingTwice(t *testing.T) {
	db := testDB(t)
	createProduct(t, db, "ABC123", 0)

	_, err := ledger.CreateDeflashing(db, ledger.DeflashingInput{
		ComputerCode:      "ABC123",
		PartNo:            "PN-ABC123",
		ProductName:       "Part ABC123",
		ProductionType:    model.ProductionTypeHT,
		QtyIn:             100,
		QtyOut:            70,
		NgQty:             30,
		SpareQty:          5,
		ResponsiblePerson: "rework",
	})
	require.NoError(t, err)

	rows, err := ledger.ComputeDashboard(db)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, 75, row.InitialStock) // baseline already credited qty_out + spare
	assert.Equal(t, 1, row.TotalDeflashing)
	assert.Equal(t, 75, row.TotalDeflashingQty) // the same 75 summed again
	assert.Equal(t, 30, row.TotalDeflashingNG)
	assert.Equal(t, 150, row.FinalStock)
}

func TestDashboardOrdersByCode(t *testing.T) {
	db := testDB(t)
	createProduct(t, db, "ZZZ999", 0)
	createProduct(t, db, "AAA111", 0)

	rows, err := ledger.ComputeDashboard(db)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "AAA111", rows[0].ComputerCode)
	assert.Equal(t, "ZZZ999", rows[1].ComputerCode)
}

func TestDashboardIgnoresLedgersOfDeletedProducts(t *testing.T) {
	db := testDB(t)
	product := createProduct(t, db, "ABC123", 0)
	createBatch(t, db, "ABC123", 40)

	require.NoError(t, ledger.DeleteProduct(db, product.ID))

	rows, err := ledger.ComputeDashboard(db)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

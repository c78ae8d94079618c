package ledger_test

import (
	"testing"
	"warehouse-service/internal/ledger"
	"warehouse-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductNormalizesCode(t *testing.T) {
	db := testDB(t)

	product, err := ledger.CreateProduct(db, ledger.ProductInput{
		ComputerCode: "  abc123  ",
		PartNo:       " PN-1 ",
		ProductName:  " Widget ",
	})
	require.NoError(t, err)
	assert.Equal(t, "ABC123", product.ComputerCode)
	assert.Equal(t, "PN-1", product.PartNo)
	assert.Equal(t, "Widget", product.ProductName)
	assert.Equal(t, model.ProductionTypeHT, product.ProductionType)
}

func TestCreateProductRejectsMissingFields(t *testing.T) {
	db := testDB(t)

	_, err := ledger.CreateProduct(db, ledger.ProductInput{
		ComputerCode: "ABC123",
		ProductName:  "Widget",
	})
	var verr *ledger.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestCreateProductRejectsUnknownProductionType(t *testing.T) {
	db := testDB(t)

	_, err := ledger.CreateProduct(db, ledger.ProductInput{
		ComputerCode:   "ABC123",
		PartNo:         "PN-1",
		ProductName:    "Widget",
		ProductionType: "XX",
	})
	var verr *ledger.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestCreateProductConflictIsCaseInsensitive(t *testing.T) {
	db := testDB(t)
	createProduct(t, db, "ABC123", 0)

	_, err := ledger.CreateProduct(db, ledger.ProductInput{
		ComputerCode: " abc123 ",
		PartNo:       "PN-2",
		ProductName:  "Other",
	})
	var cerr *ledger.ConflictError
	require.ErrorAs(t, err, &cerr)

	// No write happened
	var count int64
	require.NoError(t, db.Model(&model.Product{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestLookupProductByCodeOrPartNo(t *testing.T) {
	db := testDB(t)
	createProduct(t, db, "ABC123", 0)

	byCode, err := ledger.LookupProduct(db, " abc123 ")
	require.NoError(t, err)
	assert.Equal(t, "ABC123", byCode.ComputerCode)

	byPart, err := ledger.LookupProduct(db, "pn-abc123")
	require.NoError(t, err)
	assert.Equal(t, "ABC123", byPart.ComputerCode)

	_, err = ledger.LookupProduct(db, "MISSING")
	assert.ErrorIs(t, err, ledger.ErrProductNotFound)

	_, err = ledger.LookupProduct(db, "   ")
	var verr *ledger.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestUpdateProduct(t *testing.T) {
	db := testDB(t)
	product := createProduct(t, db, "ABC123", 5)

	updated, err := ledger.UpdateProduct(db, product.ID, ledger.ProductInput{
		ComputerCode:   "ABC123",
		PartNo:         "PN-NEW",
		ProductName:    "Renamed",
		ProductionType: model.ProductionTypeHK,
		Location:       "Rack 4",
		InitialStock:   12,
	})
	require.NoError(t, err)
	assert.Equal(t, "PN-NEW", updated.PartNo)
	assert.Equal(t, model.ProductionTypeHK, updated.ProductionType)
	assert.Equal(t, 12, updated.InitialStock)
}

func TestUpdateProductNotFound(t *testing.T) {
	db := testDB(t)

	_, err := ledger.UpdateProduct(db, 999, ledger.ProductInput{
		ComputerCode:   "ABC123",
		PartNo:         "PN-1",
		ProductName:    "Widget",
		ProductionType: model.ProductionTypeHT,
	})
	assert.ErrorIs(t, err, ledger.ErrProductNotFound)
}

func TestUpdateProductCodeConflict(t *testing.T) {
	db := testDB(t)
	createProduct(t, db, "ABC123", 0)
	other := createProduct(t, db, "XYZ789", 0)

	_, err := ledger.UpdateProduct(db, other.ID, ledger.ProductInput{
		ComputerCode:   "abc123",
		PartNo:         "PN-2",
		ProductName:    "Other",
		ProductionType: model.ProductionTypeHT,
	})
	var cerr *ledger.ConflictError
	require.ErrorAs(t, err, &cerr)
}

func TestDeleteProduct(t *testing.T) {
	db := testDB(t)
	product := createProduct(t, db, "ABC123", 0)

	require.NoError(t, ledger.DeleteProduct(db, product.ID))
	assert.ErrorIs(t, ledger.DeleteProduct(db, product.ID), ledger.ErrProductNotFound)
}

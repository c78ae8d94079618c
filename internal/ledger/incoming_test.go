package ledger_test

import (
	"testing"
	"time"
	"warehouse-service/internal/ledger"
	"warehouse-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBatchOpensWithFullRemaining(t *testing.T) {
	db := testDB(t)

	batch := createBatch(t, db, "abc123", 100)
	assert.Equal(t, "ABC123", batch.ComputerCode)
	assert.Equal(t, 100, batch.ReceivedQty)
	assert.Equal(t, 100, batch.RemainingQty)
	assert.Equal(t, model.BatchStatusOpen, batch.Status)
}

func TestCreateBatchValidation(t *testing.T) {
	db := testDB(t)

	cases := []struct {
		name string
		in   ledger.IncomingInput
	}{
		{"zero quantity", ledger.IncomingInput{Date: time.Now(), ComputerCode: "ABC123", ReceivedQty: 0, ResponsiblePerson: "op"}},
		{"negative quantity", ledger.IncomingInput{Date: time.Now(), ComputerCode: "ABC123", ReceivedQty: -5, ResponsiblePerson: "op"}},
		{"missing code", ledger.IncomingInput{Date: time.Now(), ReceivedQty: 10, ResponsiblePerson: "op"}},
		{"missing person", ledger.IncomingInput{Date: time.Now(), ComputerCode: "ABC123", ReceivedQty: 10}},
		{"missing date", ledger.IncomingInput{ComputerCode: "ABC123", ReceivedQty: 10, ResponsiblePerson: "op"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ledger.CreateBatch(db, tc.in)
			var verr *ledger.ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}

	// Nothing was written
	var count int64
	require.NoError(t, db.Model(&model.IncomingBatch{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestMultipleOpenBatchesPerProductAreLegal(t *testing.T) {
	db := testDB(t)

	createBatch(t, db, "ABC123", 50)
	createBatch(t, db, "ABC123", 70)

	open, err := ledger.OpenBatches(db)
	require.NoError(t, err)
	assert.Len(t, open, 2)
}

func TestClosedBatchesListsDrawnDownBatches(t *testing.T) {
	db := testDB(t)

	batch := createBatch(t, db, "ABC123", 30)
	require.NoError(t, ledger.Release(db, batch.ID, 30, "op"))

	open, err := ledger.OpenBatches(db)
	require.NoError(t, err)
	assert.Empty(t, open)

	closed, err := ledger.ClosedBatches(db)
	require.NoError(t, err)
	require.Len(t, closed, 1)
	assert.Equal(t, model.BatchStatusClosed, closed[0].Status)
	require.NotNil(t, closed[0].Inspection)
	assert.Equal(t, 30, closed[0].Inspection.BeforeQty)
}

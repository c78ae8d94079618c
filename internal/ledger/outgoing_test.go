package ledger_test

import (
	"testing"
	"time"
	"warehouse-service/internal/ledger"
	"warehouse-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOutgoingDefaultsDate(t *testing.T) {
	db := testDB(t)

	entry, err := ledger.CreateOutgoing(db, ledger.OutgoingInput{
		ComputerCode:      "abc123",
		QtyOut:            50,
		ResponsiblePerson: "shipper",
	})
	require.NoError(t, err)
	assert.Equal(t, "ABC123", entry.ComputerCode)
	assert.False(t, entry.Date.IsZero())
	assert.WithinDuration(t, time.Now(), entry.Date, time.Minute)
}

func TestCreateOutgoingValidation(t *testing.T) {
	db := testDB(t)

	var verr *ledger.ValidationError

	_, err := ledger.CreateOutgoing(db, ledger.OutgoingInput{QtyOut: 10, ResponsiblePerson: "shipper"})
	require.ErrorAs(t, err, &verr)

	_, err = ledger.CreateOutgoing(db, ledger.OutgoingInput{ComputerCode: "ABC123", QtyOut: 10})
	require.ErrorAs(t, err, &verr)

	_, err = ledger.CreateOutgoing(db, ledger.OutgoingInput{ComputerCode: "ABC123", QtyOut: 0, ResponsiblePerson: "shipper"})
	require.ErrorAs(t, err, &verr)

	var count int64
	require.NoError(t, db.Model(&model.OutgoingEntry{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestOutgoingHistoryNewestFirst(t *testing.T) {
	db := testDB(t)

	for _, qty := range []int{10, 20} {
		_, err := ledger.CreateOutgoing(db, ledger.OutgoingInput{
			ComputerCode:      "ABC123",
			QtyOut:            qty,
			ResponsiblePerson: "shipper",
		})
		require.NoError(t, err)
	}

	entries, err := ledger.OutgoingHistory(db)
	require.NoError(t, err)
	require.Len(t, entries, 2)
}

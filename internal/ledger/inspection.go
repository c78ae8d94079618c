package ledger

import (
	"errors"
	"strings"
	"warehouse-service/internal/model"

	"gorm.io/gorm"
)

// QueueItem is the projection of an incoming batch shown to operators in the
// release queue.
type QueueItem struct {
	ID           uint   `json:"id"`
	ComputerCode string `json:"computer_code"`
	PartNo       string `json:"part_no"`
	ProductName  string `json:"product_name"`
	RemainingQty int    `json:"remaining_qty"`
}

// OutcomeResult is returned to the caller after recording an outcome so the
// operator sees how much of the release is still unverified.
type OutcomeResult struct {
	Remaining int                    `json:"remaining"`
	Status    model.InspectionStatus `json:"status"`
}

// Release moves qty units from an incoming batch into inspection. It
// finds-or-creates the batch's inspection record, accumulates before_qty,
// appends a zero-valued log row as the placeholder for the upcoming outcome,
// and draws down the batch, closing it when remaining hits zero. All of that
// happens in one transaction.
func Release(db *gorm.DB, batchID uint, qty int, person string) error {
	person = strings.TrimSpace(person)
	if batchID == 0 {
		return validationErrorf("batch id is required")
	}
	if qty <= 0 {
		return validationErrorf("release quantity must be greater than zero")
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var batch model.IncomingBatch
		if err := tx.First(&batch, batchID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBatchNotFound
			}
			return err
		}

		if qty > batch.RemainingQty {
			return validationErrorf("release quantity %d exceeds remaining %d", qty, batch.RemainingQty)
		}

		var record model.InspectionRecord
		err := tx.Where("batch_id = ?", batchID).First(&record).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			record = model.InspectionRecord{
				BatchID:           batchID,
				ComputerCode:      batch.ComputerCode,
				PartNo:            batch.PartNo,
				ProductName:       batch.ProductName,
				BeforeQty:         qty,
				Status:            model.InspectionStatusPending,
				ResponsiblePerson: person,
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			record.BeforeQty += qty
			if err := tx.Model(&record).Update("before_qty", record.BeforeQty).Error; err != nil {
				return err
			}
		}

		// Placeholder log row for the outcome batch that follows this release
		log := model.InspectionLog{
			RecordID:          record.ID,
			ResponsiblePerson: person,
		}
		if err := tx.Create(&log).Error; err != nil {
			return err
		}

		newRemaining := batch.RemainingQty - qty
		status := model.BatchStatusOpen
		if newRemaining == 0 {
			status = model.BatchStatusClosed
		}
		return tx.Model(&batch).Updates(map[string]interface{}{
			"remaining_qty": newRemaining,
			"status":        status,
		}).Error
	})
}

// RecordOutcome applies one accepted/rejected/spare split to an inspection
// record. Negative deltas floor to zero, matching how the original line
// terminals submit empty fields. The log row and the rollup update commit
// together.
func RecordOutcome(db *gorm.DB, recordID uint, okQty, ngQty, spareQty int, person string) (*OutcomeResult, error) {
	if recordID == 0 {
		return nil, validationErrorf("record id is required")
	}

	addOk := max(okQty, 0)
	addNg := max(ngQty, 0)
	addSpare := max(spareQty, 0)
	person = strings.TrimSpace(person)

	var result OutcomeResult
	err := db.Transaction(func(tx *gorm.DB) error {
		var record model.InspectionRecord
		if err := tx.First(&record, recordID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRecordNotFound
			}
			return err
		}

		log := model.InspectionLog{
			RecordID:          record.ID,
			OkQty:             addOk,
			NgQty:             addNg,
			SpareQty:          addSpare,
			ResponsiblePerson: person,
		}
		if err := tx.Create(&log).Error; err != nil {
			return err
		}

		record.AfterQty += addOk
		record.NgQty += addNg
		record.SpareQty += addSpare

		remaining := record.BeforeQty - (record.AfterQty + record.NgQty)
		status := model.InspectionStatusPending
		if remaining <= 0 {
			status = model.InspectionStatusDone
		}

		if err := tx.Model(&record).Updates(map[string]interface{}{
			"after_qty":          record.AfterQty,
			"ng_qty":             record.NgQty,
			"spare_qty":          record.SpareQty,
			"responsible_person": person,
			"status":             status,
		}).Error; err != nil {
			return err
		}

		result = OutcomeResult{Remaining: remaining, Status: status}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Queue returns batches still holding releasable quantity, oldest-first so
// operators work FIFO.
func Queue(db *gorm.DB) ([]QueueItem, error) {
	var batches []model.IncomingBatch
	if err := db.Where("remaining_qty > 0").Order("created_at ASC").Find(&batches).Error; err != nil {
		return nil, err
	}

	queue := make([]QueueItem, 0, len(batches))
	for _, b := range batches {
		queue = append(queue, QueueItem{
			ID:           b.ID,
			ComputerCode: b.ComputerCode,
			PartNo:       b.PartNo,
			ProductName:  b.ProductName,
			RemainingQty: b.RemainingQty,
		})
	}
	return queue, nil
}

// PendingOutcomes returns inspection records awaiting a verdict, oldest-first
func PendingOutcomes(db *gorm.DB) ([]model.InspectionRecord, error) {
	var records []model.InspectionRecord
	err := db.Where("status = ?", model.InspectionStatusPending).
		Order("created_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// OutcomeHistory returns the full audit trail, newest-first, each row with
// its parent record for display.
func OutcomeHistory(db *gorm.DB) ([]model.InspectionLog, error) {
	var logs []model.InspectionLog
	err := db.Preload("Record").Order("created_at DESC").Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

package ledger

import (
	"strings"
	"time"
	"warehouse-service/internal/model"

	"gorm.io/gorm"
)

// IncomingInput carries the fields for a new receipt batch
type IncomingInput struct {
	Date              time.Time `json:"date"`
	ComputerCode      string    `json:"computer_code"`
	PartNo            string    `json:"part_no"`
	ProductName       string    `json:"product_name"`
	ReceivedQty       int       `json:"received_qty"`
	Batch             int       `json:"batch"`
	ResponsiblePerson string    `json:"responsible_person"`
}

// CreateBatch records a receipt. The batch opens with remaining == received;
// only inspection releases draw it down. Multiple open batches per product
// are legal.
func CreateBatch(db *gorm.DB, in IncomingInput) (*model.IncomingBatch, error) {
	code := strings.ToUpper(strings.TrimSpace(in.ComputerCode))
	person := strings.TrimSpace(in.ResponsiblePerson)

	if code == "" || person == "" || in.Date.IsZero() {
		return nil, validationErrorf("computer code, responsible person and date are required")
	}
	if in.ReceivedQty <= 0 {
		return nil, validationErrorf("incoming quantity must be greater than zero")
	}

	batch := model.IncomingBatch{
		Date:              in.Date,
		ComputerCode:      code,
		PartNo:            strings.TrimSpace(in.PartNo),
		ProductName:       strings.TrimSpace(in.ProductName),
		ReceivedQty:       in.ReceivedQty,
		RemainingQty:      in.ReceivedQty,
		Status:            model.BatchStatusOpen,
		Batch:             in.Batch,
		ResponsiblePerson: person,
	}
	if err := db.Create(&batch).Error; err != nil {
		return nil, err
	}
	return &batch, nil
}

// OpenBatches returns OPEN batches newest-first by receipt date, each with
// its inspection history preloaded for display.
func OpenBatches(db *gorm.DB) ([]model.IncomingBatch, error) {
	var batches []model.IncomingBatch
	err := db.Where("status = ?", model.BatchStatusOpen).
		Order("date DESC").
		Preload("Inspection").
		Preload("Inspection.Logs", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Find(&batches).Error
	if err != nil {
		return nil, err
	}
	return batches, nil
}

// ClosedBatches returns fully drawn-down batches, newest-first by creation
func ClosedBatches(db *gorm.DB) ([]model.IncomingBatch, error) {
	var batches []model.IncomingBatch
	err := db.Where("status != ?", model.BatchStatusOpen).
		Order("created_at DESC").
		Preload("Inspection").
		Preload("Inspection.Logs", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Find(&batches).Error
	if err != nil {
		return nil, err
	}
	return batches, nil
}

package ledger

import (
	"strings"
	"time"
	"warehouse-service/internal/model"

	"gorm.io/gorm"
)

// OutgoingInput carries the fields for one shipment
type OutgoingInput struct {
	ComputerCode      string    `json:"computer_code"`
	PartNo            string    `json:"part_no"`
	ProductName       string    `json:"product_name"`
	QtyOut            int       `json:"qty_out"`
	ResponsiblePerson string    `json:"responsible_person"`
	Date              time.Time `json:"date"`
}

// CreateOutgoing records a shipment. Pure insert; the subtraction from stock
// happens at dashboard aggregation time.
func CreateOutgoing(db *gorm.DB, in OutgoingInput) (*model.OutgoingEntry, error) {
	code := strings.ToUpper(strings.TrimSpace(in.ComputerCode))
	person := strings.TrimSpace(in.ResponsiblePerson)

	if code == "" || person == "" {
		return nil, validationErrorf("computer code and responsible person are required")
	}
	if in.QtyOut <= 0 {
		return nil, validationErrorf("outgoing quantity must be greater than zero")
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	entry := model.OutgoingEntry{
		ComputerCode:      code,
		PartNo:            strings.TrimSpace(in.PartNo),
		ProductName:       strings.TrimSpace(in.ProductName),
		QtyOut:            in.QtyOut,
		ResponsiblePerson: person,
		Date:              date,
	}
	if err := db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// OutgoingHistory returns all shipments, newest-first
func OutgoingHistory(db *gorm.DB) ([]model.OutgoingEntry, error) {
	var entries []model.OutgoingEntry
	if err := db.Order("created_at DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

package ledger

import (
	"strings"
	"warehouse-service/internal/model"

	"gorm.io/gorm"
)

// DeflashingInput carries the fields for one rework pass
type DeflashingInput struct {
	ComputerCode      string               `json:"computer_code"`
	PartNo            string               `json:"part_no"`
	ProductName       string               `json:"product_name"`
	ProductionType    model.ProductionType `json:"production_type"`
	QtyIn             int                  `json:"qty_in"`
	QtyOut            int                  `json:"qty_out"`
	NgQty             int                  `json:"ng_qty"`
	SpareQty          int                  `json:"spare_qty"`
	ResponsiblePerson string               `json:"responsible_person"`
	Remark            string               `json:"remark"`
}

// CreateDeflashing records a rework pass and credits qty_out + spare_qty
// back to the product baseline. The entry and the baseline increment commit
// as one transaction; the balance qty_out + ng_qty == qty_in is rejected
// before anything is written.
func CreateDeflashing(db *gorm.DB, in DeflashingInput) (*model.DeflashingEntry, error) {
	code := strings.ToUpper(strings.TrimSpace(in.ComputerCode))
	partNo := strings.TrimSpace(in.PartNo)
	name := strings.TrimSpace(in.ProductName)
	person := strings.TrimSpace(in.ResponsiblePerson)

	if code == "" || partNo == "" || name == "" || person == "" {
		return nil, validationErrorf("computer code, part no, product name and responsible person are required")
	}
	if !in.ProductionType.Valid() {
		return nil, validationErrorf("unknown production type %q", in.ProductionType)
	}
	if in.QtyIn <= 0 {
		return nil, validationErrorf("input quantity must be greater than zero")
	}
	if in.QtyOut < 0 || in.NgQty < 0 || in.SpareQty < 0 {
		return nil, validationErrorf("quantities cannot be negative")
	}
	if in.QtyOut+in.NgQty != in.QtyIn {
		return nil, validationErrorf("OK + NG must equal input quantity")
	}

	entry := model.DeflashingEntry{
		ComputerCode:      code,
		PartNo:            partNo,
		ProductName:       name,
		ProductionType:    in.ProductionType,
		QtyIn:             in.QtyIn,
		QtyOut:            in.QtyOut,
		NgQty:             in.NgQty,
		SpareQty:          in.SpareQty,
		ResponsiblePerson: person,
		Remark:            strings.TrimSpace(in.Remark),
	}

	stockCredit := in.QtyOut + in.SpareQty

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		result := tx.Model(&model.Product{}).
			Where("computer_code = ?", code).
			UpdateColumn("initial_stock", gorm.Expr("initial_stock + ?", stockCredit))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrProductNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeflashingHistory returns all rework entries newest-first, optionally
// filtered by production type.
func DeflashingHistory(db *gorm.DB, productionType model.ProductionType) ([]model.DeflashingEntry, error) {
	query := db.Order("created_at DESC")
	if productionType != "" {
		if !productionType.Valid() {
			return nil, validationErrorf("unknown production type %q", productionType)
		}
		query = query.Where("production_type = ?", productionType)
	}

	var entries []model.DeflashingEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

package ledger

import (
	"errors"
	"strings"
	"warehouse-service/internal/model"

	"gorm.io/gorm"
)

// ProductInput carries the catalog fields for create and update. Codes are
// normalized (trimmed, uppercased) before any check or write.
type ProductInput struct {
	ComputerCode   string               `json:"computer_code"`
	PartNo         string               `json:"part_no"`
	ProductName    string               `json:"product_name"`
	ProductionType model.ProductionType `json:"production_type"`
	Location       string               `json:"location"`
	InitialStock   int                  `json:"initial_stock"`
}

func (in *ProductInput) normalize() {
	in.ComputerCode = strings.ToUpper(strings.TrimSpace(in.ComputerCode))
	in.PartNo = strings.TrimSpace(in.PartNo)
	in.ProductName = strings.TrimSpace(in.ProductName)
	in.Location = strings.TrimSpace(in.Location)
}

// CreateProduct inserts a new catalog entry. The computer code must be
// unique case-insensitively after trimming.
func CreateProduct(db *gorm.DB, in ProductInput) (*model.Product, error) {
	in.normalize()

	if in.ComputerCode == "" || in.PartNo == "" || in.ProductName == "" {
		return nil, validationErrorf("computer code, part no and product name are required")
	}
	if in.ProductionType == "" {
		in.ProductionType = model.ProductionTypeHT
	}
	if !in.ProductionType.Valid() {
		return nil, validationErrorf("unknown production type %q", in.ProductionType)
	}

	var count int64
	if err := db.Model(&model.Product{}).Where("computer_code = ?", in.ComputerCode).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, &ConflictError{Reason: "computer code already exists"}
	}

	product := model.Product{
		ComputerCode:   in.ComputerCode,
		PartNo:         in.PartNo,
		ProductName:    in.ProductName,
		ProductionType: in.ProductionType,
		Location:       in.Location,
		InitialStock:   in.InitialStock,
	}
	if err := db.Create(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct rewrites the catalog entry's descriptive fields and baseline.
// Ledger rows keep their snapshots, so history is unaffected.
func UpdateProduct(db *gorm.DB, id uint, in ProductInput) (*model.Product, error) {
	in.normalize()

	if in.ComputerCode == "" || in.PartNo == "" || in.ProductName == "" || in.ProductionType == "" {
		return nil, validationErrorf("computer code, part no, product name and production type are required")
	}
	if !in.ProductionType.Valid() {
		return nil, validationErrorf("unknown production type %q", in.ProductionType)
	}

	var product model.Product
	if err := db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if in.ComputerCode != product.ComputerCode {
		var count int64
		if err := db.Model(&model.Product{}).Where("computer_code = ? AND id != ?", in.ComputerCode, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, &ConflictError{Reason: "computer code already exists"}
		}
	}

	product.ComputerCode = in.ComputerCode
	product.PartNo = in.PartNo
	product.ProductName = in.ProductName
	product.ProductionType = in.ProductionType
	product.Location = in.Location
	product.InitialStock = in.InitialStock

	if err := db.Save(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes a catalog entry. Outstanding ledger rows keep their
// snapshots and simply stop appearing on the dashboard.
func DeleteProduct(db *gorm.DB, id uint) error {
	result := db.Delete(&model.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// ListProducts returns the catalog, newest entries first
func ListProducts(db *gorm.DB) ([]model.Product, error) {
	var products []model.Product
	if err := db.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// LookupProduct finds one product by computer code or part no,
// case-insensitively after trimming.
func LookupProduct(db *gorm.DB, keyword string) (*model.Product, error) {
	q := strings.ToUpper(strings.TrimSpace(keyword))
	if q == "" {
		return nil, validationErrorf("search keyword required")
	}

	var product model.Product
	err := db.Where("computer_code = ? OR UPPER(part_no) = ?", q, q).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

package model

import (
	"time"

	"gorm.io/gorm"
)

// ProductionType distinguishes the two production lines on site
type ProductionType string

const (
	ProductionTypeHT ProductionType = "HT"
	ProductionTypeHK ProductionType = "HK"
)

// Valid reports whether the value is one of the known production types
func (p ProductionType) Valid() bool {
	return p == ProductionTypeHT || p == ProductionTypeHK
}

// Product represents the product master data. InitialStock is the manually
// entered starting baseline; deflashing completions are the only ledger that
// writes it back.
type Product struct {
	ID             uint           `json:"id" gorm:"primarykey"`
	ComputerCode   string         `json:"computer_code" gorm:"type:varchar(100);uniqueIndex;not null"`
	PartNo         string         `json:"part_no" gorm:"type:varchar(100);not null"`
	ProductName    string         `json:"product_name" gorm:"type:varchar(255);not null"`
	ProductionType ProductionType `json:"production_type" gorm:"type:varchar(10);not null;default:'HT'"`
	Location       string         `json:"location" gorm:"type:varchar(100)"`
	InitialStock   int            `json:"initial_stock" gorm:"not null;default:0"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

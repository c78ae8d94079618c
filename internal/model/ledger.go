package model

import "time"

// BatchStatus is the lifecycle status of an incoming batch
type BatchStatus string

const (
	BatchStatusOpen   BatchStatus = "OPEN"
	BatchStatusClosed BatchStatus = "CLOSED"
)

// InspectionStatus is the lifecycle status of an inspection record
type InspectionStatus string

const (
	InspectionStatusPending InspectionStatus = "PENDING"
	InspectionStatusDone    InspectionStatus = "DONE"
)

// IncomingBatch records a single receipt of stock. RemainingQty starts equal
// to ReceivedQty and is drawn down as units are released to inspection; the
// batch is CLOSED exactly when it reaches zero. Product fields are snapshots
// taken at receipt time so later catalog edits do not rewrite history.
type IncomingBatch struct {
	ID                uint              `json:"id" gorm:"primarykey"`
	Date              time.Time         `json:"date" gorm:"not null;index"`
	ComputerCode      string            `json:"computer_code" gorm:"type:varchar(100);not null;index"`
	PartNo            string            `json:"part_no" gorm:"type:varchar(100)"`
	ProductName       string            `json:"product_name" gorm:"type:varchar(255)"`
	ReceivedQty       int               `json:"received_qty" gorm:"not null"`
	RemainingQty      int               `json:"remaining_qty" gorm:"not null"`
	Status            BatchStatus       `json:"status" gorm:"type:varchar(10);not null;default:'OPEN';index"`
	Batch             int               `json:"batch" gorm:"not null"`
	ResponsiblePerson string            `json:"responsible_person" gorm:"type:varchar(100);not null"`
	Inspection        *InspectionRecord `json:"inspection,omitempty" gorm:"foreignKey:BatchID"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// InspectionRecord is the mutable rollup of inspection work against one
// incoming batch: cumulative released (before), accepted (after), rejected
// (ng) and spare quantities. The record is DONE once before - (after + ng)
// drops to zero or below.
type InspectionRecord struct {
	ID                uint             `json:"id" gorm:"primarykey"`
	BatchID           uint             `json:"batch_id" gorm:"not null;index"`
	ComputerCode      string           `json:"computer_code" gorm:"type:varchar(100);not null;index"`
	PartNo            string           `json:"part_no" gorm:"type:varchar(100)"`
	ProductName       string           `json:"product_name" gorm:"type:varchar(255)"`
	BeforeQty         int              `json:"before_qty" gorm:"not null;default:0"`
	AfterQty          int              `json:"after_qty" gorm:"not null;default:0"`
	NgQty             int              `json:"ng_qty" gorm:"not null;default:0"`
	SpareQty          int              `json:"spare_qty" gorm:"not null;default:0"`
	Status            InspectionStatus `json:"status" gorm:"type:varchar(10);not null;default:'PENDING';index"`
	ResponsiblePerson string           `json:"responsible_person" gorm:"type:varchar(100)"`
	Logs              []InspectionLog  `json:"logs,omitempty" gorm:"foreignKey:RecordID"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// InspectionLog is the append-only audit trail of inspection actions. A
// release appends a zero-valued row; each recorded outcome appends its
// deltas. Rows are never updated.
type InspectionLog struct {
	ID                uint              `json:"id" gorm:"primarykey"`
	RecordID          uint              `json:"record_id" gorm:"not null;index"`
	OkQty             int               `json:"ok_qty" gorm:"not null;default:0"`
	NgQty             int               `json:"ng_qty" gorm:"not null;default:0"`
	SpareQty          int               `json:"spare_qty" gorm:"not null;default:0"`
	ResponsiblePerson string            `json:"responsible_person" gorm:"type:varchar(100)"`
	Record            *InspectionRecord `json:"record,omitempty" gorm:"foreignKey:RecordID"`
	CreatedAt         time.Time         `json:"created_at"`
}

// DeflashingEntry records one rework pass. Immutable once created; the
// balance qty_out + ng_qty == qty_in is enforced at creation and qty_out +
// spare_qty is credited back to the product baseline in the same
// transaction.
type DeflashingEntry struct {
	ID                uint           `json:"id" gorm:"primarykey"`
	ComputerCode      string         `json:"computer_code" gorm:"type:varchar(100);not null;index"`
	PartNo            string         `json:"part_no" gorm:"type:varchar(100);not null"`
	ProductName       string         `json:"product_name" gorm:"type:varchar(255);not null"`
	ProductionType    ProductionType `json:"production_type" gorm:"type:varchar(10);not null;index"`
	QtyIn             int            `json:"qty_in" gorm:"not null"`
	QtyOut            int            `json:"qty_out" gorm:"not null"`
	NgQty             int            `json:"ng_qty" gorm:"not null"`
	SpareQty          int            `json:"spare_qty" gorm:"not null"`
	ResponsiblePerson string         `json:"responsible_person" gorm:"type:varchar(100);not null"`
	Remark            string         `json:"remark" gorm:"type:text"`
	CreatedAt         time.Time      `json:"created_at"`
}

// OutgoingEntry records one shipment. Immutable; subtraction from stock
// happens only at dashboard aggregation time.
type OutgoingEntry struct {
	ID                uint      `json:"id" gorm:"primarykey"`
	ComputerCode      string    `json:"computer_code" gorm:"type:varchar(100);not null;index"`
	PartNo            string    `json:"part_no" gorm:"type:varchar(100)"`
	ProductName       string    `json:"product_name" gorm:"type:varchar(255)"`
	QtyOut            int       `json:"qty_out" gorm:"not null"`
	ResponsiblePerson string    `json:"responsible_person" gorm:"type:varchar(100);not null"`
	Date              time.Time `json:"date" gorm:"not null"`
	CreatedAt         time.Time `json:"created_at"`
}

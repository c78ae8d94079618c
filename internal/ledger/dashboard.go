package ledger

import (
	"warehouse-service/internal/model"

	"gorm.io/gorm"
)

// DashboardRow is the per-product stock rollup
type DashboardRow struct {
	ComputerCode   string               `json:"computer_code"`
	PartNo         string               `json:"part_no"`
	ProductName    string               `json:"product_name"`
	ProductionType model.ProductionType `json:"production_type"`
	Location       string               `json:"location"`

	InitialStock int `json:"initial_stock"`

	TotalIncoming int `json:"total_incoming"`
	TotalAfterOQC int `json:"total_after_oqc"`
	TotalOutgoing int `json:"total_outgoing"`

	TotalDeflashing    int `json:"total_deflashing"`
	TotalDeflashingQty int `json:"total_deflashing_qty"`
	TotalDeflashingNG  int `json:"total_deflashing_ng"`

	FinalStock int `json:"final_stock"`
}

type deflashingTotals struct {
	count    int
	quantity int
	ng       int
}

// ComputeDashboard derives the stock rollup for every product, code
// ascending. Pure read; all ledgers are loaded once and folded in memory,
// which is fine for a catalog of tens to low thousands of SKUs.
//
// Deflashing quantity is applied twice: CreateDeflashing already credited
// qty_out + spare into the product baseline, and the same sum is added again
// here as totalDeflashingQty. The production system has always reported
// stock this way and the site reconciles against it, so the double count is
// kept until the business confirms which figure is right.
// TestDashboardCountsDeflashingTwice pins it.
func ComputeDashboard(db *gorm.DB) ([]DashboardRow, error) {
	var products []model.Product
	if err := db.Order("computer_code ASC").Find(&products).Error; err != nil {
		return nil, err
	}

	var batches []model.IncomingBatch
	if err := db.Find(&batches).Error; err != nil {
		return nil, err
	}
	var records []model.InspectionRecord
	if err := db.Find(&records).Error; err != nil {
		return nil, err
	}
	var outgoings []model.OutgoingEntry
	if err := db.Find(&outgoings).Error; err != nil {
		return nil, err
	}
	var deflashings []model.DeflashingEntry
	if err := db.Find(&deflashings).Error; err != nil {
		return nil, err
	}

	incomingByCode := make(map[string]int)
	for _, b := range batches {
		incomingByCode[b.ComputerCode] += b.ReceivedQty
	}
	afterOQCByCode := make(map[string]int)
	for _, r := range records {
		afterOQCByCode[r.ComputerCode] += r.AfterQty
	}
	outgoingByCode := make(map[string]int)
	for _, o := range outgoings {
		outgoingByCode[o.ComputerCode] += o.QtyOut
	}
	deflashingByCode := make(map[string]deflashingTotals)
	for _, d := range deflashings {
		t := deflashingByCode[d.ComputerCode]
		t.count++
		t.quantity += d.QtyOut + d.SpareQty
		t.ng += d.NgQty
		deflashingByCode[d.ComputerCode] = t
	}

	rows := make([]DashboardRow, 0, len(products))
	for _, p := range products {
		deflash := deflashingByCode[p.ComputerCode]

		row := DashboardRow{
			ComputerCode:   p.ComputerCode,
			PartNo:         p.PartNo,
			ProductName:    p.ProductName,
			ProductionType: p.ProductionType,
			Location:       p.Location,

			InitialStock: p.InitialStock,

			TotalIncoming: incomingByCode[p.ComputerCode],
			TotalAfterOQC: afterOQCByCode[p.ComputerCode],
			TotalOutgoing: outgoingByCode[p.ComputerCode],

			TotalDeflashing:    deflash.count,
			TotalDeflashingQty: deflash.quantity,
			TotalDeflashingNG:  deflash.ng,
		}
		row.FinalStock = row.InitialStock +
			row.TotalIncoming +
			row.TotalAfterOQC +
			row.TotalDeflashingQty -
			row.TotalOutgoing

		rows = append(rows, row)
	}
	return rows, nil
}

package reporting

import (
	"fmt"
	"time"

	"shop-backoffice-backend/internal/models"

	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{
	"Invoice Number", "Shop", "City", "State", "Total", "Discount", "Status", "Created",
}

// ExportInvoicesExcel writes the invoice ledger to a spreadsheet. Optional
// shop fields (address, email) may be missing on older rows and export as
// blanks.
func (s *Service) ExportInvoicesExcel(from, to *time.Time) (*excelize.File, error) {
	invoices, err := s.invoiceRepo.SearchInvoices(nil, nil, from, to)
	if err != nil {
		return nil, err
	}

	shops := make(map[string]models.Shop)
	shopList, err := s.shopRepo.List("")
	if err != nil {
		return nil, err
	}
	for _, shop := range shopList {
		shops[shop.ID.String()] = shop
	}

	f := excelize.NewFile()
	const sheet = "Invoices"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for row, inv := range invoices {
		shop := shops[inv.ShopID.String()]
		values := []interface{}{
			inv.InvoiceNumber,
			shop.Name,
			shop.City,
			shop.State,
			inv.TotalAmount,
			inv.DiscountAmount,
			inv.PaymentStatus,
			inv.CreatedAt.Format("2006-01-02"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	return f, nil
}

// ExportFilename names the download, e.g. invoices-2026-01.xlsx.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("invoices-%s.xlsx", now.Format("2006-01"))
}

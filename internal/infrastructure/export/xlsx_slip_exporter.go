// Package export renders receiving slips as spreadsheet documents.
package export

import (
	"context"
	"fmt"
	"regexp"

	apprcv "github.com/erp/receiving/internal/application/receiving"
	"github.com/erp/receiving/internal/domain/receiving"
	"github.com/xuri/excelize/v2"
)

// XLSXContentType is the MIME type of generated workbooks
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	sheetName  = "Slip"
	dateLayout = "2006-01-02"
	timeLayout = "2006-01-02 15:04:05"
)

var itemHeaders = []string{"#", "Product ID", "Product", "Unit", "Quantity", "Unit Price", "Total"}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// XLSXSlipExporter writes one slip per workbook: a header block followed by
// the item table and a totals row.
type XLSXSlipExporter struct{}

// NewXLSXSlipExporter creates an exporter
func NewXLSXSlipExporter() *XLSXSlipExporter {
	return &XLSXSlipExporter{}
}

// Export builds the workbook in memory
func (e *XLSXSlipExporter) Export(_ context.Context, slip *receiving.ReceivingSlip) (*apprcv.ExportFile, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create style: %w", err)
	}
	header, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 1}},
	})
	if err != nil {
		return nil, fmt.Errorf("create style: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return nil, fmt.Errorf("create style: %w", err)
	}

	confirmedAt := ""
	if slip.ConfirmedAt != nil {
		confirmedAt = slip.ConfirmedAt.UTC().Format(timeLayout)
	}
	summary := [][]any{
		{"Reference No", slip.ReferenceNo},
		{"Supplier", slip.Supplier},
		{"Receipt Date", slip.ReceiptDate.Format(dateLayout)},
		{"Status", slip.Status.String()},
		{"Confirmed At", confirmedAt},
		{"Note", slip.Note},
	}
	row := 1
	for _, values := range summary {
		if err := setRow(f, row, values); err != nil {
			return nil, err
		}
		if err := setStyle(f, row, 1, 1, bold); err != nil {
			return nil, err
		}
		row++
	}

	row++
	if err := setRow(f, row, toAny(itemHeaders)); err != nil {
		return nil, err
	}
	if err := setStyle(f, row, 1, len(itemHeaders), header); err != nil {
		return nil, err
	}

	for i, item := range slip.Items {
		row++
		var productID any
		if item.ProductID != nil {
			productID = *item.ProductID
		}
		values := []any{
			i + 1, productID, item.ProductName, item.Unit, item.Quantity,
			item.UnitPrice.InexactFloat64(), item.Total.InexactFloat64(),
		}
		if err := setRow(f, row, values); err != nil {
			return nil, err
		}
		if err := setStyle(f, row, 6, 7, money); err != nil {
			return nil, err
		}
	}

	row++
	totals := []any{"Total", nil, nil, nil, slip.TotalQuantity(), nil, slip.TotalAmount().InexactFloat64()}
	if err := setRow(f, row, totals); err != nil {
		return nil, err
	}
	if err := setStyle(f, row, 1, len(itemHeaders), bold); err != nil {
		return nil, err
	}
	if err := setStyle(f, row, 7, 7, money); err != nil {
		return nil, err
	}

	for i, width := range []float64{6, 12, 36, 10, 10, 12, 14} {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return &apprcv.ExportFile{
		Filename:    Filename(slip.ReferenceNo),
		ContentType: XLSXContentType,
		Content:     buf.Bytes(),
	}, nil
}

// Filename returns a download-safe file name for a slip reference number
func Filename(referenceNo string) string {
	safe := unsafeFilenameChars.ReplaceAllString(referenceNo, "_")
	if safe == "" {
		safe = "slip"
	}
	return "receiving-slip-" + safe + ".xlsx"
}

func setRow(f *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
		return fmt.Errorf("write row %d: %w", row, err)
	}
	return nil
}

func setStyle(f *excelize.File, row, fromCol, toCol, style int) error {
	from, err := excelize.CoordinatesToCellName(fromCol, row)
	if err != nil {
		return err
	}
	to, err := excelize.CoordinatesToCellName(toCol, row)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheetName, from, to, style)
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

var _ apprcv.SlipExporter = (*XLSXSlipExporter)(nil)

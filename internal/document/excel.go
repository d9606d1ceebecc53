package document

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Fixed sheet names required by the annual tax export.
const (
	SheetIssued   = "EXPEDIDAS"
	SheetReceived = "RECIBIDAS"
)

// IssuedRow is one invoice line of the EXPEDIDAS sheet. Counterparty fields
// are empty strings when the invoice's client reference is dangling.
type IssuedRow struct {
	Date    time.Time
	TaxID   string
	Name    string
	Number  string
	Concept string
	Base    decimal.Decimal
	Rate    decimal.Decimal
	VAT     decimal.Decimal
	Total   decimal.Decimal
}

// ReceivedRow is one expense line of the RECIBIDAS sheet.
type ReceivedRow struct {
	Date        time.Time
	TaxID       string
	Name        string
	Number      string
	Description string
	Base        decimal.Decimal
	Rate        decimal.Decimal
	VAT         decimal.Decimal
	Total       decimal.Decimal
}

// AnnualExport is the two-sheet data set handed to the workbook writer.
type AnnualExport struct {
	Issued   []IssuedRow
	Received []ReceivedRow
}

// BuildWorkbook renders the export into a two-sheet workbook. Dates are
// formatted DD/MM/YYYY; numeric values are written raw, without rounding.
func BuildWorkbook(export AnnualExport) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetIssued); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(SheetReceived); err != nil {
		return nil, err
	}

	header := []interface{}{"Fecha", "NIF", "Cliente", "Número", "Concepto", "Base", "IVA%", "IVA€", "Total"}
	if err := f.SetSheetRow(SheetIssued, "A1", &header); err != nil {
		return nil, err
	}
	for i, row := range export.Issued {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []interface{}{
			row.Date.Format("02/01/2006"),
			row.TaxID,
			row.Name,
			row.Number,
			row.Concept,
			row.Base.InexactFloat64(),
			row.Rate.InexactFloat64(),
			row.VAT.InexactFloat64(),
			row.Total.InexactFloat64(),
		}
		if err := f.SetSheetRow(SheetIssued, cell, &values); err != nil {
			return nil, err
		}
	}

	header = []interface{}{"Fecha", "NIF Proveedor", "Proveedor", "Número", "Descripción", "Base", "IVA%", "IVA€", "Total"}
	if err := f.SetSheetRow(SheetReceived, "A1", &header); err != nil {
		return nil, err
	}
	for i, row := range export.Received {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []interface{}{
			row.Date.Format("02/01/2006"),
			row.TaxID,
			row.Name,
			row.Number,
			row.Description,
			row.Base.InexactFloat64(),
			row.Rate.InexactFloat64(),
			row.VAT.InexactFloat64(),
			row.Total.InexactFloat64(),
		}
		if err := f.SetSheetRow(SheetReceived, cell, &values); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// WriteWorkbook builds the export workbook and saves it at path, overwriting
// any previous export.
func WriteWorkbook(export AnnualExport, path string) error {
	f, err := BuildWorkbook(export)
	if err != nil {
		return fmt.Errorf("build export workbook: %w", err)
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save export workbook: %w", err)
	}
	return nil
}

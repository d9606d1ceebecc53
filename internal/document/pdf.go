package document

import (
	"fmt"
	"os"
	"path/filepath"

	"facturas/internal/config"
	"facturas/internal/model"
	"facturas/internal/tax"

	"github.com/phpdave11/gofpdf"
)

// InvoiceRenderer writes single-page A4 invoice PDFs. It carries no state
// besides the issuer profile and the output directory; amounts are formatted
// to two decimals and rates to zero decimals here, at the presentation edge.
type InvoiceRenderer struct {
	issuer config.Issuer
	dir    string
}

func NewInvoiceRenderer(issuer config.Issuer, dir string) (*InvoiceRenderer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create pdf dir: %w", err)
	}
	return &InvoiceRenderer{issuer: issuer, dir: dir}, nil
}

// Render writes factura_<numero>.pdf for the invoice, overwriting any prior
// file of the same name, and returns its path. The invoice's Client may be
// nil; the client block is then left blank.
func (r *InvoiceRenderer) Render(inv model.Invoice) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(15, 20, 15)
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(51, 51, 51)
	pdf.CellFormat(0, 12, "FACTURA", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Issuer and client blocks, side by side
	pdf.SetFont("Helvetica", "", 10)
	issuerLines := []string{
		r.issuer.Name,
		"NIF: " + r.issuer.TaxID,
		r.issuer.Address,
		fmt.Sprintf("Tel: %s | %s", r.issuer.Phone, r.issuer.Email),
	}
	clientLines := []string{"Cliente:", "", "", ""}
	if inv.Client != nil {
		clientLines = []string{
			"Cliente:",
			inv.Client.Name,
			"NIF: " + inv.Client.TaxID,
			inv.Client.Address,
		}
	}

	top := pdf.GetY()
	pdf.SetFont("Helvetica", "B", 10)
	pdf.MultiCell(90, 5, tr(issuerLines[0]), "", "L", false)
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range issuerLines[1:] {
		pdf.MultiCell(90, 5, tr(line), "", "L", false)
	}
	bottom := pdf.GetY()

	pdf.SetY(top)
	pdf.SetX(110)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.MultiCell(85, 5, tr(clientLines[0]), "", "L", false)
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range clientLines[1:] {
		pdf.SetX(110)
		pdf.MultiCell(85, 5, tr(line), "", "L", false)
	}
	if pdf.GetY() < bottom {
		pdf.SetY(bottom)
	}
	pdf.Ln(8)

	// Invoice metadata
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, tr("Número: "+inv.Number), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Fecha: "+inv.Date.Format("02/01/2006"), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	// Item table: one row per invoice
	vat := tax.VATAmount(inv.TaxableBase, inv.VATRate)
	widths := []float64{70, 28, 22, 28, 32}
	headers := []string{"Concepto", "Base", "IVA %", "IVA (EUR)", "Total"}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(51, 51, 51)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(51, 51, 51)
	row := []string{
		inv.Concept,
		inv.TaxableBase.StringFixed(2),
		inv.VATRate.StringFixed(0),
		vat.StringFixed(2),
		inv.Total.StringFixed(2),
	}
	for i, v := range row {
		align := "R"
		if i == 0 {
			align = "L"
		}
		pdf.CellFormat(widths[i], 8, tr(v), "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Total: %s EUR", inv.Total.StringFixed(2))), "", 1, "L", false, 0, "")
	pdf.Ln(8)

	// Payment details footer
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, tr("Banco: "+r.issuer.Bank), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, "IBAN: "+r.issuer.IBAN, "", 1, "L", false, 0, "")

	path := filepath.Join(r.dir, FileName(inv.Number))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write invoice pdf: %w", err)
	}
	return path, nil
}

// FileName returns the deterministic PDF filename for an invoice number.
func FileName(number string) string {
	return fmt.Sprintf("factura_%s.pdf", number)
}

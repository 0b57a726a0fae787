package invoice

import (
	"bytes"
	"fmt"
	"time"

	"smartbiz-confirm/internal/domain"

	"github.com/jung-kurt/gofpdf"
)

// GeneratePDF renders the invoice for an order input. Deterministic for a
// given input and confirmation ID except for the embedded date.
func GeneratePDF(in domain.OrderInput, confirmationID string) ([]byte, error) {
	return buildPDF(in, confirmationID, time.Now())
}

func buildPDF(in domain.OrderInput, confirmationID string, now time.Time) ([]byte, error) {
	totals := in.ComputeTotals()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "", 20)
	pdf.Text(14, 22, "SmartBiz Confirm")
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(14, 30, "123 Business Rd, Suite 456")
	pdf.Text(14, 35, "Businesstown, ST 12345")

	pdf.SetFont("Helvetica", "", 16)
	textRight(pdf, 190, 22, "INVOICE")
	pdf.SetFont("Helvetica", "", 10)
	textRight(pdf, 190, 30, "Invoice #: "+confirmationID)
	textRight(pdf, 190, 35, "Date: "+now.Format("1/2/2006"))

	// Bill To
	pdf.SetLineWidth(0.5)
	pdf.Line(14, 45, 196, 45)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(14, 55, "Bill To:")
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(14, 62, in.CustomerName)
	pdf.Text(14, 67, in.CustomerEmail)
	pdf.Text(14, 72, in.CustomerPhone)
	pdf.Line(14, 80, 196, 80)

	// Item table
	colWidths := []float64{91, 30, 30, 31}
	headers := []string{"Item", "Quantity", "Unit Price", "Total"}
	aligns := []string{"L", "C", "R", "R"}

	pdf.SetY(85)
	pdf.SetX(14)
	pdf.SetFillColor(37, 99, 235)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 8, h, "", 0, aligns[i], true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetTextColor(17, 17, 17)
	for i, item := range in.Items {
		fill := i%2 == 1
		pdf.SetFillColor(241, 245, 249)
		pdf.SetX(14)
		cells := []string{
			item.Name,
			fmt.Sprintf("%d", item.Quantity),
			fmt.Sprintf("$%.2f", item.Price),
			fmt.Sprintf("$%.2f", float64(item.Quantity)*item.Price),
		}
		for j, cell := range cells {
			pdf.CellFormat(colWidths[j], 8, cell, "", 0, aligns[j], fill, 0, "")
		}
		pdf.Ln(-1)
	}

	// Totals
	y := pdf.GetY() + 10
	pdf.SetFont("Helvetica", "", 10)
	textRight(pdf, 190, y, fmt.Sprintf("Subtotal: $%.2f", totals.Subtotal))
	y += 7
	textRight(pdf, 190, y, fmt.Sprintf("Tax (%g%%): $%.2f", in.TaxRate, totals.TaxAmount))
	y += 7
	pdf.SetFont("Helvetica", "B", 12)
	textRight(pdf, 190, y, fmt.Sprintf("Total: $%.2f", totals.Total))

	// Footer
	pdf.SetFont("Helvetica", "", 8)
	footer := "Thank you for your business!"
	pdf.Text(105-pdf.GetStringWidth(footer)/2, 280, footer)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func textRight(pdf *gofpdf.Fpdf, x, y float64, s string) {
	pdf.Text(x-pdf.GetStringWidth(s), y, s)
}

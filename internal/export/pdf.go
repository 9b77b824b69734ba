// Package export renders the purchase summary as a paginated PDF.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"listinha/internal/model"
)

// Layout in page units (mm on A4). A block only starts when it fits above
// the footer margin; otherwise a new page begins.
const (
	contentTop   = 45.0
	pageTop      = 20.0
	leftMargin   = 20.0
	itemIndent   = 25.0
	rightEdge    = 190.0
	footerHeight = 20.0

	sectionBlock = 20.0
	itemBlock    = 8.0
	totalBlock   = 25.0
)

// BRL formats a decimal amount as Brazilian currency ("R$ 12,34").
func BRL(v decimal.Decimal) string {
	return "R$ " + strings.Replace(v.StringFixed(2), ".", ",", 1)
}

// FileName is the default download name for a summary generated on the
// given date: resumo-compras-DD-MM-YYYY.pdf.
func FileName(date time.Time) string {
	return "resumo-compras-" + date.Format("02-01-2006") + ".pdf"
}

// WritePDF renders the summary document: a title block, the purchased
// items with line totals and a grand total, then the pending items without
// prices, with a footer repeated on every page.
func WritePDF(w io.Writer, purchased, pending []model.Entry, total decimal.Decimal, date time.Time) error {
	pdf := build(purchased, pending, total, date)
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("pdf output: %w", err)
	}
	return nil
}

func build(purchased, pending []model.Entry, total decimal.Decimal, date time.Time) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageW, pageH := pdf.GetPageSize()
	pdf.SetAutoPageBreak(false, 0)

	pdf.SetFooterFunc(func() {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(150, 150, 150)
		pdf.SetXY(0, pageH-12)
		pdf.CellFormat(pageW, 5, tr("Gerado por listinha"), "", 1, "C", false, 0, "")
		pdf.SetX(0)
		pdf.CellFormat(pageW, 5, date.Format("02/01/2006"), "", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})

	pdf.AddPage()

	centered := func(s string, y float64) {
		pdf.Text((pageW-pdf.GetStringWidth(s))/2, y, s)
	}
	pdf.SetFont("Helvetica", "B", 22)
	centered(tr("Resumo da Compra"), pageTop)
	pdf.SetFont("Helvetica", "", 12)
	centered(tr("Data: "+date.Format("02/01/2006")), 30)

	y := contentTop
	ensure := func(space float64) {
		if y+space > pageH-footerHeight {
			pdf.AddPage()
			y = pageTop
		}
	}

	section := func(title string, items []model.Entry, showPrice bool) {
		if len(items) == 0 {
			return
		}
		ensure(sectionBlock)
		pdf.SetFont("Helvetica", "B", 16)
		pdf.Text(leftMargin, y, tr(title))
		y += 10
		pdf.SetLineWidth(0.5)
		pdf.Line(leftMargin, y-5, rightEdge, y-5)
		pdf.SetFont("Helvetica", "", 11)
		for _, it := range items {
			ensure(itemBlock)
			line := fmt.Sprintf("%s (%d %s)", it.Name, it.Quantity, it.Unit)
			if showPrice {
				line = fmt.Sprintf("%s x %s = %s", line, BRL(it.Price), BRL(it.LineTotal()))
			}
			pdf.Text(itemIndent, y, tr(line))
			y += itemBlock
		}
		y += 5
	}

	section("Itens Comprados", purchased, true)

	if len(purchased) > 0 {
		ensure(totalBlock)
		pdf.SetLineWidth(0.5)
		pdf.Line(leftMargin, y, rightEdge, y)
		y += 10
		pdf.SetFont("Helvetica", "B", 14)
		totalLine := tr("Valor Total: " + BRL(total))
		pdf.Text(rightEdge-pdf.GetStringWidth(totalLine), y, totalLine)
		y += 15
	}

	section("Itens Pendentes", pending, false)

	return pdf
}

// Package invoicepdf renders invoices with their delivery audit trail as A4 PDF documents.
package invoicepdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/tradsolution/storefront/internal/domain/model"
)

const (
	marginLeft  = 20.0
	marginRight = 190.0
	contentW    = marginRight - marginLeft

	addressWrapW   = 80.0
	signatureWrapW = 100.0
	lineH          = 5.0
	tableRowH      = 14.0
	tableMinY      = 100.0

	missing = "—"
)

type rgb struct{ r, g, b int }

var (
	dark  = rgb{20, 20, 20}
	grey  = rgb{100, 100, 100}
	green = rgb{34, 197, 94}
	rule  = rgb{230, 230, 230}
	panel = rgb{248, 248, 248}
	white = rgb{255, 255, 255}
)

// Seller is printed in the document header.
type Seller struct {
	Brand string
	Lines []string
	Site  string
}

// DefaultSeller is the TradSolution legal entity.
var DefaultSeller = Seller{
	Brand: "TradSolution",
	Lines: []string{"Purva iela 3", "Valmiera, LV-4201", "VAT: 44103115853", "web: tradsolution.com"},
	Site:  "www.tradsolution.com",
}

// Option customizes Renderer.
type Option func(*Renderer)

// WithCompression toggles page stream compression.
func WithCompression(on bool) Option {
	return func(r *Renderer) { r.compress = on }
}

// WithSeller replaces the header entity.
func WithSeller(s Seller) Option {
	return func(r *Renderer) { r.seller = s }
}

// Renderer draws invoices using the fpdf core fonts.
type Renderer struct {
	seller   Seller
	compress bool
}

// New constructs Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{seller: DefaultSeller, compress: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render returns the PDF document for invoice. description names the sold item.
func (r *Renderer) Render(invoice model.Invoice, description string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(r.compress)
	pdf.SetCatalogSort(true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreationDate(invoice.IssueDate)
	pdf.SetModificationDate(invoice.IssueDate)
	pdf.SetTitle("Invoice "+invoice.InvoiceNumber, true)
	pdf.SetAuthor(r.seller.Brand, true)
	pdf.AddPage()

	d := &drawer{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	r.header(d, invoice)
	y := r.billTo(d, invoice.BillTo)
	y = r.items(d, invoice, description, y)
	y = r.totals(d, invoice, y)
	r.audit(d, invoice.AuditTrail, y)
	r.footer(d)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) header(d *drawer, inv model.Invoice) {
	d.font("Times", "B", 20, dark)
	d.text(marginLeft, 20, r.seller.Brand)

	d.font("Helvetica", "", 10, grey)
	for i, line := range r.seller.Lines {
		d.text(marginLeft, 28+float64(i)*lineH, line)
	}

	d.font("Helvetica", "B", 24, dark)
	d.right(marginRight, 20, "INVOICE")

	d.font("Helvetica", "", 10, dark)
	d.right(marginRight, 30, "Invoice #: "+inv.InvoiceNumber)
	d.right(marginRight, 35, "Date: "+inv.IssueDate.UTC().Format(time.DateOnly))
	d.right(marginRight, 40, "Status: "+string(inv.Status))

	d.pdf.SetDrawColor(rule.r, rule.g, rule.b)
	d.pdf.Line(marginLeft, 50, marginRight, 50)
}

// billTo returns the y position below the country line.
func (r *Renderer) billTo(d *drawer, to model.BillTo) float64 {
	d.font("Helvetica", "B", 11, dark)
	d.text(marginLeft, 65, "Bill To:")

	d.font("Helvetica", "", 10, dark)
	d.text(marginLeft, 72, to.Name)
	d.text(marginLeft, 77, to.Email)

	y := 82.0
	for _, line := range d.wrap(to.Address, addressWrapW) {
		d.raw(marginLeft, y, line)
		y += lineH
	}
	if to.Country != "" {
		d.text(marginLeft, y, to.Country)
	}
	return y
}

// items draws the single-row item table and returns its bottom edge.
func (r *Renderer) items(d *drawer, inv model.Invoice, description string, countryY float64) float64 {
	y := max(countryY+10, tableMinY)
	widths := []float64{80, 35, 20, contentW - 135}
	aligns := []string{"L", "L", "L", "R"}

	d.font("Helvetica", "B", 10, white)
	d.pdf.SetFillColor(dark.r, dark.g, dark.b)
	d.pdf.SetXY(marginLeft, y)
	for i, head := range []string{"Item Description", "Type", "Qty", "Price"} {
		d.pdf.CellFormat(widths[i], tableRowH, d.tr(head), "", 0, aligns[i], true, 0, "")
	}
	y += tableRowH

	d.font("Helvetica", "", 10, dark)
	d.pdf.SetXY(marginLeft, y)
	for i, cell := range []string{description, "Digital License", "1", euro(inv.Subtotal)} {
		d.pdf.CellFormat(widths[i], tableRowH, d.tr(cell), "", 0, aligns[i], false, 0, "")
	}
	return y + tableRowH
}

// totals returns the y position below the payment note.
func (r *Renderer) totals(d *drawer, inv model.Invoice, tableEnd float64) float64 {
	y := tableEnd + 10
	d.font("Helvetica", "", 10, dark)
	d.right(140, y, "Subtotal:")
	d.right(marginRight, y, euro(inv.Subtotal))

	y += 6
	d.right(140, y, "Tax:")
	d.right(marginRight, y, euro(inv.Tax))

	y += 8
	d.font("Helvetica", "B", 12, dark)
	d.right(140, y, "Total:")
	d.right(marginRight, y, euro(inv.Subtotal.Add(inv.Tax)))

	y += 10
	d.font("Helvetica", "I", 8, grey)
	d.center(105, y, "Paid in full. Non-tangible irrevocable digital goods.")
	return y
}

func (r *Renderer) audit(d *drawer, trail *model.InvoiceAuditTrail, noteY float64) {
	if trail == nil {
		trail = &model.InvoiceAuditTrail{DeliveryStatus: model.DeliveryStatusPending}
	}
	top := noteY + 15

	d.font("Courier", "", 8, dark)
	sig := d.wrap(orMissing(trail.DeviceSignature), signatureWrapW)
	const titleGap, rowsGap, standardRows = 10.0, 8.0, 5
	height := titleGap + rowsGap + standardRows*lineH + float64(len(sig))*lineH + 5

	d.pdf.SetFillColor(panel.r, panel.g, panel.b)
	d.pdf.SetDrawColor(rule.r, rule.g, rule.b)
	d.pdf.RoundedRect(marginLeft, top, contentW, height, 3, "1234", "FD")

	titleY := top + titleGap
	d.font("Helvetica", "B", 9, dark)
	d.text(25, titleY, "DIGITAL DELIVERY CONFIRMATION (AUDIT TRAIL)")

	rows := [][2]string{
		{"Delivery Status:", string(trail.DeliveryStatus)},
		{"Unique Link ID:", orMissing(trail.LinkID)},
		{"Sent Timestamp:", formatTime(trail.SentAt, time.DateOnly, "")},
		{"Access IP Addr:", orMissing(trail.AccessIP)},
		{"Access Time:", formatTime(trail.AccessedAt, time.DateTime, " UTC")},
	}

	d.font("Courier", "", 8, dark)
	y := titleY + rowsGap
	for i, row := range rows {
		d.color(grey)
		d.text(25, y, row[0])
		valueColor := dark
		if i == 0 && trail.DeliveryStatus == model.DeliveryStatusDownloaded {
			valueColor = green
		}
		d.color(valueColor)
		d.text(70, y, row[1])
		y += lineH
	}

	d.color(grey)
	d.text(25, y, "Device Signature:")
	d.color(dark)
	for _, line := range sig {
		d.raw(70, y, line)
		y += lineH
	}
}

func (r *Renderer) footer(d *drawer) {
	_, pageH := d.pdf.GetPageSize()
	d.pdf.SetDrawColor(rule.r, rule.g, rule.b)
	d.pdf.Line(marginLeft, pageH-20, marginRight, pageH-20)

	d.font("Helvetica", "", 8, grey)
	d.center(105, pageH-15, "This document serves as proof of delivery for digital goods.")
	d.center(105, pageH-10, "© "+r.seller.Brand+" — "+r.seller.Site)
}

func euro(v decimal.Decimal) string {
	return "€" + v.StringFixed(2)
}

func orMissing(s string) string {
	if s == "" {
		return missing
	}
	return s
}

func formatTime(t *time.Time, layout, suffix string) string {
	if t == nil || t.IsZero() {
		return missing
	}
	return t.UTC().Format(layout) + suffix
}

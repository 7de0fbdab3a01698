package invoicepdf

import (
	"strings"

	"github.com/go-pdf/fpdf"
)

// drawer wraps fpdf with cp1252 translation and aligned text helpers.
type drawer struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func (d *drawer) font(family, style string, size float64, c rgb) {
	d.pdf.SetFont(family, style, size)
	d.color(c)
}

func (d *drawer) color(c rgb) {
	d.pdf.SetTextColor(c.r, c.g, c.b)
}

func (d *drawer) text(x, y float64, s string) {
	d.raw(x, y, d.tr(s))
}

// raw draws already translated text.
func (d *drawer) raw(x, y float64, s string) {
	if s == "" {
		return
	}
	d.pdf.Text(x, y, s)
}

func (d *drawer) right(x, y float64, s string) {
	s = d.tr(s)
	d.pdf.Text(x-d.pdf.GetStringWidth(s), y, s)
}

func (d *drawer) center(x, y float64, s string) {
	s = d.tr(s)
	d.pdf.Text(x-d.pdf.GetStringWidth(s)/2, y, s)
}

// wrap translates s and breaks it into lines no wider than w in the
// current font. Explicit newlines are kept and words wider than w are cut.
// Empty input yields a single empty line.
func (d *drawer) wrap(s string, w float64) []string {
	var lines []string
	for _, para := range strings.Split(d.tr(s), "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if d.pdf.GetStringWidth(candidate) <= w {
				line = candidate
				continue
			}
			if line != "" {
				lines = append(lines, line)
			}
			for d.pdf.GetStringWidth(word) > w && len(word) > 1 {
				cut := d.fit(word, w)
				lines = append(lines, word[:cut])
				word = word[cut:]
			}
			line = word
		}
		lines = append(lines, line)
	}
	return lines
}

// fit returns the longest prefix length of s that fits into w, at least one byte.
func (d *drawer) fit(s string, w float64) int {
	n := 1
	for n < len(s) && d.pdf.GetStringWidth(s[:n+1]) <= w {
		n++
	}
	return n
}

package export

import (
	"bytes"
	"io"
	"math"

	"github.com/go-pdf/fpdf"
)

// PageCount returns how many pages a snapshot of the given height fills.
// Always at least one page.
func PageCount(contentHeight, pageHeight float64) int {
	if contentHeight <= 0 || pageHeight <= 0 {
		return 1
	}
	return int(math.Ceil(contentHeight / pageHeight))
}

// WritePDF paginates a PNG snapshot of the rendered content across A4 pages.
// The image is scaled to the page width, then drawn once per page with a
// negative vertical offset equal to the height already consumed.
func WritePDF(w io.Writer, snapshot []byte) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pageWidth, pageHeight := pdf.GetPageSize()

	opts := fpdf.ImageOptions{ImageType: "PNG", AllowNegativePosition: true}
	info := pdf.RegisterImageOptionsReader("snapshot", opts, bytes.NewReader(snapshot))
	if pdf.Err() {
		return pdf.Error()
	}

	scaledHeight := info.Height() * pageWidth / info.Width()

	pages := PageCount(scaledHeight, pageHeight)
	for i := 0; i < pages; i++ {
		pdf.AddPage()
		offset := float64(i) * pageHeight
		pdf.ImageOptions("snapshot", 0, -offset, pageWidth, scaledHeight, false, opts, 0, "")
	}

	return pdf.Output(w)
}

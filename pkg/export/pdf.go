// Package export renders the fixed-asset report as a paginated PDF.
package export

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"
)

// Row is one line of the tabular projection of the filtered fixed assets
type Row struct {
	Name         string
	Code         string
	LocationName string
	PurchaseDate string
	Status       string
	Price        int64
}

// Filename returns the download name for a report generated today,
// e.g. "laporan-aset-2026-08-31.pdf".
func Filename(now time.Time) string {
	return fmt.Sprintf("laporan-aset-%s.pdf", now.Format("2006-01-02"))
}

// FormatIDR renders a whole-rupiah amount with dot thousand separators,
// e.g. 5000000 -> "Rp 5.000.000".
func FormatIDR(value int64) string {
	neg := value < 0
	if neg {
		value = -value
	}
	digits := strconv.FormatInt(value, 10)
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}
	if neg {
		return "Rp -" + string(out)
	}
	return "Rp " + string(out)
}

var columnWidths = [6]float64{45, 25, 35, 22, 25, 28}
var columnTitles = [6]string{"Nama", "Kode", "Lokasi", "Tgl. Beli", "Status", "Harga"}

// AssetReportPDF writes the report document: title header, print-date stamp,
// and the asset table with the column header repeated on every page.
func AssetReportPDF(w io.Writer, rows []Row, now time.Time) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	margin := 15.0
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)

	pageWidth, _ := pdf.GetPageSize()

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "B", 22)
		pdf.SetTextColor(0, 0, 0)
		pdf.Text(margin, margin+6, "Ringkas Aset")
		pdf.SetFont("Helvetica", "", 14)
		pdf.Text(margin, margin+14, "Laporan Inventaris Aset")

		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		stamp := "Dicetak pada: " + now.Format("2 January 2006")
		pdf.Text(pageWidth-margin-pdf.GetStringWidth(stamp), margin+6, stamp)

		pdf.SetY(margin + 22)
		tableHeader(pdf)
	})

	pdf.AddPage()

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range rows {
		cells := [6]string{
			row.Name,
			row.Code,
			row.LocationName,
			row.PurchaseDate,
			row.Status,
			FormatIDR(row.Price),
		}
		for i, cell := range cells {
			align := "L"
			if i == 5 {
				align = "R"
			}
			pdf.CellFormat(columnWidths[i], 7, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(rows) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(0, 10, "Tidak ada aset dalam rentang tanggal ini.", "", 1, "L", false, 0, "")
	}

	return pdf.Output(w)
}

func tableHeader(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(22, 163, 74)
	pdf.SetTextColor(255, 255, 255)
	for i, title := range columnTitles {
		pdf.CellFormat(columnWidths[i], 8, title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
}

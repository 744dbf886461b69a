package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// ReportExporter renders report rows into a downloadable file.
type ReportExporter interface {
	// Export returns the file bytes, its file name and its MIME type.
	Export(format string, headers []string, rows []Row, generatedAt time.Time) ([]byte, string, string, error)
}

type reportExporter struct{}

func NewReportExporter() ReportExporter {
	return &reportExporter{}
}

const (
	mimeExcel = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimeCSV   = "text/csv"
	mimePDF   = "application/pdf"
)

// Filename is event-registrations-YYYY-MM-DD with the extension for format.
func Filename(format string, generatedAt time.Time) string {
	ext := "xlsx"
	switch format {
	case FormatCSV:
		ext = "csv"
	case FormatPDF:
		ext = "pdf"
	}
	return fmt.Sprintf("%s-%s.%s", FilenamePrefix, generatedAt.Format("2006-01-02"), ext)
}

func (e *reportExporter) Export(format string, headers []string, rows []Row, generatedAt time.Time) ([]byte, string, string, error) {
	var (
		data []byte
		mime string
		err  error
	)
	switch format {
	case "", FormatExcel:
		format = FormatExcel
		data, err = e.exportExcel(headers, rows)
		mime = mimeExcel
	case FormatCSV:
		data, err = e.exportCSV(headers, rows)
		mime = mimeCSV
	case FormatPDF:
		data, err = e.exportPDF(headers, rows, generatedAt)
		mime = mimePDF
	default:
		return nil, "", "", fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return nil, "", "", err
	}
	return data, Filename(format, generatedAt), mime, nil
}

// exportExcel writes one sheet with a header row and one row per registration. Amounts stay
// numeric and dates stay dates so the sheet can be summed and sorted.
func (e *reportExporter) exportExcel(headers []string, rows []Row) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, err
	}

	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(SheetName, cell, header); err != nil {
			return nil, err
		}
	}

	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return nil, err
	}
	dateStyle, err := f.NewStyle(&excelize.Style{NumFmt: 22})
	if err != nil {
		return nil, err
	}

	for r, row := range rows {
		for col, c := range row.Cells() {
			cell, err := excelize.CoordinatesToCellName(col+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(SheetName, cell, c.Value); err != nil {
				return nil, err
			}
			switch c.Value.(type) {
			case float64:
				err = f.SetCellStyle(SheetName, cell, cell, amountStyle)
			case time.Time:
				err = f.SetCellStyle(SheetName, cell, cell, dateStyle)
			}
			if err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *reportExporter) exportCSV(headers []string, rows []Row) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(headers); err != nil {
		return nil, err
	}
	for _, row := range rows {
		record := make([]string, 0, row.Len())
		for _, c := range row.Cells() {
			record = append(record, FormatValue(c.Value))
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *reportExporter) exportPDF(headers []string, rows []Row, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr("Relatório de Inscrições"))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 8, fmt.Sprintf("%s: %d", tr("Inscrições"), len(rows))+"  |  "+generatedAt.Format("02/01/2006 15:04"))
	pdf.Ln(12)

	if len(headers) > 0 {
		pageW, _ := pdf.GetPageSize()
		left, _, right, _ := pdf.GetMargins()
		width := (pageW - left - right) / float64(len(headers))

		pdf.SetFont("Arial", "B", 9)
		for _, header := range headers {
			pdf.CellFormat(width, 7, tr(header), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 8)
		for _, row := range rows {
			for _, c := range row.Cells() {
				align := "L"
				if _, ok := c.Value.(float64); ok {
					align = "R"
				}
				pdf.CellFormat(width, 6, tr(FormatValue(c.Value)), "1", 0, align, false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FormatValue renders a raw cell value for text formats.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', 2, 64)
	case time.Time:
		return val.Format("02/01/2006 15:04")
	default:
		return fmt.Sprint(val)
	}
}

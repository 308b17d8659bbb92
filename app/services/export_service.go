package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/aureliajewels/jewelry-cms/app/models"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatXLSX ExportFormat = "xlsx"
	FormatPDF  ExportFormat = "pdf"
)

var subscriptionHeader = []string{"#", "Email", "Status", "Subscribed At"}

// ExportService renders the filtered subscription list into a downloadable
// file. The handler streams the bytes; this type only encodes.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

func (s *ExportService) ContentType(format ExportFormat) (contentType, extension string, err error) {
	switch format {
	case FormatCSV:
		return "text/csv", "csv", nil
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "xlsx", nil
	case FormatPDF:
		return "application/pdf", "pdf", nil
	default:
		return "", "", fmt.Errorf("unsupported export format %q", format)
	}
}

func (s *ExportService) WriteSubscriptions(w io.Writer, format ExportFormat, subscriptions []models.EmailSubscription) error {
	switch format {
	case FormatCSV:
		return s.writeCSV(w, subscriptions)
	case FormatXLSX:
		return s.writeXLSX(w, subscriptions)
	case FormatPDF:
		return s.writePDF(w, subscriptions)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

func (s *ExportService) writeCSV(w io.Writer, subscriptions []models.EmailSubscription) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(subscriptionHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for i, sub := range subscriptions {
		if err := cw.Write(subscriptionRow(i, sub)); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func (s *ExportService) writeXLSX(w io.Writer, subscriptions []models.EmailSubscription) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Subscriptions"
	f.SetSheetName("Sheet1", sheet)

	for col, title := range subscriptionHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return fmt.Errorf("failed to write xlsx header: %w", err)
		}
	}
	for i, sub := range subscriptions {
		for col, value := range subscriptionRow(i, sub) {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to write xlsx row: %w", err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write xlsx file: %w", err)
	}
	return nil
}

func (s *ExportService) writePDF(w io.Writer, subscriptions []models.EmailSubscription) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "Newsletter Subscriptions")
	pdf.Ln(12)

	widths := []float64{12, 80, 28, 50}
	pdf.SetFont("Helvetica", "B", 10)
	for i, title := range subscriptionHeader {
		pdf.CellFormat(widths[i], 8, title, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for i, sub := range subscriptions {
		for col, value := range subscriptionRow(i, sub) {
			pdf.CellFormat(widths[col], 7, value, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf file: %w", err)
	}
	return nil
}

func subscriptionRow(index int, sub models.EmailSubscription) []string {
	status := "active"
	if !sub.IsActive {
		status = "inactive"
	}
	return []string{
		strconv.Itoa(index + 1),
		sub.Email,
		status,
		sub.CreatedAt.Format("2006-01-02 15:04"),
	}
}

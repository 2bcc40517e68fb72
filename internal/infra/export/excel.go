package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/guptatavish/compliance-coordinator/internal/domain/report"
)

// statusHex maps a requirement status onto a cell fill color.
func statusHex(status report.RequirementStatus) string {
	switch status {
	case report.ReqMet:
		return "C6EFCE"
	case report.ReqPartial:
		return "FFEB9C"
	default:
		return "FFC7CE"
	}
}

// Excel renders a workbook with a formatted summary block and a
// color-coded requirements table.
func Excel(rep report.ComplianceReport, now time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Sheet1"

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return nil, fmt.Errorf("export: excel style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"D9D9D9"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("export: excel style: %w", err)
	}

	f.SetCellValue(sheet, "A1", "Compliance Report - "+rep.JurisdictionName)
	f.MergeCell(sheet, "A1", "G1")
	f.SetCellStyle(sheet, "A1", "A1", titleStyle)
	f.SetCellValue(sheet, "A2", "Generated")
	f.SetCellValue(sheet, "B2", now.Format("2006-01-02"))
	f.SetCellValue(sheet, "A3", "Compliance Score")
	f.SetCellValue(sheet, "B3", fmt.Sprintf("%d%%", rep.ComplianceScore))
	f.SetCellValue(sheet, "A4", "Status")
	f.SetCellValue(sheet, "B4", string(rep.Status))
	f.SetCellValue(sheet, "A5", "Risk Level")
	f.SetCellValue(sheet, "B5", string(rep.RiskLevel))
	f.SetCellValue(sheet, "A6", "Requirements Met")
	f.SetCellValue(sheet, "B6", fmt.Sprintf("%d of %d", rep.Requirements.Met, rep.Requirements.Total))

	const headerRow = 8
	headers := []string{"ID", "Title", "Category", "Status", "Risk", "Description", "Recommendation"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return nil, fmt.Errorf("export: excel cell: %w", err)
		}
		f.SetCellValue(sheet, cell, h)
	}
	endHeader, _ := excelize.CoordinatesToCellName(len(headers), headerRow)
	startHeader, _ := excelize.CoordinatesToCellName(1, headerRow)
	f.SetCellStyle(sheet, startHeader, endHeader, headerStyle)

	for i, req := range rep.RequirementsList {
		row := headerRow + 1 + i
		values := []any{req.ID, req.Title, req.Category, string(req.Status), string(req.Risk), req.Description, req.Recommendation}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, fmt.Errorf("export: excel cell: %w", err)
			}
			f.SetCellValue(sheet, cell, v)
		}
		rowStyle, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{statusHex(req.Status)}, Pattern: 1},
		})
		if err != nil {
			return nil, fmt.Errorf("export: excel style: %w", err)
		}
		statusCell, _ := excelize.CoordinatesToCellName(4, row)
		f.SetCellStyle(sheet, statusCell, statusCell, rowStyle)
	}

	f.SetColWidth(sheet, "A", "A", 10)
	f.SetColWidth(sheet, "B", "B", 40)
	f.SetColWidth(sheet, "C", "E", 15)
	f.SetColWidth(sheet, "F", "G", 60)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export: write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/guptatavish/compliance-coordinator/internal/domain/report"
)

// statusFill maps a requirement status onto a background color.
func statusFill(status report.RequirementStatus) (r, g, b int) {
	switch status {
	case report.ReqMet:
		return 198, 239, 206
	case report.ReqPartial:
		return 255, 235, 156
	default:
		return 255, 199, 206
	}
}

// PDF renders the structured report: title, summary block, then one
// color-coded detail block per requirement.
func PDF(rep report.ComplianceReport, now time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Compliance Analysis Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, "Generated: "+now.Format("2006-01-02 15:04:05"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, tr("Jurisdiction: "+rep.JurisdictionName), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, "Summary", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Compliance Score: %d%%", rep.ComplianceScore), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Status: "+string(rep.Status), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Risk Level: "+string(rep.RiskLevel), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Requirements Met: %d of %d", rep.Requirements.Met, rep.Requirements.Total), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	if rep.Summary != "" {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 5, tr(rep.Summary), "", "L", false)
		pdf.Ln(2)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, "Detailed Requirements", "", 1, "L", false, 0, "")
	pdf.Ln(1)

	for _, req := range rep.RequirementsList {
		r, g, b := statusFill(req.Status)
		pdf.SetFillColor(r, g, b)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.MultiCell(0, 7, tr(req.Title), "", "L", true)

		pdf.SetFont("Helvetica", "", 9)
		meta := fmt.Sprintf("ID: %s  |  Category: %s  |  Status: %s  |  Risk: %s",
			req.ID, req.Category, req.Status, req.Risk)
		pdf.CellFormat(0, 5, tr(meta), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(req.Description), "", "L", false)
		if req.Recommendation != "" {
			pdf.SetFont("Helvetica", "I", 10)
			pdf.MultiCell(0, 5, tr("Recommendation: "+req.Recommendation), "", "L", false)
		}
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("export: render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// RegulatoryPDF renders a generated regulatory reference document. ALL-CAPS
// lines and Markdown # / ## headers become headings, everything else body
// paragraphs.
func RegulatoryPDF(content string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, " \t")
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			pdf.Ln(3)
		case strings.HasPrefix(trimmed, "## "):
			pdf.SetFont("Helvetica", "B", 13)
			pdf.MultiCell(0, 7, tr(strings.TrimPrefix(trimmed, "## ")), "", "L", false)
		case strings.HasPrefix(trimmed, "# "):
			pdf.SetFont("Helvetica", "B", 16)
			pdf.MultiCell(0, 8, tr(strings.TrimPrefix(trimmed, "# ")), "", "L", false)
		case isAllCapsHeading(trimmed):
			pdf.SetFont("Helvetica", "B", 12)
			pdf.MultiCell(0, 7, tr(trimmed), "", "L", false)
		default:
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr(strings.ReplaceAll(trimmed, "**", "")), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("export: render regulatory pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// isAllCapsHeading reports whether a line reads as a plain-text heading:
// all letters upper case, at least one of them, and not a divider row.
func isAllCapsHeading(line string) bool {
	if len(line) < 4 || strings.Trim(line, "=-") == "" {
		return false
	}
	hasLetter := false
	for _, r := range line {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			hasLetter = true
		}
	}
	return hasLetter
}

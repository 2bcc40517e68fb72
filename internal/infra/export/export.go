// Package export renders a ComplianceReport into downloadable files.
package export

import (
	"fmt"
	"time"
)

// Format identifiers accepted by the export endpoint.
const (
	FormatPDF   = "pdf"
	FormatExcel = "excel"
	FormatCSV   = "csv"
)

// MIMEType returns the content type for a format, empty when unsupported.
func MIMEType(format string) string {
	switch format {
	case FormatPDF:
		return "application/pdf"
	case FormatExcel:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatCSV:
		return "text/csv"
	default:
		return ""
	}
}

// FileName builds the date-stamped attachment name for a report export.
func FileName(format string, now time.Time) string {
	ext := format
	if format == FormatExcel {
		ext = "xlsx"
	}
	return fmt.Sprintf("compliance_report_%s.%s", now.Format("20060102"), ext)
}

// RegulatoryFileName builds the attachment name for a regulatory document.
func RegulatoryFileName(jurisdictionID string, now time.Time) string {
	return fmt.Sprintf("regulatory_reference_%s_%s.pdf", jurisdictionID, now.Format("20060102"))
}

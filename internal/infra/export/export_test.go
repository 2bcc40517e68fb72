package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guptatavish/compliance-coordinator/internal/domain/report"
)

var exportNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func sampleReport() report.ComplianceReport {
	rep := report.ComplianceReport{
		JurisdictionID:   "us",
		JurisdictionName: "United States",
		ComplianceScore:  75,
		Status:           report.StatusPartial,
		RiskLevel:        report.RiskMedium,
		Summary:          "Mostly in order, with gaps in payroll reporting.",
		RequirementsList: []report.Requirement{
			{
				ID:          "req-1",
				Title:       `Quarterly "941" payroll filings`,
				Description: "File quarterly payroll returns, including state-level forms.",
				Category:    "Tax",
				Status:      report.ReqMet,
				Risk:        report.RiskLow,
			},
			{
				ID:          "req-2",
				Title:       "Data retention policy",
				Description: "Retain transaction records for 7 years.",
				Category:    "Reporting",
				Status:      report.ReqNotMet,
				Risk:        report.RiskHigh,
			},
		},
	}
	rep.Recount()
	return rep
}

func TestCSVRoundTrip(t *testing.T) {
	data, err := CSV(sampleReport(), exportNow)
	require.NoError(t, err)

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	require.NoError(t, err)
	// The blank separator row reads back as nothing, so 8 records remain.
	require.Len(t, rows, 8)

	assert.Equal(t, []string{"Jurisdiction", "United States"}, rows[0])
	assert.Equal(t, []string{"Compliance Score", "75%"}, rows[2])
	assert.Equal(t, []string{"Status", "partial"}, rows[3])

	// Header row, then one requirement per row. Embedded quotes survive
	// the round trip.
	assert.Equal(t, "ID", rows[5][0])
	assert.Equal(t, `Quarterly "941" payroll filings`, rows[6][1])
	assert.Equal(t, "not-met", rows[7][3])
}

func TestPDFRendersReport(t *testing.T) {
	data, err := PDF(sampleReport(), exportNow)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestRegulatoryPDFRendersMarkdown(t *testing.T) {
	content := "# Title\n\n## Section\n\nBody text here.\n\nREGULATORY REFERENCE DOCUMENT\n"
	data, err := RegulatoryPDF(content)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestExcelRendersReport(t *testing.T) {
	data, err := Excel(sampleReport(), exportNow)
	require.NoError(t, err)
	// xlsx files are zip archives.
	assert.True(t, bytes.HasPrefix(data, []byte("PK")))
}

func TestMIMEType(t *testing.T) {
	assert.Equal(t, "application/pdf", MIMEType(FormatPDF))
	assert.Equal(t, "text/csv", MIMEType(FormatCSV))
	assert.Equal(t, "", MIMEType("docx"))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "compliance_report_20250314.pdf", FileName(FormatPDF, exportNow))
	assert.Equal(t, "compliance_report_20250314.xlsx", FileName(FormatExcel, exportNow))
	assert.Equal(t, "regulatory_reference_us_20250314.pdf", RegulatoryFileName("us", exportNow))
}

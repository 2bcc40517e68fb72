package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/guptatavish/compliance-coordinator/internal/domain/report"
)

// CSV serialises the report row-wise: a summary preamble, a blank row,
// then one record per requirement. encoding/csv handles quoting, so
// embedded quotes and commas round-trip through any standard reader.
func CSV(rep report.ComplianceReport, now time.Time) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"Jurisdiction", rep.JurisdictionName},
		{"Generated", now.Format("2006-01-02")},
		{"Compliance Score", fmt.Sprintf("%d%%", rep.ComplianceScore)},
		{"Status", string(rep.Status)},
		{"Risk Level", string(rep.RiskLevel)},
		{""},
		{"ID", "Title", "Category", "Status", "Risk", "Description", "Recommendation"},
	}
	for _, req := range rep.RequirementsList {
		rows = append(rows, []string{
			req.ID, req.Title, req.Category, string(req.Status), string(req.Risk),
			req.Description, req.Recommendation,
		})
	}

	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("export: write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export: flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

package analysis

import (
	"github.com/guptatavish/compliance-coordinator/internal/domain/jurisdiction"
	"github.com/guptatavish/compliance-coordinator/internal/domain/report"
)

// SavedAnalyses fabricates sample historical analyses for a company. There
// is no persistence layer behind this endpoint; the samples give the
// client something realistic to render.
func (s *Service) SavedAnalyses(companyName string) []report.ComplianceReport {
	sample := func(id string, score int, reqs []report.Requirement) report.ComplianceReport {
		rep := report.ComplianceReport{
			JurisdictionID:   id,
			JurisdictionName: jurisdiction.Name(id),
			Flag:             jurisdiction.Flag(id),
			ComplianceScore:  score,
			Status:           s.Policy.StatusFor(score),
			RiskLevel:        s.Policy.RiskFor(score),
			RequirementsList: reqs,
			Summary:          "Sample analysis for " + companyName + " in " + jurisdiction.Name(id) + ".",
		}
		rep.Recount()
		return rep
	}

	return []report.ComplianceReport{
		sample("us", 75, []report.Requirement{
			{
				ID:          "req-1",
				Title:       "Annual financial statement filing",
				Description: "Companies must file annual financial statements with the relevant authority.",
				Category:    "Reporting",
				Status:      report.ReqMet,
				Risk:        report.RiskHigh,
			},
			{
				ID:             "req-2",
				Title:          "Sales tax registration",
				Description:    "Registration is required in states where the company exceeds the economic nexus threshold.",
				Category:       "Tax",
				Status:         report.ReqPartial,
				Risk:           report.RiskMedium,
				Recommendation: "Review nexus exposure and complete outstanding registrations.",
			},
		}),
		sample("eu", 55, []report.Requirement{
			{
				ID:             "req-1",
				Title:          "Data protection compliance",
				Description:    "Processing of personal data must satisfy GDPR requirements, including records of processing.",
				Category:       "Data Protection",
				Status:         report.ReqPartial,
				Risk:           report.RiskHigh,
				Recommendation: "Appoint a data protection contact and complete the processing register.",
			},
		}),
	}
}

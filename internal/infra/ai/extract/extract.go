// Package extract recovers a structured compliance report from the model's
// free-text Markdown answer. There is no grammar to parse against: each
// field runs an ordered chain of strategies, from an explicit section down
// to a synthetic default that never fails.
//
// The stage order matters. The score is extracted first; requirement
// extraction follows; when no explicit score was found the score is
// recomputed from the requirement ratios; status, risk and the synthetic
// fallback requirement all consume the score settled by the earlier stages.
package extract

import (
	"math"
	"time"

	"github.com/guptatavish/compliance-coordinator/internal/domain/report"
)

// Result is everything recovered from one answer.
type Result struct {
	// Content is the processed Markdown (header, summary and references
	// injected where the answer lacked them).
	Content         string
	Summary         string
	Score           int
	Status          report.Status
	Risk            report.RiskLevel
	Requirements    []report.Requirement
	Recommendations []report.Recommendation
	References      []report.RegulatoryReference
}

type Extractor struct {
	policy report.Policy
}

func New(policy report.Policy) *Extractor {
	return &Extractor{policy: policy}
}

// Extract runs the full chain over a raw answer. It always produces a
// usable Result; missing fields degrade to defaults rather than erroring.
func (e *Extractor) Extract(raw, companyName string, now time.Time) Result {
	content := processContent(raw, companyName, now)

	score, found := e.extractScore(content)
	reqs := e.extractRequirements(content)
	if !found && len(reqs) > 0 {
		score = ratioScore(reqs)
	}
	if len(reqs) == 0 {
		reqs = []report.Requirement{e.syntheticRequirement(score)}
	}

	return Result{
		Content:         content,
		Summary:         summarize(content),
		Score:           score,
		Status:          e.policy.StatusFor(score),
		Risk:            e.policy.RiskFor(score),
		Requirements:    reqs,
		Recommendations: e.extractRecommendations(content),
		References:      e.extractReferences(content),
	}
}

// ratioScore derives a score from requirement statuses, counting partial
// compliance as half met.
func ratioScore(reqs []report.Requirement) int {
	var met, partial int
	for _, r := range reqs {
		switch r.Status {
		case report.ReqMet:
			met++
		case report.ReqPartial:
			partial++
		}
	}
	score := (float64(met) + 0.5*float64(partial)) / float64(len(reqs)) * 100
	return report.ClampScore(int(math.Round(score)))
}

// syntheticRequirement is the terminal fallback: exactly one generic
// requirement whose status reflects the already-computed score.
func (e *Extractor) syntheticRequirement(score int) report.Requirement {
	status := e.policy.RequirementStatusFor(score)
	return report.Requirement{
		ID:          "req-1",
		Title:       "General regulatory compliance",
		Description: "Maintain compliance with the financial and business regulations applicable to the company's jurisdiction and industry.",
		Category:    "General",
		Status:      status,
		Risk:        e.policy.RiskFor(score),
		IsMet:       status == report.ReqMet,
	}
}

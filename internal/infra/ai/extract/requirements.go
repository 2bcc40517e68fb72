package extract

import (
	"fmt"
	"regexp"

	"github.com/guptatavish/compliance-coordinator/internal/domain/report"
)

const requirementsSectionPattern = `(?:compliance\s+requirements?|regulatory\s+requirements?|key\s+requirements?|requirements?|regulations?)`

var (
	partialStatusRe = regexp.MustCompile(`(?i)partial(?:ly)?\s+compliant|in\s+progress|some\s+compliance|\bpartial\b`)
	notMetStatusRe  = regexp.MustCompile(`(?i)non-?compliant|not\s+compliant|not\s+met|fails?\s+to\s+comply`)
	metStatusRe     = regexp.MustCompile(`(?i)\bcompliant\b|in\s+compliance|meets?\s+(?:the\s+)?requirements?|\bmet\b`)

	highRiskRe = regexp.MustCompile(`(?i)high\s+risk|severe|critical`)
	lowRiskRe  = regexp.MustCompile(`(?i)low\s+risk|minor`)

	// regMentionRe scans running prose for regulation references when no
	// requirements section exists at all.
	regMentionRe = regexp.MustCompile(`(?i)(?:under|according\s+to|compliant\s+with|compliance\s+with|regulated\s+by|subject\s+to)\s+([^.\n]{10,120})`)
)

// categories is the fixed vocabulary matched against requirement text.
var categories []categoryMatcher

type categoryMatcher struct {
	name string
	re   *regexp.Regexp
}

func init() {
	for _, name := range []string{
		"Tax", "Reporting", "Financial", "Data Protection", "Employment",
		"Labor", "Banking", "Securities", "Environmental", "Health", "Licensing",
	} {
		categories = append(categories, categoryMatcher{
			name: name,
			re:   regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`),
		})
	}
}

// extractRequirements runs the requirement chain: bulleted section items,
// then sentence-split section text, then a whole-document scan for
// regulation mentions. The synthetic terminal fallback lives in Extract
// because it needs the settled score.
func (e *Extractor) extractRequirements(content string) []report.Requirement {
	_, body, ok := section(content, requirementsSectionPattern)
	if ok {
		if items := bullets(body); len(items) > 0 {
			reqs := make([]report.Requirement, 0, len(items))
			for _, item := range items {
				reqs = append(reqs, e.buildRequirement(item, len(reqs)+1))
			}
			return reqs
		}

		var reqs []report.Requirement
		for _, s := range sentences(body) {
			if len(s) <= 10 {
				continue
			}
			reqs = append(reqs, report.Requirement{
				ID:          fmt.Sprintf("req-%d", len(reqs)+1),
				Title:       truncate(plainText(s), 50),
				Description: s,
				Category:    "General",
				Status:      report.ReqNotMet,
				Risk:        report.RiskMedium,
			})
		}
		if len(reqs) > 0 {
			return reqs
		}
	}

	var reqs []report.Requirement
	for _, m := range regMentionRe.FindAllStringSubmatch(content, -1) {
		mention := plainText(m[1])
		if len(mention) <= 10 {
			continue
		}
		reqs = append(reqs, report.Requirement{
			ID:          fmt.Sprintf("req-%d", len(reqs)+1),
			Title:       truncate(mention, 50),
			Description: mention,
			Category:    "General",
			Status:      report.ReqNotMet,
			Risk:        report.RiskMedium,
		})
	}
	return reqs
}

// buildRequirement infers status, category, risk and any inline citation
// from a single bullet item.
func (e *Extractor) buildRequirement(item string, n int) report.Requirement {
	req := report.Requirement{
		ID:          fmt.Sprintf("req-%d", n),
		Title:       truncate(plainText(item), 50),
		Description: item,
		Category:    itemCategory(item),
		Status:      itemStatus(item),
		Risk:        itemRisk(item),
	}
	req.IsMet = req.Status == report.ReqMet

	for i, l := range links(item) {
		req.References = append(req.References, classifyLink(l, fmt.Sprintf("%s-ref-%d", req.ID, i+1)))
	}
	return req
}

// itemStatus checks partial language before non-compliance before
// compliance, so "partially compliant" and "non-compliant" are not
// swallowed by the bare "compliant" keyword.
func itemStatus(item string) report.RequirementStatus {
	switch {
	case partialStatusRe.MatchString(item):
		return report.ReqPartial
	case notMetStatusRe.MatchString(item):
		return report.ReqNotMet
	case metStatusRe.MatchString(item):
		return report.ReqMet
	default:
		return report.ReqNotMet
	}
}

func itemCategory(item string) string {
	for _, cat := range categories {
		if cat.re.MatchString(item) {
			return cat.name
		}
	}
	return "General"
}

func itemRisk(item string) report.RiskLevel {
	switch {
	case highRiskRe.MatchString(item):
		return report.RiskHigh
	case lowRiskRe.MatchString(item):
		return report.RiskLow
	default:
		return report.RiskMedium
	}
}

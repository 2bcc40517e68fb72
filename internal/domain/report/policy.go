package report

// Policy maps a 0-100 compliance score onto status and risk buckets. The
// thresholds are configuration, not constants scattered across call sites:
// every derivation from a score goes through one Policy value.
//
// Default brackets: compliant/low at 80 and above, partial/medium at 50 and
// above, non-compliant/high below that.
type Policy struct {
	CompliantMin int `yaml:"compliantMin"`
	PartialMin   int `yaml:"partialMin"`
}

// DefaultPolicy is the canonical threshold set.
var DefaultPolicy = Policy{CompliantMin: 80, PartialMin: 50}

// ClampScore forces a score into the valid [0,100] range.
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// StatusFor derives the overall status from a score.
func (p Policy) StatusFor(score int) Status {
	switch score = ClampScore(score); {
	case score >= p.CompliantMin:
		return StatusCompliant
	case score >= p.PartialMin:
		return StatusPartial
	default:
		return StatusNonCompliant
	}
}

// RiskFor derives the overall risk level from a score.
func (p Policy) RiskFor(score int) RiskLevel {
	switch score = ClampScore(score); {
	case score >= p.CompliantMin:
		return RiskLow
	case score >= p.PartialMin:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// RequirementStatusFor derives a single requirement's status from a score.
// Used for the synthetic requirement emitted when nothing could be parsed.
func (p Policy) RequirementStatusFor(score int) RequirementStatus {
	switch score = ClampScore(score); {
	case score >= p.CompliantMin:
		return ReqMet
	case score >= p.PartialMin:
		return ReqPartial
	default:
		return ReqNotMet
	}
}

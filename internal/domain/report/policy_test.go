package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	p := DefaultPolicy

	assert.Equal(t, StatusCompliant, p.StatusFor(100))
	assert.Equal(t, StatusCompliant, p.StatusFor(80))
	assert.Equal(t, StatusPartial, p.StatusFor(79))
	assert.Equal(t, StatusPartial, p.StatusFor(50))
	assert.Equal(t, StatusNonCompliant, p.StatusFor(49))
	assert.Equal(t, StatusNonCompliant, p.StatusFor(0))
}

func TestRiskFor(t *testing.T) {
	p := DefaultPolicy

	assert.Equal(t, RiskLow, p.RiskFor(90))
	assert.Equal(t, RiskMedium, p.RiskFor(60))
	assert.Equal(t, RiskHigh, p.RiskFor(20))
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0, ClampScore(-5))
	assert.Equal(t, 100, ClampScore(250))
	assert.Equal(t, 42, ClampScore(42))
}

func TestStatusAndRiskAgree(t *testing.T) {
	// The same thresholds drive both derivations, so the buckets must
	// move in lockstep for every score.
	p := DefaultPolicy
	for score := 0; score <= 100; score++ {
		status := p.StatusFor(score)
		risk := p.RiskFor(score)
		switch status {
		case StatusCompliant:
			assert.Equal(t, RiskLow, risk, "score %d", score)
		case StatusPartial:
			assert.Equal(t, RiskMedium, risk, "score %d", score)
		default:
			assert.Equal(t, RiskHigh, risk, "score %d", score)
		}
	}
}

func TestRecount(t *testing.T) {
	rep := ComplianceReport{
		RequirementsList: []Requirement{
			{ID: "req-1", Status: ReqMet},
			{ID: "req-2", Status: ReqPartial},
			{ID: "req-3", Status: ReqNotMet},
		},
	}
	rep.Recount()

	assert.Equal(t, 3, rep.Requirements.Total)
	assert.Equal(t, 1, rep.Requirements.Met)
	assert.True(t, rep.RequirementsList[0].IsMet)
	assert.False(t, rep.RequirementsList[1].IsMet)
	assert.False(t, rep.RequirementsList[2].IsMet)
}

package extract

import (
	"regexp"
	"strconv"

	"github.com/guptatavish/compliance-coordinator/internal/domain/report"
)

const defaultScore = 50

const scoreSectionPattern = `(?:overall\s+)?compliance\s+score`

var (
	scoreValueRe  = regexp.MustCompile(`(\d{1,3})\s*(?:/\s*100|%)`)
	inlineScoreRe = regexp.MustCompile(`(?i)compliance\s+score\s*(?:of|is|:)?\s*(\d{1,3})\s*(?:/\s*100|%)?`)
)

// qualitativeScores maps compliance language to fixed anchor scores, checked
// in order so the more specific phrases win.
var qualitativeScores = []struct {
	re    *regexp.Regexp
	score int
}{
	{regexp.MustCompile(`(?i)\bfully\s+compliant\b`), 90},
	{regexp.MustCompile(`(?i)\b(?:mostly|largely|substantially)\s+compliant\b`), 80},
	{regexp.MustCompile(`(?i)\bpartially\s+compliant\b`), 60},
	{regexp.MustCompile(`(?i)\bnon-?\s?compliant\b`), 20},
}

// extractScore tries, in priority order: an explicit "Compliance Score"
// section, an inline "compliance score of NN%" phrase, then qualitative
// compliance language. The found flag is false only when every strategy
// missed and the default applies.
func (e *Extractor) extractScore(content string) (score int, found bool) {
	if heading, body, ok := section(content, scoreSectionPattern); ok {
		for _, text := range []string{body, heading} {
			if m := scoreValueRe.FindStringSubmatch(text); m != nil {
				n, _ := strconv.Atoi(m[1])
				return report.ClampScore(n), true
			}
		}
	}

	if m := inlineScoreRe.FindStringSubmatch(content); m != nil {
		n, _ := strconv.Atoi(m[1])
		return report.ClampScore(n), true
	}

	for _, q := range qualitativeScores {
		if q.re.MatchString(content) {
			return q.score, true
		}
	}

	return defaultScore, false
}

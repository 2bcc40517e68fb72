package extract

import (
	"regexp"

	"github.com/guptatavish/compliance-coordinator/internal/domain/report"
)

const recommendationsSectionPattern = `(?:recommendations?|action\s+items?|next\s+steps?|suggested\s+actions?)`

const defaultTimeframe = "As soon as possible"

var (
	highPriorityRe = regexp.MustCompile(`(?i)immediately|urgent|critical|high\s+priority`)
	lowPriorityRe  = regexp.MustCompile(`(?i)when\s+possible|consider|may\s+want\s+to|low\s+priority`)
	timeframeRe    = regexp.MustCompile(`(?i)within\s+\d+\s+(?:days?|weeks?|months?|years?)`)

	recMentionRe = regexp.MustCompile(`(?i)(?:recommend|should|must|need\s+to|advised\s+to)\s+([^.\n]{10,160})`)
)

// extractRecommendations mirrors the requirement chain: bulleted section
// items, sentence-split section text, then a whole-document scan for
// recommendation language. An empty result is acceptable here.
func (e *Extractor) extractRecommendations(content string) []report.Recommendation {
	_, body, ok := section(content, recommendationsSectionPattern)
	if ok {
		items := bullets(body)
		if len(items) == 0 {
			for _, s := range sentences(body) {
				if len(s) > 10 {
					items = append(items, s)
				}
			}
		}
		if len(items) > 0 {
			recs := make([]report.Recommendation, 0, len(items))
			for _, item := range items {
				recs = append(recs, buildRecommendation(item))
			}
			return recs
		}
	}

	var recs []report.Recommendation
	for _, m := range recMentionRe.FindAllStringSubmatch(content, -1) {
		mention := plainText(m[1])
		if len(mention) <= 10 {
			continue
		}
		recs = append(recs, buildRecommendation(mention))
	}
	return recs
}

func buildRecommendation(item string) report.Recommendation {
	priority := "medium"
	switch {
	case highPriorityRe.MatchString(item):
		priority = "high"
	case lowPriorityRe.MatchString(item):
		priority = "low"
	}

	timeframe := defaultTimeframe
	if m := timeframeRe.FindString(item); m != "" {
		timeframe = m
	}

	return report.Recommendation{
		Description: item,
		Priority:    priority,
		Timeframe:   timeframe,
	}
}

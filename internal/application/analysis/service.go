// Package analysis orchestrates the compliance pipeline: document
// ingestion, prompt assembly, the model call, response extraction and
// report shaping, with per-key TTL caching in front of the model.
package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/guptatavish/compliance-coordinator/internal/domain/ai"
	"github.com/guptatavish/compliance-coordinator/internal/domain/jurisdiction"
	"github.com/guptatavish/compliance-coordinator/internal/domain/report"
	"github.com/guptatavish/compliance-coordinator/internal/infra/ai/extract"
	"github.com/guptatavish/compliance-coordinator/internal/infra/ai/prompt"
	"github.com/guptatavish/compliance-coordinator/internal/infra/cache"
	"github.com/guptatavish/compliance-coordinator/internal/middleware"
)

// ChatClientFactory builds a ChatClient around the caller-supplied API key.
type ChatClientFactory func(apiKey string) ai.ChatClient

// DocumentReader turns uploaded documents into prompt context text.
type DocumentReader interface {
	Extract(ctx context.Context, docs []report.Document) string
}

// Service wires the pipeline collaborators. All fields are injected.
type Service struct {
	Cache     cache.Cache
	NewChat   ChatClientFactory
	Docs      DocumentReader
	Extractor *extract.Extractor
	Policy    report.Policy
	Clock     Clock
	Log       zerolog.Logger

	AnalysisTTL time.Duration
	DocumentTTL time.Duration
}

// AnalysisKey is the composite cache key for one analysis request.
func AnalysisKey(jurisdictionID string, profile report.CompanyProfile) string {
	return fmt.Sprintf("%s_%s_%s", jurisdictionID, profile.CompanyName, profile.Industry)
}

// DocumentKey is the composite cache key for one regulatory document.
func DocumentKey(jurisdictionID, docType string, profile report.CompanyProfile) string {
	return fmt.Sprintf("reg_doc_%s_%s_%s", jurisdictionID, docType, profile.Industry)
}

// AnalyzeCompliance runs one full analysis for a jurisdiction, serving a
// cached report when a fresh one exists for the same composite key.
func (s *Service) AnalyzeCompliance(ctx context.Context, apiKey string, profile report.CompanyProfile, jurisdictionID string, docs []report.Document) (report.ComplianceReport, error) {
	key := AnalysisKey(jurisdictionID, profile)
	if v, ok := s.Cache.Get(key); ok {
		if cached, ok := v.(report.ComplianceReport); ok {
			middleware.IncrementCacheHits()
			s.Log.Debug().Str("key", key).Msg("serving cached analysis")
			return cached, nil
		}
	}

	name := jurisdiction.Name(jurisdictionID)
	documentText := ""
	if len(docs) > 0 {
		documentText = s.Docs.Extract(ctx, docs)
	}

	content, err := s.NewChat(apiKey).Complete(ctx,
		ai.Message{
			System: prompt.System(),
			User:   prompt.Evaluation(profile, name, documentText),
		},
		ai.Options{Temperature: 0.1, MaxTokens: 4000, Seed: ai.Seed(key)},
	)
	if err != nil {
		return report.ComplianceReport{}, fmt.Errorf("compliance analysis for %s: %w", jurisdictionID, err)
	}

	now := s.Clock.Now()
	res := s.Extractor.Extract(content, profile.CompanyName, now)

	rep := report.ComplianceReport{
		JurisdictionID:       jurisdictionID,
		JurisdictionName:     name,
		Flag:                 jurisdiction.Flag(jurisdictionID),
		ComplianceScore:      res.Score,
		Status:               res.Status,
		RiskLevel:            res.Risk,
		RequirementsList:     res.Requirements,
		Summary:              res.Summary,
		FullReport:           res.Content,
		Recommendations:      res.Recommendations,
		RegulatoryReferences: res.References,
	}
	rep.Recount()

	s.Cache.Set(key, rep, s.AnalysisTTL)
	s.Log.Info().
		Str("jurisdiction", jurisdictionID).
		Str("company", profile.CompanyName).
		Int("score", rep.ComplianceScore).
		Int("requirements", rep.Requirements.Total).
		Msg("analysis complete")
	return rep, nil
}

// AnalyzeRegulations analyses every current jurisdiction of the profile.
// Individual failures degrade to a zero-score error entry so one bad
// jurisdiction cannot fail the whole batch.
func (s *Service) AnalyzeRegulations(ctx context.Context, apiKey string, profile report.CompanyProfile) []report.ComplianceReport {
	results := make([]report.ComplianceReport, 0, len(profile.CurrentJurisdictions))
	for _, id := range profile.CurrentJurisdictions {
		rep, err := s.AnalyzeCompliance(ctx, apiKey, profile, id, nil)
		if err != nil {
			s.Log.Error().Err(err).Str("jurisdiction", id).Msg("jurisdiction analysis failed")
			rep = report.ComplianceReport{
				JurisdictionID:   id,
				JurisdictionName: jurisdiction.Name(id),
				Flag:             jurisdiction.Flag(id),
				ComplianceScore:  0,
				Status:           report.StatusError,
				RiskLevel:        report.RiskHigh,
				RequirementsList: []report.Requirement{},
				Error:            err.Error(),
			}
		}
		results = append(results, rep)
	}
	return results
}

// RegulatoryDocument generates (or serves from cache) a formatted
// regulatory reference document for a jurisdiction and document type.
func (s *Service) RegulatoryDocument(ctx context.Context, apiKey, jurisdictionID, docType string, profile report.CompanyProfile) (string, error) {
	key := DocumentKey(jurisdictionID, docType, profile)
	if v, ok := s.Cache.Get(key); ok {
		if cached, ok := v.(string); ok {
			middleware.IncrementCacheHits()
			s.Log.Debug().Str("key", key).Msg("serving cached regulatory document")
			return cached, nil
		}
	}

	name := jurisdiction.Name(jurisdictionID)
	content, err := s.NewChat(apiKey).Complete(ctx,
		ai.Message{
			System: prompt.RegulatoryDocSystem(),
			User:   prompt.RegulatoryDoc(profile, name, docType),
		},
		ai.Options{Temperature: 0.2, MaxTokens: 4000, Seed: ai.Seed(key)},
	)
	if err != nil {
		return "", fmt.Errorf("regulatory document for %s: %w", jurisdictionID, err)
	}

	doc := prompt.RegulatoryDocHeader(name, profile.Industry, docType, s.Clock.Now(), content)
	s.Cache.Set(key, doc, s.DocumentTTL)
	return doc, nil
}

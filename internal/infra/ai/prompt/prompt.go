// Package prompt assembles the natural-language requests sent to the
// compliance model. The output is plain text; the extractor on the response
// side makes no assumption that the model honoured any of it.
package prompt

import (
	"fmt"
	"strings"
	"time"

	"github.com/guptatavish/compliance-coordinator/internal/domain/report"
)

// maxDocumentChars bounds how much extracted document text is inlined into
// the query, to respect the provider token budget.
const maxDocumentChars = 2000

// System provides the strict directions for the compliance evaluation call.
func System() string {
	return `You are a financial compliance expert who specializes in evaluating businesses against government regulations.
Your task is to analyze a company's profile and provide a detailed compliance report with the following characteristics:

1. ONLY cite official government websites, regulatory bodies, and authoritative legal sources
2. Format your analysis as a professional Markdown document with proper headings, bullet points, and sections
3. Include direct links to government websites and regulatory documents whenever possible
4. Provide company-specific insights that directly address their unique situation
5. Include an explicit "Compliance Score" section with a numeric score from 0-100
6. When recommending solutions, be specific about implementation timelines, responsibilities, and expected outcomes
7. Include a "References" section at the end with numbered citations to all government sources

Be thorough in your research and analysis. Use current regulations and requirements appropriate to the company's location and industry.`
}

// Evaluation builds the user message for a compliance analysis request.
func Evaluation(profile report.CompanyProfile, jurisdictionName, documentText string) string {
	var b strings.Builder

	b.WriteString("# Financial Compliance Evaluation Request\n\n")
	b.WriteString("## Company Profile\n\n")
	b.WriteString(profileSection(profile, jurisdictionName))

	if documentText != "" {
		if len(documentText) > maxDocumentChars {
			documentText = documentText[:maxDocumentChars] + "..."
		}
		b.WriteString("\n## Document Analysis\n\nThe following information was extracted from the provided documents:\n\n")
		b.WriteString(documentText)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, `
## Evaluation Request

I need a detailed assessment of this company's compliance with financial and business regulations in %s. Please provide:

1. A "Compliance Score" section with a numeric score from 0-100 representing the overall compliance level
2. A "Requirements" section listing the specific regulatory requirements that apply to this company, as bullet points
3. For each requirement, state whether the company is fully compliant, partially compliant, or not compliant
4. For each requirement, assess the risk level (high risk, medium risk, low risk)
5. A "Recommendations" section with actionable items for non-compliant or partially compliant areas, including timeframes
6. A "References" section with links to official government sources only

Do not assume compliance - if it is unclear, mark the requirement as partially compliant and recommend verification.
`, jurisdictionName)

	return b.String()
}

func profileSection(p report.CompanyProfile, jurisdictionName string) string {
	var b strings.Builder
	field := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "- **%s**: %s\n", label, value)
		}
	}
	field("Company Name", p.CompanyName)
	field("Company Size", p.CompanySize)
	field("Industry", p.Industry)
	field("Address", p.Address)
	field("Primary Jurisdiction", jurisdictionName)
	field("Registration Number", p.RegistrationNumber)
	field("Website", p.Website)
	field("Email", p.Email)
	field("Phone", p.Phone)
	field("Founded Year", p.FoundedYear)
	field("Business Type", p.BusinessType)
	if p.Description != "" {
		fmt.Fprintf(&b, "\n**Description**: %s\n", p.Description)
	}
	return b.String()
}

// RegulatoryDocSystem directs the model when generating a reference document.
func RegulatoryDocSystem() string {
	return "You are a regulatory compliance expert specializing in creating accurate, detailed regulatory reference documents. " +
		"Your responses should be well-structured, comprehensive, and include specific regulatory details."
}

// RegulatoryDoc builds the user message for a regulatory reference document.
func RegulatoryDoc(profile report.CompanyProfile, jurisdictionName, docType string) string {
	return fmt.Sprintf(`Create a detailed regulatory reference document for a %s company in the %s industry operating in %s. This document should serve as a comprehensive reference guide for regulatory compliance.

The document should be focused on the type: %s (full regulations, summary, or compliance guidance).

Please structure the document with the following sections:

1. Executive Summary
2. Regulatory Framework Overview
3. Key Regulatory Bodies
4. Primary Regulations and Standards
5. Compliance Requirements
   - Include specific regulations with reference numbers where applicable
   - Note deadlines and reporting requirements
6. Common Compliance Challenges
7. Recommended Compliance Strategies
8. Resources and References

Make the document specific to %s in %s and include as much specific regulatory information as possible including actual regulation names, articles, and compliance deadlines.

Format the response as a well-structured document suitable for a professional audience.`,
		profile.CompanySize, profile.Industry, jurisdictionName, docType, profile.Industry, jurisdictionName)
}

// RegulatoryDocHeader frames generated content as a dated reference document.
func RegulatoryDocHeader(jurisdictionName, industry, docType string, now time.Time, content string) string {
	if industry == "" {
		industry = "Not specified"
	}
	return fmt.Sprintf(`REGULATORY REFERENCE DOCUMENT
============================
Jurisdiction: %s
Industry: %s
Document Type: %s
Generated: %s

%s`, jurisdictionName, industry, docType, now.Format("2006-01-02 15:04:05"), content)
}

package extract

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/guptatavish/compliance-coordinator/internal/domain/report"
)

const referencesSectionPattern = `(?:references?|citations?|sources?)`

// regKeywordRe filters free-floating links down to regulation-like ones
// when no references section exists.
var regKeywordRe = regexp.MustCompile(`(?i)regulat|complian|law|\bact\b|statute|directive|authority|agency|\btax\b|\bgov\b|revenue|commission`)

var yearRe = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

// issuerByDomain maps known government domains to issuer names. Lookup is
// longest-suffix-first so hmrc.gov.uk wins over gov.uk.
var issuerByDomain = map[string]string{
	"irs.gov":               "Internal Revenue Service",
	"sec.gov":               "Securities and Exchange Commission",
	"ftc.gov":               "Federal Trade Commission",
	"dol.gov":               "Department of Labor",
	"osha.gov":              "Occupational Safety and Health Administration",
	"treasury.gov":          "Department of the Treasury",
	"gov.uk":                "UK Government",
	"hmrc.gov.uk":           "HM Revenue & Customs",
	"europa.eu":             "European Union",
	"mca.gov.in":            "Ministry of Corporate Affairs",
	"incometaxindia.gov.in": "Income Tax Department",
	"gst.gov.in":            "GST Council",
	"rbi.org.in":            "Reserve Bank of India",
	"iras.gov.sg":           "Inland Revenue Authority of Singapore",
	"ato.gov.au":            "Australian Taxation Office",
	"canada.ca":             "Government of Canada",
}

var issuerDomains []string

func init() {
	for d := range issuerByDomain {
		issuerDomains = append(issuerDomains, d)
	}
	sort.Slice(issuerDomains, func(i, j int) bool {
		return len(issuerDomains[i]) > len(issuerDomains[j])
	})
}

// extractReferences collects Markdown links from the references section or,
// failing that, from anywhere in the document where the link text looks
// regulation-related. Duplicate URLs are dropped.
func (e *Extractor) extractReferences(content string) []report.RegulatoryReference {
	var found []mdLink
	if _, body, ok := section(content, referencesSectionPattern); ok {
		found = links(body)
	}
	if len(found) == 0 {
		for _, l := range links(content) {
			if regKeywordRe.MatchString(l.text) {
				found = append(found, l)
			}
		}
	}

	seen := make(map[string]bool, len(found))
	var refs []report.RegulatoryReference
	for _, l := range found {
		if seen[l.url] {
			continue
		}
		seen[l.url] = true
		refs = append(refs, classifyLink(l, fmt.Sprintf("ref-%d", len(refs)+1)))
	}
	return refs
}

func classifyLink(l mdLink, id string) report.RegulatoryReference {
	ref := report.RegulatoryReference{
		ID:           id,
		Title:        l.text,
		URL:          l.url,
		DocumentType: documentType(l),
		Issuer:       issuerFor(l.url),
	}
	if year := yearRe.FindString(l.text); year != "" {
		ref.PublishDate = year
	}
	return ref
}

// issuerFor classifies a URL's host: known domain table first, then the
// generic government-domain heuristic, else the bare host.
func issuerFor(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	host := strings.ToLower(u.Hostname())
	host = strings.TrimPrefix(host, "www.")

	for _, d := range issuerDomains {
		if host == d || strings.HasSuffix(host, "."+d) {
			return issuerByDomain[d]
		}
	}

	if strings.HasSuffix(host, ".gov") || strings.Contains(host, ".gov.") {
		agency := strings.ToUpper(strings.SplitN(host, ".", 2)[0])
		return agency + " - Government Agency"
	}
	return host
}

func documentType(l mdLink) string {
	lowURL := strings.ToLower(l.url)
	lowText := strings.ToLower(l.text)
	switch {
	case strings.HasSuffix(lowURL, ".pdf"):
		return "PDF Document"
	case strings.Contains(lowText, "act") || strings.Contains(lowText, "law") ||
		strings.Contains(lowText, "regulation") || strings.Contains(lowText, "directive"):
		return "Legislation"
	case strings.Contains(lowText, "guidance") || strings.Contains(lowText, "guide"):
		return "Guidance"
	default:
		return "Web Resource"
	}
}

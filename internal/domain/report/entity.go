package report

// Status is the overall compliance verdict for a jurisdiction.
type Status string

const (
	StatusCompliant    Status = "compliant"
	StatusPartial      Status = "partial"
	StatusNonCompliant Status = "non-compliant"
	// StatusError marks a degraded entry in a multi-jurisdiction batch.
	StatusError Status = "error"
)

// RequirementStatus is the verdict for a single regulatory obligation.
type RequirementStatus string

const (
	ReqMet     RequirementStatus = "met"
	ReqPartial RequirementStatus = "partial"
	ReqNotMet  RequirementStatus = "not-met"
)

// RiskLevel grades exposure for a report or a single requirement.
type RiskLevel string

const (
	RiskHigh   RiskLevel = "high"
	RiskMedium RiskLevel = "medium"
	RiskLow    RiskLevel = "low"
)

// CompanyProfile is the caller-supplied description of the company under
// evaluation. It is immutable for the duration of a request.
type CompanyProfile struct {
	CompanyName          string   `json:"companyName"`
	CompanySize          string   `json:"companySize,omitempty"`
	Industry             string   `json:"industry,omitempty"`
	Description          string   `json:"description,omitempty"`
	Address              string   `json:"address,omitempty"`
	RegistrationNumber   string   `json:"registrationNumber,omitempty"`
	Website              string   `json:"website,omitempty"`
	Email                string   `json:"email,omitempty"`
	Phone                string   `json:"phone,omitempty"`
	FoundedYear          string   `json:"foundedYear,omitempty"`
	BusinessType         string   `json:"businessType,omitempty"`
	CurrentJurisdictions []string `json:"currentJurisdictions,omitempty"`
	TargetJurisdictions  []string `json:"targetJurisdictions,omitempty"`
}

// Document is an uploaded file travelling through the API as base64.
type Document struct {
	FileName string `json:"file_name"`
	Content  string `json:"content"`
	Size     int    `json:"size"`
}

// RegulatoryReference points at a regulation or government source cited by
// the model's answer.
type RegulatoryReference struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	URL          string `json:"url"`
	DocumentType string `json:"documentType"`
	Issuer       string `json:"issuer"`
	PublishDate  string `json:"publishDate,omitempty"`
}

// Requirement is a single regulatory obligation recovered from the answer.
type Requirement struct {
	ID             string                `json:"id"`
	Title          string                `json:"title"`
	Description    string                `json:"description"`
	Category       string                `json:"category"`
	Status         RequirementStatus     `json:"status"`
	Risk           RiskLevel             `json:"risk"`
	IsMet          bool                  `json:"isMet"`
	Recommendation string                `json:"recommendation,omitempty"`
	References     []RegulatoryReference `json:"references,omitempty"`
}

// Recommendation is an actionable follow-up extracted from the answer.
type Recommendation struct {
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Timeframe   string `json:"timeframe"`
}

// Counts summarises the requirement list.
type Counts struct {
	Total int `json:"total"`
	Met   int `json:"met"`
}

// ComplianceReport is the structured result of one analysis call. It is the
// JSON shape returned to the client and the value cached per composite key.
type ComplianceReport struct {
	JurisdictionID       string                `json:"jurisdictionId"`
	JurisdictionName     string                `json:"jurisdictionName"`
	Flag                 string                `json:"flag"`
	ComplianceScore      int                   `json:"complianceScore"`
	Status               Status                `json:"status"`
	RiskLevel            RiskLevel             `json:"riskLevel"`
	Requirements         Counts                `json:"requirements"`
	RequirementsList     []Requirement         `json:"requirementsList"`
	Summary              string                `json:"summary,omitempty"`
	FullReport           string                `json:"fullReport,omitempty"`
	Recommendations      []Recommendation      `json:"recommendations,omitempty"`
	RegulatoryReferences []RegulatoryReference `json:"regulatoryReferences,omitempty"`
	RecentChanges        int                   `json:"recentChanges"`
	Error                string                `json:"error,omitempty"`
}

// Recount refreshes the Requirements counts and the per-item IsMet flags so
// that total == len(list) and met == count(status == met) always hold.
func (r *ComplianceReport) Recount() {
	r.Requirements.Total = len(r.RequirementsList)
	met := 0
	for i := range r.RequirementsList {
		r.RequirementsList[i].IsMet = r.RequirementsList[i].Status == ReqMet
		if r.RequirementsList[i].IsMet {
			met++
		}
	}
	r.Requirements.Met = met
}

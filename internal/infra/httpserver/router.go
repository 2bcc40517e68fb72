package httpserver

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/guptatavish/compliance-coordinator/internal/application/analysis"
	"github.com/guptatavish/compliance-coordinator/internal/domain/report"
	"github.com/guptatavish/compliance-coordinator/internal/infra/export"
	"github.com/guptatavish/compliance-coordinator/internal/middleware"
)

// maxUploadBytes bounds the multipart upload endpoint.
const maxUploadBytes = 32 << 20

// badRequestError maps to HTTP 400; everything else becomes a 500.
type badRequestError struct{ msg string }

func (e badRequestError) Error() string { return e.msg }

func badRequest(format string, args ...any) error {
	return badRequestError{msg: fmt.Sprintf(format, args...)}
}

type Router struct {
	svc *analysis.Service
	log zerolog.Logger
}

func NewRouter(svc *analysis.Service, log zerolog.Logger) http.Handler {
	r := &Router{svc: svc, log: log}
	mux := chi.NewRouter()

	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Authorization"},
	}))
	mux.Use(middleware.RequestID)
	mux.Use(middleware.Logging(log))
	mux.Use(middleware.MetricsMiddleware)

	mux.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"message": "compliance backend is running",
		})
	})
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Post("/analyze-compliance", r.wrap(r.handleAnalyzeCompliance))
	mux.Post("/analyze-regulations", r.wrap(r.handleAnalyzeRegulations))
	mux.Post("/export-report/{format}", r.wrap(r.handleExportReport))
	mux.Post("/export-regulatory-doc", r.wrap(r.handleExportRegulatoryDoc))
	mux.Post("/upload-company-documents", r.wrap(r.handleUploadDocuments))
	mux.Post("/fetch-saved-analyses", r.wrap(r.handleSavedAnalyses))

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// wrap converts handler errors into the JSON error body: 400 for client
// input errors, 500 for everything else.
func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			var br badRequestError
			if errors.As(err, &br) {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": br.msg})
				return
			}
			r.log.Error().Err(err).Str("path", req.URL.Path).Msg("request failed")
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeAttachment(w http.ResponseWriter, mime, name string, data []byte) {
	w.Header().Set("Content-Type", mime)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// POST /analyze-compliance
// Body: {"apiKey": "...", "companyProfile": {...}, "jurisdiction": "us", "documents": [...]}
func (r *Router) handleAnalyzeCompliance(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		APIKey         string                 `json:"apiKey"`
		CompanyProfile *report.CompanyProfile `json:"companyProfile"`
		Jurisdiction   string                 `json:"jurisdiction"`
		Documents      []report.Document      `json:"documents"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest("invalid request body: %v", err)
	}
	if body.APIKey == "" || body.CompanyProfile == nil || body.Jurisdiction == "" {
		return badRequest("missing required fields")
	}

	middleware.IncrementAnalyses()
	rep, err := r.svc.AnalyzeCompliance(req.Context(), body.APIKey, *body.CompanyProfile, body.Jurisdiction, body.Documents)
	if err != nil {
		middleware.IncrementAnalysesFailed()
		return err
	}
	writeJSON(w, http.StatusOK, rep)
	return nil
}

// POST /analyze-regulations
// Body: {"apiKey": "...", "companyProfile": {"currentJurisdictions": [...]}}
func (r *Router) handleAnalyzeRegulations(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		APIKey         string                 `json:"apiKey"`
		CompanyProfile *report.CompanyProfile `json:"companyProfile"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest("invalid request body: %v", err)
	}
	if body.APIKey == "" || body.CompanyProfile == nil {
		return badRequest("missing required fields")
	}
	if len(body.CompanyProfile.CurrentJurisdictions) == 0 {
		return badRequest("no jurisdictions provided")
	}

	results := r.svc.AnalyzeRegulations(req.Context(), body.APIKey, *body.CompanyProfile)
	writeJSON(w, http.StatusOK, map[string]any{"analysisResults": results})
	return nil
}

// POST /export-report/{format} with format one of pdf, excel, csv.
// Body: {"data": <ComplianceReport>}
func (r *Router) handleExportReport(w http.ResponseWriter, req *http.Request) error {
	format := chi.URLParam(req, "format")
	mime := export.MIMEType(format)
	if mime == "" {
		return badRequest("unsupported format: %s", format)
	}

	var body struct {
		Data *report.ComplianceReport `json:"data"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest("invalid request body: %v", err)
	}
	if body.Data == nil {
		return badRequest("no report data provided")
	}

	now := r.svc.Clock.Now()
	var (
		data []byte
		err  error
	)
	switch format {
	case export.FormatPDF:
		data, err = export.PDF(*body.Data, now)
	case export.FormatExcel:
		data, err = export.Excel(*body.Data, now)
	case export.FormatCSV:
		data, err = export.CSV(*body.Data, now)
	}
	if err != nil {
		return err
	}

	writeAttachment(w, mime, export.FileName(format, now), data)
	return nil
}

// POST /export-regulatory-doc
// Body: {"apiKey": "...", "jurisdiction": "us", "docType": "full", "companyProfile": {...}}
func (r *Router) handleExportRegulatoryDoc(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		APIKey         string                 `json:"apiKey"`
		Jurisdiction   string                 `json:"jurisdiction"`
		DocType        string                 `json:"docType"`
		CompanyProfile *report.CompanyProfile `json:"companyProfile"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest("invalid request body: %v", err)
	}
	if body.APIKey == "" || body.Jurisdiction == "" || body.CompanyProfile == nil {
		return badRequest("missing required fields")
	}
	if body.DocType == "" {
		body.DocType = "full"
	}

	doc, err := r.svc.RegulatoryDocument(req.Context(), body.APIKey, body.Jurisdiction, body.DocType, *body.CompanyProfile)
	if err != nil {
		return err
	}
	data, err := export.RegulatoryPDF(doc)
	if err != nil {
		return err
	}

	writeAttachment(w, "application/pdf", export.RegulatoryFileName(body.Jurisdiction, r.svc.Clock.Now()), data)
	return nil
}

// POST /upload-company-documents with multipart field files[].
func (r *Router) handleUploadDocuments(w http.ResponseWriter, req *http.Request) error {
	if err := req.ParseMultipartForm(maxUploadBytes); err != nil {
		return badRequest("invalid multipart form: %v", err)
	}
	files := req.MultipartForm.File["files[]"]
	if len(files) == 0 {
		return badRequest("no files provided")
	}

	docs := make([]report.Document, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return fmt.Errorf("open upload %s: %w", fh.Filename, err)
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("read upload %s: %w", fh.Filename, err)
		}
		docs = append(docs, report.Document{
			FileName: fh.Filename,
			Content:  base64.StdEncoding.EncodeToString(content),
			Size:     len(content),
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":   fmt.Sprintf("Successfully processed %d documents", len(docs)),
		"documents": docs,
	})
	return nil
}

// POST /fetch-saved-analyses
// Body: {"companyName": "..."}
func (r *Router) handleSavedAnalyses(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		CompanyName string `json:"companyName"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest("invalid request body: %v", err)
	}
	if body.CompanyName == "" {
		return badRequest("companyName is required")
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"analyses": r.svc.SavedAnalyses(body.CompanyName),
	})
	return nil
}

package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/career-insights/internal/analysis"
	"github.com/jonathan/career-insights/internal/report"
	"github.com/jonathan/career-insights/internal/roster"
	"github.com/jonathan/career-insights/internal/types"
)

// View modes of the user-facing surface. Approval status can only be set
// through the HR view; manager analyses stay Draft.
const (
	ViewManager = "manager"
	ViewHR      = "hr"
)

// maxRosterBytes bounds uploaded roster size
const maxRosterBytes = 10 << 20

// RosterResponse represents the response for /roster
type RosterResponse struct {
	RosterID    string   `json:"roster_id"`
	Rows        int      `json:"rows"`
	EmployeeIDs []string `json:"employee_ids"`
}

// AnalyzeRequest represents the request body for /analyze.
// Either roster_id plus an employee selector, or the manual-entry fields.
type AnalyzeRequest struct {
	RosterID   string `json:"roster_id,omitempty"`
	EmployeeID string `json:"employee_id,omitempty"`

	Name           string `json:"name,omitempty"`
	Role           string `json:"role,omitempty"`
	TargetRole     string `json:"target_role,omitempty"`
	Experience     string `json:"experience,omitempty"`
	Skills         string `json:"skills,omitempty"`
	Certifications string `json:"certifications,omitempty"`

	Confidence     string `json:"confidence_level" validate:"required"`
	Responsibility string `json:"responsibility_level" validate:"required"`

	View     string `json:"view,omitempty"`
	Approval string `json:"approval_status,omitempty"`
}

// Validate validates the AnalyzeRequest using the validator
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// AnalyzeResponse represents the response for /analyze
type AnalyzeResponse struct {
	RunID      string                 `json:"run_id"`
	Category   string                 `json:"category"`
	Labels     report.IndicatorLabels `json:"labels"`
	Sections   []types.Section        `json:"sections"`
	Approval   types.ApprovalStatus   `json:"approval_status"`
	Exportable bool                   `json:"exportable"`
}

// ApprovalRequest represents the request body for /runs/{id}/approval
type ApprovalRequest struct {
	View   string `json:"view" validate:"required"`
	Status string `json:"approval_status" validate:"required"`
}

// Validate validates the ApprovalRequest using the validator
func (r *ApprovalRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// handleUploadRoster accepts a CSV or XLSX roster as a multipart upload
func (s *Server) handleUploadRoster(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxRosterBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("roster")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "roster file is required")
		return
	}
	defer func() { _ = file.Close() }()

	var loaded *roster.Roster
	switch strings.ToLower(filepath.Ext(header.Filename)) {
	case ".xlsx":
		loaded, err = roster.LoadXLSX(file)
	default:
		loaded, err = roster.LoadCSV(file)
	}
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id := s.sessions.PutRoster(loaded)

	s.jsonResponse(w, http.StatusCreated, RosterResponse{
		RosterID:    id.String(),
		Rows:        len(loaded.Rows),
		EmployeeIDs: loaded.EmployeeIDs(),
	})
}

// handleAnalyze runs one career analysis
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	profile, err := s.resolveProfile(&req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	assessment := types.SelfAssessment{
		Confidence:     types.ConfidenceLevel(req.Confidence),
		Responsibility: types.ResponsibilityLevel(req.Responsibility),
	}
	if !assessment.Confidence.Valid() {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("unknown confidence level: %s", req.Confidence))
		return
	}
	if !assessment.Responsibility.Valid() {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("unknown responsibility level: %s", req.Responsibility))
		return
	}

	// Approval is an HR-view control; any other view analyzes as Draft.
	approval := types.StatusDraft
	if strings.EqualFold(req.View, ViewHR) && req.Approval != "" {
		requested := types.ApprovalStatus(req.Approval)
		if !requested.Valid() {
			s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("unknown approval status: %s", req.Approval))
			return
		}
		approval = requested
	}

	result, err := analysis.Run(r.Context(), s.client, analysis.Options{
		Profile:    profile,
		Assessment: assessment,
		Approval:   approval,
		Weights:    s.weights,
	})
	if err != nil {
		log.Printf("Analysis run failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	runID := s.sessions.PutRun(result)

	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{
		RunID:      runID.String(),
		Category:   string(result.Category),
		Labels:     result.Labels,
		Sections:   result.Insights.Sections,
		Approval:   result.Approval,
		Exportable: result.Approval == types.StatusApproved,
	})
}

// resolveProfile picks the roster path when a roster reference is supplied,
// otherwise the manual-entry path.
func (s *Server) resolveProfile(req *AnalyzeRequest) (types.EmployeeProfile, error) {
	if req.RosterID == "" {
		return roster.ResolveManual(roster.ManualFields{
			EmployeeID:     req.EmployeeID,
			Name:           req.Name,
			Role:           req.Role,
			TargetRole:     req.TargetRole,
			Experience:     req.Experience,
			Skills:         req.Skills,
			Certifications: req.Certifications,
		}), nil
	}

	rosterID, err := uuid.Parse(req.RosterID)
	if err != nil {
		return types.EmployeeProfile{}, &roster.ParseError{Message: "invalid roster ID"}
	}
	stored, ok := s.sessions.Roster(rosterID)
	if !ok {
		return types.EmployeeProfile{}, &roster.NotFoundError{Key: req.RosterID}
	}

	var rec roster.Record
	if req.EmployeeID != "" {
		rec, err = stored.FindByID(req.EmployeeID)
	} else {
		rec, err = stored.FindByName(req.Name)
	}
	if err != nil {
		return types.EmployeeProfile{}, err
	}

	return roster.ResolveRecord(rec), nil
}

// handleSetApproval updates the approval status of a stored run.
// Only the HR view may change approval.
func (s *Server) handleSetApproval(w http.ResponseWriter, r *http.Request) {
	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid run ID")
		return
	}

	var req ApprovalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	if !strings.EqualFold(req.View, ViewHR) {
		s.errorResponse(w, http.StatusForbidden, "approval status can only be set from the HR view")
		return
	}

	status := types.ApprovalStatus(req.Status)
	if !status.Valid() {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("unknown approval status: %s", req.Status))
		return
	}

	if !s.sessions.SetApproval(runID, status) {
		s.errorResponse(w, http.StatusNotFound, "Run not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"run_id": runID.String(), "approval_status": string(status)})
}

// handleExportPDF streams the approved report as a PDF
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	s.export(w, r, "application/pdf", "pdf", (*analysis.Result).ExportPDF)
}

// handleExportDOCX streams the approved report as a DOCX
func (s *Server) handleExportDOCX(w http.ResponseWriter, r *http.Request) {
	s.export(w, r, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", "docx",
		(*analysis.Result).ExportDOCX)
}

func (s *Server) export(w http.ResponseWriter, r *http.Request, contentType, ext string, render func(*analysis.Result, io.Writer) error) {
	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid run ID")
		return
	}

	result, ok := s.sessions.Run(runID)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "Run not found")
		return
	}

	// Render into memory first so the approval gate and render failures can
	// still produce a clean JSON error instead of a truncated download.
	var buf bytes.Buffer
	if err := render(result, &buf); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	filename := fmt.Sprintf("%s_Career_Report.%s", exportBaseName(result), ext)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error streaming report: %v", err)
	}
}

func exportBaseName(result *analysis.Result) string {
	if result.Profile.EmployeeID != "" {
		return result.Profile.EmployeeID
	}
	if result.Profile.Name != "" {
		return strings.ReplaceAll(result.Profile.Name, " ", "_")
	}
	return "employee"
}

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jonathan/career-insights/internal/llm"
	"github.com/jonathan/career-insights/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	response string
	err      error
}

func (c *stubClient) Generate(_ context.Context, _, _ string) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	return c.response, nil
}

func (c *stubClient) Model() string { return "stub-model" }
func (c *stubClient) Close() error  { return nil }

const stubResponse = `### Executive Career Overview
Consistent delivery across people processes.

### Promotion Readiness Statement
Conditionally Ready
`

func newTestServer(t *testing.T, client llm.Client) *Server {
	t.Helper()
	srv, err := New(Config{Port: 0, Client: client, Weights: scoring.DefaultWeights()})
	require.NoError(t, err)
	return srv
}

func (s *Server) testHandler() http.Handler {
	return s.httpServer.Handler
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func uploadRoster(t *testing.T, h http.Handler, filename, content string) RosterResponse {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("roster", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/roster", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp RosterResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

const testCSV = `employee_id,name,role,target_role,experience,skills,certifications
E001,Priya Nair,HR Manager,Senior HR Manager,6,"Recruitment, Policy",SHRM-CP
`

func manualAnalyzeRequest() AnalyzeRequest {
	return AnalyzeRequest{
		Name:           "Priya Nair",
		Role:           "HR Manager",
		TargetRole:     "Senior HR Manager",
		Experience:     "6",
		Skills:         "Recruitment, Policy",
		Confidence:     "Advanced",
		Responsibility: "Feature / module owner",
		View:           ViewManager,
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, &stubClient{response: stubResponse})

	rec := doJSON(t, srv.testHandler(), http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "stub-model")
}

func TestUploadRoster_CSV(t *testing.T) {
	srv := newTestServer(t, &stubClient{response: stubResponse})

	resp := uploadRoster(t, srv.testHandler(), "employees.csv", testCSV)

	assert.Equal(t, 1, resp.Rows)
	assert.Equal(t, []string{"E001"}, resp.EmployeeIDs)
}

func TestUploadRoster_MissingFile(t *testing.T) {
	srv := newTestServer(t, &stubClient{response: stubResponse})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(http.MethodPost, "/roster", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.testHandler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyze_Manual(t *testing.T) {
	srv := newTestServer(t, &stubClient{response: stubResponse})

	rec := doJSON(t, srv.testHandler(), http.MethodPost, "/analyze", manualAnalyzeRequest())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.RunID)
	assert.Equal(t, "HR", resp.Category)
	assert.Len(t, resp.Sections, 2)
	assert.Equal(t, "Draft", string(resp.Approval))
	assert.False(t, resp.Exportable)
	// Labels are qualitative, never raw indicator numbers
	assert.NotContains(t, rec.Body.String(), "\"career_readiness\"")
}

func TestAnalyze_FromRoster(t *testing.T) {
	srv := newTestServer(t, &stubClient{response: stubResponse})
	h := srv.testHandler()

	roster := uploadRoster(t, h, "employees.csv", testCSV)

	req := AnalyzeRequest{
		RosterID:       roster.RosterID,
		EmployeeID:     "E001",
		Confidence:     "Advanced",
		Responsibility: "Feature / module owner",
	}
	rec := doJSON(t, h, http.MethodPost, "/analyze", req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "HR", resp.Category)
}

func TestAnalyze_UnknownEmployee(t *testing.T) {
	srv := newTestServer(t, &stubClient{response: stubResponse})
	h := srv.testHandler()

	roster := uploadRoster(t, h, "employees.csv", testCSV)

	req := AnalyzeRequest{
		RosterID:       roster.RosterID,
		EmployeeID:     "E999",
		Confidence:     "Advanced",
		Responsibility: "Independent contributor",
	}
	rec := doJSON(t, h, http.MethodPost, "/analyze", req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAnalyze_MissingIdentifyingColumn(t *testing.T) {
	srv := newTestServer(t, &stubClient{response: stubResponse})
	h := srv.testHandler()

	roster := uploadRoster(t, h, "employees.csv", "name,role\nLee,HR Lead\n")

	req := AnalyzeRequest{
		RosterID:       roster.RosterID,
		EmployeeID:     "E001",
		Confidence:     "Advanced",
		Responsibility: "Independent contributor",
	}
	rec := doJSON(t, h, http.MethodPost, "/analyze", req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing required column")
}

func TestAnalyze_MissingSelfAssessment(t *testing.T) {
	srv := newTestServer(t, &stubClient{response: stubResponse})

	req := manualAnalyzeRequest()
	req.Confidence = ""
	rec := doJSON(t, srv.testHandler(), http.MethodPost, "/analyze", req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyze_ManagerCannotApprove(t *testing.T) {
	srv := newTestServer(t, &stubClient{response: stubResponse})

	req := manualAnalyzeRequest()
	req.View = ViewManager
	req.Approval = "Approved"
	rec := doJSON(t, srv.testHandler(), http.MethodPost, "/analyze", req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Draft", string(resp.Approval))
}

func TestAnalyze_HRViewApproves(t *testing.T) {
	srv := newTestServer(t, &stubClient{response: stubResponse})

	req := manualAnalyzeRequest()
	req.View = ViewHR
	req.Approval = "Approved"
	rec := doJSON(t, srv.testHandler(), http.MethodPost, "/analyze", req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Approved", string(resp.Approval))
	assert.True(t, resp.Exportable)
}

func TestAnalyze_ServiceError(t *testing.T) {
	srv := newTestServer(t, &stubClient{err: &llm.ServiceError{Provider: llm.ProviderGroq, Message: "timeout"}})

	rec := doJSON(t, srv.testHandler(), http.MethodPost, "/analyze", manualAnalyzeRequest())

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestExport_RefusedForDraft(t *testing.T) {
	srv := newTestServer(t, &stubClient{response: stubResponse})
	h := srv.testHandler()

	rec := doJSON(t, h, http.MethodPost, "/analyze", manualAnalyzeRequest())
	require.Equal(t, http.StatusOK, rec.Code)
	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	export := doJSON(t, h, http.MethodGet, "/runs/"+resp.RunID+"/report.pdf", nil)

	assert.Equal(t, http.StatusForbidden, export.Code)
	assert.Contains(t, export.Body.String(), "requires HR approval")
}

func TestExport_ApprovalFlow(t *testing.T) {
	srv := newTestServer(t, &stubClient{response: stubResponse})
	h := srv.testHandler()

	rec := doJSON(t, h, http.MethodPost, "/analyze", manualAnalyzeRequest())
	require.Equal(t, http.StatusOK, rec.Code)
	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	// Manager view may not flip the approval gate
	denied := doJSON(t, h, http.MethodPost, "/runs/"+resp.RunID+"/approval",
		ApprovalRequest{View: ViewManager, Status: "Approved"})
	assert.Equal(t, http.StatusForbidden, denied.Code)

	approved := doJSON(t, h, http.MethodPost, "/runs/"+resp.RunID+"/approval",
		ApprovalRequest{View: ViewHR, Status: "Approved"})
	require.Equal(t, http.StatusOK, approved.Code)

	export := doJSON(t, h, http.MethodGet, "/runs/"+resp.RunID+"/report.pdf", nil)
	require.Equal(t, http.StatusOK, export.Code)
	assert.Equal(t, "application/pdf", export.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(export.Body.Bytes(), []byte("%PDF-")))
	assert.Contains(t, export.Header().Get("Content-Disposition"), "Career_Report.pdf")

	docx := doJSON(t, h, http.MethodGet, "/runs/"+resp.RunID+"/report.docx", nil)
	require.Equal(t, http.StatusOK, docx.Code)
	assert.True(t, bytes.HasPrefix(docx.Body.Bytes(), []byte("PK")))
}

func TestExport_UnknownRun(t *testing.T) {
	srv := newTestServer(t, &stubClient{response: stubResponse})

	rec := doJSON(t, srv.testHandler(), http.MethodGet, "/runs/00000000-0000-0000-0000-000000000000/report.pdf", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExport_InvalidRunID(t *testing.T) {
	srv := newTestServer(t, &stubClient{response: stubResponse})

	rec := doJSON(t, srv.testHandler(), http.MethodGet, "/runs/not-a-uuid/report.pdf", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetApproval_Rejected_BlocksExport(t *testing.T) {
	srv := newTestServer(t, &stubClient{response: stubResponse})
	h := srv.testHandler()

	rec := doJSON(t, h, http.MethodPost, "/analyze", manualAnalyzeRequest())
	require.Equal(t, http.StatusOK, rec.Code)
	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	rejected := doJSON(t, h, http.MethodPost, "/runs/"+resp.RunID+"/approval",
		ApprovalRequest{View: ViewHR, Status: "Rejected"})
	require.Equal(t, http.StatusOK, rejected.Code)

	export := doJSON(t, h, http.MethodGet, "/runs/"+resp.RunID+"/report.docx", nil)
	assert.Equal(t, http.StatusForbidden, export.Code)
}

func TestResponseNeverLeaksIndicatorNumbers(t *testing.T) {
	srv := newTestServer(t, &stubClient{response: "### Peer Benchmark Summary\nTop 85% positioning with readiness: 85.\n"})

	rec := doJSON(t, srv.testHandler(), http.MethodPost, "/analyze", manualAnalyzeRequest())
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	for _, section := range resp.Sections {
		for _, line := range section.Body {
			assert.False(t, strings.Contains(line, "85"), "raw indicator leaked: %s", line)
		}
	}
	assert.NotContains(t, resp.Labels.Readiness, "8")
	assert.NotContains(t, resp.Labels.Peer, "8")
}

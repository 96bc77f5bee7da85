package ui

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complaintscope/app"
	"complaintscope/internal/testkit"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return NewServer(app.NewAnalysisService(nil), nil)
}

func uploadRequest(t *testing.T, filename string, payload []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/uploads", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func doUpload(t *testing.T, s *Server, filename string, sheets ...testkit.SheetFixture) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := testkit.WorkbookBytes(sheets...)
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, uploadRequest(t, filename, payload))
	return rec
}

func TestServer_UploadAndList(t *testing.T) {
	s := newTestServer(t)

	rec := doUpload(t, s, "register.xlsx", testkit.ComplaintSheet("Register"))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/uploads", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		SessionID string `json:"session_id"`
		Uploads   []struct {
			Name    string `json:"name"`
			Current bool   `json:"current"`
		} `json:"uploads"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.SessionID)
	require.Len(t, resp.Uploads, 1)
	assert.Equal(t, "register.xlsx", resp.Uploads[0].Name)
	assert.True(t, resp.Uploads[0].Current)
}

func TestServer_UploadRejectsBrokenWorkbook(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, uploadRequest(t, "bad.xlsx", []byte("not a workbook")))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "UNREADABLE_WORKBOOK", resp.Code)
}

func TestServer_SelectRemoveClear(t *testing.T) {
	s := newTestServer(t)
	doUpload(t, s, "x.xlsx", testkit.ComplaintSheet("Register"))
	doUpload(t, s, "y.xlsx", testkit.ComplaintSheet("Register"))

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/uploads/0/select", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/uploads/9/select", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code, "out-of-range index maps to 404")

	rec = httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/uploads/1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/uploads", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Uploads []any `json:"uploads"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Uploads)
}

func TestServer_ReportWithoutUpload(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/report", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_ReportEndToEnd(t *testing.T) {
	s := newTestServer(t)
	doUpload(t, s, "register.xlsx", testkit.ComplaintSheet("Register"))

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/report?mode=single&sheet=Register&state=MH", nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var report struct {
		RowCount  int    `json:"row_count"`
		KeyColumn string `json:"key_column"`
		Summary   struct {
			Total int `json:"total"`
		} `json:"summary"`
		SiteFrequency struct {
			Available bool `json:"available"`
		} `json:"site_frequency"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, 3, report.RowCount)
	assert.Equal(t, "SOL ID", report.KeyColumn)
	assert.Equal(t, 3, report.Summary.Total)
	assert.True(t, report.SiteFrequency.Available)
}

func TestServer_ReportBadParameters(t *testing.T) {
	s := newTestServer(t)
	doUpload(t, s, "register.xlsx", testkit.ComplaintSheet("Register"))

	for _, path := range []string{
		"/api/report?mode=bogus",
		"/api/report?mode=single",
		"/api/report?from=January",
		"/api/report?from=2025-05-01&to=2025-01-01",
	} {
		rec := httptest.NewRecorder()
		s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/report?mode=selected", nil))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, "empty sheet selection")
}

func TestServer_ResubmitReplacesEntry(t *testing.T) {
	s := newTestServer(t)
	doUpload(t, s, "register.xlsx", testkit.ComplaintSheet("Register"))
	doUpload(t, s, "register.xlsx", testkit.ComplaintSheet("Updated"))

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/uploads", nil))

	var resp struct {
		Uploads []any `json:"uploads"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Uploads, 1, "same name replaces rather than appends")
}

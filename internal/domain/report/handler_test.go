package report

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func TestHandler_Summary(t *testing.T) {
	h := NewHandler(newSeededService(t), zerolog.Nop())
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	if err := h.Summary(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	var rep Report
	if err := json.Unmarshal(rec.Body.Bytes(), &rep); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if rep.Summary.TotalAppointments != 3 {
		t.Errorf("unexpected summary: %+v", rep.Summary)
	}
}

func TestHandler_GenerateThenDownload(t *testing.T) {
	h := NewHandler(newSeededService(t), zerolog.Nop())
	e := echo.New()

	body := `{"startDate":"2026-01-01","endDate":"2026-01-15"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h.Generate(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out struct {
		Success     bool   `json:"success"`
		ReportID    string `json:"reportId"`
		DownloadURL string `json:"downloadUrl"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !out.Success || out.ReportID == "" {
		t.Fatalf("unexpected response: %s", rec.Body.String())
	}
	if !strings.Contains(out.DownloadURL, out.ReportID) {
		t.Errorf("download url must reference the report id: %s", out.DownloadURL)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(out.ReportID)
	if err := h.Download(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); ct != "application/pdf" {
		t.Errorf("expected application/pdf, got %s", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF") {
		t.Error("expected PDF body")
	}
}

func TestHandler_Download_NotFound(t *testing.T) {
	h := NewHandler(newSeededService(t), zerolog.Nop())
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.Download(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404 HTTPError, got %v", err)
	}
}

func TestHandler_Dashboard(t *testing.T) {
	h := NewHandler(newSeededService(t), zerolog.Nop())
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	if err := h.Dashboard(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "healthData") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

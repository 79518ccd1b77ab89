package record

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func multipartBody(t *testing.T, fields map[string]string, fileName, fileContent string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		w.WriteField(k, v)
	}
	if fileName != "" {
		fw, err := w.CreateFormFile("file", fileName)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		fw.Write([]byte(fileContent))
	}
	w.Close()
	return &buf, w.FormDataContentType()
}

func TestHandler_CreateWithFile(t *testing.T) {
	h := NewHandler(newTestService(t))
	e := echo.New()

	body, contentType := multipartBody(t, map[string]string{
		"title":  "X-Ray Chest",
		"type":   TypeImaging,
		"doctor": "Dr. Johnson",
	}, "xray-chest.pdf", "image-bytes")

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	var out MedicalRecord
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out.Title != "X-Ray Chest" || out.Type != TypeImaging {
		t.Errorf("unexpected record: %+v", out)
	}
	if !strings.HasSuffix(out.FileName, ".pdf") {
		t.Errorf("expected stored pdf name, got %s", out.FileName)
	}
}

func TestHandler_CreateWithoutFile(t *testing.T) {
	h := NewHandler(newTestService(t))
	e := echo.New()

	body, contentType := multipartBody(t, map[string]string{"title": "Notes", "type": TypeReport, "doctor": "Dr. Wilson"}, "", "")
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out MedicalRecord
	json.Unmarshal(rec.Body.Bytes(), &out)
	if out.FileName != "unknown" || out.Size != "0 MB" {
		t.Errorf("expected placeholder file metadata, got %+v", out)
	}
}

func TestHandler_Delete(t *testing.T) {
	h := NewHandler(newTestService(t))
	e := echo.New()

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("123")

	if err := h.Delete(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Record deleted successfully") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

package profile

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestHandler_Get(t *testing.T) {
	h := NewHandler(NewService(NewMemoryRepo(DemoProfile())))
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Get(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	var p Profile
	json.Unmarshal(rec.Body.Bytes(), &p)
	if p.Email != "john.doe@email.com" {
		t.Errorf("unexpected email: %s", p.Email)
	}
}

func TestHandler_Update(t *testing.T) {
	h := NewHandler(NewService(NewMemoryRepo(DemoProfile())))
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"allergies":"None known"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Update(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var p Profile
	json.Unmarshal(rec.Body.Bytes(), &p)
	if p.Allergies != "None known" {
		t.Errorf("expected updated allergies, got %s", p.Allergies)
	}
	if p.Name != "John Doe" {
		t.Error("expected untouched fields to survive")
	}
}

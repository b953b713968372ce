package roster

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/therapia/opinions/pkg/therapy"
)

func newTestHandler() (*Handler, *echo.Echo) {
	svc, _ := newTestService()
	return NewHandler(svc), echo.New()
}

func TestHandler_GetRoster(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.GetRoster(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	var r Roster
	if err := json.Unmarshal(rec.Body.Bytes(), &r); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(r.Week) != 5 {
		t.Errorf("expected 5 weekdays, got %d", len(r.Week))
	}
}

func TestHandler_AddTherapist(t *testing.T) {
	h, e := newTestHandler()
	body := `{"name":"Μαρία Παπαδοπούλου","specialty":"Λογοθεραπεία"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.AddTherapist(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
}

func TestHandler_AddTherapist_InvalidSpecialty(t *testing.T) {
	h, e := newTestHandler()
	body := `{"name":"Μαρία","specialty":"Υδροθεραπεία"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.AddTherapist(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_DeleteTherapist_NotFound(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.DeleteTherapist(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}

func TestHandler_AddToDay(t *testing.T) {
	h, e := newTestHandler()
	th, err := h.svc.AddTherapist(context.Background(), "Μαρία", therapy.Speech)
	if err != nil {
		t.Fatal(err)
	}

	body := `{"therapist_id":"` + th.ID + `"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("day")
	c.SetParamValues("monday")

	if err := h.AddToDay(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}

func TestHandler_RemoveFromDay_BadIndex(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("day", "index")
	c.SetParamValues("monday", "abc")

	err := h.RemoveFromDay(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_WorkingDays(t *testing.T) {
	svc, _ := newTestService()
	th, err := svc.AddTherapist(context.Background(), "Μαρία", therapy.Speech)
	if err != nil {
		t.Fatal(err)
	}
	for _, day := range []string{"monday", "thursday"} {
		if err := svc.AddToDay(context.Background(), day, th.ID); err != nil {
			t.Fatal(err)
		}
	}

	h, e := NewHandler(svc), echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(th.ID)

	if err := h.WorkingDays(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body map[string][]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	want := []string{"monday", "thursday"}
	got := body["working_days"]
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("working_days = %v, want %v", got, want)
	}
}

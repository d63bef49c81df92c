package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/nutridash/nutridash/internal/domain/appointment"
)

func newTestHandler(store *mockStore) *Handler {
	h := NewHandler(store)
	h.today = func() string { return "2023-06-22" }
	return h
}

func TestScreenAppointmentsCalendarView(t *testing.T) {
	store := newMockStore()
	p := store.addPatient("Emma Johnson", "emma@x.com", "1", "Active")
	store.addAppointment(p, "2023-06-22", "9:00 AM", "Follow-up", "Scheduled")
	store.addAppointment(p, "2023-06-22", "10:00 AM", "Follow-up", "Scheduled")
	h := newTestHandler(store)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/screens/appointments?view=calendar", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.AppointmentList(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp struct {
		View string        `json:"view"`
		Days []CalendarDay `json:"days"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.View != "calendar" {
		t.Errorf("expected calendar view, got %q", resp.View)
	}
	if len(resp.Days) != 1 || !resp.Days[0].Today {
		t.Fatalf("expected one today-flagged day, got %+v", resp.Days)
	}
	if resp.Days[0].Appointments[0].Time != "10:00 AM" {
		t.Errorf("expected raw string time order, got %q first", resp.Days[0].Appointments[0].Time)
	}
}

func TestScreenCancelRequiresConfirmation(t *testing.T) {
	store := newMockStore()
	p := store.addPatient("Emma Johnson", "emma@x.com", "1", "Active")
	a := store.addAppointment(p, "2023-06-22", "10:00 AM", "Follow-up", "Scheduled")
	h := newTestHandler(store)
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(a.ID.String())

	if err := h.AppointmentCancel(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "requiresconfirmation") {
		t.Errorf("expected confirmation prompt, got %s", rec.Body.String())
	}
	if store.appts[a.ID].Status != appointment.StatusScheduled {
		t.Error("expected no write without confirmation")
	}

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"confirmed":true}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(a.ID.String())

	if err := h.AppointmentCancel(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.appts[a.ID].Status != appointment.StatusCancelled {
		t.Errorf("expected Cancelled, got %q", store.appts[a.ID].Status)
	}
}

func TestScreenCompleteRejectsNonScheduled(t *testing.T) {
	store := newMockStore()
	p := store.addPatient("Emma Johnson", "emma@x.com", "1", "Active")
	a := store.addAppointment(p, "2023-06-22", "10:00 AM", "Follow-up", "Cancelled")
	h := newTestHandler(store)
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(a.ID.String())

	err := h.AppointmentComplete(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %v", err)
	}
	if store.appts[a.ID].Status != appointment.StatusCancelled {
		t.Error("expected status untouched")
	}
}

func TestScreenAppointmentCreateWithoutPatient(t *testing.T) {
	store := newMockStore()
	store.addPatient("Emma Johnson", "emma@x.com", "1", "Active")
	h := newTestHandler(store)
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"date":"2023-06-22","time":"10:00 AM"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.AppointmentCreate(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if he.Message != "Please select a patient" {
		t.Errorf("unexpected message: %v", he.Message)
	}
	if store.createAppointmentCalls != 0 {
		t.Error("expected no remote call")
	}
}

func TestScreenPatientDetailNotFound(t *testing.T) {
	h := newTestHandler(newMockStore())
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	err := h.PatientDetail(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
	if he.Message != "Patient not found" {
		t.Errorf("unexpected message: %v", he.Message)
	}
}

func TestScreenOverview(t *testing.T) {
	store := newMockStore()
	p := store.addPatient("Emma Johnson", "emma@x.com", "1", "Active")
	store.addAppointment(p, "2023-06-22", "9:00 AM", "Follow-up", "Scheduled")
	h := newTestHandler(store)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/screens/overview", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Overview(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var s Stats
	if err := json.Unmarshal(rec.Body.Bytes(), &s); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if s.TotalPatients != 1 || s.TodaysAppointments != 1 {
		t.Errorf("unexpected stats: %+v", s)
	}
}

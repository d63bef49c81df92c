package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nutridash/nutridash/internal/domain/appointment"
	"github.com/nutridash/nutridash/internal/domain/patient"
	"github.com/nutridash/nutridash/internal/platform/remote"
)

// AppointmentForm drives the booking screen: candidate patients
// fetched once, the in-progress field values, and a live summary.
type AppointmentForm struct {
	store DataStore

	Patients []*patient.Patient
	Loading  bool
	Err      string

	PatientID uuid.UUID
	Date      string
	Time      string
	Duration  int
	Type      string
	Notes     string

	Submitting bool
	Created    *appointment.Appointment
}

func NewAppointmentForm(store DataStore) *AppointmentForm {
	return &AppointmentForm{
		store:    store,
		Loading:  true,
		Duration: appointment.DefaultDuration,
		Type:     appointment.DefaultType,
	}
}

func (f *AppointmentForm) Load(ctx context.Context) {
	f.Loading = true
	f.Err = ""

	items, err := f.store.ListPatients(ctx)
	if err != nil {
		f.Err = msgLoadPatients
		f.Loading = false
		return
	}
	f.Patients = items
	f.Loading = false
}

// selectedPatient resolves the chosen id against the fetched
// candidates; the form never does a remote lookup for it.
func (f *AppointmentForm) selectedPatient() *patient.Patient {
	for _, p := range f.Patients {
		if p.ID == f.PatientID {
			return p
		}
	}
	return nil
}

// Submit validates locally first: with no patient selected, no store
// call is made at all. Status is always forced to Scheduled and the
// patient's display name is copied into the record.
func (f *AppointmentForm) Submit(ctx context.Context) {
	if f.Submitting {
		return
	}
	if f.PatientID == uuid.Nil {
		f.Err = msgSelectPatient
		return
	}
	p := f.selectedPatient()
	if p == nil {
		f.Err = msgPatientNotFound
		return
	}
	f.Submitting = true
	f.Err = ""

	a := &appointment.Appointment{
		PatientID:   p.ID,
		PatientName: p.Name,
		Date:        f.Date,
		Time:        f.Time,
		Duration:    f.Duration,
		Type:        f.Type,
		Status:      appointment.StatusScheduled,
	}
	if f.Notes != "" {
		notes := f.Notes
		a.Notes = &notes
	}

	if err := f.store.CreateAppointment(ctx, a); err != nil {
		if remote.IsValidation(err) {
			f.Err = err.Error()
		} else {
			f.Err = msgCreateAppointment
		}
		f.Submitting = false
		return
	}
	f.Created = a
	f.Submitting = false
}

// FormSummary is the live preview panel's content.
type FormSummary struct {
	PatientName string `json:"patientname"`
	When        string `json:"when"`
	Duration    string `json:"duration"`
	Type        string `json:"type"`
	Notes       string `json:"notes"`
}

// Summary derives the preview from the current field values. Pure
// derivation, no store calls.
func (f *AppointmentForm) Summary() FormSummary {
	s := FormSummary{Type: f.Type, Notes: f.Notes}
	if p := f.selectedPatient(); p != nil {
		s.PatientName = p.Name
	}
	if f.Date != "" || f.Time != "" {
		s.When = strings.TrimSpace(fmt.Sprintf("%s %s", f.Date, f.Time))
	}
	if f.Duration > 0 {
		s.Duration = fmt.Sprintf("%d minutes", f.Duration)
	}
	return s
}

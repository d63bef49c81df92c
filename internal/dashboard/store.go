// Package dashboard holds the per-screen view-state controllers. A
// controller is built per request, loads what its screen needs through
// the DataStore, and exposes the derived projections the screen
// renders. Controllers own Loading/Err/NotFound/Submitting state and
// never share anything with each other.
package dashboard

import (
	"context"

	"github.com/google/uuid"

	"github.com/nutridash/nutridash/internal/domain/appointment"
	"github.com/nutridash/nutridash/internal/domain/patient"
)

// DataStore is the slice of the domain services the screens consume.
type DataStore interface {
	ListPatients(ctx context.Context) ([]*patient.Patient, error)
	GetPatient(ctx context.Context, id uuid.UUID) (*patient.Patient, error)
	CreatePatient(ctx context.Context, p *patient.Patient) error

	ListAppointments(ctx context.Context) ([]*appointment.Appointment, error)
	GetAppointment(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error)
	ListAppointmentsByPatient(ctx context.Context, patientID uuid.UUID) ([]*appointment.Appointment, error)
	CreateAppointment(ctx context.Context, a *appointment.Appointment) error
	UpdateAppointmentStatus(ctx context.Context, id uuid.UUID, status string) error
}

type serviceStore struct {
	patients *patient.Service
	appts    *appointment.Service
}

// NewStore adapts the domain services into the screens' DataStore.
func NewStore(patients *patient.Service, appts *appointment.Service) DataStore {
	return &serviceStore{patients: patients, appts: appts}
}

func (s *serviceStore) ListPatients(ctx context.Context) ([]*patient.Patient, error) {
	return s.patients.List(ctx)
}

func (s *serviceStore) GetPatient(ctx context.Context, id uuid.UUID) (*patient.Patient, error) {
	return s.patients.Get(ctx, id)
}

func (s *serviceStore) CreatePatient(ctx context.Context, p *patient.Patient) error {
	return s.patients.Create(ctx, p)
}

func (s *serviceStore) ListAppointments(ctx context.Context) ([]*appointment.Appointment, error) {
	return s.appts.List(ctx)
}

func (s *serviceStore) GetAppointment(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	return s.appts.Get(ctx, id)
}

func (s *serviceStore) ListAppointmentsByPatient(ctx context.Context, patientID uuid.UUID) ([]*appointment.Appointment, error) {
	return s.appts.ListByPatient(ctx, patientID)
}

func (s *serviceStore) CreateAppointment(ctx context.Context, a *appointment.Appointment) error {
	return s.appts.Create(ctx, a)
}

func (s *serviceStore) UpdateAppointmentStatus(ctx context.Context, id uuid.UUID, status string) error {
	return s.appts.UpdateStatus(ctx, id, status)
}

// User-facing failure messages. The wording is part of the observable
// behavior and stays exactly as shown on the screens.
const (
	msgLoadAppointments       = "Failed to load appointments. Please try again later."
	msgLoadPatients           = "Failed to load patients. Please try again later."
	msgLoadAppointmentDetails = "Failed to load appointment details. Please try again later."
	msgLoadPatientData        = "Failed to load patient data. Please try again later."
	msgCancelAppointment      = "Failed to cancel appointment. Please try again."
	msgCompleteAppointment    = "Failed to mark appointment as completed. Please try again."
	msgCreateAppointment      = "Failed to create appointment. Please try again."
	msgCreatePatient          = "Failed to create patient. Please try again."
	msgSelectPatient          = "Please select a patient"
	msgPatientNotFound        = "Patient not found"
)

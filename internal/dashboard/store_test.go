package dashboard

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/nutridash/nutridash/internal/domain/appointment"
	"github.com/nutridash/nutridash/internal/domain/patient"
	"github.com/nutridash/nutridash/internal/platform/remote"
)

// mockStore is the in-memory DataStore the controller tests run
// against. Failures are injected per operation; call counters let
// tests assert that no remote call was made.
type mockStore struct {
	patients map[uuid.UUID]*patient.Patient
	appts    map[uuid.UUID]*appointment.Appointment

	failListPatients     error
	failListAppointments error
	failGetAppointment   error
	failGetPatient       error
	failCreate           error
	failUpdate           error

	createPatientCalls     int
	createAppointmentCalls int
	updateStatusCalls      int

	// onGetAppointment runs before the lookup, letting a test trigger
	// a competing load mid-fetch.
	onGetAppointment func(id uuid.UUID)
}

func newMockStore() *mockStore {
	return &mockStore{
		patients: make(map[uuid.UUID]*patient.Patient),
		appts:    make(map[uuid.UUID]*appointment.Appointment),
	}
}

func (m *mockStore) addPatient(name, email, phone, status string) *patient.Patient {
	p := &patient.Patient{ID: uuid.New(), Name: name, Email: email, Phone: phone, Status: status}
	m.patients[p.ID] = p
	return p
}

func (m *mockStore) addAppointment(p *patient.Patient, date, tm, typ, status string) *appointment.Appointment {
	a := &appointment.Appointment{
		ID: uuid.New(), PatientID: p.ID, PatientName: p.Name,
		Date: date, Time: tm, Duration: 30, Type: typ, Status: status,
	}
	m.appts[a.ID] = a
	return a
}

func (m *mockStore) ListPatients(context.Context) ([]*patient.Patient, error) {
	if m.failListPatients != nil {
		return nil, m.failListPatients
	}
	var items []*patient.Patient
	for _, p := range m.patients {
		cp := *p
		items = append(items, &cp)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (m *mockStore) GetPatient(_ context.Context, id uuid.UUID) (*patient.Patient, error) {
	if m.failGetPatient != nil {
		return nil, m.failGetPatient
	}
	p, ok := m.patients[id]
	if !ok {
		return nil, remote.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *mockStore) CreatePatient(_ context.Context, p *patient.Patient) error {
	m.createPatientCalls++
	if m.failCreate != nil {
		return m.failCreate
	}
	if p.Name == "" || p.Email == "" || p.Phone == "" {
		return &remote.ValidationError{Msg: "name is required"}
	}
	p.ID = uuid.New()
	cp := *p
	m.patients[p.ID] = &cp
	return nil
}

func (m *mockStore) ListAppointments(context.Context) ([]*appointment.Appointment, error) {
	if m.failListAppointments != nil {
		return nil, m.failListAppointments
	}
	var items []*appointment.Appointment
	for _, a := range m.appts {
		cp := *a
		items = append(items, &cp)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Date != items[j].Date {
			return items[i].Date < items[j].Date
		}
		return items[i].Time < items[j].Time
	})
	return items, nil
}

func (m *mockStore) GetAppointment(_ context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	if m.onGetAppointment != nil {
		hook := m.onGetAppointment
		m.onGetAppointment = nil
		hook(id)
	}
	if m.failGetAppointment != nil {
		return nil, m.failGetAppointment
	}
	a, ok := m.appts[id]
	if !ok {
		return nil, remote.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *mockStore) ListAppointmentsByPatient(_ context.Context, patientID uuid.UUID) ([]*appointment.Appointment, error) {
	if m.failListAppointments != nil {
		return nil, m.failListAppointments
	}
	all, _ := m.ListAppointments(context.Background())
	var items []*appointment.Appointment
	for _, a := range all {
		if a.PatientID == patientID {
			items = append(items, a)
		}
	}
	return items, nil
}

func (m *mockStore) CreateAppointment(_ context.Context, a *appointment.Appointment) error {
	m.createAppointmentCalls++
	if m.failCreate != nil {
		return m.failCreate
	}
	a.ID = uuid.New()
	cp := *a
	m.appts[a.ID] = &cp
	return nil
}

func (m *mockStore) UpdateAppointmentStatus(_ context.Context, id uuid.UUID, status string) error {
	m.updateStatusCalls++
	if m.failUpdate != nil {
		return m.failUpdate
	}
	a, ok := m.appts[id]
	if !ok {
		return remote.ErrNotFound
	}
	a.Status = status
	return nil
}

package dashboard

import (
	"context"

	"github.com/google/uuid"

	"github.com/nutridash/nutridash/internal/domain/appointment"
	"github.com/nutridash/nutridash/internal/domain/patient"
	"github.com/nutridash/nutridash/internal/platform/remote"
)

// AppointmentDetail drives the appointment detail screen. The patient
// fetch is sequential: it only starts after the appointment fetch
// succeeds. A missing record is a distinct NotFound state, not an Err.
type AppointmentDetail struct {
	store DataStore
	gen   int

	Appointment *appointment.Appointment
	Patient     *patient.Patient
	Loading     bool
	NotFound    bool
	Err         string

	ShowCancelConfirm bool
	Submitting        bool
}

func NewAppointmentDetail(store DataStore) *AppointmentDetail {
	return &AppointmentDetail{store: store, Loading: true}
}

// Load fetches the appointment and then its patient. Each call bumps
// the generation counter; a load superseded by a newer one discards
// its results instead of overwriting the newer state.
func (d *AppointmentDetail) Load(ctx context.Context, id uuid.UUID) {
	d.gen++
	gen := d.gen
	d.Loading = true
	d.Err = ""
	d.NotFound = false

	a, err := d.store.GetAppointment(ctx, id)
	if gen != d.gen {
		return
	}
	if err != nil {
		if remote.IsNotFound(err) {
			d.NotFound = true
		} else {
			d.Err = msgLoadAppointmentDetails
		}
		d.Loading = false
		return
	}

	p, err := d.store.GetPatient(ctx, a.PatientID)
	if gen != d.gen {
		return
	}
	if err != nil && !remote.IsNotFound(err) {
		d.Err = msgLoadAppointmentDetails
		d.Loading = false
		return
	}
	// A dangling patient reference leaves the patient panel empty; the
	// appointment itself still renders with its denormalized name.
	d.Appointment = a
	d.Patient = p
	d.Loading = false
}

// RequestCancel opens the confirmation prompt. The action is only
// offered while the appointment is still scheduled.
func (d *AppointmentDetail) RequestCancel() {
	if d.Appointment == nil || !d.Appointment.CanCancel() || d.Submitting {
		return
	}
	d.ShowCancelConfirm = true
}

func (d *AppointmentDetail) DismissCancel() { d.ShowCancelConfirm = false }

// ConfirmCancel performs the write behind the two-step gesture. On
// success only the status is merged into local state; nothing is
// re-fetched. On failure prior state is left untouched.
func (d *AppointmentDetail) ConfirmCancel(ctx context.Context) {
	if !d.ShowCancelConfirm || d.Appointment == nil || !d.Appointment.CanCancel() || d.Submitting {
		return
	}
	d.Submitting = true
	d.Err = ""

	if err := d.store.UpdateAppointmentStatus(ctx, d.Appointment.ID, appointment.StatusCancelled); err != nil {
		d.Err = msgCancelAppointment
		d.Submitting = false
		return
	}
	d.Appointment.Status = appointment.StatusCancelled
	d.ShowCancelConfirm = false
	d.Submitting = false
}

// Complete marks the appointment completed, no confirmation step.
func (d *AppointmentDetail) Complete(ctx context.Context) {
	if d.Appointment == nil || !d.Appointment.CanComplete() || d.Submitting {
		return
	}
	d.Submitting = true
	d.Err = ""

	if err := d.store.UpdateAppointmentStatus(ctx, d.Appointment.ID, appointment.StatusCompleted); err != nil {
		d.Err = msgCompleteAppointment
		d.Submitting = false
		return
	}
	d.Appointment.Status = appointment.StatusCompleted
	d.Submitting = false
}

package dashboard

import (
	"context"

	"github.com/nutridash/nutridash/internal/domain/patient"
	"github.com/nutridash/nutridash/internal/platform/remote"
)

// PatientForm drives the new-patient screen: a flat set of fields,
// mostly optional, submitted as a single create call.
type PatientForm struct {
	store DataStore

	Name              string
	Email             string
	Phone             string
	Age               *int
	Gender            string
	DateOfBirth       string
	Height            string
	Weight            string
	Allergies         string
	MedicalConditions string
	DietPlan          string
	Notes             string
	Status            string

	Submitting bool
	Err        string
	Created    *patient.Patient
}

func NewPatientForm(store DataStore) *PatientForm {
	return &PatientForm{store: store, Status: patient.StatusActive}
}

// Submit builds the record and creates it. Optional empty fields stay
// absent rather than becoming empty strings in the store.
func (f *PatientForm) Submit(ctx context.Context) {
	if f.Submitting {
		return
	}
	f.Submitting = true
	f.Err = ""

	p := &patient.Patient{
		Name:              f.Name,
		Email:             f.Email,
		Phone:             f.Phone,
		Age:               f.Age,
		Gender:            optional(f.Gender),
		DateOfBirth:       optional(f.DateOfBirth),
		Height:            optional(f.Height),
		Weight:            optional(f.Weight),
		Allergies:         optional(f.Allergies),
		MedicalConditions: optional(f.MedicalConditions),
		DietPlan:          optional(f.DietPlan),
		Notes:             optional(f.Notes),
		Status:            f.Status,
	}

	if err := f.store.CreatePatient(ctx, p); err != nil {
		if remote.IsValidation(err) {
			f.Err = err.Error()
		} else {
			f.Err = msgCreatePatient
		}
		f.Submitting = false
		return
	}
	f.Created = p
	f.Submitting = false
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

package patient

import (
	"time"

	"github.com/google/uuid"
)

// Statuses a patient record can carry. The column is free text; the
// service validates against this set on writes.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
	StatusOnHold   = "On Hold"
)

// Patient maps to the patients table. Name, Email, Phone and Status are
// always present once created; every other field is optional and an
// absent value means "unknown", never a default.
type Patient struct {
	ID                uuid.UUID `db:"id" json:"id"`
	Name              string    `db:"name" json:"name"`
	Email             string    `db:"email" json:"email"`
	Phone             string    `db:"phone" json:"phone"`
	Age               *int      `db:"age" json:"age,omitempty"`
	Gender            *string   `db:"gender" json:"gender,omitempty"`
	DateOfBirth       *string   `db:"date_of_birth" json:"dateofbirth,omitempty"`
	Height            *string   `db:"height" json:"height,omitempty"`
	Weight            *string   `db:"weight" json:"weight,omitempty"`
	Allergies         *string   `db:"allergies" json:"allergies,omitempty"`
	MedicalConditions *string   `db:"medical_conditions" json:"medicalconditions,omitempty"`
	LastVisit         *string   `db:"last_visit" json:"lastvisit,omitempty"`
	NextAppointment   *string   `db:"next_appointment" json:"nextappointment,omitempty"`
	Status            string    `db:"status" json:"status"`
	DietPlan          *string   `db:"diet_plan" json:"dietplan,omitempty"`
	Notes             *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

// Update carries a partial patient change. Nil fields are left as they
// are; there is no way to clear a required field.
type Update struct {
	Name              *string `json:"name,omitempty"`
	Email             *string `json:"email,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	Age               *int    `json:"age,omitempty"`
	Gender            *string `json:"gender,omitempty"`
	DateOfBirth       *string `json:"dateofbirth,omitempty"`
	Height            *string `json:"height,omitempty"`
	Weight            *string `json:"weight,omitempty"`
	Allergies         *string `json:"allergies,omitempty"`
	MedicalConditions *string `json:"medicalconditions,omitempty"`
	LastVisit         *string `json:"lastvisit,omitempty"`
	NextAppointment   *string `json:"nextappointment,omitempty"`
	Status            *string `json:"status,omitempty"`
	DietPlan          *string `json:"dietplan,omitempty"`
	Notes             *string `json:"notes,omitempty"`
}

func (u Update) apply(p *Patient) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Email != nil {
		p.Email = *u.Email
	}
	if u.Phone != nil {
		p.Phone = *u.Phone
	}
	if u.Age != nil {
		p.Age = u.Age
	}
	if u.Gender != nil {
		p.Gender = u.Gender
	}
	if u.DateOfBirth != nil {
		p.DateOfBirth = u.DateOfBirth
	}
	if u.Height != nil {
		p.Height = u.Height
	}
	if u.Weight != nil {
		p.Weight = u.Weight
	}
	if u.Allergies != nil {
		p.Allergies = u.Allergies
	}
	if u.MedicalConditions != nil {
		p.MedicalConditions = u.MedicalConditions
	}
	if u.LastVisit != nil {
		p.LastVisit = u.LastVisit
	}
	if u.NextAppointment != nil {
		p.NextAppointment = u.NextAppointment
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
	if u.DietPlan != nil {
		p.DietPlan = u.DietPlan
	}
	if u.Notes != nil {
		p.Notes = u.Notes
	}
}

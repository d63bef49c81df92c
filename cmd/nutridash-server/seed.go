package main

import (
	"context"
	"fmt"

	"github.com/nutridash/nutridash/internal/domain/appointment"
	"github.com/nutridash/nutridash/internal/domain/patient"
)

func strp(s string) *string { return &s }
func intp(n int) *int       { return &n }

// seed inserts a small roster of sample patients plus a spread of
// appointments covering every type and status, so a fresh environment
// has something to show on each screen. Returns the number of records
// inserted.
func seed(ctx context.Context, patients *patient.Service, appts *appointment.Service) (int, error) {
	roster := []*patient.Patient{
		{
			Name:              "Emma Johnson",
			Email:             "emma.johnson@example.com",
			Phone:             "(555) 123-4567",
			Age:               intp(34),
			Gender:            strp("Female"),
			DateOfBirth:       strp("1989-04-12"),
			Height:            strp("5'6\""),
			Weight:            strp("145 lbs"),
			Allergies:         strp("Peanuts, Shellfish"),
			MedicalConditions: strp("None"),
			LastVisit:         strp("2023-06-15"),
			NextAppointment:   strp("2023-06-22"),
			Status:            patient.StatusActive,
			DietPlan:          strp("Low Carb"),
			Notes:             strp("Trying to lose weight for upcoming wedding"),
		},
		{
			Name:              "Michael Chen",
			Email:             "michael.chen@example.com",
			Phone:             "(555) 987-6543",
			Age:               intp(42),
			Gender:            strp("Male"),
			MedicalConditions: strp("Hypertension"),
			Status:            patient.StatusActive,
			DietPlan:          strp("DASH Diet"),
		},
		{
			Name:              "Sophia Rodriguez",
			Email:             "sophia.rodriguez@example.com",
			Phone:             "(555) 234-5678",
			Age:               intp(29),
			Gender:            strp("Female"),
			Allergies:         strp("Dairy"),
			MedicalConditions: strp("IBS"),
			Status:            patient.StatusActive,
			DietPlan:          strp("Low FODMAP"),
		},
		{
			Name:              "James Wilson",
			Email:             "james.wilson@example.com",
			Phone:             "(555) 345-6789",
			Age:               intp(55),
			Gender:            strp("Male"),
			MedicalConditions: strp("Type 2 Diabetes"),
			Status:            patient.StatusActive,
			DietPlan:          strp("Mediterranean Diet"),
		},
		{
			Name:              "Olivia Taylor",
			Email:             "olivia.taylor@example.com",
			Phone:             "(555) 456-7890",
			Age:               intp(31),
			Gender:            strp("Female"),
			Allergies:         strp("Gluten"),
			MedicalConditions: strp("Celiac Disease"),
			Status:            patient.StatusActive,
			DietPlan:          strp("Gluten-Free"),
		},
	}

	count := 0
	for _, p := range roster {
		if err := patients.Create(ctx, p); err != nil {
			return count, fmt.Errorf("seed patient %s: %w", p.Name, err)
		}
		count++
	}

	type booking struct {
		patient  int
		date     string
		time     string
		duration int
		typ      string
		status   string
		notes    string
	}
	bookings := []booking{
		{0, "2023-06-15", "10:00 AM", 45, "Diet Review", appointment.StatusCompleted, "Patient reported progress with diet plan"},
		{0, "2023-06-22", "10:00 AM", 30, "Follow-up", appointment.StatusScheduled, ""},
		{1, "2023-06-10", "9:30 AM", 60, "Initial Consultation", appointment.StatusCompleted, ""},
		{1, "2023-06-28", "2:00 PM", 30, "Measurement Check", appointment.StatusScheduled, "Follow up on previous diet plan"},
		{2, "2023-06-12", "11:00 AM", 45, "Nutrition Education", appointment.StatusNoShow, ""},
		{2, "2023-07-03", "9:00 AM", 30, "Follow-up", appointment.StatusScheduled, ""},
		{3, "2023-06-08", "3:30 PM", 30, "Follow-up", appointment.StatusCancelled, ""},
		{3, "2023-06-30", "1:00 PM", 45, "Diet Review", appointment.StatusScheduled, ""},
		{4, "2023-07-05", "10:30 AM", 60, "Initial Consultation", appointment.StatusScheduled, ""},
	}
	for _, b := range bookings {
		a := &appointment.Appointment{
			PatientID: roster[b.patient].ID,
			Date:      b.date,
			Time:      b.time,
			Duration:  b.duration,
			Type:      b.typ,
			Status:    b.status,
		}
		if b.notes != "" {
			a.Notes = strp(b.notes)
		}
		if err := appts.Create(ctx, a); err != nil {
			return count, fmt.Errorf("seed appointment for %s: %w", roster[b.patient].Name, err)
		}
		count++
	}

	return count, nil
}

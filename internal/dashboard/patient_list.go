package dashboard

import (
	"context"
	"strings"

	"github.com/nutridash/nutridash/internal/domain/patient"
)

// PatientList drives the patients screen: full fetch plus a
// case-insensitive search across name/email/phone and an exact status
// filter with "all".
type PatientList struct {
	store DataStore

	Patients []*patient.Patient
	Loading  bool
	Err      string

	SearchTerm   string
	StatusFilter string
}

func NewPatientList(store DataStore) *PatientList {
	return &PatientList{store: store, Loading: true, StatusFilter: "all"}
}

func (l *PatientList) Load(ctx context.Context) {
	l.Loading = true
	l.Err = ""

	items, err := l.store.ListPatients(ctx)
	if err != nil {
		l.Err = msgLoadPatients
		l.Loading = false
		return
	}
	l.Patients = items
	l.Loading = false
}

func (l *PatientList) SetSearchTerm(term string)     { l.SearchTerm = term }
func (l *PatientList) SetStatusFilter(status string) { l.StatusFilter = status }

func matchesPatientSearch(p *patient.Patient, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Email), term) ||
		strings.Contains(strings.ToLower(p.Phone), term)
}

func (l *PatientList) Visible() []*patient.Patient {
	var out []*patient.Patient
	for _, p := range l.Patients {
		if !matchesPatientSearch(p, l.SearchTerm) {
			continue
		}
		if l.StatusFilter != "all" && p.Status != l.StatusFilter {
			continue
		}
		out = append(out, p)
	}
	return out
}

package patient

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/nutridash/nutridash/internal/platform/remote"
)

// -- Mock repository --

type mockRepo struct {
	patients map[uuid.UUID]*Patient
	failWith error
}

func newMockRepo() *mockRepo {
	return &mockRepo{patients: make(map[uuid.UUID]*Patient)}
}

func (m *mockRepo) Create(_ context.Context, p *Patient) error {
	if m.failWith != nil {
		return m.failWith
	}
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()
	cp := *p
	m.patients[p.ID] = &cp
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Patient, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	p, ok := m.patients[id]
	if !ok {
		return nil, remote.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *mockRepo) Update(_ context.Context, p *Patient) error {
	if m.failWith != nil {
		return m.failWith
	}
	if _, ok := m.patients[p.ID]; !ok {
		return remote.ErrNotFound
	}
	cp := *p
	m.patients[p.ID] = &cp
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	if m.failWith != nil {
		return m.failWith
	}
	if _, ok := m.patients[id]; !ok {
		return remote.ErrNotFound
	}
	delete(m.patients, id)
	return nil
}

func (m *mockRepo) ListAll(_ context.Context) ([]*Patient, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	var items []*Patient
	for _, p := range m.patients {
		cp := *p
		items = append(items, &cp)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func newTestService() (*Service, *mockRepo) {
	repo := newMockRepo()
	return NewService(repo), repo
}

func strPtr(s string) *string { return &s }

// -- Tests --

func TestCreateRequiredFields(t *testing.T) {
	svc, _ := newTestService()
	cases := []Patient{
		{Email: "a@b.com", Phone: "555"},
		{Name: "Emma Johnson", Phone: "555"},
		{Name: "Emma Johnson", Email: "a@b.com"},
	}
	for _, p := range cases {
		err := svc.Create(context.Background(), &p)
		if !remote.IsValidation(err) {
			t.Errorf("expected validation error for %+v, got %v", p, err)
		}
	}
}

func TestCreateDefaultsStatusToActive(t *testing.T) {
	svc, _ := newTestService()
	p := Patient{Name: "Emma Johnson", Email: "emma.johnson@example.com", Phone: "555-123-4567"}
	if err := svc.Create(context.Background(), &p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Status != StatusActive {
		t.Errorf("expected status Active, got %q", p.Status)
	}
	if p.ID == uuid.Nil {
		t.Error("expected an assigned id")
	}
}

func TestCreateRejectsUnknownStatus(t *testing.T) {
	svc, _ := newTestService()
	p := Patient{Name: "X", Email: "x@y.com", Phone: "1", Status: "Archived"}
	if err := svc.Create(context.Background(), &p); !remote.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestGetNotFound(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Get(context.Background(), uuid.New())
	if !remote.IsNotFound(err) {
		t.Errorf("expected not-found, got %v", err)
	}
}

func TestGetIdempotent(t *testing.T) {
	svc, _ := newTestService()
	p := Patient{Name: "Emma Johnson", Email: "emma.johnson@example.com", Phone: "555-123-4567", Status: StatusActive}
	if err := svc.Create(context.Background(), &p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, err := svc.Get(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Get(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *first != *second {
		t.Errorf("expected identical records, got %+v and %+v", first, second)
	}
}

func TestListWrapsFetchFailure(t *testing.T) {
	svc, repo := newTestService()
	repo.failWith = errors.New("connection refused")
	_, err := svc.List(context.Background())
	var fe *remote.FetchError
	if !errors.As(err, &fe) {
		t.Errorf("expected FetchError, got %v", err)
	}
}

func TestUpdatePartialMerge(t *testing.T) {
	svc, _ := newTestService()
	p := Patient{Name: "Emma Johnson", Email: "emma.johnson@example.com", Phone: "555-123-4567", Status: StatusActive}
	if err := svc.Create(context.Background(), &p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := svc.Update(context.Background(), p.ID, Update{DietPlan: strPtr("Low Carb")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.DietPlan == nil || *updated.DietPlan != "Low Carb" {
		t.Errorf("expected diet plan applied, got %+v", updated.DietPlan)
	}
	if updated.Name != "Emma Johnson" || updated.Email != "emma.johnson@example.com" {
		t.Error("expected untouched fields to survive a partial update")
	}
}

func TestUpdateMissingRecordFails(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Update(context.Background(), uuid.New(), Update{Notes: strPtr("x")})
	var we *remote.WriteError
	if !errors.As(err, &we) {
		t.Fatalf("expected WriteError, got %v", err)
	}
	if !remote.IsNotFound(err) {
		t.Error("expected not-found cause for missing id")
	}
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	svc, _ := newTestService()
	p := Patient{Name: "X", Email: "x@y.com", Phone: "1", Status: StatusActive}
	svc.Create(context.Background(), &p)
	_, err := svc.Update(context.Background(), p.ID, Update{Status: strPtr("Paused")})
	if !remote.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestDeleteExistsAtThisLayer(t *testing.T) {
	svc, repo := newTestService()
	p := Patient{Name: "X", Email: "x@y.com", Phone: "1", Status: StatusActive}
	svc.Create(context.Background(), &p)
	if err := svc.Delete(context.Background(), p.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.patients) != 0 {
		t.Error("expected patient removed")
	}
}

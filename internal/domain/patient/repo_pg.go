package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nutridash/nutridash/internal/platform/remote"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const cols = `id, name, email, phone, age, gender, date_of_birth, height, weight,
	allergies, medical_conditions, last_visit, next_appointment, status,
	diet_plan, notes, created_at, updated_at`

func scan(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.Age, &p.Gender,
		&p.DateOfBirth, &p.Height, &p.Weight, &p.Allergies, &p.MedicalConditions,
		&p.LastVisit, &p.NextAppointment, &p.Status, &p.DietPlan, &p.Notes,
		&p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, remote.ErrNotFound
	}
	return &p, err
}

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO patients (id, name, email, phone, age, gender, date_of_birth,
			height, weight, allergies, medical_conditions, last_visit,
			next_appointment, status, diet_plan, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
		RETURNING created_at, updated_at`,
		p.ID, p.Name, p.Email, p.Phone, p.Age, p.Gender, p.DateOfBirth,
		p.Height, p.Weight, p.Allergies, p.MedicalConditions, p.LastVisit,
		p.NextAppointment, p.Status, p.DietPlan, p.Notes).
		Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return scan(r.pool.QueryRow(ctx, `SELECT `+cols+` FROM patients WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, p *Patient) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE patients SET name=$2, email=$3, phone=$4, age=$5, gender=$6,
			date_of_birth=$7, height=$8, weight=$9, allergies=$10,
			medical_conditions=$11, last_visit=$12, next_appointment=$13,
			status=$14, diet_plan=$15, notes=$16, updated_at=NOW()
		WHERE id = $1`,
		p.ID, p.Name, p.Email, p.Phone, p.Age, p.Gender, p.DateOfBirth,
		p.Height, p.Weight, p.Allergies, p.MedicalConditions, p.LastVisit,
		p.NextAppointment, p.Status, p.DietPlan, p.Notes)
	if err != nil {
		return err
	}
	// No upsert semantics: updating a missing row fails.
	if tag.RowsAffected() == 0 {
		return remote.ErrNotFound
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return remote.ErrNotFound
	}
	return nil
}

func (r *repoPG) ListAll(ctx context.Context) ([]*Patient, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+cols+` FROM patients ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Patient
	for rows.Next() {
		p, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

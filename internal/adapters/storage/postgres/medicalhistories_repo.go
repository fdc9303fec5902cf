package postgres

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"petsync/internal/domain/medicalhistories"
)

type MedicalHistoriesRepo struct {
	db *sql.DB
}

func NewMedicalHistoriesRepo(db *sql.DB) *MedicalHistoriesRepo {
	return &MedicalHistoriesRepo{db: db}
}

var medicalHistoryColumns = []string{
	"id", "pet_id", "type", "description", "date", "created_at", "updated_at",
}

func (r *MedicalHistoriesRepo) Create(ctx context.Context, m medicalhistories.MedicalHistory) (int64, error) {
	query, args, err := qb.Insert("medical_histories").
		Columns("pet_id", "type", "description", "date", "created_at", "updated_at").
		Values(m.PetID, m.Type, m.Description, m.Date, m.CreatedAt, m.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if isFKViolation(err) {
			return 0, medicalhistories.ErrPetNotFound
		}
		return 0, err
	}
	return id, nil
}

func (r *MedicalHistoriesRepo) GetByID(ctx context.Context, id int64) (medicalhistories.MedicalHistory, error) {
	query, args, err := qb.Select(medicalHistoryColumns...).
		From("medical_histories").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return medicalhistories.MedicalHistory{}, err
	}

	m, err := scanMedicalHistory(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return medicalhistories.MedicalHistory{}, medicalhistories.ErrNotFound
		}
		return medicalhistories.MedicalHistory{}, err
	}
	return m, nil
}

func (r *MedicalHistoriesRepo) ListByPet(ctx context.Context, petID int64) ([]medicalhistories.MedicalHistory, error) {
	return r.list(ctx, sq.Eq{"pet_id": petID})
}

func (r *MedicalHistoriesRepo) ListByPetBetween(ctx context.Context, petID int64, from, to time.Time) ([]medicalhistories.MedicalHistory, error) {
	return r.list(ctx, sq.And{
		sq.Eq{"pet_id": petID},
		sq.GtOrEq{"date": from},
		sq.LtOrEq{"date": to},
	})
}

func (r *MedicalHistoriesRepo) list(ctx context.Context, where sq.Sqlizer) ([]medicalhistories.MedicalHistory, error) {
	query, args, err := qb.Select(medicalHistoryColumns...).
		From("medical_histories").
		Where(where).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]medicalhistories.MedicalHistory, 0)
	for rows.Next() {
		m, err := scanMedicalHistory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *MedicalHistoriesRepo) Update(ctx context.Context, m medicalhistories.MedicalHistory) error {
	query, args, err := qb.Update("medical_histories").
		Set("type", m.Type).
		Set("description", m.Description).
		Set("date", m.Date).
		Set("updated_at", m.UpdatedAt).
		Where(sq.Eq{"id": m.ID}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return medicalhistories.ErrNotFound
	}
	return nil
}

func (r *MedicalHistoriesRepo) Delete(ctx context.Context, id int64) error {
	query, args, err := qb.Delete("medical_histories").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return medicalhistories.ErrNotFound
	}
	return nil
}

func scanMedicalHistory(row rowScanner) (medicalhistories.MedicalHistory, error) {
	var m medicalhistories.MedicalHistory
	err := row.Scan(
		&m.ID,
		&m.PetID,
		&m.Type,
		&m.Description,
		&m.Date,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

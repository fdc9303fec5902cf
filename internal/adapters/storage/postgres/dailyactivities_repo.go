package postgres

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"petsync/internal/domain/dailyactivities"
)

type DailyActivitiesRepo struct {
	db *sql.DB
}

func NewDailyActivitiesRepo(db *sql.DB) *DailyActivitiesRepo {
	return &DailyActivitiesRepo{db: db}
}

var dailyActivityColumns = []string{
	"id", "pet_id", "type", "duration", "notes", "date", "created_at", "updated_at",
}

func (r *DailyActivitiesRepo) Create(ctx context.Context, a dailyactivities.DailyActivity) (int64, error) {
	query, args, err := qb.Insert("daily_activities").
		Columns("pet_id", "type", "duration", "notes", "date", "created_at", "updated_at").
		Values(a.PetID, a.Type, a.Duration, a.Notes, a.Date, a.CreatedAt, a.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if isFKViolation(err) {
			return 0, dailyactivities.ErrPetNotFound
		}
		return 0, err
	}
	return id, nil
}

func (r *DailyActivitiesRepo) GetByID(ctx context.Context, id int64) (dailyactivities.DailyActivity, error) {
	query, args, err := qb.Select(dailyActivityColumns...).
		From("daily_activities").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return dailyactivities.DailyActivity{}, err
	}

	a, err := scanDailyActivity(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return dailyactivities.DailyActivity{}, dailyactivities.ErrNotFound
		}
		return dailyactivities.DailyActivity{}, err
	}
	return a, nil
}

func (r *DailyActivitiesRepo) ListByPet(ctx context.Context, petID int64) ([]dailyactivities.DailyActivity, error) {
	return r.list(ctx, sq.Eq{"pet_id": petID})
}

func (r *DailyActivitiesRepo) ListByPetBetween(ctx context.Context, petID int64, from, to time.Time) ([]dailyactivities.DailyActivity, error) {
	return r.list(ctx, sq.And{
		sq.Eq{"pet_id": petID},
		sq.GtOrEq{"date": from},
		sq.LtOrEq{"date": to},
	})
}

func (r *DailyActivitiesRepo) list(ctx context.Context, where sq.Sqlizer) ([]dailyactivities.DailyActivity, error) {
	query, args, err := qb.Select(dailyActivityColumns...).
		From("daily_activities").
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

	out := make([]dailyactivities.DailyActivity, 0)
	for rows.Next() {
		a, err := scanDailyActivity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *DailyActivitiesRepo) Update(ctx context.Context, a dailyactivities.DailyActivity) error {
	query, args, err := qb.Update("daily_activities").
		Set("type", a.Type).
		Set("duration", a.Duration).
		Set("notes", a.Notes).
		Set("date", a.Date).
		Set("updated_at", a.UpdatedAt).
		Where(sq.Eq{"id": a.ID}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return dailyactivities.ErrNotFound
	}
	return nil
}

func (r *DailyActivitiesRepo) Delete(ctx context.Context, id int64) error {
	query, args, err := qb.Delete("daily_activities").
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
		return dailyactivities.ErrNotFound
	}
	return nil
}

func scanDailyActivity(row rowScanner) (dailyactivities.DailyActivity, error) {
	var a dailyactivities.DailyActivity
	err := row.Scan(
		&a.ID,
		&a.PetID,
		&a.Type,
		&a.Duration,
		&a.Notes,
		&a.Date,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

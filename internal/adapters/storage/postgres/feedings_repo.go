package postgres

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"petsync/internal/domain/feedings"
)

type FeedingsRepo struct {
	db *sql.DB
}

func NewFeedingsRepo(db *sql.DB) *FeedingsRepo {
	return &FeedingsRepo{db: db}
}

var feedingColumns = []string{
	"id", "pet_id", "type", "description", "quantity", "date",
	"created_at", "updated_at",
}

func (r *FeedingsRepo) Create(ctx context.Context, f feedings.Feeding) (int64, error) {
	query, args, err := qb.Insert("feedings").
		Columns("pet_id", "type", "description", "quantity", "date", "created_at", "updated_at").
		Values(f.PetID, f.Type, f.Description, f.Quantity, f.Date, f.CreatedAt, f.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if isFKViolation(err) {
			return 0, feedings.ErrPetNotFound
		}
		return 0, err
	}
	return id, nil
}

func (r *FeedingsRepo) GetByID(ctx context.Context, id int64) (feedings.Feeding, error) {
	query, args, err := qb.Select(feedingColumns...).
		From("feedings").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return feedings.Feeding{}, err
	}

	f, err := scanFeeding(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return feedings.Feeding{}, feedings.ErrNotFound
		}
		return feedings.Feeding{}, err
	}
	return f, nil
}

func (r *FeedingsRepo) ListByPet(ctx context.Context, petID int64) ([]feedings.Feeding, error) {
	return r.list(ctx, sq.Eq{"pet_id": petID})
}

func (r *FeedingsRepo) ListByPetBetween(ctx context.Context, petID int64, from, to time.Time) ([]feedings.Feeding, error) {
	return r.list(ctx, sq.And{
		sq.Eq{"pet_id": petID},
		sq.GtOrEq{"date": from},
		sq.LtOrEq{"date": to},
	})
}

func (r *FeedingsRepo) list(ctx context.Context, where sq.Sqlizer) ([]feedings.Feeding, error) {
	query, args, err := qb.Select(feedingColumns...).
		From("feedings").
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

	out := make([]feedings.Feeding, 0)
	for rows.Next() {
		f, err := scanFeeding(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *FeedingsRepo) Update(ctx context.Context, f feedings.Feeding) error {
	query, args, err := qb.Update("feedings").
		Set("type", f.Type).
		Set("description", f.Description).
		Set("quantity", f.Quantity).
		Set("date", f.Date).
		Set("updated_at", f.UpdatedAt).
		Where(sq.Eq{"id": f.ID}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return feedings.ErrNotFound
	}
	return nil
}

func (r *FeedingsRepo) Delete(ctx context.Context, id int64) error {
	query, args, err := qb.Delete("feedings").
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
		return feedings.ErrNotFound
	}
	return nil
}

func scanFeeding(row rowScanner) (feedings.Feeding, error) {
	var f feedings.Feeding
	err := row.Scan(
		&f.ID,
		&f.PetID,
		&f.Type,
		&f.Description,
		&f.Quantity,
		&f.Date,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
	return f, err
}

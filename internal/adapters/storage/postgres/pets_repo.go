package postgres

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"petsync/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

var petColumns = []string{
	"id", "user_id", "name", "breed", "gender", "weight", "birthday", "photo",
	"created_at", "updated_at",
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (int64, error) {
	query, args, err := qb.Insert("pets").
		Columns("user_id", "name", "breed", "gender", "weight", "birthday", "photo", "created_at", "updated_at").
		Values(p.UserID, p.Name, p.Breed, p.Gender, p.Weight, p.Birthday, p.Photo, p.CreatedAt, p.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if isFKViolation(err) {
			return 0, pets.ErrUserNotFound
		}
		return 0, err
	}
	return id, nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	query, args, err := qb.Select(petColumns...).
		From("pets").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return pets.Pet{}, err
	}

	p, err := scanPet(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) ListByUser(ctx context.Context, userID int64) ([]pets.Pet, error) {
	query, args, err := qb.Select(petColumns...).
		From("pets").
		Where(sq.Eq{"user_id": userID}).
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

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	query, args, err := qb.Update("pets").
		Set("name", p.Name).
		Set("breed", p.Breed).
		Set("gender", p.Gender).
		Set("weight", p.Weight).
		Set("birthday", p.Birthday).
		Set("photo", p.Photo).
		Set("updated_at", p.UpdatedAt).
		Where(sq.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) Delete(ctx context.Context, id int64) error {
	query, args, err := qb.Delete("pets").
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
		return pets.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(row rowScanner) (pets.Pet, error) {
	var p pets.Pet
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.Breed,
		&p.Gender,
		&p.Weight,
		&p.Birthday,
		&p.Photo,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

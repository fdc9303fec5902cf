package postgres

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"petsync/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

var userColumns = []string{
	"id", "name", "surname", "email", "phone", "password", "birthday",
	"created_at", "updated_at",
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) (int64, error) {
	query, args, err := qb.Insert("users").
		Columns("name", "surname", "email", "phone", "password", "birthday", "created_at", "updated_at").
		Values(u.Name, u.Surname, u.Email, u.Phone, u.Password, u.Birthday, u.CreatedAt, u.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, users.ErrDuplicate
		}
		return 0, err
	}
	return id, nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id int64) (users.User, error) {
	return r.getBy(ctx, sq.Eq{"id": id})
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	return r.getBy(ctx, sq.Eq{"email": email})
}

func (r *UsersRepo) getBy(ctx context.Context, where sq.Eq) (users.User, error) {
	query, args, err := qb.Select(userColumns...).
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return users.User{}, err
	}

	var u users.User
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&u.ID,
		&u.Name,
		&u.Surname,
		&u.Email,
		&u.Phone,
		&u.Password,
		&u.Birthday,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}
	return u, nil
}

func (r *UsersRepo) Update(ctx context.Context, u users.User) error {
	query, args, err := qb.Update("users").
		Set("name", u.Name).
		Set("surname", u.Surname).
		Set("email", u.Email).
		Set("phone", u.Phone).
		Set("password", u.Password).
		Set("birthday", u.Birthday).
		Set("updated_at", u.UpdatedAt).
		Where(sq.Eq{"id": u.ID}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return users.ErrDuplicate
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return users.ErrNotFound
	}
	return nil
}

func (r *UsersRepo) UpdatePassword(ctx context.Context, id int64, hash string, updatedAt time.Time) error {
	query, args, err := qb.Update("users").
		Set("password", hash).
		Set("updated_at", updatedAt).
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
		return users.ErrNotFound
	}
	return nil
}

// Delete borra en duro; las mascotas (y sus registros) caen por cascade.
func (r *UsersRepo) Delete(ctx context.Context, id int64) error {
	query, args, err := qb.Delete("users").
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
		return users.ErrNotFound
	}
	return nil
}

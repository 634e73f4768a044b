package user

import (
	"context"
	"strconv"
	"strings"
	"time"

	"booklibrary/internal/apperr"
	"booklibrary/internal/platform/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

const userColumns = `id, email, username, password_hash, role, birthday, postcode, phone, sex, city, is_public, created_at, updated_at`

func scanUser(row pgx.Row) (User, error) {
	var u User
	err := row.Scan(
		&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.Role,
		&u.Birthday, &u.Postcode, &u.Phone, &u.Sex, &u.City, &u.IsPublic,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, apperr.NotFound("User")
		}
		return User{}, errors.Wrap(err, "scan user")
	}
	return u, nil
}

func (r *PostgresRepo) Create(ctx context.Context, u *User) error {
	const query = `
	INSERT INTO users (id, email, username, password_hash, role, sex, city, is_public)
	VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7)
	RETURNING id, created_at, updated_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query,
		u.Email, u.Username, u.PasswordHash, u.Role, u.Sex, u.City, u.IsPublic,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if postgres.IsUniqueViolation(err) {
		return apperr.Conflict("Email already exists")
	}
	return errors.Wrap(err, "insert user")
}

func (r *PostgresRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return scanUser(r.db.QueryRow(timeoutCtx, `SELECT `+userColumns+` FROM users WHERE email = $1 LIMIT 1`, email))
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (User, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return scanUser(r.db.QueryRow(timeoutCtx, `SELECT `+userColumns+` FROM users WHERE id = $1 LIMIT 1`, id))
}

func (r *PostgresRepo) GetPublic(ctx context.Context, id string) (User, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	u, err := scanUser(r.db.QueryRow(timeoutCtx,
		`SELECT `+userColumns+` FROM users WHERE id = $1 AND is_public = true LIMIT 1`, id))
	if err != nil {
		return User{}, err
	}
	return u.Public(), nil
}

func (r *PostgresRepo) Update(ctx context.Context, id string, c Changes) (User, error) {
	fields := []string{}
	args := []any{}
	argn := 1

	set := func(column string, value any) {
		fields = append(fields, column+" = $"+strconv.Itoa(argn))
		args = append(args, value)
		argn++
	}
	if c.Username != nil {
		set("username", *c.Username)
	}
	if c.Birthday != nil {
		set("birthday", *c.Birthday)
	}
	if c.Postcode != nil {
		set("postcode", *c.Postcode)
	}
	if c.Phone != nil {
		set("phone", *c.Phone)
	}
	if c.Sex != nil {
		set("sex", *c.Sex)
	}
	if c.City != nil {
		set("city", *c.City)
	}
	if c.IsPublic != nil {
		set("is_public", *c.IsPublic)
	}
	if len(fields) == 0 {
		return r.GetByID(ctx, id)
	}

	fields = append(fields, "updated_at = now()")
	args = append(args, id)
	query := "UPDATE users SET " + strings.Join(fields, ", ") +
		" WHERE id = $" + strconv.Itoa(argn) + " RETURNING " + userColumns

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return scanUser(r.db.QueryRow(timeoutCtx, query, args...))
}

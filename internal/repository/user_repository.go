package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ShirinKhan1/system-design/internal/models"
	"github.com/lib/pq"
)

// UserStore is the persistence gateway for users. *UserRepository is the
// PostgreSQL implementation; tests substitute counting fakes.
type UserStore interface {
	Insert(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

// UserRepository persists users in PostgreSQL, the system of record.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Insert stores a new user and fills in the database-assigned id.
// Uniqueness of username and email is enforced by the database; a
// violation maps to ErrDuplicateKey and leaves no partial record.
func (r *UserRepository) Insert(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, email, password_hash, age)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		user.Username, user.Email, user.PasswordHash, nullInt(user.Age),
	).Scan(&user.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, username, email, password_hash, age
		FROM users
		WHERE username = $1
	`
	var user models.User
	var age sql.NullInt64

	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &age,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if age.Valid {
		v := int(age.Int64)
		user.Age = &v
	}
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	query := `
		SELECT id, username, email, password_hash, age
		FROM users
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		var age sql.NullInt64
		if err := rows.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &age); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		if age.Valid {
			v := int(age.Int64)
			user.Age = &v
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

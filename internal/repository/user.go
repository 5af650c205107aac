package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/microblog/internal/model"
	"github.com/jackc/pgx/v5"
)

// UserRepository reads user records.
type UserRepository interface {
	// List returns every user, ordered by id.
	List(ctx context.Context) ([]model.User, error)

	// GetByID returns the user with the given id, or (nil, nil) when no
	// such user exists. Absence is an empty result, not an error.
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

type userRepository struct {
	db DB
}

// NewUserRepository constructs a UserRepository on the given pool.
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	query := `
		SELECT id, username FROM users
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username); err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating users: %w", err)
	}
	return users, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `
		SELECT id, username FROM users
		WHERE id = $1
	`
	var u model.User
	err := r.db.QueryRow(ctx, query, id).Scan(&u.ID, &u.Username)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting user %d: %w", id, err)
	}
	return &u, nil
}

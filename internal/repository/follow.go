package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/microblog/internal/model"
)

// FollowRepository reads the user⇄user follower join relation.
type FollowRepository interface {
	// ListFollowers returns the users following the given user, ordered
	// by follower id. A user never appears in their own follower list
	// unless a self-follow row exists in the store.
	ListFollowers(ctx context.Context, userID int64) ([]model.FollowerRef, error)
}

type followRepository struct {
	db DB
}

// NewFollowRepository constructs a FollowRepository on the given pool.
func NewFollowRepository(db DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) ListFollowers(ctx context.Context, userID int64) ([]model.FollowerRef, error) {
	query := `
		SELECT u.id, u.username FROM users u
		JOIN followers f ON f.follower_id = u.id
		WHERE f.user_id = $1
		ORDER BY u.id
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing followers of user %d: %w", userID, err)
	}
	defer rows.Close()

	var followers []model.FollowerRef
	for rows.Next() {
		var f model.FollowerRef
		if err := rows.Scan(&f.ID, &f.Username); err != nil {
			return nil, fmt.Errorf("scanning follower: %w", err)
		}
		followers = append(followers, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating followers: %w", err)
	}
	return followers, nil
}

package repository

import (
	"context"
	"fmt"
)

// LikeRepository reads the likes join relation.
type LikeRepository interface {
	// CountByTweet returns the number of likes on a tweet. A tweet with
	// no likes (or an unknown tweet id) counts as 0, never an error.
	CountByTweet(ctx context.Context, tweetID int64) (int64, error)
}

type likeRepository struct {
	db DB
}

// NewLikeRepository constructs a LikeRepository on the given pool.
func NewLikeRepository(db DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) CountByTweet(ctx context.Context, tweetID int64) (int64, error) {
	query := `
		SELECT count(*) FROM likes
		WHERE tweet_id = $1
	`
	// COUNT always yields exactly one row; scanning into int64 keeps the
	// store-native numeric type away from callers.
	var count int64
	if err := r.db.QueryRow(ctx, query, tweetID).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting likes for tweet %d: %w", tweetID, err)
	}
	return count, nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/microblog/internal/model"
)

// TweetRepository reads tweet records.
type TweetRepository interface {
	// ListByAuthor returns every tweet authored by the given user,
	// ordered by id. An unknown author yields an empty slice.
	ListByAuthor(ctx context.Context, authorID int64) ([]model.Tweet, error)
}

type tweetRepository struct {
	db DB
}

// NewTweetRepository constructs a TweetRepository on the given pool.
func NewTweetRepository(db DB) TweetRepository {
	return &tweetRepository{db: db}
}

func (r *tweetRepository) ListByAuthor(ctx context.Context, authorID int64) ([]model.Tweet, error) {
	query := `
		SELECT id, author_id, body, created_at FROM tweets
		WHERE author_id = $1
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("listing tweets for author %d: %w", authorID, err)
	}
	defer rows.Close()

	var tweets []model.Tweet
	for rows.Next() {
		var t model.Tweet
		if err := rows.Scan(&t.ID, &t.AuthorID, &t.Body, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning tweet: %w", err)
		}
		tweets = append(tweets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tweets: %w", err)
	}
	return tweets, nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/microblog/internal/model"
)

// HashtagRepository reads hashtag records and aggregates.
type HashtagRepository interface {
	// ListByTweet returns the hashtags attached to a tweet through the
	// tweet_hashtags join relation, ordered by id. The join table's
	// compound primary key guarantees no duplicate hashtag ids fan out.
	ListByTweet(ctx context.Context, tweetID int64) ([]model.Hashtag, error)

	// Trending returns the most used hashtags with their tweet counts,
	// highest count first, ties broken by tag.
	Trending(ctx context.Context, limit int) ([]model.HashtagCount, error)
}

type hashtagRepository struct {
	db DB
}

// NewHashtagRepository constructs a HashtagRepository on the given pool.
func NewHashtagRepository(db DB) HashtagRepository {
	return &hashtagRepository{db: db}
}

func (r *hashtagRepository) ListByTweet(ctx context.Context, tweetID int64) ([]model.Hashtag, error) {
	query := `
		SELECT h.id, h.tag FROM hashtags h
		JOIN tweet_hashtags th ON th.hashtag_id = h.id
		WHERE th.tweet_id = $1
		ORDER BY h.id
	`
	rows, err := r.db.Query(ctx, query, tweetID)
	if err != nil {
		return nil, fmt.Errorf("listing hashtags for tweet %d: %w", tweetID, err)
	}
	defer rows.Close()

	var hashtags []model.Hashtag
	for rows.Next() {
		var h model.Hashtag
		if err := rows.Scan(&h.ID, &h.Tag); err != nil {
			return nil, fmt.Errorf("scanning hashtag: %w", err)
		}
		hashtags = append(hashtags, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating hashtags: %w", err)
	}
	return hashtags, nil
}

func (r *hashtagRepository) Trending(ctx context.Context, limit int) ([]model.HashtagCount, error) {
	query := `
		SELECT h.tag, count(th.tweet_id) AS tweets FROM hashtags h
		JOIN tweet_hashtags th ON th.hashtag_id = h.id
		GROUP BY h.tag
		ORDER BY tweets DESC, h.tag
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing trending hashtags: %w", err)
	}
	defer rows.Close()

	var counts []model.HashtagCount
	for rows.Next() {
		var hc model.HashtagCount
		if err := rows.Scan(&hc.Tag, &hc.Tweets); err != nil {
			return nil, fmt.Errorf("scanning hashtag count: %w", err)
		}
		counts = append(counts, hc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating hashtag counts: %w", err)
	}
	return counts, nil
}

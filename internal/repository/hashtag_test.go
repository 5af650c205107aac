package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/deppfellow/microblog/internal/model"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashtagRepositoryListByTweet(t *testing.T) {
	pool := newMockPool(t)

	pool.ExpectQuery(regexp.QuoteMeta("SELECT h.id, h.tag FROM hashtags h")).
		WithArgs(int64(10)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "tag"}).
			AddRow(int64(1), "sql").
			AddRow(int64(2), "compilers"))

	repo := NewHashtagRepository(pool)

	hashtags, err := repo.ListByTweet(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, []model.Hashtag{
		{ID: 1, Tag: "sql"},
		{ID: 2, Tag: "compilers"},
	}, hashtags)

	require.NoError(t, pool.ExpectationsWereMet())
}

func TestHashtagRepositoryListByTweetEmpty(t *testing.T) {
	pool := newMockPool(t)

	pool.ExpectQuery(regexp.QuoteMeta("SELECT h.id, h.tag FROM hashtags h")).
		WithArgs(int64(99)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "tag"}))

	repo := NewHashtagRepository(pool)

	hashtags, err := repo.ListByTweet(context.Background(), 99)
	require.NoError(t, err)
	assert.Empty(t, hashtags)

	require.NoError(t, pool.ExpectationsWereMet())
}

func TestHashtagRepositoryTrending(t *testing.T) {
	pool := newMockPool(t)

	pool.ExpectQuery(regexp.QuoteMeta("SELECT h.tag, count(th.tweet_id) AS tweets FROM hashtags h")).
		WithArgs(10).
		WillReturnRows(pgxmock.NewRows([]string{"tag", "tweets"}).
			AddRow("sql", int64(2)).
			AddRow("compilers", int64(1)))

	repo := NewHashtagRepository(pool)

	counts, err := repo.Trending(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, []model.HashtagCount{
		{Tag: "sql", Tweets: 2},
		{Tag: "compilers", Tweets: 1},
	}, counts)

	require.NoError(t, pool.ExpectationsWereMet())
}

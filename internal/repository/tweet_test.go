package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTweetRepositoryListByAuthor(t *testing.T) {
	pool := newMockPool(t)

	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	pool.ExpectQuery(regexp.QuoteMeta("SELECT id, author_id, body, created_at FROM tweets")).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "author_id", "body", "created_at"}).
			AddRow(int64(10), int64(1), "relativity holds up", created).
			AddRow(int64(11), int64(1), "still thinking about light", created.Add(time.Hour)))

	repo := NewTweetRepository(pool)

	tweets, err := repo.ListByAuthor(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, tweets, 2)
	assert.Equal(t, int64(10), tweets[0].ID)
	assert.Equal(t, "relativity holds up", tweets[0].Body)
	assert.Equal(t, created, tweets[0].CreatedAt)

	require.NoError(t, pool.ExpectationsWereMet())
}

func TestTweetRepositoryListByAuthorEmpty(t *testing.T) {
	pool := newMockPool(t)

	pool.ExpectQuery(regexp.QuoteMeta("SELECT id, author_id, body, created_at FROM tweets")).
		WithArgs(int64(99)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "author_id", "body", "created_at"}))

	repo := NewTweetRepository(pool)

	tweets, err := repo.ListByAuthor(context.Background(), 99)
	require.NoError(t, err)
	assert.Empty(t, tweets)

	require.NoError(t, pool.ExpectationsWereMet())
}

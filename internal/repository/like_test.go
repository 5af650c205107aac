package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeRepositoryCountByTweet(t *testing.T) {
	pool := newMockPool(t)

	pool.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM likes")).
		WithArgs(int64(10)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))

	repo := NewLikeRepository(pool)

	count, err := repo.CountByTweet(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, pool.ExpectationsWereMet())
}

func TestLikeRepositoryCountByTweetZero(t *testing.T) {
	pool := newMockPool(t)

	// COUNT over an unknown tweet id still yields one row holding 0.
	pool.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM likes")).
		WithArgs(int64(99)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))

	repo := NewLikeRepository(pool)

	count, err := repo.CountByTweet(context.Background(), 99)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	require.NoError(t, pool.ExpectationsWereMet())
}

package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// seedStatements is a fixed fixture for local development and smoke tests:
// three users, a handful of tweets with hashtags, follower relations and
// likes. Every insert is idempotent (ON CONFLICT DO NOTHING), so running
// the seeder twice leaves the data unchanged.
var seedStatements = []string{
	`insert into users (username) values ('albert')
	 on conflict (username) do nothing`,
	`insert into users (username) values ('grace'), ('edsger')
	 on conflict (username) do nothing`,

	`insert into tweets (author_id, body)
	 select u.id, 'select * from brain where idea is not null'
	 from users u where u.username = 'albert'
	 and not exists (select 1 from tweets t where t.author_id = u.id)`,
	`insert into tweets (author_id, body)
	 select u.id, 'compilers are just very opinionated readers'
	 from users u where u.username = 'grace'
	 and not exists (select 1 from tweets t where t.author_id = u.id)`,

	`insert into hashtags (tag) values ('sql'), ('compilers')
	 on conflict (tag) do nothing`,

	`insert into tweet_hashtags (tweet_id, hashtag_id)
	 select t.id, h.id from tweets t
	 join users u on u.id = t.author_id and u.username = 'albert'
	 join hashtags h on h.tag = 'sql'
	 on conflict do nothing`,
	`insert into tweet_hashtags (tweet_id, hashtag_id)
	 select t.id, h.id from tweets t
	 join users u on u.id = t.author_id and u.username = 'grace'
	 join hashtags h on h.tag = 'compilers'
	 on conflict do nothing`,

	`insert into followers (user_id, follower_id)
	 select g.id, e.id from users g, users e
	 where g.username = 'grace' and e.username = 'edsger'
	 on conflict do nothing`,

	`insert into likes (user_id, tweet_id)
	 select e.id, t.id from users e
	 join users g on g.username = 'grace'
	 join tweets t on t.author_id = g.id
	 where e.username = 'edsger'
	 on conflict do nothing`,
}

// Seed inserts the development fixture, one statement at a time on the
// shared pool. Any failure aborts with the statement index for debugging.
func (db *Database) Seed(ctx context.Context, logger *zerolog.Logger) error {
	for i, stmt := range seedStatements {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("seed statement %d: %w", i+1, err)
		}
	}

	logger.Info().Int("statements", len(seedStatements)).Msg("seeded database fixture")
	return nil
}

package repository

import (
	"github.com/deppfellow/microblog/internal/server"
)

// Repositories is a container for all repository instances, so the rest
// of the wiring passes one object around instead of five.
type Repositories struct {
	Users    UserRepository
	Tweets   TweetRepository
	Hashtags HashtagRepository
	Follows  FollowRepository
	Likes    LikeRepository
}

// NewRepositories constructs the repository container on the server's
// shared connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(s.DB.Pool),
		Tweets:   NewTweetRepository(s.DB.Pool),
		Hashtags: NewHashtagRepository(s.DB.Pool),
		Follows:  NewFollowRepository(s.DB.Pool),
		Likes:    NewLikeRepository(s.DB.Pool),
	}
}

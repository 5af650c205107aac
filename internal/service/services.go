package service

import (
	"github.com/deppfellow/microblog/internal/lib/job"
	"github.com/deppfellow/microblog/internal/repository"
	"github.com/deppfellow/microblog/internal/server"
)

// Services is a container for all service instances.
type Services struct {
	Users  *UserService
	Tweets *TweetService
	Digest *DigestService
	Stats  *StatsService
	Job    *job.JobService
}

// NewServices constructs the service container on top of the repositories.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Users:  NewUserService(repos.Users, repos.Tweets, repos.Follows),
		Tweets: NewTweetService(repos.Hashtags, repos.Likes),
		Digest: NewDigestService(repos.Users, repos.Tweets, repos.Hashtags, repos.Follows, repos.Likes),
		Stats:  NewStatsService(repos.Hashtags),
		Job:    s.Job,
	}, nil
}

// Package job provides background job processing using Asynq.
//
// Asynq is a Redis-backed job queue:
//   - You enqueue tasks (producer) using asynq.Client.
//   - A server runs workers that process those tasks (consumer) using asynq.Server.
package job

import (
	"github.com/deppfellow/microblog/internal/config"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// JobService holds the Asynq client (enqueue) and server (worker execution).
type JobService struct {
	// Client is used to enqueue tasks into Redis.
	Client *asynq.Client

	// server runs worker processes that pull tasks from Redis and execute handlers.
	server *asynq.Server

	logger *zerolog.Logger

	// trending is the stats source the refresh task reads from.
	// Set via InitHandlers before Start.
	trending TrendingSource
}

// NewJobService creates a JobService configured to use Redis from cfg.
//
// Queue weights distribute the 10 workers across queues by ratio, so
// critical tasks get more worker share.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisAddr := cfg.Redis.Address

	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr: redisAddr,
	})

	server := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	return &JobService{
		Client: client,
		server: server,
		logger: logger,
	}
}

// InitHandlers wires the dependencies task handlers need. Must run before
// Start; tasks arriving without a source fail and retry.
func (j *JobService) InitHandlers(trending TrendingSource) {
	j.trending = trending
}

// Start registers task handlers on a ServeMux and starts the worker server.
// asynq's Start returns immediately; workers run until Stop.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskTrendingRefresh, j.handleTrendingRefreshTask)

	j.logger.Info().Msg("starting background job server")

	if err := j.server.Start(mux); err != nil {
		return err
	}

	return nil
}

// Stop gracefully stops the job server and closes client resources.
func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	j.server.Shutdown()
	j.Client.Close()
}

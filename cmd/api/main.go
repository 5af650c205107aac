// Command api is the microblog entrypoint. It exposes subcommands to
// run the HTTP server, apply migrations, seed fixture data, and print a
// user digest from the command line.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/deppfellow/microblog/internal/config"
	"github.com/deppfellow/microblog/internal/database"
	"github.com/deppfellow/microblog/internal/handler"
	"github.com/deppfellow/microblog/internal/lib/job"
	"github.com/deppfellow/microblog/internal/lib/utils"
	"github.com/deppfellow/microblog/internal/logger"
	"github.com/deppfellow/microblog/internal/middleware"
	"github.com/deppfellow/microblog/internal/repository"
	"github.com/deppfellow/microblog/internal/router"
	"github.com/deppfellow/microblog/internal/server"
	"github.com/deppfellow/microblog/internal/service"
)

const shutdownTimeout = 10 * time.Second

var rootCmd = &cobra.Command{
	Use:   "microblog",
	Short: "Read-only social network API",
	Long: `microblog serves a read-only REST API over a social network dataset:
users, tweets, hashtags, followers, and likes.

Run "microblog serve" to start the HTTP server, or "microblog digest"
to print a user's diagnostic digest directly.`,
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run migrations and start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, _, err := bootstrap()
		if err != nil {
			return err
		}

		return database.Migrate(cmd.Context(), log, cfg)
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the fixture dataset into the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, loggerService, err := bootstrap()
		if err != nil {
			return err
		}

		db, err := database.New(cfg, log, loggerService)
		if err != nil {
			return err
		}
		defer db.Close() //nolint:errcheck

		return db.Seed(cmd.Context(), log)
	},
}

var digestCmd = &cobra.Command{
	Use:   "digest [user-id]",
	Short: "Print the diagnostic digest for a user as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID := int64(1)
		if len(args) == 1 {
			parsed, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user id %q: %w", args[0], err)
			}
			userID = parsed
		}

		return runDigest(cmd.Context(), userID)
	},
}

// bootstrap loads configuration and builds the application logger. All
// subcommands start here.
func bootstrap() (*config.Config, *zerolog.Logger, *logger.LoggerService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	log, loggerService, err := logger.New(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	return cfg, log, loggerService, nil
}

func runServe(ctx context.Context) error {
	cfg, log, loggerService, err := bootstrap()
	if err != nil {
		return err
	}

	// Migrations run at boot so a fresh deployment comes up with the
	// schema in place.
	if err := database.Migrate(ctx, log, cfg); err != nil {
		return err
	}

	s, err := server.New(cfg, log, loggerService)
	if err != nil {
		return err
	}

	repos := repository.NewRepositories(s)

	services, err := service.NewServices(s, repos)
	if err != nil {
		return err
	}

	handlers := handler.NewHandlers(s, services)
	middlewares := middleware.NewMiddlewares(s)

	s.SetupHTTPServer(router.New(s, middlewares, handlers))

	// Job handlers must be registered before the worker server starts.
	s.Job.InitHandlers(services.Stats)
	if err := s.Job.Start(); err != nil {
		log.Error().Err(err).Msg("failed to start job workers, continuing without background jobs")
	} else if task, err := job.NewTrendingRefreshTask(0); err == nil {
		if _, err := s.Job.Client.Enqueue(task); err != nil {
			log.Error().Err(err).Msg("failed to enqueue trending refresh task")
		}
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- s.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return s.Shutdown(shutdownCtx)
}

// runDigest builds just enough of the stack to assemble one digest
// without starting the HTTP server or the job workers.
func runDigest(ctx context.Context, userID int64) error {
	cfg, log, loggerService, err := bootstrap()
	if err != nil {
		return err
	}

	db, err := database.New(cfg, log, loggerService)
	if err != nil {
		return err
	}
	defer db.Close() //nolint:errcheck

	digest := service.NewDigestService(
		repository.NewUserRepository(db.Pool),
		repository.NewTweetRepository(db.Pool),
		repository.NewHashtagRepository(db.Pool),
		repository.NewFollowRepository(db.Pool),
		repository.NewLikeRepository(db.Pool),
	)

	result, err := digest.UserDigest(ctx, userID)
	if err != nil {
		return err
	}

	utils.PrintJSON(result)
	return nil
}

func main() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, digestCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

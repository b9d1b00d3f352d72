package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "project-hub.com/project-hub/internal/configs"
	httpapi "project-hub.com/project-hub/internal/http"
	"project-hub.com/project-hub/internal/logging"
	"project-hub.com/project-hub/internal/migrations"
	"project-hub.com/project-hub/internal/queue"
	repository "project-hub.com/project-hub/internal/repositories"
	"project-hub.com/project-hub/internal/services"
	"project-hub.com/project-hub/internal/sms"
)

const (
	smsBreakerFailures = 5
	smsBreakerTimeout  = 30 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Migrates the database, starts the HTTP API and the SMS dispatcher",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		database := config.NewDatabaseClient(cfg.DatabaseDriver, cfg.DatabaseDSN)
		if err := migrations.Migrate(database); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		tokens, closeTokens, err := newTokenManager(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeTokens()

		userRepo := repository.NewUserRepository(database)
		projectRepo := repository.NewProjectRepository(database)
		notificationRepo := repository.NewNotificationRepository(database)

		notificationService := services.NewNotificationService(notificationRepo)

		dispatcher := services.NewSMSDispatcher(
			notificationRepo,
			tokens,
			sms.NewBreakerSender(sms.LogSender{}, smsBreakerFailures, smsBreakerTimeout),
			cfg.SMSWorkers,
			cfg.SMSQueueSize,
			cfg.SMSSweepBatch,
		)
		if err := dispatcher.Start(cfg.SMSSweepSchedule); err != nil {
			return err
		}

		handler := httpapi.NewHandler(httpapi.Services{
			Users:         services.NewUserService(userRepo),
			Profiles:      services.NewProfileService(repository.NewProfileRepository(database), userRepo),
			Projects:      services.NewProjectService(projectRepo, userRepo, notificationService),
			Tasks:         services.NewTaskService(repository.NewTaskRepository(database), projectRepo, userRepo),
			Whiteboards:   services.NewWhiteboardService(repository.NewWhiteboardRepository(database), projectRepo),
			Notifications: notificationService,
		})

		e := echo.New()
		e.HideBanner = true
		httpapi.Register(e, handler, cfg.RateLimit)

		go func() {
			logging.Logger.Infof("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logging.Logger.Errorf("server stopped: %v", err)
				stop()
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			logging.Logger.Warnf("http shutdown: %v", err)
		}
		dispatcher.Shutdown(shutdownCtx)

		logging.Logger.Info("HTTP server and sms dispatcher shut down gracefully")
		return nil
	},
}

// newTokenManager shares send slots through Redis when it is enabled and
// falls back to an in-process pool otherwise.
func newTokenManager(ctx context.Context, cfg config.Config) (queue.TokenManager, func(), error) {
	if !cfg.RedisEnabled {
		return queue.NewMemoryTokenManager(cfg.SMSMaxInFlight), func() {}, nil
	}

	client := config.NewRedisClient(cfg.RedisAddr)
	tokens := queue.NewRedisTokenManager(client, cfg.SMSTokenKey)
	if err := tokens.InitializeTokens(ctx, cfg.SMSMaxInFlight); err != nil {
		client.Close()
		return nil, nil, err
	}
	return tokens, client.Close, nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/plm-api/internal/audit"
	"github.com/BuzzLyutic/plm-api/internal/config"
	"github.com/BuzzLyutic/plm-api/internal/handler"
	"github.com/BuzzLyutic/plm-api/internal/mailer"
	"github.com/BuzzLyutic/plm-api/internal/repo"
	"github.com/BuzzLyutic/plm-api/internal/service"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()
			return serve(ctx, cfg, logger)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	pool, err := openPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()
	logger.Info("connected to database")

	tx := repo.NewTxManager(pool)
	tasks := repo.NewTaskRepo(pool)
	notes := repo.NewPersonalNoteRepo(pool)
	stamper := audit.NewStamper()

	transport := mailer.NewSMTPTransport(mailer.SMTPConfig{
		Host:     cfg.Email.SMTPServer,
		Port:     cfg.Email.SMTPPort,
		Username: cfg.Email.Address,
		Password: cfg.Email.Password,
	}, logger)

	router := handler.NewRouter(handler.Handlers{
		Auth:          handler.NewAuthenticator(cfg.Auth, logger),
		Tasks:         handler.NewTaskHandler(service.NewTaskService(tx, tasks, stamper), logger),
		PersonalNotes: handler.NewPersonalNoteHandler(service.NewPersonalNoteService(tx, tasks, notes, stamper), logger),
		Emails:        handler.NewEmailHandler(service.NewNotificationService(tx, tasks, notes, transport, cfg.Email.Address, logger), logger),
		Schema:        handler.NewSchemaHandler(service.NewSchemaService(repo.NewSchemaRepo(pool)), logger),
		Health:        handler.NewHealthHandler(service.NewHealthService(tx, logger)),
	}, logger, cfg.Server.AllowedOrigins)

	if cfg.Auth.DevUser {
		logger.Warn("auth.dev_user is enabled, every request runs as the local administrator")
	}

	srv := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/Tejasai37/papercast/application/services"
	"github.com/Tejasai37/papercast/config"
	"github.com/Tejasai37/papercast/infrastructure/gin_interface/controllers"
	"github.com/Tejasai37/papercast/middleware"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap()
			if err != nil {
				return err
			}
			defer app.Close()

			serverConfig, err := config.GetServerConfig()
			if err != nil {
				return fmt.Errorf("failed to get server config: %w", err)
			}
			authConfig, err := config.GetAuthConfig(app.awsConfig.UseRealAws)
			if err != nil {
				return fmt.Errorf("failed to get auth config: %w", err)
			}
			authHandler, err := middleware.NewAuthHandler(app.logger, authConfig)
			if err != nil {
				return fmt.Errorf("failed to create auth handler: %w", err)
			}

			router := gin.Default()
			if err := router.SetTrustedProxies(nil); err != nil {
				return fmt.Errorf("failed to set trusted proxies: %w", err)
			}
			router.Use(middleware.CORSMiddleware(serverConfig.AllowedOrigins))

			controllers.RegisterHealthRoute(router)
			if app.localAudio != nil {
				router.Static(app.localAudio.UrlPrefix, app.localAudio.Directory)
			}

			api := router.Group("/api", authHandler.AuthMiddleware())
			controllers.NewPodcastController(app.logger, app.generator, serverConfig.HeartbeatInterval).RegisterRoutes(api)
			controllers.NewArticleController(app.logger, app.discovery).RegisterRoutes(api)
			controllers.NewAdminController(app.logger, app.admin, authConfig.AdminScope).RegisterRoutes(api)

			if app.newsConfig.RefreshSchedule != "" {
				refresher := services.NewHeadlineRefresher(app.logger, app.discovery, app.newsConfig.RefreshCategories, app.newsConfig.RequestTimeout)
				if err := refresher.Start(app.newsConfig.RefreshSchedule); err != nil {
					return err
				}
				defer refresher.Stop()
				go refresher.Refresh()
			}

			return runServer(cmd.Context(), app, router, serverConfig.Port)
		},
	}
}

// runServer blocks until the listener fails or SIGINT/SIGTERM arrives, then
// drains in-flight requests.
func runServer(parent context.Context, app *application, handler http.Handler, port string) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		app.logger.InfoWithFields("Papercast listening", map[string]interface{}{
			"port":         port,
			"use_real_aws": app.awsConfig.UseRealAws,
			"llm":          app.pipelineConfig.LanguageModel,
			"speech":       app.pipelineConfig.SpeechEngine,
		})
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	app.logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

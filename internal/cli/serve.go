package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mehrbod2002/brokerdb/internal/api"
	"github.com/mehrbod2002/brokerdb/internal/middleware"
	"github.com/spf13/cobra"
)

var ErrDefaultJWTSecret = errors.New("refusing to serve admin routes with the default JWT_SECRET")

func newServeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the plan, seeded symbols and drift checks over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Config.UsesDefaultJWTSecret() {
				return ErrDefaultJWTSecret
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			client, err := app.connect(ctx)
			if err != nil {
				return err
			}
			defer app.disconnect(client)

			svc := app.services(client)

			gin.SetMode(gin.ReleaseMode)
			r := gin.New()
			r.Use(gin.Recovery())
			r.Use(middleware.LoggerMiddleware(app.Logger))
			api.SetupRoutes(r, app.Config, svc.bootstrap, svc.symbols, svc.logs)

			addr := fmt.Sprintf("%s:%d", app.Config.Address, app.Config.Port)
			server := &http.Server{Addr: addr, Handler: r}

			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = server.Shutdown(shutdownCtx)
			}()

			app.Logger.Info().Str("addr", addr).Msg("Starting server")
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("failed to start server: %w", err)
			}
			app.Logger.Info().Msg("Server stopped")
			return nil
		},
	}
}

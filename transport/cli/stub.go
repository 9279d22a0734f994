package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/scrapzee/scrapzee-cli/stubapi"
	"github.com/scrapzee/scrapzee-cli/utils/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newStubCommand runs the in-memory backend locally, so the client can be
// exercised without the real deployment.
func newStubCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stub",
		Short: "Run the in-memory development backend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			stub := stubapi.New(app.Config.Stub.JWTSecret, app.Config.Stub.TokenTTL)

			server := &http.Server{
				Addr:         app.Config.Stub.Addr,
				Handler:      stub.Handler(),
				ReadTimeout:  10 * time.Second,
				WriteTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("stub backend running", zap.String("addr", app.Config.Stub.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt)

			select {
			case err := <-errCh:
				return err
			case <-quit:
			case <-cmd.Context().Done():
			}

			logger.Info("shutting down stub backend")
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(ctx)
		},
	}
}

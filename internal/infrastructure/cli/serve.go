package cli

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/skilltrail/skilltrail/internal/application"
	"github.com/skilltrail/skilltrail/internal/domain/roadmap"
	"github.com/skilltrail/skilltrail/internal/infrastructure/server"
	"github.com/skilltrail/skilltrail/internal/infrastructure/wiring"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web dashboard with live updates",
	Long: `Serve the web dashboard with live updates.

The dashboard shows the roadmap tree, progress, and gamification state,
and streams activity over SSE (/events) and websocket (/ws).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}
		if err := requireInitialized(services); err != nil {
			return err
		}

		addr := serveAddr
		if addr == "" {
			addr = services.Workspace.Config.Server.Addr
		}

		srv, err := server.NewServer(addr, dashboardData{services}, services.Workspace.Publisher)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() { errCh <- srv.Start() }()

		fmt.Printf("Dashboard on http://%s (Ctrl+C to stop)\n", addr)

		select {
		case err := <-errCh:
			if err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		}
	},
}

// dashboardData adapts the application services to the dashboard's reads.
type dashboardData struct {
	services *wiring.AppServices
}

func (d dashboardData) GetRoadmap() (*roadmap.Roadmap, error) {
	return d.services.Roadmap.LoadMerged()
}

func (d dashboardData) GetSummary() (*application.Summary, error) {
	return d.services.Progress.Summarize()
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config)")
	RootCmd.AddCommand(serveCmd)
}

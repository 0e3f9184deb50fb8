package fx

import (
	"context"
	"log"
	"net/http"

	"go.uber.org/fx"

	"github.com/amityadav/threatlens/internal/config"
	"github.com/amityadav/threatlens/internal/core"
	"github.com/amityadav/threatlens/internal/server"
	"github.com/amityadav/threatlens/internal/store"
	"github.com/amityadav/threatlens/internal/watch"
)

// ServerModule starts the HTTP server and the optional watch worker
var ServerModule = fx.Module("server",
	fx.Invoke(
		StartServer,
		StartWatchWorker,
	),
)

// ServerParams groups dependencies for starting the HTTP server
type ServerParams struct {
	fx.In
	Lifecycle fx.Lifecycle
	Core      *core.AnalysisCore
	Store     *store.TrendStore
	Config    config.Config
}

// StartServer starts the HTTP server with lifecycle management
func StartServer(p ServerParams) {
	services := server.Services{
		Analyzer: p.Core,
		Trends:   p.Store,
	}
	handler := server.CreateRecoveryHandler(server.CreateRESTHandler(services))
	srv := &http.Server{Addr: p.Config.HTTPAddr, Handler: handler}

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("[FX] HTTP Server listening on %s", p.Config.HTTPAddr)
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Printf("[FX] HTTP Server error: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Printf("[FX] Shutting down HTTP server...")
			if err := srv.Shutdown(ctx); err != nil {
				return err
			}
			p.Store.Close()
			return nil
		},
	})
}

// WorkerStartParams for optional worker injection
type WorkerStartParams struct {
	fx.In
	Lifecycle fx.Lifecycle
	Worker    *watch.Worker `optional:"true"`
}

// StartWatchWorker starts the watch worker if available
func StartWatchWorker(p WorkerStartParams) {
	if p.Worker == nil {
		return
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Worker.Start()
			log.Printf("[FX] WatchWorker started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Worker.Stop()
			return nil
		},
	})
}

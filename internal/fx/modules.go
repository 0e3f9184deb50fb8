package fx

import (
	"context"
	"log"

	"go.uber.org/fx"

	"github.com/amityadav/threatlens/internal/classifier"
	"github.com/amityadav/threatlens/internal/config"
	"github.com/amityadav/threatlens/internal/core"
	"github.com/amityadav/threatlens/internal/detect"
	"github.com/amityadav/threatlens/internal/provider"
	"github.com/amityadav/threatlens/internal/provider/googlenews"
	"github.com/amityadav/threatlens/internal/provider/newsapi"
	"github.com/amityadav/threatlens/internal/provider/newsdata"
	"github.com/amityadav/threatlens/internal/provider/wikipedia"
	"github.com/amityadav/threatlens/internal/store"
	"github.com/amityadav/threatlens/internal/watch"
)

// ConfigModule provides application configuration
var ConfigModule = fx.Module("config",
	fx.Provide(config.Load),
)

// StoreModule provides the trend counter store
var StoreModule = fx.Module("store",
	fx.Provide(NewTrendStore),
)

// DetectModule provides the harmful keyword detector
var DetectModule = fx.Module("detect",
	fx.Provide(detect.NewDetector),
)

// ClassifierModule provides the Gemini classifier
var ClassifierModule = fx.Module("classifier",
	fx.Provide(NewGeminiLabeler),
)

// ProviderModule provides the article provider registry
var ProviderModule = fx.Module("provider",
	fx.Provide(NewProviderRegistry),
)

// CoreModule provides the analysis orchestrator
var CoreModule = fx.Module("core",
	fx.Provide(NewAnalysisCore),
)

// WatchModule provides the scheduled watch worker
var WatchModule = fx.Module("watch",
	fx.Provide(NewWatchWorker),
)

// NewTrendStore creates the database connection and ensures the counter
// tables exist.
func NewTrendStore(cfg config.Config) (*store.TrendStore, error) {
	ctx := context.Background()
	st, err := store.NewTrendStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := st.InitSchema(ctx); err != nil {
		return nil, err
	}
	log.Printf("[FX] TrendStore initialized")
	return st, nil
}

// NewGeminiLabeler creates the Gemini classifier client
func NewGeminiLabeler(cfg config.Config) (classifier.Labeler, error) {
	g, err := classifier.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return nil, err
	}
	log.Printf("[FX] Gemini classifier initialized (model: %s)", cfg.GeminiModel)
	return g, nil
}

// NewProviderRegistry creates the registry with all configured providers.
// Wikipedia needs no key; the Google News provider is registered only when a
// SerpApi key is present.
func NewProviderRegistry(cfg config.Config) *provider.Registry {
	registry := provider.NewRegistry()

	registry.Register(newsapi.NewClient(cfg.NewsAPIKey))
	registry.Register(newsdata.NewClient(cfg.NewsDataKey))
	registry.Register(wikipedia.NewClient())

	if cfg.SerpAPIKey != "" {
		registry.Register(googlenews.NewClient(cfg.SerpAPIKey))
		log.Printf("[FX] ProviderRegistry: Google News registered")
	}

	log.Printf("[FX] ProviderRegistry initialized with %d providers", registry.Count())
	return registry
}

// NewAnalysisCore creates the analysis orchestrator
func NewAnalysisCore(registry *provider.Registry, detector *detect.Detector, labeler classifier.Labeler, st *store.TrendStore, cfg config.Config) *core.AnalysisCore {
	c := core.NewAnalysisCore(registry, detector, labeler, st, cfg)
	log.Printf("[FX] AnalysisCore initialized")
	return c
}

// NewWatchWorker creates the watch worker (optional - returns nil when no
// watch queries are configured)
func NewWatchWorker(c *core.AnalysisCore, cfg config.Config) *watch.Worker {
	if len(cfg.WatchQueries) == 0 {
		log.Printf("[FX] WatchWorker disabled (no WATCH_QUERIES)")
		return nil
	}

	w := watch.NewWorker(c, cfg.WatchQueries, cfg.WatchSchedule)
	log.Printf("[FX] WatchWorker initialized (%d queries)", len(cfg.WatchQueries))
	return w
}

package watch

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/amityadav/threatlens/internal/provider"
)

// Analyzer runs the analysis pipeline for one query
type Analyzer interface {
	Analyze(ctx context.Context, query string) ([]provider.Article, error)
}

// Worker periodically re-runs analysis for the configured watch queries so
// the source and keyword counters keep accumulating without dashboard traffic.
type Worker struct {
	analyzer Analyzer
	queries  []string
	schedule string
	cron     *cron.Cron
}

// NewWorker creates a new watch worker
func NewWorker(analyzer Analyzer, queries []string, schedule string) *Worker {
	return &Worker{
		analyzer: analyzer,
		queries:  queries,
		schedule: schedule,
		cron:     cron.New(),
	}
}

// Start registers the schedule and starts the cron loop
func (w *Worker) Start() {
	log.Printf("[Watch] Scheduling %d watch queries (%s)", len(w.queries), w.schedule)
	if _, err := w.cron.AddFunc(w.schedule, w.RunAll); err != nil {
		log.Printf("[Watch] Invalid schedule %q: %v", w.schedule, err)
		return
	}
	w.cron.Start()
}

// Stop halts the cron loop; a run already in flight finishes on its own
func (w *Worker) Stop() {
	w.cron.Stop()
}

// RunAll analyzes every watch query once, sequentially
func (w *Worker) RunAll() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	for _, q := range w.queries {
		log.Printf("[Watch] Running watch query %q", q)
		articles, err := w.analyzer.Analyze(ctx, q)
		if err != nil {
			log.Printf("[Watch] Analysis failed for %q: %v", q, err)
			continue
		}
		flagged := 0
		for _, a := range articles {
			if a.Harmful {
				flagged++
			}
		}
		log.Printf("[Watch] %q: %d articles, %d flagged", q, len(articles), flagged)
	}
}

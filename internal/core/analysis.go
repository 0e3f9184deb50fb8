package core

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/amityadav/threatlens/internal/classifier"
	"github.com/amityadav/threatlens/internal/config"
	"github.com/amityadav/threatlens/internal/detect"
	"github.com/amityadav/threatlens/internal/provider"
)

// ErrEmptyQuery is returned when analyze is called without a query
var ErrEmptyQuery = errors.New("a 'q' (query) parameter is required")

// Fetcher is the provider fan-out, implemented by provider.Registry
type Fetcher interface {
	FetchAll(ctx context.Context, q provider.Query) []provider.Article
}

// TrendRecorder is the slice of the store the orchestrator writes to
type TrendRecorder interface {
	RecordSourceFlag(ctx context.Context, sourceName string) error
	RecordKeyword(ctx context.Context, keyword string) error
}

// AnalysisCore runs the fetch -> detect -> classify -> persist pipeline
type AnalysisCore struct {
	fetcher    Fetcher
	detector   *detect.Detector
	labeler    classifier.Labeler
	trends     TrendRecorder
	language   string
	country    string
	maxResults int
}

// NewAnalysisCore creates the analysis orchestrator
func NewAnalysisCore(fetcher Fetcher, detector *detect.Detector, labeler classifier.Labeler, trends TrendRecorder, cfg config.Config) *AnalysisCore {
	return &AnalysisCore{
		fetcher:    fetcher,
		detector:   detector,
		labeler:    labeler,
		trends:     trends,
		language:   cfg.Language,
		country:    cfg.Country,
		maxResults: cfg.MaxResults,
	}
}

// Analyze runs the full pipeline for one query and returns every fetched
// article, harmful or not, with classification fields attached. The steps are
// strictly sequential: one classifier call per article, counter writes only
// for harmful-flagged articles. Persistence failures are logged and never
// block the result.
func (c *AnalysisCore) Analyze(ctx context.Context, query string) ([]provider.Article, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	log.Printf("[Analysis] Processing query %q", query)
	articles := c.fetcher.FetchAll(ctx, provider.Query{
		Text:       query,
		Language:   c.language,
		Country:    c.country,
		MaxResults: c.maxResults,
	})

	for i := range articles {
		c.classifyArticle(ctx, &articles[i])
		if articles[i].Harmful {
			c.persistFlags(ctx, articles[i])
		}
	}

	if articles == nil {
		articles = []provider.Article{}
	}
	return articles, nil
}

// classifyArticle detects harmful keywords across title, description and
// provider tags, then asks the model for sentiment/intent labels.
func (c *AnalysisCore) classifyArticle(ctx context.Context, art *provider.Article) {
	words := detect.Union(
		c.detector.Detect(art.Title),
		c.detector.Detect(art.Description),
		c.detector.MatchTags(art.Keywords),
	)

	harmWords := "None"
	if len(words) > 0 {
		harmWords = strings.Join(words, ", ")
	}

	raw := c.labeler.Classify(ctx, art.Title+". "+art.Description, harmWords)

	res, err := classifier.Parse(raw)
	if err != nil {
		log.Printf("[Analysis] Unparseable classifier reply for %q: %v", art.Title, err)
		res = classifier.Result{}
	}

	if words == nil {
		words = []string{}
	}
	art.HarmfulWords = words
	art.Harmful = res.Harmful()
	art.Sentiment = res.Sentiment
	art.Intent = res.Intent
	art.Reason = res.Reason
	art.Raw = raw
}

func (c *AnalysisCore) persistFlags(ctx context.Context, art provider.Article) {
	if err := c.trends.RecordSourceFlag(ctx, art.Source); err != nil {
		log.Printf("[Analysis] Failed to record source flag for %q: %v", art.Source, err)
	}
	for _, w := range art.HarmfulWords {
		if err := c.trends.RecordKeyword(ctx, w); err != nil {
			log.Printf("[Analysis] Failed to record keyword trend for %q: %v", w, err)
		}
	}
}

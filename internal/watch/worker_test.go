package watch

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/amityadav/threatlens/internal/provider"
)

type fakeAnalyzer struct {
	calls   []string
	failFor string
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, query string) ([]provider.Article, error) {
	f.calls = append(f.calls, query)
	if query == f.failFor {
		return nil, fmt.Errorf("providers unavailable")
	}
	return []provider.Article{{Source: "Reuters", Harmful: true}}, nil
}

func TestRunAll_AllQueriesRun(t *testing.T) {
	analyzer := &fakeAnalyzer{}
	w := NewWorker(analyzer, []string{"crypto scam", "bomb threat"}, "0 6 * * *")

	w.RunAll()

	want := []string{"crypto scam", "bomb threat"}
	if !reflect.DeepEqual(analyzer.calls, want) {
		t.Errorf("analyzed queries = %v, want %v", analyzer.calls, want)
	}
}

func TestRunAll_FailureDoesNotStopRemaining(t *testing.T) {
	analyzer := &fakeAnalyzer{failFor: "crypto scam"}
	w := NewWorker(analyzer, []string{"crypto scam", "bomb threat"}, "0 6 * * *")

	w.RunAll()

	if len(analyzer.calls) != 2 {
		t.Errorf("analyzed %d queries, want 2", len(analyzer.calls))
	}
}

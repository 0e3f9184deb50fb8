package provider

import (
	"context"
	"fmt"
	"testing"
)

type fakeProvider struct {
	name     string
	articles []Article
	err      error
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Fetch(ctx context.Context, q Query) ([]Article, error) {
	return f.articles, f.err
}

func TestFetchAll_FailureDoesNotBlockOthers(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&fakeProvider{name: "first", articles: []Article{{Source: "first", Title: "a"}}})
	registry.Register(&fakeProvider{name: "broken", err: fmt.Errorf("upstream 502")})
	registry.Register(&fakeProvider{name: "third", articles: []Article{{Source: "third", Title: "b"}, {Source: "third", Title: "c"}}})

	got := registry.FetchAll(context.Background(), Query{Text: "scam"})
	if len(got) != 3 {
		t.Fatalf("FetchAll returned %d articles, want 3", len(got))
	}
	// Provider order preserved
	if got[0].Source != "first" || got[1].Source != "third" {
		t.Errorf("FetchAll order = %q, %q; want first then third", got[0].Source, got[1].Source)
	}
}

func TestFetchAll_AllFail(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&fakeProvider{name: "a", err: fmt.Errorf("timeout")})
	registry.Register(&fakeProvider{name: "b", err: fmt.Errorf("401")})

	if got := registry.FetchAll(context.Background(), Query{Text: "scam"}); len(got) != 0 {
		t.Errorf("FetchAll = %v, want empty", got)
	}
}

func TestRegistry_Count(t *testing.T) {
	registry := NewRegistry()
	if registry.Count() != 0 {
		t.Errorf("empty registry Count = %d", registry.Count())
	}
	registry.Register(&fakeProvider{name: "a"})
	registry.Register(&fakeProvider{name: "b"})
	if registry.Count() != 2 {
		t.Errorf("Count = %d, want 2", registry.Count())
	}
}

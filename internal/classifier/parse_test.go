package classifier

import (
	"errors"
	"testing"
)

func TestParse_RoundTrip(t *testing.T) {
	res, err := Parse("SENTIMENT=neutral INTENT=harmless1 REASON=no issue found")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if res.Sentiment != "neutral" {
		t.Errorf("Sentiment = %q, want %q", res.Sentiment, "neutral")
	}
	if res.Intent != "harmless1" {
		t.Errorf("Intent = %q, want %q", res.Intent, "harmless1")
	}
	if res.Reason != "no issue found" {
		t.Errorf("Reason = %q, want %q", res.Reason, "no issue found")
	}
	if res.Harmful() {
		t.Error("Harmful() = true for harmless1 intent")
	}
}

func TestParse_HarmfulIntents(t *testing.T) {
	tests := []struct {
		intent  string
		harmful bool
	}{
		{IntentHarmful1, true},
		{IntentHarmful2, true},
		{IntentHarmless1, false},
		{IntentHarmless2, false},
	}

	for _, tt := range tests {
		res, err := Parse("SENTIMENT=negative2 INTENT=" + tt.intent + " REASON=test")
		if err != nil {
			t.Fatalf("Parse(%s) returned error: %v", tt.intent, err)
		}
		if res.Harmful() != tt.harmful {
			t.Errorf("Harmful() = %v for intent %q, want %v", res.Harmful(), tt.intent, tt.harmful)
		}
	}
}

func TestParse_MissingMarkers(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty reply", ""},
		{"free text reply", "The article looks harmless to me."},
		{"missing intent", "SENTIMENT=neutral REASON=something"},
		{"missing sentiment", "INTENT=harmful1 REASON=something"},
		{"embedded api error", "[Gemini API error: rpc deadline exceeded]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Parse(tt.raw)
			if !errors.Is(err, ErrUnparseable) {
				t.Fatalf("Parse(%q) error = %v, want ErrUnparseable", tt.raw, err)
			}
			if res.Sentiment != "" || res.Intent != "" || res.Reason != "" {
				t.Errorf("Parse(%q) = %+v, want zero Result", tt.raw, res)
			}
			if res.Harmful() {
				t.Errorf("zero Result must not be harmful")
			}
		})
	}
}

func TestParse_ReasonTrimmedAndGreedy(t *testing.T) {
	res, err := Parse("SENTIMENT=negative1 INTENT=harmful2 REASON=  scam with kill threats  ")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if res.Reason != "scam with kill threats" {
		t.Errorf("Reason = %q, want trimmed text", res.Reason)
	}
}

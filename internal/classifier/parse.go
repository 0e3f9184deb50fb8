package classifier

import (
	"errors"
	"regexp"
	"strings"
)

// Label sets the model is instructed to choose from.
const (
	SentimentPositive1 = "positive1"
	SentimentPositive2 = "positive2"
	SentimentNegative1 = "negative1"
	SentimentNegative2 = "negative2"
	SentimentNeutral   = "neutral"

	IntentHarmful1  = "harmful1"
	IntentHarmful2  = "harmful2"
	IntentHarmless1 = "harmless1"
	IntentHarmless2 = "harmless2"
)

// harmfulPrefix is the sole definition of a harmful classification: the
// intent label starts with it.
const harmfulPrefix = "harmful"

// ErrUnparseable marks a model reply that deviates from the expected
// single-line SENTIMENT=/INTENT=/REASON= format.
var ErrUnparseable = errors.New("classifier reply missing SENTIMENT/INTENT markers")

var (
	sentimentRe = regexp.MustCompile(`SENTIMENT=([a-zA-Z0-9]+)`)
	intentRe    = regexp.MustCompile(`INTENT=([a-zA-Z0-9]+)`)
	reasonRe    = regexp.MustCompile(`REASON=(.*)`)
)

// Result is a parsed classifier reply
type Result struct {
	Sentiment string
	Intent    string
	Reason    string
}

// Harmful reports whether the intent label carries the harmful prefix
func (r Result) Harmful() bool {
	return strings.HasPrefix(r.Intent, harmfulPrefix)
}

// Parse extracts the three labeled fields from a raw model reply. A reply
// missing either the SENTIMENT= or INTENT= marker is ErrUnparseable; the
// caller decides how to degrade. This also covers embedded API-error strings,
// which never contain the markers.
func Parse(raw string) (Result, error) {
	if !strings.Contains(raw, "SENTIMENT=") || !strings.Contains(raw, "INTENT=") {
		return Result{}, ErrUnparseable
	}

	var res Result
	if m := sentimentRe.FindStringSubmatch(raw); m != nil {
		res.Sentiment = m[1]
	}
	if m := intentRe.FindStringSubmatch(raw); m != nil {
		res.Intent = m[1]
	}
	if m := reasonRe.FindStringSubmatch(raw); m != nil {
		res.Reason = strings.TrimSpace(m[1])
	}
	return res, nil
}

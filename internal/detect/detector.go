package detect

import (
	"regexp"
	"sort"
	"strings"
)

// Keywords is the harmful vocabulary scanned on every article. The list is
// fixed at process start.
var Keywords = []string{
	"scam", "fraud", "bomb", "attack", "terror", "hack", "threat",
	"arrested", "kill", "bad", "murder", "shoot",
}

// Detector matches free text against the harmful keyword list using
// whole-word, case-insensitive matching.
type Detector struct {
	patterns map[string]*regexp.Regexp
}

// NewDetector compiles the keyword patterns once
func NewDetector() *Detector {
	patterns := make(map[string]*regexp.Regexp, len(Keywords))
	for _, w := range Keywords {
		patterns[w] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(w) + `\b`)
	}
	return &Detector{patterns: patterns}
}

// Detect returns the harmful keywords that appear in text as whole words.
// Empty text yields nil.
func (d *Detector) Detect(text string) []string {
	if text == "" {
		return nil
	}
	var found []string
	for _, w := range Keywords {
		if d.patterns[w].MatchString(text) {
			found = append(found, w)
		}
	}
	return found
}

// MatchTags scans provider-supplied tags. A tag matches when it merely
// contains a harmful keyword; word boundaries are not applied here.
func (d *Detector) MatchTags(tags []string) []string {
	var found []string
	for _, tag := range tags {
		lower := strings.ToLower(tag)
		for _, w := range Keywords {
			if strings.Contains(lower, w) {
				found = append(found, w)
			}
		}
	}
	return found
}

// Union merges keyword sets into one sorted, de-duplicated list.
func Union(sets ...[]string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, set := range sets {
		for _, w := range set {
			if !seen[w] {
				seen[w] = true
				out = append(out, w)
			}
		}
	}
	sort.Strings(out)
	return out
}

package detect

import (
	"reflect"
	"testing"
)

func TestDetect_WholeWordMatching(t *testing.T) {
	d := NewDetector()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty text",
			text: "",
			want: nil,
		},
		{
			name: "single match",
			text: "Police report a scam targeting pensioners",
			want: []string{"scam"},
		},
		{
			name: "case insensitive",
			text: "BOMB Threat at the airport",
			want: []string{"bomb", "threat"},
		},
		{
			name: "word boundary respected",
			text: "the scammer was attacking",
			want: nil,
		},
		{
			name: "punctuation boundary",
			text: "Fraud, arrest, and murder.",
			want: []string{"fraud", "murder"},
		},
		{
			name: "no harmful words",
			text: "sunny weather forecast for the weekend",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.Detect(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Detect(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetect_Deterministic(t *testing.T) {
	d := NewDetector()
	text := "hack attack on the bank, suspects arrested"

	first := d.Detect(text)
	for i := 0; i < 10; i++ {
		if got := d.Detect(text); !reflect.DeepEqual(got, first) {
			t.Fatalf("Detect is not deterministic: run %d got %v, want %v", i, got, first)
		}
	}
}

func TestMatchTags_SubstringContainment(t *testing.T) {
	d := NewDetector()

	// Tags match by containment, unlike free text
	got := d.MatchTags([]string{"scammer alert", "Weather", "Cyberattack"})
	want := []string{"scam", "attack"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MatchTags = %v, want %v", got, want)
	}

	if got := d.MatchTags(nil); got != nil {
		t.Errorf("MatchTags(nil) = %v, want nil", got)
	}
}

func TestUnion(t *testing.T) {
	got := Union([]string{"scam", "bomb"}, []string{"bomb", "attack"}, nil)
	want := []string{"attack", "bomb", "scam"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Union = %v, want %v", got, want)
	}

	if got := Union(nil, nil); got != nil {
		t.Errorf("Union of empty sets = %v, want nil", got)
	}
}

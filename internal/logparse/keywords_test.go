package logparse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKeywordExtractor_Extract(t *testing.T) {
	t.Parallel()

	e := NewKeywordExtractor(0)

	tests := []struct {
		input string
		want  []string
	}{
		{"doing some horrible thing", []string{"horrible"}},
		{"doing some bad thing", nil},
		{"don't like this", nil},
		{"just horrible stuff", []string{"horrible", "stuff"}},
		{"unused variable ‘counter’", []string{"unused", "variable", "counter"}},
		{"Implicit conversion LOSES precision", []string{"implicit", "conversion", "loses", "precision"}},
		{"comparison of integer expressions of different signedness: 'int' and 'size_t'", []string{"comparison", "integer", "expressions", "different", "signedness", "size_t"}},
		{"array subscript 123456 is above bounds", []string{"array", "subscript", "bounds"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := e.Extract(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Extract(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestKeywordExtractor_CountsEveryOccurrence(t *testing.T) {
	t.Parallel()

	got := NewKeywordExtractor(0).Extract("horrible, horrible stuff")
	want := []string{"horrible", "horrible", "stuff"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Extract mismatch (-want +got):\n%s", diff)
	}
}

func TestKeywordExtractor_MinLength(t *testing.T) {
	t.Parallel()

	e := NewKeywordExtractor(3)
	if got := e.MinLength(); got != 3 {
		t.Fatalf("MinLength = %d, want 3", got)
	}

	got := e.Extract("doing some bad thing")
	want := []string{"bad"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Extract mismatch (-want +got):\n%s", diff)
	}
}

func TestStopwords(t *testing.T) {
	t.Parallel()

	for _, w := range []string{"doing", "thing", "dont", "just", "like", "this", "some"} {
		if _, ok := Stopwords[w]; !ok {
			t.Errorf("Stopwords missing %q", w)
		}
	}
	for _, w := range []string{"horrible", "stuff", "unused", "variable", "bad", "between", "other"} {
		if _, ok := Stopwords[w]; ok {
			t.Errorf("Stopwords unexpectedly contains %q", w)
		}
	}
}

func TestKeywordExtractor_StopwordsWithoutLengthRule(t *testing.T) {
	t.Parallel()

	e := NewKeywordExtractor(1)

	tests := []struct {
		input string
		want  []string
	}{
		{"doing some bad thing", []string{"bad"}},
		{"doing some horrible thing", []string{"horrible"}},
		{"don't like this", nil},
		{"just horrible stuff", []string{"horrible", "stuff"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := e.Extract(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Extract(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

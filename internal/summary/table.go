package summary

import (
	"sort"

	"github.com/tinytelemetry/warnsum/internal/model"
)

// FrequencyTable counts occurrences of string keys.
type FrequencyTable struct {
	counts map[string]int
	sum    int
}

// NewFrequencyTable creates an empty table.
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[string]int)}
}

// Add records one occurrence of key.
func (t *FrequencyTable) Add(key string) {
	t.counts[key]++
	t.sum++
}

// Count returns how often key was added.
func (t *FrequencyTable) Count(key string) int { return t.counts[key] }

// Len returns the number of distinct keys.
func (t *FrequencyTable) Len() int { return len(t.counts) }

// Sum returns the total number of occurrences across all keys.
func (t *FrequencyTable) Sum() int { return t.sum }

// Sorted returns all entries by descending count, ties broken by ascending key.
func (t *FrequencyTable) Sorted() []model.Count {
	out := make([]model.Count, 0, len(t.counts))
	for k, c := range t.counts {
		out = append(out, model.Count{Key: k, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}

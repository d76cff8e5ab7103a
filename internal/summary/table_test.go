package summary

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tinytelemetry/warnsum/internal/model"
)

func TestFrequencyTable(t *testing.T) {
	t.Parallel()

	tbl := NewFrequencyTable()
	for _, k := range []string{"b", "a", "c", "a", "c", "c"} {
		tbl.Add(k)
	}

	if got := tbl.Len(); got != 3 {
		t.Errorf("Len = %d, want 3", got)
	}
	if got := tbl.Sum(); got != 6 {
		t.Errorf("Sum = %d, want 6", got)
	}
	if got := tbl.Count("a"); got != 2 {
		t.Errorf("Count(a) = %d, want 2", got)
	}
	if got := tbl.Count("missing"); got != 0 {
		t.Errorf("Count(missing) = %d, want 0", got)
	}

	want := []model.Count{{Key: "c", Count: 3}, {Key: "a", Count: 2}, {Key: "b", Count: 1}}
	if diff := cmp.Diff(want, tbl.Sorted()); diff != "" {
		t.Errorf("Sorted mismatch (-want +got):\n%s", diff)
	}
}

func TestFrequencyTable_TieBreakIsLexicographic(t *testing.T) {
	t.Parallel()

	tbl := NewFrequencyTable()
	for _, k := range []string{"zeta", "alpha", "mid"} {
		tbl.Add(k)
	}

	for i := 0; i < 5; i++ {
		got := tbl.Sorted()
		if got[0].Key != "alpha" || got[1].Key != "mid" || got[2].Key != "zeta" {
			t.Fatalf("Sorted = %+v, want alphabetical order for equal counts", got)
		}
	}
}

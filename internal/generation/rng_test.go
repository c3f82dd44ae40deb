package generation

import (
	"errors"
	"testing"
)

func TestSourcesStayInRange(t *testing.T) {
	sources := map[string]Source{
		SourceLCG: NewRNG(99),
		SourcePCG: NewPCG(99),
	}
	ranges := [][2]int{{0, 1}, {6, 30}, {10, 340}, {-5, 5}}

	for name, src := range sources {
		for _, r := range ranges {
			seen := make(map[int]bool)
			for i := 0; i < 2000; i++ {
				v := src.Range(r[0], r[1])
				if v < r[0] || v >= r[1] {
					t.Fatalf("%s: Range(%d, %d) = %d", name, r[0], r[1], v)
				}
				seen[v] = true
			}
			if r[1]-r[0] <= 30 && len(seen) != r[1]-r[0] {
				t.Errorf("%s: Range(%d, %d) hit %d of %d values", name, r[0], r[1], len(seen), r[1]-r[0])
			}
		}
	}
}

func TestRangeEmpty(t *testing.T) {
	for _, src := range []Source{NewRNG(1), NewPCG(1)} {
		if v := src.Range(4, 4); v != 4 {
			t.Errorf("Range(4, 4) = %d, want 4", v)
		}
		if v := src.Range(9, 3); v != 9 {
			t.Errorf("Range(9, 3) = %d, want 9", v)
		}
	}
}

func TestNewSource(t *testing.T) {
	for _, name := range []string{"", SourceLCG, SourcePCG} {
		if _, err := NewSource(name, 1); err != nil {
			t.Errorf("NewSource(%q): %v", name, err)
		}
	}
	if _, err := NewSource("mt19937", 1); !errors.Is(err, ErrUnknownSource) {
		t.Errorf("err = %v, want ErrUnknownSource", err)
	}
}

func TestRNGReproducible(t *testing.T) {
	a, b := NewRNG(31337), NewRNG(31337)
	for i := 0; i < 100; i++ {
		if a.Range(0, 1000) != b.Range(0, 1000) {
			t.Fatalf("draw %d diverged", i)
		}
	}
}

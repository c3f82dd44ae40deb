package generation

import (
	"errors"
	"testing"

	"gores.dev/internal/twmap"
)

func TestLookup(t *testing.T) {
	g, err := Lookup(GeneratorGore, DefaultOptions())
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if g.Name() != GeneratorGore {
		t.Errorf("Name = %q", g.Name())
	}

	if _, err := Lookup("maze", DefaultOptions()); !errors.Is(err, ErrUnknownGenerator) {
		t.Errorf("err = %v, want ErrUnknownGenerator", err)
	}
	if names := Names(); len(names) != 1 || names[0] != GeneratorGore {
		t.Errorf("Names = %v", names)
	}
}

func TestKindIDRoundTrip(t *testing.T) {
	want := map[Kind]uint8{
		KindEmpty:    0,
		KindHookable: 1,
		KindFreeze:   9,
		KindStart:    33,
		KindFinish:   34,
		KindSpawn:    192,
	}
	for _, k := range Kinds {
		id := KindToID(k)
		if id != want[k] {
			t.Errorf("KindToID(%v) = %d, want %d", k, id, want[k])
		}
		back, ok := IDToKind(id)
		if !ok || back != k {
			t.Errorf("IDToKind(%d) = %v, %v", id, back, ok)
		}
	}
	if _, ok := IDToKind(200); ok {
		t.Error("IDToKind(200) should be unknown")
	}
}

func TestSummarize(t *testing.T) {
	opts := DefaultOptions()
	opts.Gore.Height, opts.Gore.Width = 30, 120
	opts.Gore.Voids, opts.Gore.VerticalBlocks, opts.Gore.HorizontalBlocks = 10, 3, 4

	g, err := Lookup(GeneratorGore, opts)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	m, err := g.Generate(NewRNG(8))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	s := Summarize(m)
	if s.Height != 30 || s.Width != 120 {
		t.Errorf("size = %dx%d", s.Width, s.Height)
	}
	if s.Spawn == nil || *s.Spawn != (Point{X: 5, Y: 27}) {
		t.Errorf("spawn = %v", s.Spawn)
	}
	total := 0
	for _, n := range s.Counts {
		total += n
	}
	if total != 30*120 {
		t.Errorf("counted %d tiles, want %d", total, 30*120)
	}
	if s.Tiles["hookable"] != s.Counts[KindHookable] {
		t.Error("named counts disagree")
	}

	if empty := Summarize(&twmap.Map{}); empty.Height != 0 || empty.Spawn != nil {
		t.Errorf("summary of empty map = %+v", empty)
	}
}

package maze

import (
	"strings"
	"testing"
)

func TestEventLog_RingKeepsNewest(t *testing.T) {
	el := NewEventLog(3, false)
	for i := 1; i <= 5; i++ {
		el.Add(i, CatTick, "fired", "")
	}
	got := el.Entries()
	if len(got) != 3 {
		t.Fatalf("expected 3 retained entries, got %d", len(got))
	}
	for i, e := range got {
		if e.Tick != i+3 {
			t.Fatalf("entry %d tick=%d, want %d", i, e.Tick, i+3)
		}
	}
	if r := el.Recent(2); len(r) != 2 || r[1].Tick != 5 {
		t.Fatalf("Recent(2)=%+v", r)
	}
}

func TestEventLog_UnboundedAndVerbose(t *testing.T) {
	el := NewEventLog(0, false)
	el.AddVerbose(1, CatInput, "queued", "(1,1)")
	if el.Len() != 0 {
		t.Fatal("verbose entry recorded with verbose off")
	}
	for i := 0; i < 100; i++ {
		el.Add(i, CatMove, "applied", "x")
	}
	if el.Len() != 100 || el.Count(CatMove, "applied") != 100 {
		t.Fatalf("unbounded log lost entries: len=%d", el.Len())
	}
	if !strings.Contains(el.Format(), "applied") {
		t.Fatal("Format should include entry keys")
	}
}

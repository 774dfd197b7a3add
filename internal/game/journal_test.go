package game

import (
	"strings"
	"testing"
)

func TestJournal_FilterAndQuery(t *testing.T) {
	j := NewJournal(false)
	j.Add(1, "P", "coin", "collected", "(1,1)", 2)
	j.Add(4, "G0", "ghost", "caught", "infinity at (2,1)", 0)
	j.Add(9, "P", "coin", "collected", "(2,1)", 1)
	j.AddVerbose(9, "P", "move", "arrive", "(2,1)", 0)

	if n := j.CountCategory("coin", "collected"); n != 2 {
		t.Fatalf("coins=%d, want 2", n)
	}
	if len(j.Entries()) != 3 {
		t.Fatal("verbose entry recorded in quiet mode")
	}
	last, ok := j.LastOf("coin", "")
	if !ok || last.Tick != 9 || last.NumVal != 1 {
		t.Fatalf("last coin=%+v", last)
	}
	if got := j.FirstTick("ghost", "caught", "infinity"); got != 4 {
		t.Fatalf("first caught tick=%d, want 4", got)
	}
	if j.HasEntry("ghost", "caught", "knot") {
		t.Fatal("no knot contact was recorded")
	}
	if len(j.FilterActor("G0")) != 1 {
		t.Fatal("actor filter")
	}
	if !strings.Contains(j.Format(), "[T=004] G0   ghost") {
		t.Fatalf("format:\n%s", j.Format())
	}
}

func TestJournal_VerboseSessionRecordsMoves(t *testing.T) {
	ts := newTestSession(t, WithVerbose(true), WithLevelText(corridor...))
	ts.RunTicks(30)
	j := ts.Journal()
	if j.CountCategory("ghost", "decide") == 0 {
		t.Fatal("verbose journal should record ghost decisions")
	}
	sum := j.Summary(ts.Snapshot())
	if !strings.Contains(sum, "G0 infinity") {
		t.Fatalf("summary missing ghost line:\n%s", sum)
	}
}

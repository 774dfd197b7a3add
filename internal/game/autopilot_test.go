package game

import (
	"testing"

	"github.com/Garsondee/glyphmaze/internal/ghost"
	"github.com/Garsondee/glyphmaze/internal/motion"
)

func TestCoinSeeker_ClearsLevelWithoutGhosts(t *testing.T) {
	ts := newTestSession(t, WithOnlyGhosts())
	var seeker CoinSeeker
	tick := ts.RunUntil(func(ts *TestSession) bool {
		seeker.Drive(ts.Session)
		return ts.Outcome() == Won
	}, 20000)
	if tick < 0 {
		t.Fatalf("seeker left %d coins", ts.Coins().Remaining())
	}
	if ts.Count(EventWin) != 1 {
		t.Fatal("win should fire once")
	}
}

func TestCoinSeeker_StepsTowardCoin(t *testing.T) {
	ts := newTestSession(t, WithLevelText(
		"#####",
		"#P  #",
		"# # #",
		"#  .#",
		"#####",
	))
	d := CoinSeeker{}.Next(ts.Session)
	if d != motion.Down && d != motion.Right {
		t.Fatalf("first step=%s, want a shortest-path move", d)
	}
}

func TestCoinSeeker_NoPlayer(t *testing.T) {
	ts := newTestSession(t, WithNoPlayer(), WithOnlyGhosts(ghost.Bee))
	if d := (CoinSeeker{}).Next(ts.Session); d != motion.None {
		t.Fatalf("next=%s without a player", d)
	}
}

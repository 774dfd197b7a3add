package game

import (
	"github.com/Garsondee/glyphmaze/internal/grid"
	"github.com/Garsondee/glyphmaze/internal/motion"
)

// CoinSeeker steers the player to the coin with the shortest walk. It
// stands in for a human in batch runs.
type CoinSeeker struct{}

// Next returns the first step toward the nearest reachable coin, or None.
func (CoinSeeker) Next(s *Session) motion.Direction {
	if !s.hasPlayer || s.coins.Remaining() == 0 {
		return motion.None
	}
	coins := make(map[grid.Cell]bool, s.coins.Remaining())
	for _, c := range s.coins.Cells() {
		coins[c] = true
	}

	// Breadth-first from the player; first arrival at a coin is the nearest.
	from := s.player.Cell()
	first := map[grid.Cell]motion.Direction{from: motion.None}
	queue := []grid.Cell{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if coins[cur] && cur != from {
			return first[cur]
		}
		for _, d := range motion.Directions {
			next := cur.Add(d.Delta())
			if _, seen := first[next]; seen || s.level.Grid.IsBlocked(next) {
				continue
			}
			if cur == from {
				first[next] = d
			} else {
				first[next] = first[cur]
			}
			queue = append(queue, next)
		}
	}
	return motion.None
}

// Drive queues the next step when the player is at rest.
func (c CoinSeeker) Drive(s *Session) {
	if s.player.Transiting {
		return
	}
	if d := c.Next(s); d != motion.None {
		s.Press(d)
	}
}

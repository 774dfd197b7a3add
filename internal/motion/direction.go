package motion

import "github.com/Garsondee/glyphmaze/internal/grid"

// Direction is a cardinal movement request.
type Direction uint8

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Directions lists the cardinal directions in tie-break order.
var Directions = [4]Direction{Up, Down, Left, Right}

// Opposite returns the reverse direction. None is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

// Delta returns the unit cell offset for d. Up is toward smaller Y.
func (d Direction) Delta() grid.Cell {
	switch d {
	case Up:
		return grid.Cell{X: 0, Y: -1}
	case Down:
		return grid.Cell{X: 0, Y: 1}
	case Left:
		return grid.Cell{X: -1, Y: 0}
	case Right:
		return grid.Cell{X: 1, Y: 0}
	default:
		return grid.Cell{}
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

package grid

import "container/heap"

// DefaultPathBudget bounds node expansions for searches over unbounded occupancies.
const DefaultPathBudget = 2048

type pathNode struct {
	cell   Cell
	g, h   float64
	parent *pathNode
	index  int // heap index
}

type openList []*pathNode

func (ol openList) Len() int            { return len(ol) }
func (ol openList) Less(i, j int) bool  { return (ol[i].g + ol[i].h) < (ol[j].g + ol[j].h) }
func (ol openList) Swap(i, j int)       { ol[i], ol[j] = ol[j], ol[i]; ol[i].index = i; ol[j].index = j }
func (ol *openList) Push(x interface{}) { n := x.(*pathNode); n.index = len(*ol); *ol = append(*ol, n) }
func (ol *openList) Pop() interface{} {
	old := *ol
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*ol = old[:len(old)-1]
	return n
}

var steps = [4]Cell{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}

func manhattan(a, b Cell) float64 {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return float64(dx + dy)
}

// FindPath returns the 4-connected cell path from one cell to another,
// both ends included. Returns nil if either end is blocked, no path exists,
// or more than budget nodes are expanded. budget <= 0 uses DefaultPathBudget.
func FindPath(occ Occupancy, from, to Cell, budget int) []Cell {
	if occ == nil || occ.IsBlocked(from) || occ.IsBlocked(to) {
		return nil
	}
	if budget <= 0 {
		budget = DefaultPathBudget
	}

	start := &pathNode{cell: from, h: manhattan(from, to)}
	ol := &openList{start}
	heap.Init(ol)

	closed := make(map[Cell]bool)
	best := map[Cell]*pathNode{from: start}

	expanded := 0
	for ol.Len() > 0 {
		cur := heap.Pop(ol).(*pathNode)
		if cur.cell == to {
			return buildPath(cur)
		}
		if closed[cur.cell] {
			continue
		}
		closed[cur.cell] = true
		expanded++
		if expanded > budget {
			return nil
		}

		for _, d := range steps {
			next := cur.cell.Add(d)
			if closed[next] || occ.IsBlocked(next) {
				continue
			}
			g := cur.g + 1
			if prev, ok := best[next]; ok && g >= prev.g {
				continue
			}
			node := &pathNode{cell: next, g: g, h: manhattan(next, to), parent: cur}
			best[next] = node
			heap.Push(ol, node)
		}
	}
	return nil
}

// Reachable reports whether FindPath finds a route within budget.
func Reachable(occ Occupancy, from, to Cell, budget int) bool {
	return FindPath(occ, from, to, budget) != nil
}

func buildPath(end *pathNode) []Cell {
	var cells []Cell
	for n := end; n != nil; n = n.parent {
		cells = append(cells, n.cell)
	}
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
	return cells
}

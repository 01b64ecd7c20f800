package pathfind

import "github.com/1siamBot/stellar-armada/engine/grid"

// Passability reports whether a cell may be entered. A nil Passability
// treats every in-bounds cell as open.
type Passability func(p grid.Point) bool

// Field is the result of a bounded breadth-first search
type Field struct {
	Origin grid.Point
	Order  []grid.Point       // cells in visit order, origin first
	Steps  map[grid.Point]int // path length from origin, may exceed the Manhattan distance
	came   map[grid.Point]grid.Point
}

// Contains reports whether p was reached
func (f *Field) Contains(p grid.Point) bool {
	_, ok := f.Steps[p]
	return ok
}

// Search floods outward from origin over 4-neighbours. A neighbour is
// expanded when it is unvisited, inside [min, max), passable, and within
// Manhattan distance depth of origin. Blocked cells cut the frontier, so a
// cell behind a wall is still reached by a detour that stays inside the
// diamond.
func Search(origin grid.Point, depth int, min, max grid.Point, passable Passability) *Field {
	f := &Field{
		Origin: origin,
		Order:  []grid.Point{origin},
		Steps:  map[grid.Point]int{origin: 0},
		came:   make(map[grid.Point]grid.Point),
	}
	queue := []grid.Point{origin}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range cur.Neighbors() {
			if _, seen := f.Steps[n]; seen {
				continue
			}
			if n.Distance(origin) > depth || !n.InRange(min, max) {
				continue
			}
			if passable != nil && !passable(n) {
				continue
			}
			f.Steps[n] = f.Steps[cur] + 1
			f.came[n] = cur
			f.Order = append(f.Order, n)
			queue = append(queue, n)
		}
	}
	return f
}

// PathTo returns the shortest route from origin to goal, both ends
// included, or nil when goal was not reached
func (f *Field) PathTo(goal grid.Point) []grid.Point {
	if !f.Contains(goal) {
		return nil
	}
	path := []grid.Point{goal}
	cur := goal
	for {
		prev, ok := f.came[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// Reverse
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Reachable returns the cells Search visits, origin included
func Reachable(origin grid.Point, depth int, min, max grid.Point, passable Passability) []grid.Point {
	return Search(origin, depth, min, max, passable).Order
}

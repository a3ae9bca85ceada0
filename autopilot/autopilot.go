// Package autopilot steers a snake without a player. It reads a game.View
// and returns the direction a host should pass to ChangeDirection.
package autopilot

import (
	"snake-canvas/game"
	"snake-canvas/game/types"
)

// Pilot chases food along a shortest path. When no path exists it turns
// towards the largest open area. It keeps no state between calls.
type Pilot struct{}

func New() *Pilot {
	return &Pilot{}
}

// Next picks the direction for the coming tick. It never returns the reverse
// of the current heading.
func (p *Pilot) Next(v game.View) types.Direction {
	if len(v.Body) == 0 || v.Outcome.Terminal() {
		return v.Heading
	}
	b := newBoard(v)

	if v.HasFood {
		if d, ok := b.pathTo(v.Food); ok {
			return d
		}
	}

	best, bestSpace := v.Heading, -1
	for _, d := range b.moves() {
		if space := b.openArea(b.head.Move(d)); space > bestSpace {
			best, bestSpace = d, space
		}
	}
	return best
}

type board struct {
	grid    types.Grid
	head    types.Cell
	heading types.Direction
	blocked map[types.Cell]bool
}

// newBoard marks the body as blocked except for the tail, which moves away
// on the next tick.
func newBoard(v game.View) *board {
	b := &board{
		grid:    types.Grid{Width: v.Width, Height: v.Height},
		head:    v.Body[0],
		heading: v.Heading,
		blocked: make(map[types.Cell]bool, len(v.Body)),
	}
	for _, c := range v.Body[:len(v.Body)-1] {
		b.blocked[c] = true
	}
	return b
}

func (b *board) free(c types.Cell) bool {
	return b.grid.Contains(c) && !b.blocked[c]
}

// moves lists the directions the head can safely take this tick.
func (b *board) moves() []types.Direction {
	var out []types.Direction
	for _, d := range types.Directions {
		if d == b.heading.Opposite() {
			continue
		}
		if b.free(b.head.Move(d)) {
			out = append(out, d)
		}
	}
	return out
}

// pathTo runs a breadth-first search from the head and returns the first
// step of a shortest path to target.
func (b *board) pathTo(target types.Cell) (types.Direction, bool) {
	first := make(map[types.Cell]types.Direction)
	var queue []types.Cell
	for _, d := range b.moves() {
		next := b.head.Move(d)
		if next == target {
			return d, true
		}
		first[next] = d
		queue = append(queue, next)
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range types.Directions {
			next := cur.Move(d)
			if !b.free(next) {
				continue
			}
			if _, seen := first[next]; seen || next == b.head {
				continue
			}
			first[next] = first[cur]
			if next == target {
				return first[next], true
			}
			queue = append(queue, next)
		}
	}
	return b.heading, false
}

// openArea counts the free cells reachable from start.
func (b *board) openArea(start types.Cell) int {
	if !b.free(start) {
		return 0
	}
	seen := map[types.Cell]bool{start: true}
	stack := []types.Cell{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range types.Directions {
			next := cur.Move(d)
			if b.free(next) && !seen[next] {
				seen[next] = true
				stack = append(stack, next)
			}
		}
	}
	return len(seen)
}

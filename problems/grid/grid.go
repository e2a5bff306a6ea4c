// Package grid is a 4-connected grid world with walls, usable as a search
// problem with unit move costs.
package grid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pdrpinto/search"
)

// ErrBlocked is returned when a move would leave the grid or enter a wall.
var ErrBlocked = errors.New("move blocked")

type Point struct {
	X, Y int
}

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

type Move int

const (
	Right Move = iota
	Left
	Down
	Up
)

var moveDeltas = [...]Point{Right: {1, 0}, Left: {-1, 0}, Down: {0, 1}, Up: {0, -1}}

func (m Move) String() string {
	switch m {
	case Right:
		return "right"
	case Left:
		return "left"
	case Down:
		return "down"
	case Up:
		return "up"
	default:
		return "unknown"
	}
}

type Grid struct {
	W, H  int
	Walls map[Point]bool
	Start Point
	Goal  Point
}

var _ search.Problem[Point, Move] = (*Grid)(nil)

// Parse reads a grid drawn with '.' for free cells, '#' for walls, 'S' for
// the start and 'G' for the goal. Rows must have equal width.
func Parse(drawing string) (*Grid, error) {
	var rows []string
	for _, line := range strings.Split(drawing, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty grid")
	}

	g := &Grid{W: len(rows[0]), H: len(rows), Walls: make(map[Point]bool)}
	var hasStart, hasGoal bool
	for y, row := range rows {
		if len(row) != g.W {
			return nil, fmt.Errorf("row %d has width %d, want %d", y, len(row), g.W)
		}
		for x, cell := range row {
			p := Point{x, y}
			switch cell {
			case '.':
			case '#':
				g.Walls[p] = true
			case 'S':
				if hasStart {
					return nil, fmt.Errorf("second start at %v", p)
				}
				g.Start, hasStart = p, true
			case 'G':
				if hasGoal {
					return nil, fmt.Errorf("second goal at %v", p)
				}
				g.Goal, hasGoal = p, true
			default:
				return nil, fmt.Errorf("unexpected %q at %v", cell, p)
			}
		}
	}
	if !hasStart || !hasGoal {
		return nil, fmt.Errorf("grid needs exactly one S and one G")
	}
	return g, nil
}

func (g *Grid) in(p Point) bool { return p.X >= 0 && p.X < g.W && p.Y >= 0 && p.Y < g.H }

func (g *Grid) open(p Point) bool { return g.in(p) && !g.Walls[p] }

func (g *Grid) InitialState() (Point, error) { return g.Start, nil }

// Actions lists the moves into open cells, in the order right, left, down, up.
func (g *Grid) Actions(node *search.Node[Point, Move]) ([]Move, error) {
	p := node.State()
	moves := make([]Move, 0, len(moveDeltas))
	for m, d := range moveDeltas {
		if g.open(Point{p.X + d.X, p.Y + d.Y}) {
			moves = append(moves, Move(m))
		}
	}
	return moves, nil
}

func (g *Grid) Result(action Move, node *search.Node[Point, Move]) (Point, error) {
	if action < Right || action > Up {
		return Point{}, fmt.Errorf("%w: %d is not a move", ErrBlocked, int(action))
	}
	p := node.State()
	d := moveDeltas[action]
	next := Point{p.X + d.X, p.Y + d.Y}
	if !g.open(next) {
		return Point{}, fmt.Errorf("%w: %s from %v", ErrBlocked, action, p)
	}
	return next, nil
}

func (g *Grid) IsGoal(state Point) (bool, error) { return state == g.Goal, nil }

func (g *Grid) Cost(Move, Point) (float64, error) { return 1, nil }

func manhattan(a, b Point) float64 {
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

// Manhattan is an admissible heuristic for the grid's goal.
func (g *Grid) Manhattan() search.Heuristic[Point, Move] {
	return func(node *search.Node[Point, Move]) float64 {
		return manhattan(node.State(), g.Goal)
	}
}

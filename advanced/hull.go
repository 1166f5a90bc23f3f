package advanced

import (
	"sort"

	"github.com/pkg/errors"
)

// ConvexHull finds the convex hull of a polygon's vertices by gift wrapping
// (Jarvis march).
//
// The walk starts at the lowest of the leftmost vertices, facing North. From
// each hull vertex it takes whichever vertex needs the smallest clockwise turn
// from the current heading, so the hull comes out in clockwise order. When two
// candidates need the same turn they are collinear with the current vertex,
// and the farther one wins; taking the nearer one would put a point from the
// middle of a hull edge onto the hull.
//
// The loop closes when the walk returns to the start vertex. A hull of fewer
// than three vertices, or a walk that has not closed after visiting every
// vertex, is reported as ErrDegenerateHull.
func ConvexHull(poly Polygon) (Hull, error) {
	n := len(poly.Points)
	if n < 3 {
		return nil, errors.Wrapf(ErrInvalidPolygon, "need at least 3 points, got %d", n)
	}

	start := lowestLeftmostIndex(poly)
	origin := poly.Points[start]
	hull := Hull{start}
	current := start
	var heading float64

	// Each step adds a distinct hull vertex, so a walk that is still going
	// after n steps is circling without ever reaching the start again.
	for step := 0; step <= n; step++ {
		next := nextHullIndex(poly, current, heading)
		if next < 0 {
			return nil, errors.Wrapf(ErrDegenerateHull, "all %d points coincide", n)
		}
		if poly.Points[next] == origin {
			if len(hull) < 3 {
				return nil, errors.Wrapf(ErrDegenerateHull, "hull closed with %d vertices; points are collinear", len(hull))
			}
			return hull, nil
		}
		heading = Bearing(poly.Points[current], poly.Points[next])
		hull = append(hull, next)
		current = next
	}
	// Unreachable while nextHullIndex only ever moves to a new hull vertex.
	// Kept as an assertion so a future change can't loop forever.
	return nil, errors.Wrapf(ErrDegenerateHull, "hull did not close within %d steps", n+1)
}

func lowestLeftmostIndex(poly Polygon) int {
	best := 0
	for i, p := range poly.Points {
		bestPoint := poly.Points[best]
		if p.X < bestPoint.X || (p.X == bestPoint.X && p.Y < bestPoint.Y) {
			best = i
		}
	}
	return best
}

// Index of the vertex requiring the smallest clockwise turn from heading, or -1
// if every vertex sits on top of the current one.
func nextHullIndex(poly Polygon, current int, heading float64) int {
	from := poly.Points[current]
	best := -1
	var bestTurn, bestDistance float64
	for i, candidate := range poly.Points {
		if candidate == from {
			continue
		}
		turn := HeadingAdjustment(heading, from, candidate)
		distance := Distance(from, candidate)

		var better bool
		if best < 0 {
			better = true
		} else if Equal(turn, bestTurn) {
			better = distance > bestDistance
		} else {
			better = turn < bestTurn
		}

		if better {
			best, bestTurn, bestDistance = i, turn, distance
		}
	}
	return best
}

func (h Hull) Contains(index int) bool {
	for _, i := range h {
		if i == index {
			return true
		}
	}
	return false
}

// Points returns the hull's vertices, in hull order.
func (h Hull) Points(poly Polygon) []Point {
	points := make([]Point, len(h))
	for i, index := range h {
		points[i] = poly.Points[index]
	}
	return points
}

// Hull vertex indices in the order the polygon visits them.
func (h Hull) traversalOrder() []int {
	order := append([]int(nil), h...)
	sort.Ints(order)
	return order
}

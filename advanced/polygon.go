package advanced

import (
	"strings"

	"github.com/pkg/errors"
)

func (poly Polygon) Len() int {
	return len(poly.Points)
}

// Vertex at index i, treating the point list as circular.
func (poly Polygon) At(i int) Point {
	return poly.Points[CircularIndex(i, len(poly.Points))]
}

// Shoelace area. Positive for counterclockwise polygons, negative for clockwise.
func (poly Polygon) SignedArea() float64 {
	var sum float64
	for i, p := range poly.Points {
		next := poly.At(i + 1)
		sum += p.X*next.Y - next.X*p.Y
	}
	return sum / 2
}

func (poly Polygon) Area() float64 {
	area := poly.SignedArea()
	if area < 0 {
		return -area
	}
	return area
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

func (poly Polygon) IsCW() bool {
	return poly.SignedArea() < 0
}

// IsReflex reports whether the interior angle at vertex i exceeds 180 degrees.
// Works for either winding.
func (poly Polygon) IsReflex(i int) bool {
	prev, vertex, next := poly.At(i-1), poly.At(i), poly.At(i+1)
	// InteriorAngle measures a clockwise walk
	if poly.IsCCW() {
		prev, next = next, prev
	}
	return InteriorAngle(prev, vertex, next) < -Epsilon
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{Points: make([]Point, 0, len(poly.Points))}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Even-odd point-in-polygon test. Points exactly on the boundary may land on
// either side.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.crossingCount(p)%2 == 1
}

// Number of edges crossed by a ray running from p toward +X.
func (poly Polygon) crossingCount(p Point) int {
	crossingCount := 0
	for i, vertex := range poly.Points {
		nextVertex := poly.At(i + 1)
		if (vertex.Y > p.Y) == (nextVertex.Y > p.Y) {
			continue
		}
		x := vertex.X + (p.Y-vertex.Y)*(nextVertex.X-vertex.X)/(nextVertex.Y-vertex.Y)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}

// Validate checks the preconditions the decomposition can check cheaply. It
// does not look for self-intersections; simplicity is the caller's job.
func (poly Polygon) Validate() error {
	if len(poly.Points) < 3 {
		return errors.Wrapf(ErrInvalidPolygon, "need at least 3 points, got %d", len(poly.Points))
	}
	for i, p := range poly.Points {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return errors.Wrapf(ErrInvalidPolygon, "point %d has non-finite coordinates %v", i, p)
		}
	}
	return nil
}

// String renders the polygon as a list of coordinate pairs, e.g.
// "[(0, 0), (4, 0), (4, 4)]". This is the line format used by WriteResult.
func (poly Polygon) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, p := range poly.Points {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteByte(']')
	return b.String()
}

func (list PolygonList) Area() float64 {
	var area float64
	for _, poly := range list {
		area += poly.Area()
	}
	return area
}

// Even-odd containment over every polygon in the list. For the output of a
// decomposition, whose pieces only share edges, this is plain union membership
// away from those edges.
func (list PolygonList) ContainsPointByEvenOdd(p Point) bool {
	crossingCount := 0
	for _, poly := range list {
		crossingCount += poly.crossingCount(p)
	}
	return crossingCount%2 == 1
}

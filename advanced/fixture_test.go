package advanced

import (
	"embed"
	"log"
	"math"
)

// Fixtures are available by name in the fixtures/ directory, sans extension.
// They are SVG files, loaded with LoadSVGPolygons. If anything goes wrong, the
// test binary dies.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) PolygonList {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	list, err := LoadSVGPolygons(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return list
}

// Some ad hoc code specified fixtures

func Square() Polygon {
	return Polygon{[]Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}}
}

// The square with its top edge pushed down to a point at (2, 1). No diagonal
// from that point can leave it convex on both sides.
func Arrow() Polygon {
	return Polygon{[]Point{{0, 0}, {4, 0}, {4, 4}, {2, 1}, {0, 4}}}
}

// Arrow with an extra vertex on its bottom edge, right below the notch.
func ArrowWithFoot() Polygon {
	return Polygon{[]Point{{0, 0}, {2, 0}, {4, 0}, {4, 4}, {2, 1}, {0, 4}}}
}

func LShape() Polygon {
	return Polygon{[]Point{{0, 0}, {6, 0}, {6, 2}, {2, 2}, {2, 6}, {0, 6}}}
}

func UShape() Polygon {
	return Polygon{[]Point{{0, 0}, {6, 0}, {6, 6}, {4, 6}, {4, 2}, {2, 2}, {2, 6}, {0, 6}}}
}

func SimpleStar() Polygon {
	return Star(10, 5, 2)
}

// A star with n vertices, alternating between the two radii.
func Star(n int, outerRadius, innerRadius float64) Polygon {
	var points []Point
	for i := 0; i < n; i++ {
		var radius float64
		if i%2 == 0 {
			radius = outerRadius
		} else {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / float64(n)
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return Polygon{points}
}

func RegularPolygon(n int, radius float64) Polygon {
	var points []Point
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return Polygon{points}
}

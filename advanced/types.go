package advanced

type Point struct {
	X float64
	Y float64
}

// A Polygon is a simple closed loop of points. Vertices are always referred to
// by their index in Points, never by value, so two vertices that happen to
// share coordinates are still distinct vertices.
type Polygon struct {
	Points []Point
}

type PolygonList []Polygon

// Indices into a polygon's Points, in clockwise order around the hull.
type Hull []int

// Concavity of every vertex of a polygon, indexed like the polygon's Points.
type ConcavityMap []float64

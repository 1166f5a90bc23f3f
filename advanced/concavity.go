package advanced

import "math"

// Concavity scores every vertex of a polygon against its convex hull.
//
// Hull vertices score zero. Every other vertex sits in a pocket between two
// hull vertices, its bridge points, and scores the smaller of its distances to
// them. The pocket is found by walking the polygon with two cursors over the
// hull vertices in traversal order: the left cursor is the hull vertex most
// recently passed and the right cursor the next one ahead, and both advance
// whenever the walk steps onto a hull vertex.
//
// The cursors start at the last and first hull vertices, which is already the
// right pocket when the walk begins partway through one.
//
// hull must be the hull of poly, as returned by ConvexHull.
func Concavity(poly Polygon, hull Hull) ConcavityMap {
	onHull := make([]bool, len(poly.Points))
	for _, index := range hull {
		onHull[index] = true
	}
	bridges := hull.traversalOrder()
	left, right := len(bridges)-1, 0

	concavity := make(ConcavityMap, len(poly.Points))
	for i, p := range poly.Points {
		if onHull[i] {
			left = CircularIndex(left+1, len(bridges))
			right = CircularIndex(right+1, len(bridges))
			continue
		}
		concavity[i] = math.Min(
			Distance(p, poly.Points[bridges[left]]),
			Distance(p, poly.Points[bridges[right]]),
		)
	}
	return concavity
}

// Notch returns the index and score of the most concave vertex. Ties go to the
// vertex that comes first in traversal order.
func (cm ConcavityMap) Notch() (index int, concavity float64) {
	for i, c := range cm {
		if c > concavity {
			index, concavity = i, c
		}
	}
	return index, concavity
}

// MaxConcavity is the notch score of a polygon.
func MaxConcavity(poly Polygon) (float64, error) {
	hull, err := ConvexHull(poly)
	if err != nil {
		return 0, err
	}
	_, concavity := Concavity(poly, hull).Notch()
	return concavity, nil
}

package advanced

// This contains no actual tests. It is just a helper for testing decomposition
// validity.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a decomposition is valid. The rules are:
// 1. Every piece has at least three vertices.
// 2. Every vertex of every piece is a vertex of the polygon.
// 3. Every piece winds the same way as the polygon.
// 4. The maximum concavity of every piece is below the tolerance.
// 5. The sum of the areas of the pieces is equal to the area of the polygon.
// 6. The pieces cover exactly the polygon.
func AssertValidDecomposition(t *testing.T, polygon Polygon, pieces PolygonList, tolerance float64) {
	require.NotEmpty(t, pieces)

	polyPoints := make(map[Point]struct{})
	for _, p := range polygon.Points {
		polyPoints[p] = struct{}{}
	}

	for _, piece := range pieces {
		require.GreaterOrEqual(t, len(piece.Points), 3, "degenerate piece %v", piece)

		for _, p := range piece.Points {
			_, ok := polyPoints[p]
			require.True(t, ok, "piece %v has point %v which is not in the polygon", piece, p)
		}

		require.Equal(t, polygon.IsCCW(), piece.IsCCW(), "piece %v winds the wrong way", piece)

		concavity, err := MaxConcavity(piece)
		require.NoError(t, err)
		require.Less(t, concavity, tolerance, "piece %v is too concave", piece)
	}

	require.InDelta(t, polygon.Area(), pieces.Area(), Epsilon*polygon.Area()+Epsilon, "sum of the areas of the pieces must equal the area of the polygon")

	validatePolygonsBySampling(t, pieces, PolygonList{polygon})
}

func validatePolygonsBySampling(t *testing.T, actualPolygons PolygonList, expectedPolygons PolygonList) {
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, list := range []PolygonList{actualPolygons, expectedPolygons} {
		for _, poly := range list {
			for _, p := range poly.Points {
				minX = math.Min(minX, p.X)
				minY = math.Min(minY, p.Y)
				maxX = math.Max(maxX, p.X)
				maxY = math.Max(maxY, p.Y)
			}
		}
	}

	// Pad the bounding box by 10%
	xPadding := (maxX - minX) * 0.1
	yPadding := (maxY - minY) * 0.1
	minX -= xPadding
	minY -= yPadding
	maxX += xPadding
	maxY += yPadding

	// Compute the step size, and nudge the grid off round numbers. The two axes
	// get different nudges, otherwise every sample of a square grid sits on a
	// 45 degree line through the corner, which is where diagonals tend to run.
	step := math.Max(maxX-minX, maxY-minY) / 50
	nudgeX, nudgeY := step/math.Pi, step/math.E

	for y := minY + nudgeY; y <= maxY; y += step {
		for x := minX + nudgeX; x <= maxX; x += step {
			p := Point{X: x, Y: y}
			// Shared edges are counted once per piece, so even-odd membership
			// is meaningless on them
			if onBoundary(actualPolygons, p) || onBoundary(expectedPolygons, p) {
				continue
			}

			actual := actualPolygons.ContainsPointByEvenOdd(p)
			if expectedPolygons.ContainsPointByEvenOdd(p) {
				assert.True(t, actual, "point %v should be in the decomposition", p)
			} else {
				assert.False(t, actual, "point %v should not be in the decomposition", p)
			}
		}
	}
}

func onBoundary(list PolygonList, p Point) bool {
	for _, poly := range list {
		for i, vertex := range poly.Points {
			if onSegment(vertex, poly.At(i+1), p) {
				return true
			}
		}
	}
	return false
}

// Approximate convex decomposition of simple polygons.
//
// Decompose recursively cuts a polygon along diagonals until no piece has a
// vertex whose concavity (its distance into a pocket of the convex hull) reaches
// the tolerance. Cuts are chosen greedily, one notch at a time, so the result is
// a small set of nearly convex pieces rather than an optimal or exact convex
// decomposition.
//
// Polygons must be simple and have no holes. Either winding works. Neither of
// these requirements is validated.
package acd

import (
	"io"

	"go.uber.org/zap"

	"github.com/osuushi/acd/advanced"
)

type Point = advanced.Point
type Polygon = advanced.Polygon
type PolygonList = advanced.PolygonList

var (
	ErrInvalidPolygon       = advanced.ErrInvalidPolygon
	ErrInvalidTolerance     = advanced.ErrInvalidTolerance
	ErrDegenerateHull       = advanced.ErrDegenerateHull
	ErrDecompositionFailure = advanced.ErrDecompositionFailure
)

// Options tune a decomposition. The zero value of each field other than
// Tolerance falls back to the default, so a weight or offset of exactly zero
// can't be asked for here. Build an advanced.Decomposer for that.
type Options struct {
	Tolerance float64
	// Weight of a candidate vertex's own concavity when scoring diagonals.
	// Defaults to 0.1.
	ConcavityWeight float64
	// Added to a diagonal's length when scoring it. Defaults to 1.
	DistanceOffset float64
	// Polygons with at least this many vertices split their work across
	// goroutines. Zero means never.
	ParallelThreshold int
	Logger            *zap.Logger
}

// Decompose splits a polygon into pieces whose concavity is below tolerance.
//
// Fewer than three points or a non-positive tolerance are errors, as is a
// polygon whose points are all collinear. If some notch cannot be resolved by
// any diagonal, the whole call fails with ErrDecompositionFailure.
func Decompose(points []Point, tolerance float64) ([]Polygon, error) {
	return DecomposeWith(points, Options{Tolerance: tolerance})
}

// DecomposeWith is Decompose with the scoring weights, concurrency and logger
// taken from options.
func DecomposeWith(points []Point, options Options) ([]Polygon, error) {
	decomposer := advanced.NewDecomposer(options.Tolerance)
	if options.ConcavityWeight != 0 {
		decomposer.Resolver.ConcavityWeight = options.ConcavityWeight
	}
	if options.DistanceOffset != 0 {
		decomposer.Resolver.DistanceOffset = options.DistanceOffset
	}
	decomposer.ParallelThreshold = options.ParallelThreshold
	if options.Logger != nil {
		decomposer.Logger = options.Logger
	}

	list, err := decomposer.Decompose(Polygon{Points: points})
	if err != nil {
		return nil, err
	}
	return []Polygon(list), nil
}

// WriteResult writes one line per polygon, in order, e.g. "[(0, 0), (4, 0), (4, 4)]".
func WriteResult(w io.Writer, polygons []Polygon) error {
	return advanced.WriteResult(w, PolygonList(polygons))
}

// WriteResultFile is WriteResult to a file, which is created or truncated.
func WriteResultFile(path string, polygons []Polygon) error {
	return advanced.WriteResultFile(path, PolygonList(polygons))
}

package advanced

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/osuushi/acd/dbg"
)

// A Decomposer splits polygons into pieces whose concavity is below Tolerance.
//
// Each step scores the polygon's vertices against its convex hull, and if the
// worst vertex (the notch) is at or above Tolerance, cuts the polygon along the
// diagonal the Resolver picks for it and recurses into both halves. Pieces come
// back in depth-first order, outside half before inside half.
type Decomposer struct {
	Tolerance float64
	Resolver  Resolver
	// Polygons with at least this many vertices decompose their two halves on
	// separate goroutines. Zero keeps everything on the calling goroutine.
	// Output order does not depend on this setting.
	ParallelThreshold int
	// Each split is logged at debug level. Nil means no logging.
	Logger *zap.Logger
}

func NewDecomposer(tolerance float64) *Decomposer {
	return &Decomposer{
		Tolerance: tolerance,
		Resolver:  DefaultResolver(),
		Logger:    zap.NewNop(),
	}
}

// Decompose returns the approximate convex decomposition of poly. Any failure
// anywhere in the recursion fails the whole call; partial results are never
// returned.
func (d *Decomposer) Decompose(poly Polygon) (result PolygonList, err error) {
	defer func() {
		recoveredErr := HandleDecomposePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	if err := poly.Validate(); err != nil {
		return nil, err
	}
	if !isFinite(d.Tolerance) || d.Tolerance <= 0 {
		return nil, errors.Wrapf(ErrInvalidTolerance, "tolerance must be a positive number, got %v", d.Tolerance)
	}
	return d.decompose(poly, 0), nil
}

func (d *Decomposer) decompose(poly Polygon, depth int) PolygonList {
	hull, err := ConvexHull(poly)
	if err != nil {
		throw(err)
	}
	concavity := Concavity(poly, hull)
	notch, worst := concavity.Notch()
	if worst < d.Tolerance {
		return PolygonList{poly}
	}

	resolution, ok := d.Resolver.Resolve(poly, notch, concavity)
	if !ok {
		fatalf(ErrDecompositionFailure, "no diagonal resolves notch %v (concavity %g)", poly.Points[notch], worst)
	}
	// Assertion only: resolvesNotch already requires three vertices on each
	// side, which makes both halves smaller than their parent. It stays so a
	// change to the validity rules can't send the recursion in circles.
	if len(resolution.Outside.Points) >= len(poly.Points) || len(resolution.Inside.Points) >= len(poly.Points) {
		fatalf(ErrDecompositionFailure, "split at %v did not shrink a %d vertex polygon", poly.Points[notch], len(poly.Points))
	}
	d.logSplit(poly, resolution, worst, depth)

	if d.ParallelThreshold > 0 && len(poly.Points) >= d.ParallelThreshold {
		return d.decomposeConcurrently(resolution, depth+1)
	}
	result := d.decompose(resolution.Outside, depth+1)
	return append(result, d.decompose(resolution.Inside, depth+1)...)
}

func (d *Decomposer) decomposeConcurrently(resolution Resolution, depth int) PolygonList {
	var (
		g               errgroup.Group
		outside, inside PolygonList
	)
	d.goDecompose(&g, resolution.Outside, depth, &outside)
	d.goDecompose(&g, resolution.Inside, depth, &inside)
	if err := g.Wait(); err != nil {
		throw(err)
	}
	return append(outside, inside...)
}

// Panics don't cross goroutines, so each branch recovers its own and hands the
// error to the group.
func (d *Decomposer) goDecompose(g *errgroup.Group, poly Polygon, depth int, result *PolygonList) {
	g.Go(func() (err error) {
		defer func() {
			recoveredErr := HandleDecomposePanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()
		*result = d.decompose(poly, depth)
		return nil
	})
}

func (d *Decomposer) logSplit(poly Polygon, resolution Resolution, concavity float64, depth int) {
	if d.Logger == nil {
		return
	}
	ce := d.Logger.Check(zap.DebugLevel, "resolved notch")
	if ce == nil {
		return
	}
	// Branch names follow a polygon's point slice, so a child's name here
	// matches the polygon name on the child's own split line
	ce.Write(
		zap.String("polygon", dbg.Name(&poly.Points[0])),
		zap.String("outside", dbg.Name(&resolution.Outside.Points[0])),
		zap.String("inside", dbg.Name(&resolution.Inside.Points[0])),
		zap.Int("depth", depth),
		zap.Int("vertices", len(poly.Points)),
		zap.Stringer("notch", poly.Points[resolution.Notch]),
		zap.Stringer("diagonal", poly.Points[resolution.Diagonal]),
		zap.Float64("concavity", concavity),
		zap.Float64("score", resolution.Score),
	)
}

// Decompose runs a Decomposer with the default resolver.
func Decompose(poly Polygon, tolerance float64) (PolygonList, error) {
	return NewDecomposer(tolerance).Decompose(poly)
}

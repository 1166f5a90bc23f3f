package advanced

// A Resolver picks the diagonal that splits a polygon at its notch.
//
// Every other vertex is a candidate, scored as
//
//	(1 + ConcavityWeight*concavity) / (DistanceOffset + length)
//
// where concavity is the candidate's own score and length is the diagonal's.
// The search is greedy: it favours short diagonals that end at another concave
// vertex, and makes no attempt at a globally good decomposition.
type Resolver struct {
	ConcavityWeight float64
	// Keeps the score finite for very short diagonals.
	DistanceOffset float64
}

func DefaultResolver() Resolver {
	return Resolver{
		ConcavityWeight: 0.1,
		DistanceOffset:  1.0,
	}
}

func (r Resolver) Score(concavity, distance float64) float64 {
	return (1 + r.ConcavityWeight*concavity) / (r.DistanceOffset + distance)
}

// The outcome of resolving a notch. Notch and Diagonal are vertex indices in
// the polygon that was split; both vertices appear in both halves.
type Resolution struct {
	Notch, Diagonal int
	Score           float64
	Outside, Inside Polygon
}

// Resolve searches for the best scoring diagonal from the notch whose split is
// valid. A split is valid when:
//
//   - both halves have at least three vertices
//   - the diagonal runs inside the polygon: it touches no other vertex, crosses
//     no edge, and both halves keep the polygon's winding
//   - the notch is not reflex in either half
//
// Ties in score go to the candidate earliest in traversal order. ok is false
// when no candidate gives a valid split.
func (r Resolver) Resolve(poly Polygon, notch int, concavity ConcavityMap) (resolution Resolution, ok bool) {
	from := poly.Points[notch]
	for i, candidate := range poly.Points {
		if i == notch || candidate == from {
			continue
		}
		score := r.Score(concavity[i], Distance(from, candidate))
		if ok && score <= resolution.Score {
			continue
		}

		outside, inside := Split(poly, notch, i)
		if !resolvesNotch(poly, notch, i, outside, inside) {
			continue
		}
		resolution = Resolution{
			Notch:    notch,
			Diagonal: i,
			Score:    score,
			Outside:  outside,
			Inside:   inside,
		}
		ok = true
	}
	return resolution, ok
}

// Split cuts a polygon along the diagonal between vertices i and j. With lo
// and hi the smaller and larger index, inside is the run of vertices from lo to
// hi, and outside is everything before lo, then lo, then hi and everything
// after it. Both halves get fresh point slices and keep the parent's winding.
func Split(poly Polygon, i, j int) (outside, inside Polygon) {
	lo, hi := i, j
	if lo > hi {
		lo, hi = hi, lo
	}
	outsidePoints := make([]Point, 0, len(poly.Points)-(hi-lo)+1)
	outsidePoints = append(outsidePoints, poly.Points[:lo+1]...)
	outsidePoints = append(outsidePoints, poly.Points[hi:]...)

	insidePoints := make([]Point, hi-lo+1)
	copy(insidePoints, poly.Points[lo:hi+1])

	return Polygon{outsidePoints}, Polygon{insidePoints}
}

func resolvesNotch(poly Polygon, notch, diagonal int, outside, inside Polygon) bool {
	if len(outside.Points) < 3 || len(inside.Points) < 3 {
		return false
	}
	if !diagonalIsClear(poly, notch, diagonal) {
		return false
	}

	// Where the notch landed in each half
	outsideNotch, insideNotch := notch, 0
	if notch > diagonal {
		outsideNotch, insideNotch = diagonal+1, notch-diagonal
	}

	winding := poly.SignedArea()
	for _, half := range []struct {
		poly  Polygon
		notch int
	}{
		{outside, outsideNotch},
		{inside, insideNotch},
	} {
		// A diagonal running outside the polygon produces a half that winds
		// the other way
		if half.poly.SignedArea()*winding <= 0 {
			return false
		}
		if half.poly.IsReflex(half.notch) {
			return false
		}
	}
	return true
}

// Check that the segment between vertices i and j meets the polygon boundary
// only at its own endpoints.
func diagonalIsClear(poly Polygon, i, j int) bool {
	a, b := poly.Points[i], poly.Points[j]
	for k, p := range poly.Points {
		if k == i || k == j {
			continue
		}
		if onSegment(a, b, p) {
			return false
		}
		next := CircularIndex(k+1, len(poly.Points))
		if next == i || next == j {
			// Shares an endpoint with the diagonal, so it can only overlap it,
			// which the vertex check above catches
			continue
		}
		if segmentsCross(a, b, p, poly.Points[next]) {
			return false
		}
	}
	return true
}

package advanced

import (
	"math"
	"strconv"
)

// All angles here are compass style: degrees, measured clockwise from North
// (the +Y axis). The hull walk and the interior angle check both reduce to a
// single question, "how far clockwise must I turn to face that point?", which is
// answered by HeadingAdjustment.

const (
	degreesInCircle = 360
	straightAngle   = 180
)

func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Bearing of the ray from one point toward another, in [0, 360).
func Bearing(from, to Point) float64 {
	return normalizeDegrees(math.Atan2(to.X-from.X, to.Y-from.Y) * straightAngle / math.Pi)
}

// HeadingAdjustment returns the clockwise turn, in [0, 360), that takes a
// walker standing at from and facing heading to face to. The points must
// differ.
func HeadingAdjustment(heading float64, from, to Point) float64 {
	adjustment := normalizeDegrees(Bearing(from, to) - heading)
	// A point dead ahead can come out a hair short of a full turn
	if degreesInCircle-adjustment < Epsilon {
		return 0
	}
	return adjustment
}

// InteriorAngle at vertex, for a clockwise walk prev -> vertex -> next. A
// negative result means the walk turned left at vertex, so the interior angle
// there is reflex.
func InteriorAngle(prev, vertex, next Point) float64 {
	return straightAngle - HeadingAdjustment(Bearing(prev, vertex), vertex, next)
}

func normalizeDegrees(degrees float64) float64 {
	degrees = math.Mod(degrees, degreesInCircle)
	if degrees < 0 {
		degrees += degreesInCircle
	}
	// Adding a full circle to a tiny negative number rounds to exactly 360
	if degrees >= degreesInCircle {
		degrees -= degreesInCircle
	}
	return degrees
}

// Z component of (b - a) x (c - a). Positive when a, b, c turn
// counterclockwise.
func cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// Which side of the line through a and b the point p is on: 1 for left, -1 for
// right, 0 for (nearly) on the line.
func side(a, b, p Point) int {
	length := Distance(a, b)
	if length == 0 {
		return 0
	}
	offset := cross(a, b, p) / length
	switch {
	case offset > Epsilon:
		return 1
	case offset < -Epsilon:
		return -1
	}
	return 0
}

// Does p lie on the closed segment from a to b?
func onSegment(a, b, p Point) bool {
	if a == b {
		return p == a
	}
	if side(a, b, p) != 0 {
		return false
	}
	return p.X >= math.Min(a.X, b.X)-Epsilon && p.X <= math.Max(a.X, b.X)+Epsilon &&
		p.Y >= math.Min(a.Y, b.Y)-Epsilon && p.Y <= math.Max(a.Y, b.Y)+Epsilon
}

// Do segments ab and cd cross at a single point interior to both? Touching and
// collinear overlap are not crossings; callers check those with onSegment.
func segmentsCross(a, b, c, d Point) bool {
	return side(a, b, c)*side(a, b, d) < 0 && side(c, d, a)*side(c, d, b) < 0
}

func (p Point) String() string {
	return "(" + formatCoordinate(p.X) + ", " + formatCoordinate(p.Y) + ")"
}

func formatCoordinate(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

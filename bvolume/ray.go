package bvolume

import (
	"math"

	"github.com/golang/geo/r3"
)

// Ray is a half-line starting at Position and extending along Direction.
// Direction is expected to be unit length; callers must normalize it before
// querying, none of the methods renormalize.
type Ray struct {
	Position  r3.Vector
	Direction r3.Vector
}

// NewRay instantiates a new Ray.
func NewRay(position, direction r3.Vector) Ray {
	return Ray{Position: position, Direction: direction}
}

// IntersectsPoint returns the signed distance along the ray at which the point
// lies, negative if the point is behind Position. Points whose direction from
// Position deviates from the ray direction by more than DirectionThreshold
// (measured as 1-cos) yield NaN.
func (r Ray) IntersectsPoint(pt r3.Vector) float64 {
	diff := pt.Sub(r.Position)
	length := diff.Norm()
	if length == 0 {
		return 0
	}
	cos := r.Direction.Dot(diff) / length
	if 1-math.Abs(cos) > DirectionThreshold {
		return math.NaN()
	}
	return r.Direction.Dot(diff)
}

// IntersectsRay returns the distance along r to its intersection with the
// other ray. Identical rays intersect at 0. Parallel rays and skew rays whose
// closest points are further apart than DistanceThreshold yield NaN.
func (r Ray) IntersectsRay(other Ray) float64 {
	if r.Position == other.Position && r.Direction == other.Direction {
		return 0
	}
	cross := r.Direction.Cross(other.Direction)
	denom := cross.Norm2()
	if denom < DistanceThreshold {
		return math.NaN()
	}
	diff := other.Position.Sub(r.Position)
	dist := diff.Dot(other.Direction.Cross(cross)) / denom
	pt := r.Position.Add(r.Direction.Mul(dist))

	// The candidate point must lie on the other ray as well, in front of its
	// origin and aligned with its direction.
	toPt := pt.Sub(other.Position)
	if sep := toPt.Norm(); sep > DistanceThreshold {
		if 1-other.Direction.Dot(toPt)/sep > DistanceThreshold {
			return math.NaN()
		}
	}
	return dist
}

// IntersectsPlane returns the distance along the ray to the plane. Rays nearly
// parallel to the plane yield NaN, as do intersections behind Position by more
// than DistanceThreshold; within that slack the distance clamps to 0.
func (r Ray) IntersectsPlane(p Plane) float64 {
	denom := p.Normal.Dot(r.Direction)
	if math.Abs(denom) < DistanceThreshold {
		return math.NaN()
	}
	dist := (-p.Distance - p.Normal.Dot(r.Position)) / denom
	if dist < 0 {
		if dist < -DistanceThreshold {
			return math.NaN()
		}
		dist = 0
	}
	return dist
}

// IntersectsBox returns the distance along the ray to the box via the
// three-axis slab method, 0 if Position is inside the box, NaN on a miss.
func (r Ray) IntersectsBox(b BoundingBox) float64 {
	pos := [3]float64{r.Position.X, r.Position.Y, r.Position.Z}
	dir := [3]float64{r.Direction.X, r.Direction.Y, r.Direction.Z}
	min := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	max := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}

	dist := 0.0
	maxDist := math.MaxFloat64
	for i := 0; i < 3; i++ {
		if math.Abs(dir[i]) < DistanceThreshold {
			// Parallel to this slab: the ray must already lie within it.
			if pos[i] < min[i] || pos[i] > max[i] {
				return math.NaN()
			}
			continue
		}
		inv := 1 / dir[i]
		entry := (min[i] - pos[i]) * inv
		exit := (max[i] - pos[i]) * inv
		if entry > exit {
			entry, exit = exit, entry
		}
		dist = math.Max(dist, entry)
		maxDist = math.Min(maxDist, exit)
		if dist > maxDist {
			return math.NaN()
		}
	}
	return dist
}

// IntersectsSphere returns the distance along the ray to the near surface of
// the sphere, 0 if Position is inside or on the sphere, NaN on a miss.
func (r Ray) IntersectsSphere(s BoundingSphere) float64 {
	toCenter := s.Center.Sub(r.Position)
	radius2 := s.Radius * s.Radius
	if toCenter.Norm2() <= radius2 {
		return 0
	}
	proj := toCenter.Dot(r.Direction)
	if proj < 0 {
		return math.NaN()
	}
	perp2 := toCenter.Norm2() - proj*proj
	if perp2 > radius2 {
		return math.NaN()
	}
	return proj - math.Sqrt(radius2-perp2)
}

// IntersectsFrustum returns the distance along the ray to the frustum, 0 if
// Position is already inside it, NaN on a miss. The only error condition is a
// malformed frustum.
func (r Ray) IntersectsFrustum(f *BoundingFrustum) (float64, error) {
	if err := f.validate(); err != nil {
		return math.NaN(), err
	}
	if f.ContainsPoint(r.Position) != Disjoint {
		return 0, nil
	}

	// Clip the ray against each inward-facing plane, folding crossings into a
	// running [entry, exit] interval.
	entry := math.Inf(-1)
	exit := math.Inf(1)
	for _, p := range f.planes {
		signed := p.DotCoordinate(r.Position)
		denom := p.Normal.Dot(r.Direction)
		if math.Abs(denom) < DistanceThreshold {
			if signed < 0 {
				// Parallel to a plane with the origin on the outside.
				return math.NaN(), nil
			}
			continue
		}
		crossing := -signed / denom
		if denom > 0 {
			if crossing > entry {
				entry = crossing
			}
		} else {
			if crossing < exit {
				exit = crossing
			}
		}
		if entry > exit {
			return math.NaN(), nil
		}
	}

	dist := entry
	if dist < 0 {
		dist = exit
		if dist < 0 {
			return math.NaN(), nil
		}
	}
	return dist, nil
}

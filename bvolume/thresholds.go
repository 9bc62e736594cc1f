package bvolume

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/voxellab/spatial/utils"
)

// Tolerance policy for every epsilon decision in this package. Ray, Plane and
// BoundingBox all route through these two constants so the policy can be
// tested in isolation.
const (
	// DistanceThreshold bounds how far apart two positions may be while still
	// counting as coincident, and how small a divisor may get before a ray is
	// treated as parallel to a surface.
	DistanceThreshold = 1e-5

	// DirectionThreshold bounds angular deviation between two directions,
	// compared as 1 - cos(theta).
	DirectionThreshold = 1e-6

	// unitLengthEpsilon is the slack on squared length within which a normal
	// counts as already unit length and Normalized leaves it untouched.
	unitLengthEpsilon = 1e-6
)

func vecMin(a, b r3.Vector) r3.Vector {
	return r3.Vector{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
}

func vecMax(a, b r3.Vector) r3.Vector {
	return r3.Vector{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}

func vecClamp(v, min, max r3.Vector) r3.Vector {
	return r3.Vector{
		X: utils.Clamp(v.X, min.X, max.X),
		Y: utils.Clamp(v.Y, min.Y, max.Y),
		Z: utils.Clamp(v.Z, min.Z, max.Z),
	}
}

// Package bvolume implements pairwise intersection and containment queries
// between 3D bounding volumes: rays, planes, axis-aligned boxes, spheres and
// view frustums. All types are plain value types and every query is a pure
// function of its inputs, so independently held copies can be used from any
// number of goroutines without synchronization.
//
// Distance-returning queries report a miss as NaN; numeric degeneracies
// (parallel planes, zero-length normals) propagate NaN or Inf rather than
// returning errors. Errors are reserved for structurally invalid input, such
// as a malformed frustum or an empty point set.
package bvolume

// ContainmentType classifies how one bounding volume relates to another,
// ordered from no overlap to total overlap.
type ContainmentType int

// The three possible containment classifications. Intersects covers partial
// and boundary-touching overlap.
const (
	Disjoint ContainmentType = iota
	Intersects
	Contains
)

// String returns a human readable name for the containment classification.
func (c ContainmentType) String() string {
	switch c {
	case Disjoint:
		return "Disjoint"
	case Intersects:
		return "Intersects"
	case Contains:
		return "Contains"
	}
	return "Unknown"
}

// PlaneIntersectionType classifies a volume relative to a plane: entirely in
// the positive half-space (Front), entirely in the negative half-space (Back),
// or straddling the plane (Intersecting).
type PlaneIntersectionType int

// The three possible plane classifications.
const (
	Front PlaneIntersectionType = iota
	Back
	Intersecting
)

// String returns a human readable name for the plane classification.
func (p PlaneIntersectionType) String() string {
	switch p {
	case Front:
		return "Front"
	case Back:
		return "Back"
	case Intersecting:
		return "Intersecting"
	}
	return "Unknown"
}

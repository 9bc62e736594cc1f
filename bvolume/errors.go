package bvolume

import "github.com/pkg/errors"

var (
	// ErrMalformedFrustum is returned when a frustum reaches a query without
	// exactly 6 planes and 8 corners, e.g. a zero-value BoundingFrustum.
	ErrMalformedFrustum = errors.New("malformed frustum: must have exactly 6 planes and 8 corners")

	// ErrNoPoints is returned when a bounding volume is requested for an
	// empty point sequence.
	ErrNoPoints = errors.New("cannot build a bounding volume from an empty point sequence")
)

func newBadRadiusError(radius float64) error {
	return errors.Errorf("bounding sphere radius %f may not be negative", radius)
}

func newBadCornerBufferError(size, start int) error {
	return errors.Errorf("corner buffer of length %d with start index %d cannot hold %d corners", size, start, numBoxCorners)
}

func newSingularTransformError() error {
	return errors.Wrap(ErrMalformedFrustum, "view-projection transform is singular")
}

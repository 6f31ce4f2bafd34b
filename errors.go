package enclose

import "github.com/gogpu/enclose/internal/geom"

// Error kinds returned by Build. All of them are deterministic functions of
// the vertex list; retrying with the same input fails the same way.
type (
	// GeometryError reports an edge that is not axis-aligned.
	GeometryError = geom.GeometryError

	// UnreachableInteriorError reports a scan row whose boundary crossings
	// do not pair up, typically because edges overlap.
	UnreachableInteriorError = geom.UnreachableInteriorError

	// DegenerateInputError reports fewer than three distinct vertices.
	DegenerateInputError = geom.DegenerateInputError

	// CoordinateError reports a vertex coordinate outside [0, MaxCoordinate].
	CoordinateError = geom.CoordinateError
)

// Sentinel errors for use with errors.Is.
var (
	ErrGeometry            = geom.ErrGeometry
	ErrUnreachableInterior = geom.ErrUnreachableInterior
	ErrDegenerateInput     = geom.ErrDegenerateInput
	ErrCoordinate          = geom.ErrCoordinate
)

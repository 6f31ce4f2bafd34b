package geom

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by the typed errors below via errors.Is.
var (
	// ErrGeometry is matched by GeometryError.
	ErrGeometry = errors.New("enclose: geometry error")

	// ErrUnreachableInterior is matched by UnreachableInteriorError.
	ErrUnreachableInterior = errors.New("enclose: unreachable interior")

	// ErrDegenerateInput is matched by DegenerateInputError.
	ErrDegenerateInput = errors.New("enclose: degenerate input")

	// ErrCoordinate is matched by CoordinateError.
	ErrCoordinate = errors.New("enclose: coordinate out of domain")
)

// GeometryError is returned when an edge is not axis-aligned.
type GeometryError struct {
	Index    int
	From, To Vertex
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("enclose: edge %d from %v to %v is not axis-aligned", e.Index, e.From, e.To)
}

func (e *GeometryError) Is(target error) bool { return target == ErrGeometry }

// UnreachableInteriorError is returned when the seed scan finds a scan row
// whose boundary crossings do not pair up, so interior and exterior cannot
// be told apart.
type UnreachableInteriorError struct {
	Row       int
	Crossings int
}

func (e *UnreachableInteriorError) Error() string {
	return fmt.Sprintf("enclose: scan row %d crosses the boundary %d times, interior is unreachable", e.Row, e.Crossings)
}

func (e *UnreachableInteriorError) Is(target error) bool { return target == ErrUnreachableInterior }

// DegenerateInputError is returned for fewer than three distinct vertices.
type DegenerateInputError struct {
	Count int
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("enclose: need at least 3 vertices, got %d", e.Count)
}

func (e *DegenerateInputError) Is(target error) bool { return target == ErrDegenerateInput }

// CoordinateError is returned for a vertex coordinate outside
// [0, MaxCoordinate].
type CoordinateError struct {
	Index  int
	Vertex Vertex
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("enclose: vertex %d %v is outside [0, %d]", e.Index, e.Vertex, MaxCoordinate)
}

func (e *CoordinateError) Is(target error) bool { return target == ErrCoordinate }

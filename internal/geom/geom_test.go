package geom

import (
	"errors"
	"testing"
)

func TestEdgesClosesRing(t *testing.T) {
	vs := []Vertex{{0, 0}, {0, 5}, {5, 5}, {5, 0}}
	edges := Edges(vs)
	if len(edges) != 4 {
		t.Fatalf("len(Edges) = %d, want 4", len(edges))
	}
	last := edges[3]
	if last.From != (Vertex{5, 0}) || last.To != (Vertex{0, 0}) {
		t.Errorf("closing edge = %v -> %v, want (5,0) -> (0,0)", last.From, last.To)
	}
	if len(vs) != 4 {
		t.Errorf("Edges modified input length: %d", len(vs))
	}
}

func TestEdgeAligned(t *testing.T) {
	tests := []struct {
		name string
		e    Edge
		want bool
	}{
		{"horizontal", Edge{From: Vertex{0, 0}, To: Vertex{0, 7}}, true},
		{"vertical", Edge{From: Vertex{3, 2}, To: Vertex{9, 2}}, true},
		{"diagonal", Edge{From: Vertex{0, 0}, To: Vertex{1, 1}}, false},
		{"point", Edge{From: Vertex{4, 4}, To: Vertex{4, 4}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.Aligned(); got != tt.want {
				t.Errorf("Aligned() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	in := []Vertex{{0, 0}, {0, 0}, {0, 5}, {5, 5}, {5, 5}, {5, 0}, {0, 0}}
	got := Normalize(in)
	want := []Vertex{{0, 0}, {0, 5}, {5, 5}, {5, 0}}
	if len(got) != len(want) {
		t.Fatalf("Normalize() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Normalize()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if len(in) != 7 {
		t.Error("Normalize modified its input")
	}
}

func TestValidate(t *testing.T) {
	if err := Validate([]Vertex{{0, 0}, {0, 1}}); !errors.Is(err, ErrDegenerateInput) {
		t.Errorf("Validate(2 vertices) = %v, want ErrDegenerateInput", err)
	}

	err := Validate([]Vertex{{0, 0}, {0, -1}, {3, -1}})
	var ce *CoordinateError
	if !errors.As(err, &ce) {
		t.Fatalf("Validate(negative) = %v, want *CoordinateError", err)
	}
	if ce.Index != 1 {
		t.Errorf("CoordinateError.Index = %d, want 1", ce.Index)
	}

	err = Validate([]Vertex{{0, 0}, {0, MaxCoordinate}, {MaxCoordinate + 1, MaxCoordinate}})
	if !errors.As(err, &ce) || ce.Index != 2 {
		t.Errorf("Validate(too large) = %v, want *CoordinateError at index 2", err)
	}
	if err := Validate([]Vertex{{0, 0}, {0, MaxCoordinate}, {MaxCoordinate, MaxCoordinate}}); err != nil {
		t.Errorf("Validate(at MaxCoordinate) = %v, want nil", err)
	}

	if err := Validate([]Vertex{{0, 0}, {0, 1}, {1, 1}}); err != nil {
		t.Errorf("Validate(valid) = %v, want nil", err)
	}
}

func TestBounds(t *testing.T) {
	lo, hi := Bounds([]Vertex{{4, 10}, {0, 3}, {10, 0}})
	if lo != (Vertex{0, 0}) || hi != (Vertex{10, 10}) {
		t.Errorf("Bounds() = %v, %v; want (0,0), (10,10)", lo, hi)
	}
}

func TestErrorsMatchSentinels(t *testing.T) {
	tests := []struct {
		err  error
		want error
	}{
		{&GeometryError{Index: 2}, ErrGeometry},
		{&UnreachableInteriorError{Row: 3, Crossings: 1}, ErrUnreachableInterior},
		{&DegenerateInputError{Count: 1}, ErrDegenerateInput},
		{&CoordinateError{Index: 0}, ErrCoordinate},
	}
	for _, tt := range tests {
		if !errors.Is(tt.err, tt.want) {
			t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.want)
		}
		if errors.Is(tt.err, errors.New("other")) {
			t.Errorf("errors.Is(%v, other) = true", tt.err)
		}
	}
}

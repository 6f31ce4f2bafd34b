package enclose

import (
	"testing"

	"github.com/gogpu/enclose/internal/compact"
)

// TestDefaultOptions verifies the defaults used when Build gets no options.
func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.domainMax != compact.DefaultCeiling {
		t.Errorf("domainMax = %d, want %d", o.domainMax, compact.DefaultCeiling)
	}
	if o.workers != 1 {
		t.Errorf("workers = %d, want 1", o.workers)
	}
	if o.seed != SeedMiddleRow {
		t.Errorf("seed = %v, want %v", o.seed, SeedMiddleRow)
	}
}

// TestWithDomainMax tests that non-positive bounds keep the default.
func TestWithDomainMax(t *testing.T) {
	tests := []struct {
		in   int64
		want int64
	}{
		{500, 500},
		{0, compact.DefaultCeiling},
		{-7, compact.DefaultCeiling},
	}
	for _, tt := range tests {
		o := defaultOptions()
		WithDomainMax(tt.in)(&o)
		if o.domainMax != tt.want {
			t.Errorf("WithDomainMax(%d): domainMax = %d, want %d", tt.in, o.domainMax, tt.want)
		}
	}
}

// TestWithDomainMax_RaisedForVertices tests that a bound below the largest
// coordinate still leaves room for the exterior.
func TestWithDomainMax_RaisedForVertices(t *testing.T) {
	r, err := Build(square, WithDomainMax(3))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !r.Enclosed(Vertex{X: 0, Y: 0}, Vertex{X: 5, Y: 5}) {
		t.Error("square not enclosed with a small domain bound")
	}
	if r.Enclosed(Vertex{X: 0, Y: 0}, Vertex{X: 6, Y: 6}) {
		t.Error("tile (6,6) reported inside the square")
	}
}

func TestWithWorkers(t *testing.T) {
	o := defaultOptions()
	WithWorkers(0)(&o)
	if o.workers != 0 {
		t.Errorf("workers = %d, want 0", o.workers)
	}
	WithWorkers(8)(&o)
	if o.workers != 8 {
		t.Errorf("workers = %d, want 8", o.workers)
	}
}

func TestWithSeedStrategy(t *testing.T) {
	o := defaultOptions()
	WithSeedStrategy(SeedEveryRow)(&o)
	if o.seed != SeedEveryRow {
		t.Errorf("seed = %v, want %v", o.seed, SeedEveryRow)
	}
}

func TestParseSeedStrategy(t *testing.T) {
	tests := []struct {
		name    string
		want    SeedStrategy
		wantErr bool
	}{
		{"", SeedMiddleRow, false},
		{"middle", SeedMiddleRow, false},
		{"every-row", SeedEveryRow, false},
		{"diagonal", SeedMiddleRow, true},
	}
	for _, tt := range tests {
		got, err := ParseSeedStrategy(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSeedStrategy(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSeedStrategy(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

// TestOptionsCombined tests that options compose in order.
func TestOptionsCombined(t *testing.T) {
	r, err := Build(dumbbell,
		WithDomainMax(64),
		WithWorkers(2),
		WithSeedStrategy(SeedEveryRow),
	)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if r.workers != 2 {
		t.Errorf("workers = %d, want 2", r.workers)
	}
	if r.Stats().Seeds <= 1 {
		t.Errorf("Seeds = %d, want every-row seeding", r.Stats().Seeds)
	}
}

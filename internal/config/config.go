// Package config loads enclose run configurations from YAML.
//
// A configuration names the boundary either inline or through a points
// file, and carries the Build options and optional rendering settings:
//
//	domain_max: 100000
//	workers: -1
//	seed: every-row
//	vertices:
//	  - [0, 0]
//	  - [0, 5]
//	  - [5, 5]
//	  - [5, 0]
//	render:
//	  path: region.png
//	  scale: 8
//
// A points file holds one "x,y" pair per line. Blank lines and lines
// starting with '#' are skipped.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/enclose/internal/fill"
	"github.com/gogpu/enclose/internal/geom"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is one enclose run.
//
// Workers is the query goroutine count: 0 runs sequentially and a negative
// value uses GOMAXPROCS. A zero DomainMax keeps the library default.
type Config struct {
	DomainMax int64     `yaml:"domain_max"`
	Workers   int       `yaml:"workers"`
	Seed      string    `yaml:"seed"`
	Input     string    `yaml:"input"`
	Vertices  [][]int64 `yaml:"vertices"`
	Render    Render    `yaml:"render"`

	points []geom.Vertex
}

// Render controls the optional PNG output.
type Render struct {
	Path  string `yaml:"path"`
	Scale int    `yaml:"scale"`
}

// Load reads and validates the configuration at path. A relative Input is
// resolved against the directory of path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.Input != "" {
		in := cfg.Input
		if !filepath.IsAbs(in) {
			in = filepath.Join(filepath.Dir(path), in)
		}
		f, err := os.Open(in) //nolint:gosec // path comes from the configuration
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", in, err)
		}
		defer func() {
			_ = f.Close()
		}()
		if cfg.points, err = ReadPoints(f); err != nil {
			return nil, fmt.Errorf("%s: %w", in, err)
		}
	}
	return cfg, nil
}

// Parse decodes and validates a YAML configuration. Input is recorded but
// not read; use Load for that.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DomainMax < 0 {
		return fmt.Errorf("%w: domain_max %d is negative", ErrInvalid, c.DomainMax)
	}
	if _, err := fill.ParseStrategy(c.Seed); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Render.Scale < 0 {
		return fmt.Errorf("%w: render.scale %d is negative", ErrInvalid, c.Render.Scale)
	}
	if c.Input != "" && len(c.Vertices) > 0 {
		return fmt.Errorf("%w: both input and vertices are set", ErrInvalid)
	}
	c.points = make([]geom.Vertex, 0, len(c.Vertices))
	for i, v := range c.Vertices {
		if len(v) != 2 {
			return fmt.Errorf("%w: vertex %d has %d coordinates, want 2", ErrInvalid, i, len(v))
		}
		c.points = append(c.points, geom.Vertex{X: v[0], Y: v[1]})
	}
	return nil
}

// Points returns the boundary vertices, from the points file when Input is
// set and from Vertices otherwise.
func (c *Config) Points() []geom.Vertex {
	return c.points
}

// SetPoints replaces the boundary vertices.
func (c *Config) SetPoints(vs []geom.Vertex) {
	c.points = vs
}

// Strategy parses Seed. Parse has already validated it, but callers may
// override Seed afterwards.
func (c *Config) Strategy() (fill.Strategy, error) {
	s, err := fill.ParseStrategy(c.Seed)
	if err != nil {
		return s, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return s, nil
}

// ReadPoints parses "x,y" lines.
func ReadPoints(r io.Reader) ([]geom.Vertex, error) {
	var out []geom.Vertex
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		xs, ys, ok := strings.Cut(text, ",")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q is not an x,y pair", ErrInvalid, line, text)
		}
		x, err := strconv.ParseInt(strings.TrimSpace(xs), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInvalid, line, err)
		}
		y, err := strconv.ParseInt(strings.TrimSpace(ys), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInvalid, line, err)
		}
		out = append(out, geom.Vertex{X: x, Y: y})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Command enclose finds the largest rectangle spanned by two boundary
// vertices that lies entirely inside a rectilinear region.
//
// The boundary comes from a YAML configuration (-config) or a points file
// with one "x,y" pair per line (-input). Flags override the configuration.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/enclose"
	"github.com/gogpu/enclose/internal/config"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML run configuration")
		input      = flag.String("input", "", "points file with one x,y pair per line")
		workers    = flag.Int("workers", 0, "query goroutines; negative uses GOMAXPROCS, 0 keeps the configured value")
		seed       = flag.String("seed", "", "seed strategy: middle or every-row")
		output     = flag.String("png", "", "write a rendering of the region to this PNG file")
		scale      = flag.Int("scale", 0, "pixels per grid cell in the rendering")
		verbose    = flag.Bool("v", false, "log pipeline diagnostics to stderr")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	enclose.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := loadConfig(*configPath, *input)
	if err != nil {
		log.Fatalf("Failed to load input: %v", err)
	}
	if *workers != 0 {
		cfg.Workers = *workers
	}
	if *seed != "" {
		cfg.Seed = *seed
	}
	if *output != "" {
		cfg.Render.Path = *output
	}
	if *scale > 0 {
		cfg.Render.Scale = *scale
	}

	strategy, err := cfg.Strategy()
	if err != nil {
		log.Fatalf("Invalid seed strategy: %v", err)
	}
	opts := []enclose.Option{enclose.WithSeedStrategy(strategy)}
	if cfg.DomainMax > 0 {
		opts = append(opts, enclose.WithDomainMax(cfg.DomainMax))
	}
	if cfg.Workers != 0 {
		opts = append(opts, enclose.WithWorkers(cfg.Workers))
	}

	region, err := enclose.Build(cfg.Points(), opts...)
	if err != nil {
		log.Fatalf("Failed to build region: %v", err)
	}

	unconstrained := region.MaxArea()
	enclosed := region.MaxEnclosedArea()

	p := message.NewPrinter(language.English)
	stats := region.Stats()
	p.Printf("grid:       %d x %d cells (%d walls, %d filled)\n", stats.Rows, stats.Cols, stats.Walls, stats.Filled)
	p.Printf("max area:   %d  %v-%v\n", unconstrained.Area, unconstrained.A, unconstrained.B)
	if enclosed.Found {
		p.Printf("enclosed:   %d  %v-%v\n", enclosed.Area, enclosed.A, enclosed.B)
	} else {
		p.Printf("enclosed:   none\n")
	}

	if cfg.Render.Path != "" {
		if err := region.SavePNG(cfg.Render.Path, max(cfg.Render.Scale, 1), &enclosed); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Rendering saved to %s\n", cfg.Render.Path)
	}
}

// loadConfig reads the YAML configuration if one is given, and the points
// file if one is given. At least one of them is required.
func loadConfig(path, input string) (*config.Config, error) {
	if path == "" && input == "" {
		flag.Usage()
		os.Exit(2)
	}
	cfg := &config.Config{}
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	if input != "" {
		f, err := os.Open(input) //nolint:gosec // path is user-provided intentionally
		if err != nil {
			return nil, err
		}
		defer func() {
			_ = f.Close()
		}()
		points, err := config.ReadPoints(f)
		if err != nil {
			return nil, err
		}
		cfg.SetPoints(points)
	}
	return cfg, nil
}

package config

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/algoviz/internal/catalog"
	"github.com/san-kum/algoviz/internal/graph"
)

const (
	DefaultAlgorithm = "bubble"
	DefaultSize      = 15
	DefaultMinValue  = 5
	DefaultMaxValue  = 100
	DefaultTarget    = 40.0
	DefaultSpeed     = 250 * time.Millisecond
	DefaultTheme     = "dark"

	// MaxSize caps the array length. Bubble sort records O(n²) snapshots of
	// n values each.
	MaxSize = 64
)

var ErrInvalidConfig = errors.New("config: invalid config")

// Config is one algorithm selection plus its input. An empty Array is
// filled with Size random values drawn from Seed.
type Config struct {
	Algorithm string           `yaml:"algorithm" toml:"algorithm" json:"algorithm"`
	Array     []float64        `yaml:"array,omitempty" toml:"array,omitempty" json:"array,omitempty"`
	Size      int              `yaml:"size" toml:"size" json:"size"`
	Seed      uint64           `yaml:"seed" toml:"seed" json:"seed"`
	Target    *float64         `yaml:"target,omitempty" toml:"target,omitempty" json:"target,omitempty"`
	Start     string           `yaml:"start" toml:"start" json:"start"`
	End       string           `yaml:"end" toml:"end" json:"end"`
	Speed     Duration         `yaml:"speed" toml:"speed" json:"speed"`
	Weights   []WeightOverride `yaml:"weights,omitempty" toml:"weights,omitempty" json:"weights,omitempty"`
	Theme     string           `yaml:"theme" toml:"theme" json:"theme"`
}

// WeightOverride replaces the weight of one demo graph edge. Endpoints are
// labels or numeric ids.
type WeightOverride struct {
	From   string  `yaml:"from" toml:"from" json:"from"`
	To     string  `yaml:"to" toml:"to" json:"to"`
	Weight float64 `yaml:"weight" toml:"weight" json:"weight"`
}

func DefaultConfig() *Config {
	target := DefaultTarget
	return &Config{
		Algorithm: DefaultAlgorithm,
		Size:      DefaultSize,
		Seed:      1,
		Target:    &target,
		Start:     "A",
		End:       "F",
		Speed:     Duration(DefaultSpeed),
		Theme:     DefaultTheme,
	}
}

// Load reads a YAML or TOML file, chosen by extension, over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if isTOML(path) {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	var (
		data []byte
		err  error
	)
	if isTOML(path) {
		var b strings.Builder
		err = toml.NewEncoder(&b).Encode(cfg)
		data = []byte(b.String())
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func (c *Config) Validate() error {
	if c.Algorithm == "" {
		return fmt.Errorf("%w: algorithm is required", ErrInvalidConfig)
	}
	if len(c.Array) == 0 && c.Size < 0 {
		return fmt.Errorf("%w: size must not be negative", ErrInvalidConfig)
	}
	if len(c.Array) == 0 && c.Size > MaxSize {
		return fmt.Errorf("%w: size %d exceeds %d", ErrInvalidConfig, c.Size, MaxSize)
	}
	if len(c.Array) > MaxSize {
		return fmt.Errorf("%w: array has %d values, at most %d allowed", ErrInvalidConfig, len(c.Array), MaxSize)
	}
	if c.Speed < 0 {
		return fmt.Errorf("%w: speed must not be negative", ErrInvalidConfig)
	}
	return nil
}

// Values returns the configured array, or a seeded random one.
func (c *Config) Values() []float64 {
	if len(c.Array) > 0 {
		return append([]float64(nil), c.Array...)
	}
	if c.Size <= 0 {
		return nil
	}
	rng := rand.New(rand.NewPCG(c.Seed, c.Seed))
	out := make([]float64, c.Size)
	for i := range out {
		out[i] = float64(DefaultMinValue + rng.IntN(DefaultMaxValue-DefaultMinValue+1))
	}
	return out
}

// Graph is the demo graph with the weight overrides applied.
func (c *Config) Graph() (graph.Graph, error) {
	g := graph.Default()
	for _, w := range c.Weights {
		from, err := g.Resolve(w.From)
		if err != nil {
			return graph.Graph{}, err
		}
		to, err := g.Resolve(w.To)
		if err != nil {
			return graph.Graph{}, err
		}
		if g, err = g.WithWeight(from, to, w.Weight); err != nil {
			return graph.Graph{}, err
		}
	}
	return g, nil
}

// Request resolves the config into a catalog request.
func (c *Config) Request() (catalog.Request, error) {
	if err := c.Validate(); err != nil {
		return catalog.Request{}, err
	}
	g, err := c.Graph()
	if err != nil {
		return catalog.Request{}, err
	}
	start, end := graph.DefaultStart, graph.DefaultEnd
	if c.Start != "" {
		if start, err = g.Resolve(c.Start); err != nil {
			return catalog.Request{}, fmt.Errorf("start: %w", err)
		}
	}
	if c.End != "" {
		if end, err = g.Resolve(c.End); err != nil {
			return catalog.Request{}, fmt.Errorf("end: %w", err)
		}
	}
	req := catalog.Request{
		Algorithm: c.Algorithm,
		Values:    c.Values(),
		Graph:     &g,
		Start:     start,
		End:       end,
	}
	if c.Target != nil {
		t := *c.Target
		req.Target = &t
	}
	return req, nil
}

// Duration is a time.Duration written as "250ms" in config files.
type Duration time.Duration

func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return fmt.Errorf("%w: speed %q", ErrInvalidConfig, b)
	}
	*d = Duration(v)
	return nil
}

package timeseries

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/convforge/convcast/pkg/errors"
)

// SineOption configures GenerateSine.
type SineOption func(*sineConfig)

type sineConfig struct {
	amplitude float64
	cycles    float64
	noiseStd  float64
	seed      uint64
}

// WithAmplitude sets the sine amplitude (default 1).
func WithAmplitude(a float64) SineOption {
	return func(c *sineConfig) {
		c.amplitude = a
	}
}

// WithCycles sets how many full periods the series spans (default 8).
func WithCycles(cycles float64) SineOption {
	return func(c *sineConfig) {
		c.cycles = cycles
	}
}

// WithNoise sets the standard deviation of the additive Gaussian noise.
// Zero (the default) produces a clean sine wave.
func WithNoise(std float64) SineOption {
	return func(c *sineConfig) {
		c.noiseStd = std
	}
}

// WithSeed sets the seed for the noise source. Series generated with the same
// options and seed are identical.
func WithSeed(seed uint64) SineOption {
	return func(c *sineConfig) {
		c.seed = seed
	}
}

// GenerateSine creates a synthetic Series of n points sampled from a sine
// wave with optional additive Gaussian noise. Noise is drawn from a seeded
// PCG source, so generation is deterministic for a fixed seed.
func GenerateSine(n int, opts ...SineOption) (*Series, error) {
	if n <= 0 {
		return nil, errors.NewValidationError("n", "must be positive", n)
	}

	cfg := &sineConfig{
		amplitude: 1.0,
		cycles:    8.0,
		noiseStd:  0,
		seed:      1,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.noiseStd < 0 {
		return nil, errors.NewValidationError("noise_std", "must be non-negative", cfg.noiseStd)
	}

	values := make([]float64, n)
	step := 2 * math.Pi * cfg.cycles / float64(n)
	for i := range values {
		values[i] = cfg.amplitude * math.Sin(float64(i)*step)
	}

	if cfg.noiseStd > 0 {
		noise := distuv.Normal{
			Mu:    0,
			Sigma: cfg.noiseStd,
			Src:   rand.NewPCG(cfg.seed, cfg.seed),
		}
		for i := range values {
			values[i] += noise.Rand()
		}
	}

	return &Series{values: values}, nil
}

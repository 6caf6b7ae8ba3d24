package minimax

import (
	"time"

	"github.com/chewxy/math32"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

const (
	DefaultMaxDepth = 4
	// MaxSearchDepth bounds the recursion. The tree is kept in memory, so deep
	// searches are limited by the arena long before the stack.
	MaxSearchDepth = 10
)

// Config is the structure to configure the search.
type Config struct {
	// MaxDepth is the number of plies to look ahead. 0 makes the root a leaf;
	// SelectMove still looks one ply ahead in that case.
	MaxDepth int `json:"max_depth"`
	// Timeout bounds a single search. Nodes reached after it expires are
	// evaluated as leaves. 0 means no limit.
	Timeout time.Duration `json:"timeout"`
	Weights Weights       `json:"weights"`
	// Trace records every node visit in the execution log.
	Trace bool `json:"trace"`
}

func DefaultConfig() Config {
	return Config{
		MaxDepth: DefaultMaxDepth,
		Weights:  DefaultWeights(),
	}
}

// Validate reports every problem with the configuration.
func (c Config) Validate() error {
	var errs error
	if c.MaxDepth < 0 || c.MaxDepth > MaxSearchDepth {
		errs = multierror.Append(errs, errors.Errorf("max_depth %d out of range [0, %d]", c.MaxDepth, MaxSearchDepth))
	}
	if c.Timeout < 0 {
		errs = multierror.Append(errs, errors.Errorf("negative timeout %v", c.Timeout))
	}
	for i, w := range c.Weights.vector() {
		if math32.IsNaN(w) || math32.IsInf(w, 0) {
			errs = multierror.Append(errs, errors.Errorf("weight %d is not finite", i))
		}
	}
	return errs
}

func (c Config) IsValid() bool { return c.Validate() == nil }

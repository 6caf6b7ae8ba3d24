package alphareversi

import (
	"encoding/json"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/alphareversi/game"
	"github.com/alphareversi/minimax"
)

// AgentKind selects how an agent picks its moves.
type AgentKind string

const (
	MinimaxAgent AgentKind = "minimax"
	RandomAgent  AgentKind = "random"
)

// AgentConfig describes a single player.
type AgentConfig struct {
	Name   string         `json:"name"`
	Kind   AgentKind      `json:"kind"`
	Search minimax.Config `json:"search"`
}

// Config for a tournament between two agents.
type Config struct {
	Name string      `json:"name"`
	A    AgentConfig `json:"a"`
	B    AgentConfig `json:"b"`

	Games       int `json:"games"`
	Concurrency int `json:"concurrency"`
	// RandomOpening is the number of plies played at random before the agents take over.
	RandomOpening int `json:"random_opening"`
}

func DefaultAgentConfig(name string, depth int) AgentConfig {
	conf := minimax.DefaultConfig()
	conf.MaxDepth = depth
	return AgentConfig{
		Name:   name,
		Kind:   MinimaxAgent,
		Search: conf,
	}
}

func DefaultConfig() Config {
	return Config{
		Name:        "Alphareversi",
		A:           DefaultAgentConfig("A", minimax.DefaultMaxDepth),
		B:           DefaultAgentConfig("B", 2),
		Games:       10,
		Concurrency: 1,
	}
}

// Validate reports every problem with the agent configuration.
func (c AgentConfig) Validate() error {
	var errs error
	switch c.Kind {
	case MinimaxAgent:
		if err := c.Search.Validate(); err != nil {
			errs = multierror.Append(errs, errors.WithMessagef(err, "agent %q", c.Name))
		}
	case RandomAgent:
	default:
		errs = multierror.Append(errs, errors.Errorf("agent %q: unknown kind %q", c.Name, c.Kind))
	}
	return errs
}

// Validate reports every problem with the configuration.
func (c Config) Validate() error {
	var errs error
	if err := c.A.Validate(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err := c.B.Validate(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if c.A.Name == c.B.Name {
		errs = multierror.Append(errs, errors.Errorf("agents must have distinct names, both are %q", c.A.Name))
	}
	if c.Games < 1 {
		errs = multierror.Append(errs, errors.Errorf("games must be positive, got %d", c.Games))
	}
	if c.Concurrency < 1 {
		errs = multierror.Append(errs, errors.Errorf("concurrency must be positive, got %d", c.Concurrency))
	}
	if c.RandomOpening < 0 || c.RandomOpening > game.NumTiles {
		errs = multierror.Append(errs, errors.Errorf("random_opening %d out of range", c.RandomOpening))
	}
	return errs
}

// LoadConfig reads a JSON configuration. Fields missing from the file keep their defaults.
func LoadConfig(filename string) (Config, error) {
	conf := DefaultConfig()
	f, err := os.Open(filename)
	if err != nil {
		return conf, errors.WithStack(err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&conf); err != nil {
		return conf, errors.Wrapf(err, "decode %s", filename)
	}
	if err := conf.Validate(); err != nil {
		return conf, errors.WithMessagef(err, "invalid config %s", filename)
	}
	return conf, nil
}

// Searcher is anything that can pick a move. It returns game.NoMove to pass.
type Searcher interface {
	SelectMove(b game.Board, p game.Player) game.Move
}

// ExecLogger is anything that can return the execution log.
type ExecLogger interface {
	Log() string
}

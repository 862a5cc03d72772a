// Package searchlab compares plain minimax with alpha-beta pruning on a
// complete binary game tree.
package searchlab

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/searchlab/game"
)

// Validate reports every problem with the configuration at once.
func (c Config) Validate() error {
	var errs error
	if c.Depth < 1 || c.Depth > game.MaxDepth || len(c.Leaves) != 1<<c.Depth {
		errs = multierror.Append(errs, &game.ConfigError{Depth: c.Depth, Leaves: len(c.Leaves)})
	}
	if len(c.Leaves) == 0 {
		errs = multierror.Append(errs, errors.New("no leaves given"))
	}
	return errs
}

// New arena for the configured tree. Nothing is searched until Play is called.
func New(conf Config) (*Arena, error) {
	if err := conf.Validate(); err != nil {
		return nil, errors.WithMessage(err, "invalid configuration")
	}
	t, err := game.NewTree(conf.Depth, conf.Leaves)
	if err != nil {
		return nil, err
	}
	a := MakeArena(t, conf.Name, conf.Trace)
	return &a, nil
}

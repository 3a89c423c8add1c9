// Package builder: dataset validation.
//
// Validate collects every problem rather than stopping at the first, so a
// hand-edited dataset can be fixed in one pass.
package builder

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/katalvlaran/adjgraph/core"
)

// Validate checks ds against the graph's construction rules:
//   - resolved capacity in [1, core.MaxCapacity]
//   - resolved capacity ≥ len(Vertices)
//   - Kind is Undirected or Directed
//   - no repeated payload, when WithUniquePayloads is set
//
// Edges naming absent payloads are not a validation error; Build handles them.
//
// The returned error combines all findings (go.uber.org/multierr); use
// multierr.Errors to list them and errors.Is to test for a sentinel.
func Validate(ds *Dataset, opts ...BuilderOption) error {
	if ds == nil {
		return ErrNilDataset
	}
	cfg := newBuilderConfig(opts...)

	var errs error
	capacity := ds.EffectiveCapacity()
	if capacity < 1 || capacity > core.MaxCapacity {
		errs = multierr.Append(errs, fmt.Errorf("%w: %d not in [1, %d]", ErrBadCapacity, capacity, core.MaxCapacity))
	}
	if capacity < len(ds.Vertices) {
		errs = multierr.Append(errs, fmt.Errorf("%w: %d vertices exceed capacity %d", ErrBadCapacity, len(ds.Vertices), capacity))
	}
	if ds.Kind != core.Undirected && ds.Kind != core.Directed {
		errs = multierr.Append(errs, fmt.Errorf("%w: %s", core.ErrUnknownKind, ds.Kind))
	}
	if cfg.uniquePayloads {
		errs = multierr.Append(errs, validateUnique(ds.Vertices))
	}

	return errs
}

// validateUnique reports each repeated payload once, with its first two slots.
func validateUnique(vertices []int) error {
	var errs error
	first := make(map[int]int, len(vertices))
	reported := make(map[int]bool)
	for i, v := range vertices {
		j, seen := first[v]
		if !seen {
			first[v] = i
			continue
		}
		if reported[v] {
			continue
		}
		reported[v] = true
		errs = multierr.Append(errs, fmt.Errorf("%w: %d at slots %d and %d", ErrDuplicatePayload, v, j, i))
	}

	return errs
}

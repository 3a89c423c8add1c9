// SPDX-License-Identifier: MIT
// Package: adjgraph/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached by wrapping (%w or pkg/errors.Wrapf), never by
//     formatting parameters into the sentinel itself.
//   • Validate reports every problem at once (multierr); errors.Is still
//     matches each wrapped sentinel.

package builder

import "errors"

// ErrNilDataset indicates Build or Validate received a nil *Dataset.
var ErrNilDataset = errors.New("builder: nil dataset")

// ErrUnsupportedFormat indicates a dataset file extension or Format value
// with no decoder.
var ErrUnsupportedFormat = errors.New("builder: unsupported dataset format")

// ErrMalformedEdge indicates an edge entry that is not exactly two payloads.
var ErrMalformedEdge = errors.New("builder: malformed edge")

// ErrBadCapacity indicates a capacity below 1 or below the vertex count.
var ErrBadCapacity = errors.New("builder: bad capacity")

// ErrDuplicatePayload indicates two vertices share a payload while
// WithUniquePayloads is in effect.
var ErrDuplicatePayload = errors.New("builder: duplicate payload")

// ErrUnresolvedEdge indicates, under WithStrictEdges, an edge naming a payload
// no vertex holds.
var ErrUnresolvedEdge = errors.New("builder: unresolved edge")

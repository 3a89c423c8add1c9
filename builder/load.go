// SPDX-License-Identifier: MIT
// Package: adjgraph/builder
//
// load.go: dataset decoding from YAML and HCL.
//
// Both formats share one on-disk shape (name, kind, capacity, vertices,
// edges as two-element lists) and are normalised through fileDataset so the
// two decoders cannot drift apart. Unknown keys are rejected by both.

package builder

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/adjgraph/core"
)

// Format names a dataset encoding.
type Format string

// Supported dataset formats.
const (
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

// FormatFromPath picks a Format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".hcl":
		return FormatHCL, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// fileDataset is the shared on-disk shape.
type fileDataset struct {
	Name     string  `yaml:"name" hcl:"name,optional"`
	Kind     string  `yaml:"kind" hcl:"kind,optional"`
	Capacity int     `yaml:"capacity" hcl:"capacity,optional"`
	Vertices []int   `yaml:"vertices" hcl:"vertices"`
	Edges    [][]int `yaml:"edges" hcl:"edges,optional"`
}

// LoadFile reads and decodes the dataset at path. The format follows the
// extension (see FormatFromPath). An empty name defaults to the file's base
// name without extension.
func LoadFile(path string) (*Dataset, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "read dataset %s", path)
	}

	ds, err := decode(format, data, path)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "load dataset %s", path)
	}
	if ds.Name == "" {
		ds.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return ds, nil
}

// Decode parses data in the given format.
func Decode(format Format, data []byte) (*Dataset, error) {
	return decode(format, data, "dataset."+string(format))
}

func decode(format Format, data []byte, filename string) (*Dataset, error) {
	var raw fileDataset

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// Empty input is an empty dataset; Build rejects it on capacity.
		if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
			return nil, pkgerrors.Wrap(err, "decode yaml")
		}
	case FormatHCL:
		file, diags := hclparse.NewParser().ParseHCL(data, filename)
		if diags.HasErrors() {
			return nil, pkgerrors.Wrap(diags, "parse hcl")
		}
		if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
			return nil, pkgerrors.Wrap(diags, "decode hcl")
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return raw.toDataset()
}

// toDataset converts the on-disk shape, rejecting unknown kinds and edges
// that are not exactly two payloads.
func (f *fileDataset) toDataset() (*Dataset, error) {
	kind, err := core.ParseKind(f.Kind)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "kind %q", f.Kind)
	}

	ds := &Dataset{
		Name:     f.Name,
		Kind:     kind,
		Capacity: f.Capacity,
		Vertices: append([]int(nil), f.Vertices...),
		Edges:    make([]Pair, 0, len(f.Edges)),
	}
	for i, e := range f.Edges {
		if len(e) != 2 {
			return nil, fmt.Errorf("%w: edges[%d] has %d payloads", ErrMalformedEdge, i, len(e))
		}
		ds.Edges = append(ds.Edges, Pair{Start: e[0], End: e[1]})
	}

	return ds, nil
}

// Package plotfile reads YAML plot documents.
//
// A document describes one figure: its options (title, grid, output, fill,
// range, labels, tics) and a non-empty list of series. The gplot command
// line tool renders documents to script text or plots them on a live
// session.
//
// Unlike the plot package, which passes values through to the engine
// unchecked, this package validates everything it reads. Documents come
// from files written by hand, so unknown fields, unknown colors, malformed
// ranges and mismatched series payloads are all reported as errors instead
// of being handed to the engine.
package plotfile

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is a parsed plot document. Nil option fields were absent from
// the source.
type Document struct {
	Title  string       `yaml:"title,omitempty"`
	Grid   bool         `yaml:"grid,omitempty"`
	Output *OutputSpec  `yaml:"output,omitempty"`
	Fill   *FillSpec    `yaml:"fill,omitempty"`
	Range  *RangeSpec   `yaml:"range,omitempty"`
	Labels *LabelsSpec  `yaml:"labels,omitempty"`
	Tics   *TicsSpec    `yaml:"tics,omitempty"`
	Series []SeriesSpec `yaml:"series"`
}

// OutputSpec names the terminal the figure is drawn on. File-backed
// terminals (png, eps) require a file name; screen terminals forbid one.
type OutputSpec struct {
	Terminal string `yaml:"terminal"`
	File     string `yaml:"file,omitempty"`
	Font     string `yaml:"font,omitempty"`
}

// FillSpec selects a fill style, either "solid" or "pattern" with a
// pattern index.
type FillSpec struct {
	Style   string `yaml:"style"`
	Pattern int    `yaml:"pattern,omitempty"`
}

// RangeSpec fixes the plotted range of the named axes. Bounds are pointers
// so that absent and zero can be told apart: the axes named by Axis must
// have both of their bounds present.
type RangeSpec struct {
	Axis string   `yaml:"axis"`
	XMin *float64 `yaml:"xmin,omitempty"`
	XMax *float64 `yaml:"xmax,omitempty"`
	YMin *float64 `yaml:"ymin,omitempty"`
	YMax *float64 `yaml:"ymax,omitempty"`
}

// LabelsSpec sets the axis labels.
type LabelsSpec struct {
	X string `yaml:"x,omitempty"`
	Y string `yaml:"y,omitempty"`
}

// TicsSpec places explicit tic labels on the axes.
type TicsSpec struct {
	X       []string `yaml:"x,omitempty"`
	XRotate int      `yaml:"xrotate,omitempty"`
	Y       []string `yaml:"y,omitempty"`
	YRotate int      `yaml:"yrotate,omitempty"`
}

// SeriesSpec describes one series. Exactly one payload field (expr, values
// or points) must be set, and the style decides which payloads are legal:
// function expressions suit lines and points, histograms take values only.
type SeriesSpec struct {
	Style  string      `yaml:"style"`
	Title  string      `yaml:"title,omitempty"`
	Color  string      `yaml:"color,omitempty"`
	Weight int         `yaml:"weight,omitempty"`
	Fill   *FillSpec   `yaml:"fill,omitempty"`
	Expr   string      `yaml:"expr,omitempty"`
	Values []float64   `yaml:"values,omitempty"`
	Points [][]float64 `yaml:"points,omitempty"`
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plot document: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a document from YAML. Decoding is strict: fields not part
// of the schema are errors.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

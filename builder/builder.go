// Package builder turns a raw description value into a model.Document.
//
// There are two entry paths. Plain strings go through the heuristic
// classifier in package layout. Block trees are already typed, so each node
// is dispatched on its declared style, list kind and marks. Neither path
// fails: content the builder cannot interpret degrades to plain paragraphs
// and is reported as a [Warning].
package builder

import (
	"fmt"

	"github.com/tsawler/richtext/layout"
	"github.com/tsawler/richtext/model"
)

// Warning describes content that was degraded or dropped while building
type Warning struct {
	// Path locates the offending node, e.g. "[2]" or "[2].children[0]".
	// Empty for string input.
	Path string

	// Message is a human-readable description
	Message string
}

// String formats the warning as "path: message"
func (w Warning) String() string {
	if w.Path == "" {
		return w.Message
	}
	return fmt.Sprintf("%s: %s", w.Path, w.Message)
}

// Config holds builder configuration
type Config struct {
	// Classifier configures the plain-string path
	Classifier layout.ClassifierConfig
}

// DefaultConfig returns the default builder configuration
func DefaultConfig() Config {
	return Config{
		Classifier: layout.DefaultClassifierConfig(),
	}
}

// Builder builds documents from raw values. A Builder is immutable and safe
// for concurrent use.
type Builder struct {
	config     Config
	classifier *layout.Classifier
}

// New creates a builder with default configuration
func New() *Builder {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a builder with custom configuration
func NewWithConfig(config Config) *Builder {
	return &Builder{
		config:     config,
		classifier: layout.NewClassifierWithConfig(config.Classifier),
	}
}

// Classifier returns the classifier used for plain strings
func (b *Builder) Classifier() *layout.Classifier {
	return b.classifier
}

// Build converts raw into a document. Absent or empty input yields an empty
// document.
func (b *Builder) Build(raw model.RawValue) model.Document {
	doc, _ := b.BuildWithWarnings(raw)
	return doc
}

// BuildWithWarnings is like Build but also reports degraded content
func (b *Builder) BuildWithWarnings(raw model.RawValue) (model.Document, []Warning) {
	if model.IsEmptyRaw(raw) {
		return nil, nil
	}

	switch v := raw.(type) {
	case model.PlainString:
		return b.classifier.ClassifyText(string(v)), nil
	case model.BlockTree:
		tb := &treeBuilder{}
		return tb.build(v), tb.warnings
	}
	return nil, nil
}

var defaultBuilder = New()

// Build converts raw with the default builder
func Build(raw model.RawValue) model.Document {
	return defaultBuilder.Build(raw)
}

// BuildWithWarnings converts raw with the default builder
func BuildWithWarnings(raw model.RawValue) (model.Document, []Warning) {
	return defaultBuilder.BuildWithWarnings(raw)
}

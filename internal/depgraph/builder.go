// Package depgraph builds a file-level dependency graph from static
// imports and flattens it into a reading order that places referenced
// files ahead of the files that reference them.
package depgraph

import (
	"path"
	"slices"
	"strings"

	"github.com/dominikbraun/graph"

	"codeorder/internal/parser"
)

// DefaultExtension is the source extension recognized by default.
const DefaultExtension = ".java"

// ProgressReporter reports progress while the graph is being built.
type ProgressReporter interface {
	OnBuildStart(totalFiles int)
	OnFileIndexed(processed, totalFiles int, filePath string)
	OnBuildComplete(nodeCount, edgeCount int)
}

// Builder constructs the dependency graph for one set of source files.
// A Builder is stateless across Build calls and safe to reuse.
type Builder struct {
	parser   *parser.Parser
	ext      string
	progress ProgressReporter
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithExtension overrides the recognized source extension.
func WithExtension(ext string) BuilderOption {
	return func(b *Builder) {
		b.ext = ext
	}
}

// WithProgress configures progress reporting.
func WithProgress(progress ProgressReporter) BuilderOption {
	return func(b *Builder) {
		b.progress = progress
	}
}

// NewBuilder creates a builder that parses files with p.
func NewBuilder(p *parser.Parser, opts ...BuilderOption) *Builder {
	b := &Builder{
		parser: p,
		ext:    DefaultExtension,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// IsSource reports whether filePath carries the recognized source extension.
func (b *Builder) IsSource(filePath string) bool {
	return strings.HasSuffix(filePath, b.ext)
}

// Build constructs a directed graph over the source files in files, keyed
// by relative path. An edge A -> B means A imports a name that resolves to
// B within the input set.
//
// Build is total: files the grammar cannot parse degrade to pattern
// extraction inside the parser, and imports that do not resolve within the
// input set are dropped. Files without the recognized extension are
// skipped entirely; every recognized file becomes a node even when nothing
// references it.
func (b *Builder) Build(files map[string]string) graph.Graph[string, string] {
	g := graph.New(graph.StringHash, graph.Directed())

	// Fully-qualified name -> path. On a duplicate name the later path
	// wins, so iteration order below must be fixed for reruns to agree.
	symbols := make(map[string]string)
	imports := make(map[string]map[string]struct{})

	paths := make([]string, 0, len(files))
	for p := range files {
		if b.IsSource(p) {
			paths = append(paths, p)
		}
	}
	slices.Sort(paths)

	if b.progress != nil {
		b.progress.OnBuildStart(len(paths))
	}

	// Indexing pass. The symbol table must be complete before any import
	// can be resolved, so edges wait for a second pass.
	for i, p := range paths {
		res := b.parser.Parse([]byte(files[p]))

		// The type name is assumed to match the file name.
		typeName := strings.TrimSuffix(path.Base(p), b.ext)
		fullName := typeName
		if res.Package != "" {
			fullName = res.Package + "." + typeName
		}

		symbols[fullName] = p
		imports[p] = res.Imports
		_ = g.AddVertex(p)

		if b.progress != nil {
			b.progress.OnFileIndexed(i+1, len(paths), p)
		}
	}

	// Edge pass. Imports that resolve to a file in the input set become
	// edges; everything else is an external library and is dropped.
	edges := 0
	for _, p := range paths {
		for imp := range imports[p] {
			target, ok := symbols[imp]
			if !ok {
				continue
			}
			if err := g.AddEdge(p, target); err == nil {
				edges++
			}
		}
	}

	if b.progress != nil {
		b.progress.OnBuildComplete(len(paths), edges)
	}

	return g
}

// Package parser extracts the declared package and the imported
// fully-qualified names from a single Java source file.
//
// Extraction runs as a chain of strategies: a grammar-aware tree-sitter
// extractor first, then a line-oriented pattern extractor that cannot fail.
// Callers only see the chain through Parser.Parse, which always returns a
// usable result.
package parser

// Result holds what one extraction strategy produced for a source file.
type Result struct {
	// Package is the declared package name, empty when the file declares none.
	Package string

	// Imports is the set of fully-qualified names the file imports.
	Imports map[string]struct{}
}

// Extractor extracts a Result from raw source text. An error means the
// strategy could not make sense of the input and the next strategy in the
// chain should be tried; it never means the input itself is invalid.
type Extractor interface {
	Extract(source []byte) (Result, error)
}

// Parser runs extraction strategies in order until one succeeds.
type Parser struct {
	strategies []Extractor
}

// New returns a parser that tries the grammar extractor first and falls
// back to pattern scanning when the grammar cannot produce a result.
func New() *Parser {
	return &Parser{strategies: []Extractor{newGrammarExtractor(), patternExtractor{}}}
}

// NewPatternOnly returns a parser that skips the grammar engine entirely
// and relies on pattern scanning alone.
func NewPatternOnly() *Parser {
	return &Parser{strategies: []Extractor{patternExtractor{}}}
}

// Parse extracts the package declaration and import set from source.
// It is total: a file no strategy can read yields an empty Result.
func (p *Parser) Parse(source []byte) Result {
	for _, s := range p.strategies {
		if res, err := s.Extract(source); err == nil {
			return res
		}
	}
	return Result{Imports: map[string]struct{}{}}
}

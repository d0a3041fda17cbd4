package parser

import "regexp"

var (
	packageRe = regexp.MustCompile(`package\s+([\w.]+)\s*;`)
	importRe  = regexp.MustCompile(`import\s+([\w.]+)\s*;`)
)

// patternExtractor scans raw text for package and import statements.
// It is the last strategy in the chain and never fails: text without any
// match yields an empty Result.
type patternExtractor struct{}

func (patternExtractor) Extract(source []byte) (Result, error) {
	res := Result{Imports: map[string]struct{}{}}

	if m := packageRe.FindSubmatch(source); m != nil {
		res.Package = string(m[1])
	}

	for _, m := range importRe.FindAllSubmatch(source, -1) {
		res.Imports[string(m[1])] = struct{}{}
	}

	return res, nil
}

package depgraph

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeorder/internal/parser"
)

// Test Plan for Builder:
// - Resolves an in-codebase import to a directed edge
// - Drops imports that do not resolve within the input set
// - Adds every recognized source file as a node, even isolated ones
// - Excludes files without the recognized extension
// - Duplicate fully-qualified names: lexicographically later path wins
// - Self-imports become self-loops
// - Malformed files still become nodes via fallback extraction
// - Custom source extension is honored

// javaFile renders a minimal class declaring pkg and importing imports.
func javaFile(pkg, class string, imports ...string) string {
	src := ""
	if pkg != "" {
		src = fmt.Sprintf("package %s;\n\n", pkg)
	}
	for _, imp := range imports {
		src += fmt.Sprintf("import %s;\n", imp)
	}
	return src + fmt.Sprintf("\npublic class %s {\n}\n", class)
}

func newTestBuilder(opts ...BuilderOption) *Builder {
	return NewBuilder(parser.New(), opts...)
}

func TestBuilder_ResolvesInCodebaseImport(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"src/A.java": javaFile("p", "A", "p.B"),
		"src/B.java": javaFile("p", "B"),
	}

	g := newTestBuilder().Build(files)

	_, err := g.Edge("src/A.java", "src/B.java")
	assert.NoError(t, err, "A imports p.B, so an edge A -> B must exist")

	size, err := g.Size()
	require.NoError(t, err)
	assert.Equal(t, 1, size)
}

func TestBuilder_DropsExternalImports(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"src/A.java": javaFile("p", "A", "java.util.List", "org.slf4j.Logger"),
	}

	g := newTestBuilder().Build(files)

	size, err := g.Size()
	require.NoError(t, err)
	assert.Zero(t, size, "external imports must not become edges")

	order, err := g.Order()
	require.NoError(t, err)
	assert.Equal(t, 1, order)
}

func TestBuilder_IsolatedFilesAreNodes(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"src/Lonely.java": javaFile("p", "Lonely"),
	}

	g := newTestBuilder().Build(files)

	adjacency, err := g.AdjacencyMap()
	require.NoError(t, err)
	assert.Contains(t, adjacency, "src/Lonely.java")
}

func TestBuilder_SkipsNonSourceFiles(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"README.md":  "# readme",
		"pom.xml":    "<project/>",
		"src/A.java": javaFile("p", "A"),
	}

	g := newTestBuilder().Build(files)

	order, err := g.Order()
	require.NoError(t, err)
	assert.Equal(t, 1, order, "only .java files become nodes")
}

func TestBuilder_DuplicateSymbolLastWins(t *testing.T) {
	t.Parallel()

	// Both declare p.Dup; the lexicographically later path is processed
	// later and overwrites the earlier entry.
	files := map[string]string{
		"a/Dup.java":  javaFile("p", "Dup"),
		"b/Dup.java":  javaFile("p", "Dup"),
		"c/User.java": javaFile("p", "User", "p.Dup"),
	}

	g := newTestBuilder().Build(files)

	_, err := g.Edge("c/User.java", "b/Dup.java")
	assert.NoError(t, err, "the later duplicate must win resolution")

	_, err = g.Edge("c/User.java", "a/Dup.java")
	assert.Error(t, err, "the earlier duplicate must not receive the edge")
}

func TestBuilder_SelfImportBecomesSelfLoop(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"src/A.java": javaFile("p", "A", "p.A"),
	}

	g := newTestBuilder().Build(files)

	_, err := g.Edge("src/A.java", "src/A.java")
	assert.NoError(t, err)
}

func TestBuilder_MalformedFileStillIndexed(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"src/Broken.java": "package p;\nimport p.B;\npublic class Broken {\n  void half(\n",
		"src/B.java":      javaFile("p", "B"),
	}

	g := newTestBuilder().Build(files)

	adjacency, err := g.AdjacencyMap()
	require.NoError(t, err)
	assert.Contains(t, adjacency, "src/Broken.java")

	_, err = g.Edge("src/Broken.java", "src/B.java")
	assert.NoError(t, err, "fallback extraction must still resolve the import")
}

func TestBuilder_CustomExtension(t *testing.T) {
	t.Parallel()

	b := NewBuilder(parser.NewPatternOnly(), WithExtension(".jav"))
	files := map[string]string{
		"src/A.jav":  "package p;\nimport p.B;\n",
		"src/B.jav":  "package p;\n",
		"src/C.java": javaFile("p", "C"),
	}

	g := b.Build(files)

	order, err := g.Order()
	require.NoError(t, err)
	assert.Equal(t, 2, order)

	_, err = g.Edge("src/A.jav", "src/B.jav")
	assert.NoError(t, err)
}

func TestBuilder_ReportsProgress(t *testing.T) {
	t.Parallel()

	rec := &progressRecorder{}
	b := NewBuilder(parser.NewPatternOnly(), WithProgress(rec))

	b.Build(map[string]string{
		"src/A.java": javaFile("p", "A", "p.B"),
		"src/B.java": javaFile("p", "B"),
	})

	assert.Equal(t, 2, rec.started)
	assert.Equal(t, 2, rec.indexed)
	assert.Equal(t, 2, rec.nodes)
	assert.Equal(t, 1, rec.edges)
}

type progressRecorder struct {
	started int
	indexed int
	nodes   int
	edges   int
}

func (r *progressRecorder) OnBuildStart(totalFiles int) { r.started = totalFiles }

func (r *progressRecorder) OnFileIndexed(processed, totalFiles int, filePath string) { r.indexed++ }

func (r *progressRecorder) OnBuildComplete(nodeCount, edgeCount int) {
	r.nodes = nodeCount
	r.edges = edgeCount
}

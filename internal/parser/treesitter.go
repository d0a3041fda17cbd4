package parser

import (
	"errors"

	sitter "github.com/tree-sitter/go-tree-sitter"
	java "github.com/tree-sitter/tree-sitter-java/bindings/go"
)

// grammarExtractor extracts package and import declarations with the
// tree-sitter Java grammar.
type grammarExtractor struct {
	language *sitter.Language
}

func newGrammarExtractor() *grammarExtractor {
	return &grammarExtractor{language: sitter.NewLanguage(java.Language())}
}

// Extract parses source with the grammar. A missing tree or a parse tree
// containing ERROR nodes counts as failure so the caller can fall back to
// pattern scanning.
func (e *grammarExtractor) Extract(source []byte) (Result, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(e.language)

	tree := parser.Parse(source, nil)
	if tree == nil {
		return Result{}, errors.New("grammar produced no parse tree")
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return Result{}, errors.New("parse tree contains syntax errors")
	}

	res := Result{Imports: map[string]struct{}{}}
	walkTree(root, func(n *sitter.Node) bool {
		switch n.Kind() {
		case "package_declaration":
			if res.Package == "" {
				res.Package = dottedName(n, source)
			}
			return false
		case "import_declaration":
			if name := dottedName(n, source); name != "" {
				res.Imports[name] = struct{}{}
			}
			return false
		}
		return true
	})

	return res, nil
}

// dottedName returns the dotted identifier of a package or import
// declaration node.
func dottedName(node *sitter.Node, source []byte) string {
	nameNode := findChildByType(node, "scoped_identifier")
	if nameNode == nil {
		nameNode = findChildByType(node, "identifier")
	}
	return extractNodeText(nameNode, source)
}

// extractNodeText extracts the text content of a tree-sitter node.
func extractNodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return string(source[node.StartByte():node.EndByte()])
}

// walkTree recursively walks a tree-sitter tree and calls the visitor for
// each node. Returning false from the visitor stops descent into that node.
func walkTree(node *sitter.Node, visitor func(*sitter.Node) bool) {
	if node == nil {
		return
	}

	if !visitor(node) {
		return
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		walkTree(node.Child(uint(i)), visitor)
	}
}

// findChildByType finds the first child node with the given type.
func findChildByType(node *sitter.Node, nodeType string) *sitter.Node {
	if node == nil {
		return nil
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(uint(i))
		if child.Kind() == nodeType {
			return child
		}
	}
	return nil
}

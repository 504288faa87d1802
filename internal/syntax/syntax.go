// Package syntax turns JavaScript and TypeScript source into a concrete syntax tree and exposes
// the small node surface exampledoc needs: kind, text, children and call-expression parts.
package syntax

import (
	"errors"
	"path/filepath"
	"strings"
)

// ErrParserUnavailable is returned when the binary was built without tree-sitter support.
var ErrParserUnavailable = errors.New("syntax: tree-sitter parser unavailable (built without cgo)")

// Language identifies a tree-sitter grammar.
type Language string

const (
	LanguageTypeScript Language = "typescript"
	LanguageTSX        Language = "tsx"
	LanguageJavaScript Language = "javascript"
)

const (
	// CallExpressionKind is the node kind of a call such as describe('name', () => {}).
	CallExpressionKind = "call_expression"
	argumentsKind      = "arguments"
	commentKind        = "comment"
	functionField      = "function"
	argumentsField     = "arguments"
)

var extensionLanguages = map[string]Language{
	".ts":  LanguageTypeScript,
	".mts": LanguageTypeScript,
	".cts": LanguageTypeScript,
	".tsx": LanguageTSX,
	".js":  LanguageJavaScript,
	".jsx": LanguageJavaScript,
	".mjs": LanguageJavaScript,
	".cjs": LanguageJavaScript,
}

var extensionFenceTags = map[string]string{
	".ts":  "ts",
	".mts": "ts",
	".cts": "ts",
	".tsx": "tsx",
	".js":  "js",
	".mjs": "js",
	".cjs": "js",
	".jsx": "jsx",
}

const defaultFenceTag = "ts"

// Node is a read-only view of one syntax tree node.
type Node interface {
	// Kind is the grammar node type, e.g. "call_expression" or "string".
	Kind() string
	// Text is the literal source text spanned by the node.
	Text() string
	// Children lists every child, named or anonymous, in source order.
	Children() []Node
	// IsCall reports whether the node is a call expression.
	IsCall() bool
	// CalleeName is the source text of the called expression, or "" for non-calls.
	CalleeName() string
	// Arguments lists the call arguments without interleaved comments.
	Arguments() []Node
}

// Tree is a parsed source file.
type Tree struct {
	path    string
	root    Node
	release func()
}

// Root returns the top-level node of the tree.
func (tree *Tree) Root() Node {
	if tree == nil {
		return nil
	}
	return tree.root
}

// Path returns the file path the tree was parsed from.
func (tree *Tree) Path() string {
	if tree == nil {
		return ""
	}
	return tree.path
}

// Close releases parser-owned memory. The tree must not be used afterwards.
func (tree *Tree) Close() {
	if tree == nil || tree.release == nil {
		return
	}
	tree.release()
	tree.release = nil
}

// LanguageForPath selects the grammar for a file by extension. Unknown extensions use TypeScript,
// which parses plain JavaScript as well.
func LanguageForPath(filePath string) Language {
	if language, known := extensionLanguages[strings.ToLower(filepath.Ext(filePath))]; known {
		return language
	}
	return LanguageTypeScript
}

// FenceTag returns the markdown code fence language tag for a source file.
func FenceTag(filePath string) string {
	if tag, known := extensionFenceTags[strings.ToLower(filepath.Ext(filePath))]; known {
		return tag
	}
	return defaultFenceTag
}

// Walk visits node and all of its descendants depth-first, pre-order, children in source order.
func Walk(node Node, visit func(Node)) {
	if node == nil {
		return
	}
	visit(node)
	for _, child := range node.Children() {
		Walk(child, visit)
	}
}

//go:build cgo

package syntax

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

const (
	errorParseFormat   = "parse %s: %w"
	errorEmptyTreeText = "parse %s: tree-sitter returned no tree"
)

// Parser parses source files with one tree-sitter parser per grammar.
type Parser struct {
	parsers map[Language]*sitter.Parser
}

// NewParser constructs a Parser for JavaScript, TypeScript and TSX sources.
func NewParser() *Parser {
	return &Parser{parsers: map[Language]*sitter.Parser{}}
}

// Parse builds the syntax tree of source. The grammar is chosen from filePath's extension.
func (parser *Parser) Parse(ctx context.Context, filePath string, source []byte) (*Tree, error) {
	language := LanguageForPath(filePath)
	treeSitterParser := parser.parserFor(language)
	parsedTree, parseError := treeSitterParser.ParseCtx(ctx, nil, source)
	if parseError != nil {
		return nil, fmt.Errorf(errorParseFormat, filePath, parseError)
	}
	if parsedTree == nil || parsedTree.RootNode() == nil {
		return nil, fmt.Errorf(errorEmptyTreeText, filePath)
	}
	return &Tree{
		path:    filePath,
		root:    &treeSitterNode{node: parsedTree.RootNode(), source: source},
		release: parsedTree.Close,
	}, nil
}

func (parser *Parser) parserFor(language Language) *sitter.Parser {
	if existing, found := parser.parsers[language]; found {
		return existing
	}
	created := sitter.NewParser()
	switch language {
	case LanguageTSX:
		created.SetLanguage(tsx.GetLanguage())
	case LanguageJavaScript:
		created.SetLanguage(javascript.GetLanguage())
	default:
		created.SetLanguage(typescript.GetLanguage())
	}
	parser.parsers[language] = created
	return created
}

type treeSitterNode struct {
	node   *sitter.Node
	source []byte
}

func (wrapped *treeSitterNode) Kind() string {
	return wrapped.node.Type()
}

func (wrapped *treeSitterNode) Text() string {
	return string(wrapped.source[wrapped.node.StartByte():wrapped.node.EndByte()])
}

func (wrapped *treeSitterNode) Children() []Node {
	childCount := int(wrapped.node.ChildCount())
	children := make([]Node, 0, childCount)
	for index := 0; index < childCount; index++ {
		child := wrapped.node.Child(index)
		if child == nil {
			continue
		}
		children = append(children, &treeSitterNode{node: child, source: wrapped.source})
	}
	return children
}

func (wrapped *treeSitterNode) IsCall() bool {
	return wrapped.node.Type() == CallExpressionKind
}

func (wrapped *treeSitterNode) CalleeName() string {
	if !wrapped.IsCall() {
		return ""
	}
	calleeNode := wrapped.node.ChildByFieldName(functionField)
	if calleeNode == nil {
		return ""
	}
	return string(wrapped.source[calleeNode.StartByte():calleeNode.EndByte()])
}

func (wrapped *treeSitterNode) Arguments() []Node {
	if !wrapped.IsCall() {
		return nil
	}
	argumentList := wrapped.node.ChildByFieldName(argumentsField)
	if argumentList == nil || argumentList.Type() != argumentsKind {
		return nil
	}
	namedCount := int(argumentList.NamedChildCount())
	arguments := make([]Node, 0, namedCount)
	for index := 0; index < namedCount; index++ {
		argument := argumentList.NamedChild(index)
		if argument == nil || argument.Type() == commentKind {
			continue
		}
		arguments = append(arguments, &treeSitterNode{node: argument, source: wrapped.source})
	}
	return arguments
}

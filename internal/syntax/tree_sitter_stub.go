//go:build !cgo

package syntax

import "context"

// Parser is unavailable without cgo; every Parse call fails with ErrParserUnavailable.
type Parser struct{}

// NewParser returns a Parser that reports ErrParserUnavailable so the CLI can fail with a clear
// message on platforms that cannot build the tree-sitter bindings.
func NewParser() *Parser {
	return &Parser{}
}

// Parse always fails with ErrParserUnavailable.
func (parser *Parser) Parse(ctx context.Context, filePath string, source []byte) (*Tree, error) {
	return nil, ErrParserUnavailable
}

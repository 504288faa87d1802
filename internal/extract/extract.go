// Package extract finds tagged describe/it calls in a syntax tree and turns the body of every
// tagged it call into a labelled, dedented markdown code block.
package extract

import (
	"strings"

	"github.com/temirov/exampledoc/internal/syntax"
	"github.com/temirov/exampledoc/internal/types"
)

// MissingBodyText stands in for the body of an it call that has no second argument.
const MissingBodyText = "undefined"

var stringLiteralKinds = map[string]struct{}{
	"string":          {},
	"template_string": {},
}

// Extractor collects example groups from one source file.
type Extractor struct {
	prefix   string
	fenceTag string
}

// New returns an Extractor matching descriptions that start with prefix and fencing bodies with fenceTag.
func New(prefix string, fenceTag string) Extractor {
	return Extractor{prefix: prefix, fenceTag: fenceTag}
}

// Description returns the first argument of a call with its first and last character removed.
// Only string literal arguments qualify; anything else reports false.
func Description(node syntax.Node) (string, bool) {
	if node == nil || !node.IsCall() {
		return "", false
	}
	arguments := node.Arguments()
	if len(arguments) == 0 {
		return "", false
	}
	firstArgument := arguments[0]
	if _, isStringLiteral := stringLiteralKinds[firstArgument.Kind()]; !isStringLiteral {
		return "", false
	}
	literalText := firstArgument.Text()
	if len(literalText) < 2 {
		return "", false
	}
	return literalText[1 : len(literalText)-1], true
}

// FindGroups walks the whole tree pre-order and returns one group per tagged describe call,
// outer groups before the groups nested inside them.
func (extractor Extractor) FindGroups(root syntax.Node) []types.ExampleGroup {
	var groups []types.ExampleGroup
	syntax.Walk(root, func(node syntax.Node) {
		groupName, tagged := extractor.taggedName(node, types.GroupMarker)
		if !tagged {
			return
		}
		groups = append(groups, types.ExampleGroup{
			Name:    groupName,
			Members: extractor.CollectMembers(node),
		})
	})
	return groups
}

// CollectMembers returns every tagged it call anywhere beneath group, in document order.
// Nested describe blocks are flattened into the result.
func (extractor Extractor) CollectMembers(group syntax.Node) []types.ExampleEntry {
	var entries []types.ExampleEntry
	if group == nil {
		return entries
	}
	for _, child := range group.Children() {
		syntax.Walk(child, func(node syntax.Node) {
			label, tagged := extractor.taggedName(node, types.LeafMarker)
			if !tagged {
				return
			}
			entries = append(entries, types.ExampleEntry{
				Label: label,
				Body:  FencedBlock(NormalizeBody(bodyText(node)), extractor.fenceTag),
			})
		})
	}
	return entries
}

// taggedName reports the prefix-stripped description of a call to marker whose description carries the prefix.
func (extractor Extractor) taggedName(node syntax.Node, marker string) (string, bool) {
	if !node.IsCall() || node.CalleeName() != marker {
		return "", false
	}
	description, found := Description(node)
	if !found || !strings.HasPrefix(description, extractor.prefix) {
		return "", false
	}
	return strings.TrimPrefix(description, extractor.prefix), true
}

func bodyText(node syntax.Node) string {
	arguments := node.Arguments()
	if len(arguments) < 2 {
		return MissingBodyText
	}
	return arguments[1].Text()
}

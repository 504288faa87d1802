// Package output renders example groups and the index page as markdown, and markdown as HTML.
package output

import (
	"strings"

	"github.com/temirov/exampledoc/internal/types"
)

const (
	lineBreak          = "\n"
	headingPrefix      = "# "
	indexLinkOpen      = "- ["
	indexLinkSeparator = "]("
	indexLinkClose     = ")"
)

// RenderExampleFile returns the markdown for one group: an optional "# name" title line, then
// every member as its label followed by its fenced body.
func RenderExampleFile(group types.ExampleGroup, withTitle bool) string {
	var builder strings.Builder
	if withTitle {
		builder.WriteString(headingPrefix + group.Name + lineBreak)
	}
	for memberIndex, member := range group.Members {
		if memberIndex > 0 {
			builder.WriteString(lineBreak)
		}
		builder.WriteString(member.Label)
		builder.WriteString(lineBreak)
		builder.WriteString(member.Body)
	}
	return builder.String()
}

// RenderIndex returns the index page linking every generated file once, in the given order.
func RenderIndex(title string, generatedFiles []types.GeneratedFile) string {
	lines := []string{headingPrefix + title}
	for _, generatedFile := range DeduplicateGeneratedFiles(generatedFiles) {
		linkText := strings.TrimSuffix(generatedFile.FileName, types.MarkdownExtension)
		lines = append(lines, indexLinkOpen+linkText+indexLinkSeparator+generatedFile.Path+indexLinkClose)
	}
	return strings.Join(lines, lineBreak)
}

// DeduplicateGeneratedFiles drops repeated paths, keeping the first occurrence and the original order.
func DeduplicateGeneratedFiles(generatedFiles []types.GeneratedFile) []types.GeneratedFile {
	seenPaths := make(map[string]struct{}, len(generatedFiles))
	result := make([]types.GeneratedFile, 0, len(generatedFiles))
	for _, generatedFile := range generatedFiles {
		if _, seen := seenPaths[generatedFile.Path]; seen {
			continue
		}
		seenPaths[generatedFile.Path] = struct{}{}
		result = append(result, generatedFile)
	}
	return result
}

package generate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/exampledoc/internal/output"
	"github.com/temirov/exampledoc/internal/types"
)

const (
	outputDirectoryPermissions = 0o755
	outputFilePermissions      = 0o644

	errorCreateDirectoryFormat = "creating output directory %s: %w"
	errorWriteFileFormat       = "writing %s: %w"
)

// writeDocument writes markdown content to targetPath, creating parent directories as needed,
// and an HTML rendering next to it when enabled.
func (generator *Generator) writeDocument(targetPath string, content string) error {
	if writeError := writeFile(targetPath, []byte(content)); writeError != nil {
		return writeError
	}
	if !generator.options.HTML {
		return nil
	}
	renderedHTML, renderError := output.RenderHTML([]byte(content))
	if renderError != nil {
		return renderError
	}
	return writeFile(htmlPathFor(targetPath), renderedHTML)
}

func (generator *Generator) writeIndex(generatedFiles []types.GeneratedFile) error {
	indexPath := filepath.Join(generator.OutputRoot(), types.IndexFileName)
	content := output.RenderIndex(generator.options.IndexTitle, generatedFiles)
	if writeError := generator.writeDocument(indexPath, content); writeError != nil {
		return writeError
	}
	generator.logger.Info(logGeneratedIndex, zap.String(logFieldPath, indexPath))
	return nil
}

func writeFile(targetPath string, content []byte) error {
	targetDirectory := filepath.Dir(targetPath)
	if mkdirError := os.MkdirAll(targetDirectory, outputDirectoryPermissions); mkdirError != nil {
		return fmt.Errorf(errorCreateDirectoryFormat, targetDirectory, mkdirError)
	}
	// #nosec G306
	if writeError := os.WriteFile(targetPath, content, outputFilePermissions); writeError != nil {
		return fmt.Errorf(errorWriteFileFormat, targetPath, writeError)
	}
	return nil
}

func htmlPathFor(markdownPath string) string {
	return strings.TrimSuffix(markdownPath, types.MarkdownExtension) + types.HTMLExtension
}

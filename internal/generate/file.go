package generate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/temirov/exampledoc/internal/extract"
	"github.com/temirov/exampledoc/internal/output"
	"github.com/temirov/exampledoc/internal/syntax"
	"github.com/temirov/exampledoc/internal/types"
	"github.com/temirov/exampledoc/internal/utils"
)

const errorReadSourceFormat = "reading source %s: %w"

// GenerateFile extracts the tagged groups of one source file and writes one markdown file per
// group into the output root joined with relativeOutputDirectory. Existing files are overwritten.
func (generator *Generator) GenerateFile(ctx context.Context, sourcePath string, relativeOutputDirectory string) ([]types.GeneratedFile, error) {
	source, readError := os.ReadFile(sourcePath)
	if readError != nil {
		return nil, fmt.Errorf(errorReadSourceFormat, sourcePath, readError)
	}
	tree, parseError := generator.parser.Parse(ctx, sourcePath, source)
	if parseError != nil {
		return nil, parseError
	}
	defer tree.Close()

	extractor := extract.New(generator.options.DescribePrefix, syntax.FenceTag(sourcePath))
	groups := extractor.FindGroups(tree.Root())
	outputDirectory := filepath.Join(generator.OutputRoot(), filepath.FromSlash(relativeOutputDirectory))

	var generatedFiles []types.GeneratedFile
	for _, group := range groups {
		fileName := group.FileName()
		content := output.RenderExampleFile(group, generator.options.FileTitles)
		if writeError := generator.writeDocument(filepath.Join(outputDirectory, fileName), content); writeError != nil {
			return generatedFiles, writeError
		}
		generator.logger.Info(logGeneratedFile,
			zap.String(logFieldFile, fileName),
			zap.String(logFieldSource, sourcePath),
			zap.Int(logFieldExampleCount, len(group.Members)),
		)
		generatedFiles = append(generatedFiles, types.GeneratedFile{
			FileName: fileName,
			Path:     utils.JoinSlashPath(relativeOutputDirectory, fileName),
		})
	}
	return generatedFiles, nil
}

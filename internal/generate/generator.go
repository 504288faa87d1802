// Package generate walks a source tree, extracts tagged examples from every included test file and
// writes them as markdown files mirroring the source layout, plus an optional index page.
package generate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"go.uber.org/zap"

	"github.com/temirov/exampledoc/internal/syntax"
	"github.com/temirov/exampledoc/internal/types"
	"github.com/temirov/exampledoc/internal/utils"
)

var (
	// ErrInputNotDirectory is returned when the input path exists but is not a directory.
	ErrInputNotDirectory = errors.New("generate: input path is not a directory")
	// ErrIndexCollision is returned when a group file occupies the index page path.
	ErrIndexCollision = errors.New("generate: example group collides with the index page")
)

const (
	errorIncludePatternFormat = "compile include pattern %q: %w"
	errorIgnorePatternFormat  = "compile ignore pattern %q: %w"
	errorStatInputFormat      = "stat input directory %s: %w"
	errorInputNotDirFormat    = "%w: %s"
	errorReadDirectoryFormat  = "reading directory %s: %w"
	errorIndexCollisionFormat = "%w: %s; rename the group or disable the index page"

	logSkippedIgnored    = "skipping ignored path"
	logGeneratedFile     = "generated file"
	logGeneratedIndex    = "generated index"
	logFieldPath         = "path"
	logFieldFile         = "file"
	logFieldSource       = "source"
	logFieldExampleCount = "examples"
)

// Parser builds a syntax tree for a source file.
type Parser interface {
	Parse(ctx context.Context, filePath string, source []byte) (*syntax.Tree, error)
}

// Generator runs one extraction over an input tree with a fixed set of options.
type Generator struct {
	options           types.Options
	parser            Parser
	logger            *zap.Logger
	includeExpression *regexp.Regexp
	ignoreExpression  *regexp.Regexp
}

// New validates the include and ignore patterns and returns a Generator. A nil logger discards logs.
func New(options types.Options, parser Parser, logger *zap.Logger) (*Generator, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	includePattern := options.IncludePattern
	if includePattern == "" {
		includePattern = types.DefaultIncludePattern
	}
	includeExpression, includeError := regexp.Compile(includePattern)
	if includeError != nil {
		return nil, fmt.Errorf(errorIncludePatternFormat, includePattern, includeError)
	}
	var ignoreExpression *regexp.Regexp
	if options.IgnorePattern != "" {
		compiledIgnore, ignoreError := regexp.Compile(options.IgnorePattern)
		if ignoreError != nil {
			return nil, fmt.Errorf(errorIgnorePatternFormat, options.IgnorePattern, ignoreError)
		}
		ignoreExpression = compiledIgnore
	}
	return &Generator{
		options:           options,
		parser:            parser,
		logger:            logger,
		includeExpression: includeExpression,
		ignoreExpression:  ignoreExpression,
	}, nil
}

// OutputRoot is the directory receiving generated files: out joined with outDirName.
func (generator *Generator) OutputRoot() string {
	return filepath.Join(generator.options.OutputDirectory, generator.options.OutputFolderName)
}

// Run walks the input directory and returns every generated markdown file in traversal order.
// The first error aborts the run; files written before it stay on disk.
func (generator *Generator) Run(ctx context.Context) ([]types.GeneratedFile, error) {
	inputDirectory := generator.options.InputDirectory
	inputInfo, statError := os.Stat(inputDirectory)
	if statError != nil {
		return nil, fmt.Errorf(errorStatInputFormat, inputDirectory, statError)
	}
	if !inputInfo.IsDir() {
		return nil, fmt.Errorf(errorInputNotDirFormat, ErrInputNotDirectory, inputDirectory)
	}

	generatedFiles, walkError := generator.walkDirectory(ctx, inputDirectory, utils.EmptyString, nil)
	if walkError != nil {
		return generatedFiles, walkError
	}
	if generator.options.IncludeIndexPage && len(generatedFiles) > 0 {
		if collisionError := checkIndexCollision(generatedFiles); collisionError != nil {
			return generatedFiles, collisionError
		}
		if indexError := generator.writeIndex(generatedFiles); indexError != nil {
			return generatedFiles, indexError
		}
	}
	return generatedFiles, nil
}

// walkDirectory recurses depth-first in os.ReadDir order. relativeOutputDirectory mirrors the
// position of directoryPath below the input root.
func (generator *Generator) walkDirectory(ctx context.Context, directoryPath string, relativeOutputDirectory string, generatedFiles []types.GeneratedFile) ([]types.GeneratedFile, error) {
	directoryEntries, readDirectoryError := os.ReadDir(directoryPath)
	if readDirectoryError != nil {
		return generatedFiles, fmt.Errorf(errorReadDirectoryFormat, directoryPath, readDirectoryError)
	}

	for _, directoryEntry := range directoryEntries {
		entryPath := filepath.Join(directoryPath, directoryEntry.Name())
		matchPath := filepath.ToSlash(entryPath)
		if generator.ignoreExpression != nil && generator.ignoreExpression.MatchString(matchPath) {
			generator.logger.Debug(logSkippedIgnored, zap.String(logFieldPath, matchPath))
			continue
		}
		if directoryEntry.IsDir() {
			var walkError error
			childOutputDirectory := utils.JoinSlashPath(relativeOutputDirectory, directoryEntry.Name())
			generatedFiles, walkError = generator.walkDirectory(ctx, entryPath, childOutputDirectory, generatedFiles)
			if walkError != nil {
				return generatedFiles, walkError
			}
			continue
		}
		if !generator.includeExpression.MatchString(matchPath) {
			continue
		}
		fileResults, generateError := generator.GenerateFile(ctx, entryPath, relativeOutputDirectory)
		generatedFiles = append(generatedFiles, fileResults...)
		if generateError != nil {
			return generatedFiles, generateError
		}
	}
	return generatedFiles, nil
}

// checkIndexCollision rejects a run whose root-level group file would be replaced by the index page.
func checkIndexCollision(generatedFiles []types.GeneratedFile) error {
	for _, generatedFile := range generatedFiles {
		if generatedFile.Path == types.IndexFileName {
			return fmt.Errorf(errorIndexCollisionFormat, ErrIndexCollision, generatedFile.Path)
		}
	}
	return nil
}

// Package types defines every cross‑package data structure used by the exampledoc CLI.
package types

const (
	// GroupMarker is the callee name of a call that declares a group of examples.
	GroupMarker = "describe"
	// LeafMarker is the callee name of a call that declares a single example.
	LeafMarker = "it"

	MarkdownExtension = ".md"
	HTMLExtension     = ".html"
	IndexFileName     = "index" + MarkdownExtension

	DefaultInputDirectory   = "./"
	DefaultOutputDirectory  = "./"
	DefaultOutputFolderName = "examples"
	DefaultIncludePattern   = `\.(test|spec)\.(ts|tsx|mts|cts|js|jsx|mjs|cjs)$`
	DefaultDescribePrefix   = "example:"
	DefaultIndexTitle       = "Documentation"
)

// Options is the resolved configuration of a single generation run.
type Options struct {
	InputDirectory   string
	OutputDirectory  string
	OutputFolderName string
	IncludePattern   string
	IgnorePattern    string
	DescribePrefix   string
	IndexTitle       string
	IncludeIndexPage bool
	FileTitles       bool
	HTML             bool
}

// DefaultOptions returns the options used when neither configuration files nor flags override anything.
func DefaultOptions() Options {
	return Options{
		InputDirectory:   DefaultInputDirectory,
		OutputDirectory:  DefaultOutputDirectory,
		OutputFolderName: DefaultOutputFolderName,
		IncludePattern:   DefaultIncludePattern,
		DescribePrefix:   DefaultDescribePrefix,
		IndexTitle:       DefaultIndexTitle,
		IncludeIndexPage: true,
		FileTitles:       true,
	}
}

// ExampleEntry is one documented example: the label of a tagged leaf and its fenced body.
type ExampleEntry struct {
	Label string `json:"label"`
	Body  string `json:"body"`
}

// ExampleGroup identifies one output markdown file and the examples it holds.
type ExampleGroup struct {
	Name    string         `json:"name"`
	Members []ExampleEntry `json:"members"`
}

// FileName returns the markdown file name the group is written to.
func (group ExampleGroup) FileName() string {
	return group.Name + MarkdownExtension
}

// GeneratedFile records a markdown file written during a run.
// Path is relative to the output root and always uses forward slashes.
type GeneratedFile struct {
	FileName string `json:"fileName"`
	Path     string `json:"path"`
}

// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"

	"github.com/temirov/exampledoc/internal/config"
	"github.com/temirov/exampledoc/internal/generate"
	"github.com/temirov/exampledoc/internal/syntax"
	"github.com/temirov/exampledoc/internal/types"
	"github.com/temirov/exampledoc/internal/utils"
)

const (
	inputFlagName            = "in"
	outputFlagName           = "out"
	outputFolderFlagName     = "outDirName"
	includeFlagName          = "include"
	ignoreFlagName           = "ignore"
	describePrefixFlagName   = "describePrefix"
	titleFlagName            = "title"
	includeIndexPageFlagName = "includeIndexPage"
	fileTitlesFlagName       = "fileTitles"
	htmlFlagName             = "html"
	configFlagName           = "config"
	verboseFlagName          = "verbose"
	versionFlagName          = "version"
	globalFlagName           = "global"
	forceFlagName            = "force"

	inputFlagDescription            = "root directory to scan for test files"
	outputFlagDescription           = "root directory for generated documentation"
	outputFolderFlagDescription     = "subdirectory of --out receiving generated files"
	includeFlagDescription          = "regular expression selecting test files to scan"
	ignoreFlagDescription           = "regular expression selecting files and directories to skip"
	describePrefixFlagDescription   = "prefix marking describe and it blocks as examples"
	titleFlagDescription            = "heading of the generated index page"
	includeIndexPageFlagDescription = "write index.md linking every generated file"
	fileTitlesFlagDescription       = "start every generated file with a heading naming its group"
	htmlFlagDescription             = "also render every generated markdown file as HTML"
	configFlagDescription           = "configuration file (default ./" + utils.ConfigFileName + ")"
	verboseFlagDescription          = "log skipped paths"
	versionFlagDescription          = "display application version"
	globalFlagDescription           = "write the configuration under the home directory"
	forceFlagDescription            = "overwrite an existing configuration file"

	versionTemplate      = "exampledoc version: %s\n"
	initResultTemplate   = "Configuration written to %s\n"
	rootUse              = "exampledoc"
	rootShortDescription = "generate markdown examples from tagged test blocks"
	rootLongDescription  = `exampledoc scans a source tree for JavaScript and TypeScript test files and turns
tagged test blocks into markdown documentation.

Every describe('example:<name>', ...) becomes <name>.md; every it('example:<label>', ...)
beneath it becomes a labelled code block holding the dedented body of the test.
Output mirrors the input directory layout under --out/--outDirName. Use --includeIndexPage
to control the index.md page and --config to load settings from a YAML file.`
	rootUsageExample = `  # Generate docs/examples from the src tree
  exampledoc --in src --out docs

  # Use a custom marker and skip node_modules
  exampledoc --describePrefix doc: --ignore node_modules

  # Only the example files, no index page and no per-file headings
  exampledoc --includeIndexPage=false --fileTitles no`
	initUse              = "init"
	initShortDescription = "write a default configuration file"

	errorLoggerFormat = "create logger: %w"
)

// generationFlags holds the values bound to the root command flags.
type generationFlags struct {
	options    types.Options
	configPath string
	verbose    bool
}

// Execute runs the exampledoc application.
func Execute() error {
	rootCommand := createRootCommand()
	rootCommand.SetArgs(normalizeBooleanFlagArguments(rootCommand, os.Args[1:]))
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command. The root command itself runs generation.
func createRootCommand() *cobra.Command {
	var showVersion bool
	flags := generationFlags{options: types.DefaultOptions()}

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return runGeneration(command, flags)
		},
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if showVersion {
				fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
		},
	}
	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	addGenerationFlags(rootCommand.Flags(), &flags)
	rootCommand.AddCommand(createInitCommand())
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

func addGenerationFlags(flagSet *pflag.FlagSet, flags *generationFlags) {
	defaults := types.DefaultOptions()
	flagSet.StringVar(&flags.options.InputDirectory, inputFlagName, defaults.InputDirectory, inputFlagDescription)
	flagSet.StringVar(&flags.options.OutputDirectory, outputFlagName, defaults.OutputDirectory, outputFlagDescription)
	flagSet.StringVar(&flags.options.OutputFolderName, outputFolderFlagName, defaults.OutputFolderName, outputFolderFlagDescription)
	flagSet.StringVar(&flags.options.IncludePattern, includeFlagName, defaults.IncludePattern, includeFlagDescription)
	flagSet.StringVar(&flags.options.IgnorePattern, ignoreFlagName, defaults.IgnorePattern, ignoreFlagDescription)
	flagSet.StringVar(&flags.options.DescribePrefix, describePrefixFlagName, defaults.DescribePrefix, describePrefixFlagDescription)
	flagSet.StringVar(&flags.options.IndexTitle, titleFlagName, defaults.IndexTitle, titleFlagDescription)
	registerBooleanFlag(flagSet, &flags.options.IncludeIndexPage, includeIndexPageFlagName, defaults.IncludeIndexPage, includeIndexPageFlagDescription)
	registerBooleanFlag(flagSet, &flags.options.FileTitles, fileTitlesFlagName, defaults.FileTitles, fileTitlesFlagDescription)
	registerBooleanFlag(flagSet, &flags.options.HTML, htmlFlagName, defaults.HTML, htmlFlagDescription)
	flagSet.StringVar(&flags.configPath, configFlagName, "", configFlagDescription)
	registerBooleanFlag(flagSet, &flags.verbose, verboseFlagName, false, verboseFlagDescription)
}

// resolveOptions layers defaults, configuration files and explicitly set flags, in that order.
func resolveOptions(flagSet *pflag.FlagSet, flags generationFlags, fileConfiguration config.ApplicationConfiguration) types.Options {
	resolved := fileConfiguration.ApplyTo(types.DefaultOptions())
	overrides := map[string]func(){
		inputFlagName:            func() { resolved.InputDirectory = flags.options.InputDirectory },
		outputFlagName:           func() { resolved.OutputDirectory = flags.options.OutputDirectory },
		outputFolderFlagName:     func() { resolved.OutputFolderName = flags.options.OutputFolderName },
		includeFlagName:          func() { resolved.IncludePattern = flags.options.IncludePattern },
		ignoreFlagName:           func() { resolved.IgnorePattern = flags.options.IgnorePattern },
		describePrefixFlagName:   func() { resolved.DescribePrefix = flags.options.DescribePrefix },
		titleFlagName:            func() { resolved.IndexTitle = flags.options.IndexTitle },
		includeIndexPageFlagName: func() { resolved.IncludeIndexPage = flags.options.IncludeIndexPage },
		fileTitlesFlagName:       func() { resolved.FileTitles = flags.options.FileTitles },
		htmlFlagName:             func() { resolved.HTML = flags.options.HTML },
	}
	for flagName, applyOverride := range overrides {
		if flagSet.Changed(flagName) {
			applyOverride()
		}
	}
	return resolved
}

// runGeneration loads configuration, builds the generator and runs it over the input tree.
func runGeneration(command *cobra.Command, flags generationFlags) error {
	fileConfiguration, loadError := config.LoadApplicationConfiguration(config.LoadOptions{ExplicitFilePath: flags.configPath})
	if loadError != nil {
		return loadError
	}
	options := resolveOptions(command.Flags(), flags, fileConfiguration)

	logLevel := zapcore.InfoLevel
	if flags.verbose {
		logLevel = zapcore.DebugLevel
	}
	logger, loggerError := utils.NewApplicationLoggerAtLevel(logLevel)
	if loggerError != nil {
		return fmt.Errorf(errorLoggerFormat, loggerError)
	}
	defer func() {
		_ = logger.Sync()
	}()

	generator, generatorError := generate.New(options, syntax.NewParser(), logger)
	if generatorError != nil {
		return generatorError
	}
	_, runError := generator.Run(command.Context())
	return runError
}

// createInitCommand returns the init subcommand writing the default configuration.
func createInitCommand() *cobra.Command {
	var writeGlobal bool
	var force bool

	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if writeGlobal {
				target = config.InitTargetGlobal
			}
			writtenPath, initError := config.InitializeConfiguration(config.InitOptions{Target: target, Force: force})
			if initError != nil {
				return initError
			}
			fmt.Fprintf(command.OutOrStdout(), initResultTemplate, writtenPath)
			return nil
		},
	}
	registerBooleanFlag(initCommand.Flags(), &writeGlobal, globalFlagName, false, globalFlagDescription)
	registerBooleanFlag(initCommand.Flags(), &force, forceFlagName, false, forceFlagDescription)
	return initCommand
}

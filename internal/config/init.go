package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/temirov/exampledoc/internal/utils"
)

// InitTarget identifies where configuration should be initialized.
type InitTarget string

const (
	// InitTargetLocal writes configuration into the working directory.
	InitTargetLocal InitTarget = "local"
	// InitTargetGlobal writes configuration into the global configuration directory.
	InitTargetGlobal InitTarget = "global"

	configurationFileType = "yaml"

	configurationDirectoryPermissions = 0o755
	configurationFilePermissions      = 0o600

	errorWorkingDirectoryFormat    = "determine working directory for configuration: %w"
	errorHomeDirectoryFormat       = "resolve home directory for configuration: %w"
	errorCreateDirectoryFormat     = "create configuration directory %s: %w"
	errorUnsupportedTargetFormat   = "unsupported init target %q"
	errorConfigurationExistsFormat = "configuration file already exists at %s"
	errorInspectPathFormat         = "inspect configuration path %s: %w"
	errorWriteConfigurationFormat  = "write configuration to %s: %w"

	defaultConfigurationTemplate = `in: ./
out: ./
out_dir_name: examples
include: '\.(test|spec)\.(ts|tsx|mts|cts|js|jsx|mjs|cjs)$'
ignore: ''
describe_prefix: 'example:'
title: Documentation
include_index_page: true
file_titles: true
html: false
`
)

// InitOptions selects where the default configuration goes and whether an existing file may be replaced.
type InitOptions struct {
	Target           InitTarget
	Force            bool
	WorkingDirectory string
}

// InitializeConfiguration writes the default configuration template and returns the written path.
func InitializeConfiguration(options InitOptions) (string, error) {
	destinationPath, destinationError := configurationDestination(options)
	if destinationError != nil {
		return "", destinationError
	}
	if existsError := ensureWritableDestination(destinationPath, options.Force); existsError != nil {
		return "", existsError
	}
	if writeError := os.WriteFile(destinationPath, []byte(defaultConfigurationTemplate), configurationFilePermissions); writeError != nil {
		return "", fmt.Errorf(errorWriteConfigurationFormat, destinationPath, writeError)
	}
	return destinationPath, nil
}

// configurationDestination resolves the file path for the requested target, creating the global
// configuration directory when needed. An empty target means local.
func configurationDestination(options InitOptions) (string, error) {
	switch options.Target {
	case "", InitTargetLocal:
		workingDirectory := options.WorkingDirectory
		if workingDirectory == "" {
			currentDirectory, workingDirectoryError := os.Getwd()
			if workingDirectoryError != nil {
				return "", fmt.Errorf(errorWorkingDirectoryFormat, workingDirectoryError)
			}
			workingDirectory = currentDirectory
		}
		return filepath.Join(workingDirectory, utils.ConfigFileName), nil
	case InitTargetGlobal:
		homeDirectory, homeDirectoryError := os.UserHomeDir()
		if homeDirectoryError != nil {
			return "", fmt.Errorf(errorHomeDirectoryFormat, homeDirectoryError)
		}
		configurationDirectory := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName)
		if mkdirError := os.MkdirAll(configurationDirectory, configurationDirectoryPermissions); mkdirError != nil {
			return "", fmt.Errorf(errorCreateDirectoryFormat, configurationDirectory, mkdirError)
		}
		return filepath.Join(configurationDirectory, utils.GlobalConfigFileName), nil
	default:
		return "", fmt.Errorf(errorUnsupportedTargetFormat, options.Target)
	}
}

func ensureWritableDestination(destinationPath string, force bool) error {
	_, statError := os.Stat(destinationPath)
	switch {
	case statError == nil:
		if force {
			return nil
		}
		return fmt.Errorf(errorConfigurationExistsFormat, destinationPath)
	case os.IsNotExist(statError):
		return nil
	default:
		return fmt.Errorf(errorInspectPathFormat, destinationPath, statError)
	}
}

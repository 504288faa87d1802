// Package config discovers, merges and initializes exampledoc configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/temirov/exampledoc/internal/types"
	"github.com/temirov/exampledoc/internal/utils"
)

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
}

// ApplicationConfiguration mirrors the command line flags. Unset keys stay empty or nil so that
// later sources only override what they actually define.
type ApplicationConfiguration struct {
	InputDirectory   string `mapstructure:"in"`
	OutputDirectory  string `mapstructure:"out"`
	OutputFolderName string `mapstructure:"out_dir_name"`
	IncludePattern   string `mapstructure:"include"`
	IgnorePattern    string `mapstructure:"ignore"`
	DescribePrefix   string `mapstructure:"describe_prefix"`
	IndexTitle       string `mapstructure:"title"`
	IncludeIndexPage *bool  `mapstructure:"include_index_page"`
	FileTitles       *bool  `mapstructure:"file_titles"`
	HTML             *bool  `mapstructure:"html"`
}

// LoadApplicationConfiguration loads the global configuration and overlays the local one.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, err := os.Getwd()
		if err != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", err)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	if homeDirectory, err := os.UserHomeDir(); err == nil && homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.GlobalConfigFileName)
		globalConfig, loadErr := loadConfigurationFromPath(globalPath)
		if loadErr != nil {
			return ApplicationConfiguration{}, loadErr
		}
		merged = merged.Merge(globalConfig)
	}

	localPath := resolveLocalConfigPath(workingDirectory, options.ExplicitFilePath)
	localConfig, loadErr := loadConfigurationFromPath(localPath)
	if loadErr != nil {
		return ApplicationConfiguration{}, loadErr
	}
	return merged.Merge(localConfig), nil
}

func resolveLocalConfigPath(workingDirectory, explicitPath string) string {
	if explicitPath == "" {
		return filepath.Join(workingDirectory, utils.ConfigFileName)
	}
	if filepath.IsAbs(explicitPath) {
		return explicitPath
	}
	return filepath.Join(workingDirectory, explicitPath)
}

func loadConfigurationFromPath(path string) (ApplicationConfiguration, error) {
	info, statErr := os.Stat(path)
	if statErr != nil {
		if os.IsNotExist(statErr) {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", path, statErr)
	}
	if info.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	reader.SetConfigType(configurationFileType)
	if readErr := reader.ReadInConfig(); readErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", path, readErr)
	}
	var config ApplicationConfiguration
	if decodeErr := reader.Unmarshal(&config); decodeErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", path, decodeErr)
	}
	return config, nil
}

// Merge overlays override onto the receiver returning the combined configuration.
func (config ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := config
	if override.InputDirectory != "" {
		result.InputDirectory = override.InputDirectory
	}
	if override.OutputDirectory != "" {
		result.OutputDirectory = override.OutputDirectory
	}
	if override.OutputFolderName != "" {
		result.OutputFolderName = override.OutputFolderName
	}
	if override.IncludePattern != "" {
		result.IncludePattern = override.IncludePattern
	}
	if override.IgnorePattern != "" {
		result.IgnorePattern = override.IgnorePattern
	}
	if override.DescribePrefix != "" {
		result.DescribePrefix = override.DescribePrefix
	}
	if override.IndexTitle != "" {
		result.IndexTitle = override.IndexTitle
	}
	if override.IncludeIndexPage != nil {
		result.IncludeIndexPage = cloneBool(override.IncludeIndexPage)
	}
	if override.FileTitles != nil {
		result.FileTitles = cloneBool(override.FileTitles)
	}
	if override.HTML != nil {
		result.HTML = cloneBool(override.HTML)
	}
	return result
}

// ApplyTo returns options with every key defined in the configuration applied on top.
func (config ApplicationConfiguration) ApplyTo(options types.Options) types.Options {
	result := options
	if config.InputDirectory != "" {
		result.InputDirectory = config.InputDirectory
	}
	if config.OutputDirectory != "" {
		result.OutputDirectory = config.OutputDirectory
	}
	if config.OutputFolderName != "" {
		result.OutputFolderName = config.OutputFolderName
	}
	if config.IncludePattern != "" {
		result.IncludePattern = config.IncludePattern
	}
	if config.IgnorePattern != "" {
		result.IgnorePattern = config.IgnorePattern
	}
	if config.DescribePrefix != "" {
		result.DescribePrefix = config.DescribePrefix
	}
	if config.IndexTitle != "" {
		result.IndexTitle = config.IndexTitle
	}
	if config.IncludeIndexPage != nil {
		result.IncludeIndexPage = *config.IncludeIndexPage
	}
	if config.FileTitles != nil {
		result.FileTitles = *config.FileTitles
	}
	if config.HTML != nil {
		result.HTML = *config.HTML
	}
	return result
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}

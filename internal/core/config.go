package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julien-sobczak/the-clozewriter/pkg/cloze"
	"github.com/julien-sobczak/the-clozewriter/pkg/markdown"
	"github.com/julien-sobczak/the-clozewriter/pkg/resync"
	"github.com/julien-sobczak/the-clozewriter/pkg/text"
	"github.com/pelletier/go-toml/v2"
)

// How many parent directories to traverse before considering a directory as not a nt repository
const maxDepth = 10

// Default .nt/config content
const DefaultConfig = `
[cloze]
ratio = 0.15
fallback-ratio = 0.18

[markdown]
engine = "gomarkdown"

[notes]
default-tab = "mynotes"
`

// Default .nt/.gitignore content
const DefaultGitIgnore = `
/database.db
/worksheets/
`

var (
	// Lazy-load configuration and ensure a single read
	configOnce      resync.Once
	configSingleton *Config
)

// Note: Fields must be public for toml package to unmarshall
type ConfigFile struct {
	Cloze    ConfigCloze    `toml:"cloze"`
	Markdown ConfigMarkdown `toml:"markdown"`
	Notes    ConfigNotes    `toml:"notes"`
}
type ConfigCloze struct {
	// Share of candidate words to blank
	Ratio float64 `toml:"ratio"`
	// Minimum ratio used when the first pass generated no blank
	FallbackRatio float64 `toml:"fallback-ratio"`
}
type ConfigMarkdown struct {
	// gomarkdown or goldmark
	Engine string `toml:"engine"`
}
type ConfigNotes struct {
	DefaultTab string `toml:"default-tab"`
}

/* Main config */

type Config struct {
	// Absolute top directory containing the .nt sub-directory
	RootDirectory string

	// .nt/config content
	ConfigFile ConfigFile
}

func CurrentConfig() *Config {
	configOnce.Do(func() {
		var err error
		configSingleton, err = ReadConfigFromDirectory(currentHome())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to read current configuration: %v\n", err)
			os.Exit(1)
		}
		if configSingleton == nil {
			fmt.Fprintln(os.Stderr, "fatal: not a nt-cloze repository (or any of the parent directories): .nt")
			os.Exit(1)
		}
	})
	return configSingleton
}

// SessionOptions returns the practice session options matching the ratios of the configuration file.
func (c *Config) SessionOptions() []SessionOption {
	return []SessionOption{
		WithRatio(c.Ratio()),
		WithFallbackRatio(c.ConfigFile.Cloze.FallbackRatio),
	}
}

// Ratio returns the share of candidates to blank.
func (c *Config) Ratio() float64 {
	return c.ConfigFile.Cloze.Ratio
}

// Engine returns the engine used to convert Markdown notes.
func (c *Config) Engine() markdown.Engine {
	engine, err := markdown.ParseEngine(c.ConfigFile.Markdown.Engine)
	if err != nil {
		// Check() must have been called before
		return markdown.EngineGomarkdown
	}
	return engine
}

// DefaultTab returns the tab used when no tab is specified.
func (c *Config) DefaultTab() string {
	return c.ConfigFile.Notes.DefaultTab
}

// DatabasePath returns the path of the SQLite database.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.RootDirectory, ".nt", "database.db")
}

// WorksheetDir returns the directory where HTML worksheets are generated.
func (c *Config) WorksheetDir() string {
	return filepath.Join(c.RootDirectory, ".nt", "worksheets")
}

func currentHome() string {
	// Supports overriding the root directory mainly for testing purposes.
	// Ex:
	//
	//   $ env NT_HOME=./examples go run ./cmd/nt-cloze generate os scheduling
	if path, ok := os.LookupEnv("NT_HOME"); ok {
		abspath, err := filepath.Abs(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to evaluate $NT_HOME")
			os.Exit(1)
		}
		if _, err := os.Stat(abspath); os.IsNotExist(err) {
			fmt.Fprintln(os.Stderr, "Path in $NT_HOME undefined")
			os.Exit(1)
		}
		return abspath
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to determine current directory: %v\n", err)
		os.Exit(1)
	}
	return cwd
}

// ReadConfigFromDirectory loads the configuration by searching for a .nt directory in the given directory
// or any parent directories. It returns nil when no directory is found.
func ReadConfigFromDirectory(path string) (*Config, error) {
	rootPath := path
	i := 0 // Safeguard to not go up too far
	for {
		i++
		if i > maxDepth {
			return nil, nil
		}
		ntPath := filepath.Join(rootPath, ".nt")
		_, err := os.Stat(ntPath)
		if os.IsNotExist(err) {
			parent := filepath.Dir(rootPath)
			if parent == rootPath {
				// Root directory detected
				return nil, nil
			}
			rootPath = parent
		} else if err != nil {
			return nil, fmt.Errorf("error while searching for configuration directory: %w", err)
		} else {
			break
		}
	}

	// Check for .nt/config
	ntConfigPath := filepath.Join(rootPath, ".nt", "config")
	_, err := os.Stat(ntConfigPath)
	var configFile *ConfigFile
	if os.IsNotExist(err) {
		configFile, err = parseConfigFile(DefaultConfig)
		if err != nil {
			return nil, fmt.Errorf("default configuration is broken: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to check for .nt/config file: %w", err)
	} else {
		content, err := os.ReadFile(ntConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read .nt/config file: %w", err)
		}
		configFile, err = parseConfigFile(string(content))
		if err != nil {
			return nil, fmt.Errorf("failed to parse .nt/config file: %w", err)
		}
	}

	return &Config{
		RootDirectory: rootPath,
		ConfigFile:    *configFile,
	}, nil
}

// parseConfigFile reads the TOML content. Missing values keep their default.
func parseConfigFile(content string) (*ConfigFile, error) {
	result := ConfigFile{
		Cloze: ConfigCloze{
			Ratio:         cloze.DefaultRatio,
			FallbackRatio: cloze.FallbackRatio,
		},
		Markdown: ConfigMarkdown{
			Engine: string(markdown.EngineGomarkdown),
		},
		Notes: ConfigNotes{
			DefaultTab: "mynotes",
		},
	}
	r := strings.NewReader(content)
	d := toml.NewDecoder(r)
	d.DisallowUnknownFields()
	err := d.Decode(&result)
	return &result, err
}

// InitConfigFromDirectory creates the .nt configuration directory with default files.
func InitConfigFromDirectory(path string) (*Config, error) {
	currentConfig, err := ReadConfigFromDirectory(path)
	if err != nil {
		return nil, err
	}
	if currentConfig != nil {
		// Do not override current configuration
		return nil, fmt.Errorf("current configuration detected in %s", currentConfig.RootDirectory)
	}

	// Create .nt directory
	ntPath := filepath.Join(path, ".nt")
	err = os.Mkdir(ntPath, 0755)
	if err != nil {
		return nil, err
	}

	// Init .nt/config file
	ntConfigPath := filepath.Join(ntPath, "config")
	err = os.WriteFile(ntConfigPath, []byte(DefaultConfig), 0644)
	if err != nil {
		return nil, err
	}

	// Init .nt/.gitignore file
	gitIgnorePath := filepath.Join(ntPath, ".gitignore")
	_, err = os.Stat(gitIgnorePath)
	if os.IsNotExist(err) { // Do not override existing file!
		err = os.WriteFile(gitIgnorePath, []byte(DefaultGitIgnore), 0644)
		if err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	// Reread configuration
	return ReadConfigFromDirectory(path)
}

func (c *Config) Check() error {
	cfg := c.ConfigFile

	if cfg.Cloze.Ratio <= 0 || cfg.Cloze.Ratio > 1 {
		return fmt.Errorf("invalid ratio %v: must be in ]0, 1]", cfg.Cloze.Ratio)
	}
	if cfg.Cloze.FallbackRatio <= 0 || cfg.Cloze.FallbackRatio > 1 {
		return fmt.Errorf("invalid fallback-ratio %v: must be in ]0, 1]", cfg.Cloze.FallbackRatio)
	}
	if _, err := markdown.ParseEngine(cfg.Markdown.Engine); err != nil {
		return err
	}
	if text.IsBlank(cfg.Notes.DefaultTab) {
		return fmt.Errorf("missing default-tab")
	}

	return nil
}

// Package config holds the tagquiz configuration: where the corpus
// lives, how many sentences a round asks, and how output and logging
// behave. Values layer in the usual order: defaults, then the YAML
// file, then environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all tagquiz configuration.
type Config struct {
	Corpus  CorpusConfig  `yaml:"corpus"`
	Quiz    QuizConfig    `yaml:"quiz"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

// CorpusConfig says where the treebank sample comes from.
type CorpusConfig struct {
	// DataDir points at an existing directory of .mrg files. When set,
	// nothing is ever downloaded.
	DataDir string `yaml:"data_dir"`

	// CacheDir receives the downloaded archive's contents.
	CacheDir string `yaml:"cache_dir"`

	// ArchiveURL overrides the default download location (mirrors).
	ArchiveURL string `yaml:"archive_url"`

	// Offline turns a cache miss into an error instead of a download.
	Offline bool `yaml:"offline"`
}

// QuizConfig shapes a round.
type QuizConfig struct {
	// Sentences per round.
	Sentences int `yaml:"sentences"`

	// Width is the column at which sentences wrap.
	Width int `yaml:"width"`
}

// UIConfig configures terminal output.
type UIConfig struct {
	Color bool `yaml:"color"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	cacheDir := ".tagquiz-cache"
	if dir, err := os.UserCacheDir(); err == nil {
		cacheDir = filepath.Join(dir, "tagquiz")
	}

	return &Config{
		Corpus: CorpusConfig{
			CacheDir: cacheDir,
		},
		Quiz: QuizConfig{
			Sentences: 5,
			Width:     80,
		},
		UI: UIConfig{
			Color: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns where Load looks when no --config flag is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "tagquiz.yaml"
	}
	return filepath.Join(dir, "tagquiz", "config.yaml")
}

// Load loads configuration from a YAML file. A missing file is not an
// error; the defaults plus environment overrides apply.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv("TAGQUIZ_DATA_DIR"); dir != "" {
		c.Corpus.DataDir = dir
	}
	if dir := os.Getenv("TAGQUIZ_CACHE_DIR"); dir != "" {
		c.Corpus.CacheDir = dir
	}
	if url := os.Getenv("TAGQUIZ_ARCHIVE_URL"); url != "" {
		c.Corpus.ArchiveURL = url
	}
	if os.Getenv("TAGQUIZ_OFFLINE") == "1" {
		c.Corpus.Offline = true
	}
	if path := os.Getenv("TAGQUIZ_LOG"); path != "" {
		c.Logging.File = path
	}
	if level := os.Getenv("TAGQUIZ_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}

	// https://no-color.org: any non-empty value disables color.
	if os.Getenv("NO_COLOR") != "" {
		c.UI.Color = false
	}
}

// ValidLevels lists the accepted logging levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Quiz.Sentences <= 0 {
		return fmt.Errorf("quiz.sentences must be positive, got %d", c.Quiz.Sentences)
	}
	if c.Quiz.Width < 20 {
		return fmt.Errorf("quiz.width must be at least 20, got %d", c.Quiz.Width)
	}
	if c.Corpus.DataDir == "" && c.Corpus.CacheDir == "" {
		return fmt.Errorf("corpus needs a data_dir or a cache_dir")
	}

	valid := false
	for _, level := range ValidLevels {
		if c.Logging.Level == level {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("logging.level must be one of %v, got %q", ValidLevels, c.Logging.Level)
	}
	return nil
}

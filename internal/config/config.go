package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/gerunddev/interviewer/internal/question"
)

// Config represents the interviewer configuration
type Config struct {
	VaultDir        string `json:"vault_dir"`
	TemplatePath    string `json:"template_path"`    // relative to the vault
	InterviewFolder string `json:"interview_folder"` // relative to the vault
	InterviewTag    string `json:"interview_tag"`
	Dialect         string `json:"dialect"`
	OutputDialect   string `json:"output_dialect,omitempty"` // defaults to Dialect
	LogFile         string `json:"log_file"`
}

// Keys lists the settings that can be changed with Set
var Keys = []string{
	"vault_dir",
	"template_path",
	"interview_folder",
	"interview_tag",
	"dialect",
	"output_dialect",
	"log_file",
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		VaultDir:        filepath.Join(home, "Documents", "obsidian-vault"),
		TemplatePath:    "templates/interview.md",
		InterviewFolder: "/", // Default in vault root
		InterviewTag:    "#interview",
		Dialect:         question.Current.Name(),
		LogFile:         filepath.Join(xdg.StateHome, "interviewer", "interviewer.log"),
	}
}

// ConfigPath returns the path to the config file
// Uses ~/.config on all platforms for consistency
// Can be overridden for testing
var ConfigPath = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to XDG if home dir unavailable
		return filepath.Join(xdg.ConfigHome, "interviewer", "config.json")
	}
	return filepath.Join(home, ".config", "interviewer", "config.json")
}

// Load reads configuration from path, or from ConfigPath when path is empty.
// Settings missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		// Return default config if file doesn't exist
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Expand paths
	if err := cfg.ExpandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	return cfg, nil
}

// Save writes configuration to path, or to ConfigPath when path is empty
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.VaultDir == "" {
		return fmt.Errorf("vault_dir cannot be empty")
	}
	if c.TemplatePath == "" {
		return fmt.Errorf("template_path cannot be empty")
	}
	if c.InterviewTag == "" {
		return fmt.Errorf("interview_tag cannot be empty")
	}
	if strings.ContainsAny(c.InterviewTag, " \t\n") {
		return fmt.Errorf("invalid interview_tag '%s': must be a single tag", c.InterviewTag)
	}

	if _, err := question.ParseDialect(c.Dialect); err != nil {
		return fmt.Errorf("invalid dialect: %w", err)
	}
	if c.OutputDialect != "" {
		if _, err := question.ParseDialect(c.OutputDialect); err != nil {
			return fmt.Errorf("invalid output_dialect: %w", err)
		}
	}

	return nil
}

// Dialects returns the dialect notes are read in and the dialect new
// interview notes are written in
func (c *Config) Dialects() (source, output question.Dialect, err error) {
	source, err = question.ParseDialect(c.Dialect)
	if err != nil {
		return question.Dialect{}, question.Dialect{}, err
	}
	if c.OutputDialect == "" {
		return source, source, nil
	}
	output, err = question.ParseDialect(c.OutputDialect)
	if err != nil {
		return question.Dialect{}, question.Dialect{}, err
	}
	return source, output, nil
}

// Tag returns the interview tag with its leading '#'
func (c *Config) Tag() string {
	return "#" + strings.TrimPrefix(c.InterviewTag, "#")
}

// Get returns the value of a setting by its JSON key
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "vault_dir":
		return c.VaultDir, nil
	case "template_path":
		return c.TemplatePath, nil
	case "interview_folder":
		return c.InterviewFolder, nil
	case "interview_tag":
		return c.InterviewTag, nil
	case "dialect":
		return c.Dialect, nil
	case "output_dialect":
		return c.OutputDialect, nil
	case "log_file":
		return c.LogFile, nil
	}
	return "", fmt.Errorf("unknown setting '%s': must be one of: %s", key, strings.Join(Keys, ", "))
}

// Set changes a setting by its JSON key and validates the result
func (c *Config) Set(key, value string) error {
	next := *c
	switch key {
	case "vault_dir":
		next.VaultDir = value
	case "template_path":
		next.TemplatePath = value
	case "interview_folder":
		next.InterviewFolder = value
	case "interview_tag":
		next.InterviewTag = value
	case "dialect":
		next.Dialect = value
	case "output_dialect":
		next.OutputDialect = value
	case "log_file":
		next.LogFile = value
	default:
		return fmt.Errorf("unknown setting '%s': must be one of: %s", key, strings.Join(Keys, ", "))
	}

	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

// ExpandPaths expands any ~ or relative paths to absolute paths
func (c *Config) ExpandPaths() error {
	var err error

	c.VaultDir, err = expandPath(c.VaultDir)
	if err != nil {
		return fmt.Errorf("failed to expand vault_dir: %w", err)
	}

	c.LogFile, err = expandPath(c.LogFile)
	if err != nil {
		return fmt.Errorf("failed to expand log_file: %w", err)
	}

	return nil
}

// expandPath expands ~ to home directory and converts to absolute path
func expandPath(path string) (string, error) {
	if path == "" {
		return path, nil
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		path = filepath.Join(homeDir, path[1:])
	}

	// Convert to absolute path
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return absPath, nil
}

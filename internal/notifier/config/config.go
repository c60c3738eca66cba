// Package config loads the per-project notifier configuration file.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/dimasma0305/teams-notifier/internal/log"
	"github.com/dimasma0305/teams-notifier/internal/notifier/errors"
)

const (
	FileName     = ".teams-notifier-config.json"
	FileNameYAML = ".teams-notifier-config.yaml"
	FileNameYML  = ".teams-notifier-config.yml"

	DefaultThemeColor = "0075FF"
)

// Notification formats understood by options.format
const (
	FormatCard    = "card"
	FormatText    = "text"
	FormatDiscord = "discord"
)

// Options holds the optional settings of a config file
type Options struct {
	ThemeColor string `json:"themeColor,omitempty" yaml:"themeColor,omitempty"`
	Format     string `json:"format,omitempty" yaml:"format,omitempty"`
	Service    string `json:"service,omitempty" yaml:"service,omitempty"`
	Path       string `json:"path,omitempty" yaml:"path,omitempty"`
	GitCommits *int   `json:"gitCommits,omitempty" yaml:"gitCommits,omitempty"`
}

// Config is the content of .teams-notifier-config.json
type Config struct {
	ProjectName string   `json:"projectName" yaml:"projectName"`
	TeamsURL    string   `json:"teamsUrl" yaml:"teamsUrl"`
	Options     *Options `json:"options,omitempty" yaml:"options,omitempty"`

	// Path the config was read from
	Source string `json:"-" yaml:"-"`
}

// ThemeColor returns the card accent color without a leading '#'
func (c *Config) ThemeColor() string {
	if c.Options == nil || strings.TrimSpace(c.Options.ThemeColor) == "" {
		return DefaultThemeColor
	}
	return strings.TrimPrefix(strings.TrimSpace(c.Options.ThemeColor), "#")
}

// Format returns the notification format, defaulting to the action card
func (c *Config) Format() string {
	if c.Options == nil || c.Options.Format == "" {
		return FormatCard
	}
	return c.Options.Format
}

// candidates lists the file names looked up in a directory, in order
var candidates = []string{FileName, FileNameYAML, FileNameYML}

// Load reads the first config file found in dirs. The CLI passes the working
// directory followed by the directory of the executable.
func Load(dirs ...string) (*Config, error) {
	searched := make([]string, 0, len(dirs)*len(candidates))
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		for _, name := range candidates {
			path := filepath.Join(dir, name)
			searched = append(searched, path)
			if _, err := os.Stat(path); err == nil {
				return LoadFile(path)
			}
		}
	}
	return nil, errors.Wrapf(errors.ErrConfigMissing, "looked in %s", strings.Join(searched, ", "))
}

// LoadFile reads and validates a single config file. JSON is the default
// format; files ending in .yaml or .yml are read as YAML.
func LoadFile(path string) (*Config, error) {
	//nolint:gosec // G304: Config path is chosen by the user
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Kind(errors.ErrConfigMissing, err)
		}
		return nil, errors.Kind(errors.ErrConfigParse, err)
	}
	log.Debug("Reading config from %s", path)

	cfg, err := Parse(data, isYAML(path))
	if err != nil {
		return nil, err
	}
	cfg.Source = path
	return cfg, nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Parse decodes and validates config content
func Parse(data []byte, asYAML bool) (*Config, error) {
	var cfg Config
	if asYAML {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Kind(errors.ErrConfigParse, fmt.Errorf("error unmarshal yaml: %w", err))
		}
	} else {
		if err := json.Unmarshal(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")), &cfg); err != nil {
			return nil, errors.Kind(errors.ErrConfigParse, fmt.Errorf("error unmarshal json: %w", err))
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Kind(errors.ErrConfigParse, err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Validate checks the required fields
func (c *Config) Validate() error {
	c.ProjectName = strings.TrimSpace(c.ProjectName)
	c.TeamsURL = strings.TrimSpace(c.TeamsURL)

	if c.ProjectName == "" {
		return fmt.Errorf("you don't have a projectName field, it is required")
	}
	if c.TeamsURL == "" {
		return fmt.Errorf("you don't have a teamsUrl field, it is required")
	}
	u, err := url.Parse(c.TeamsURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("teamsUrl %q is not an http(s) URL", c.TeamsURL)
	}

	if c.Options != nil {
		switch c.Options.Format {
		case "", FormatCard, FormatText, FormatDiscord:
		default:
			return fmt.Errorf("options.format %q is not one of %s, %s, %s", c.Options.Format, FormatCard, FormatText, FormatDiscord)
		}
		if c.Options.GitCommits != nil && *c.Options.GitCommits < 0 {
			return fmt.Errorf("options.gitCommits must not be negative")
		}
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Options == nil {
		c.Options = &Options{}
	}
	c.Options.ThemeColor = c.ThemeColor()
	c.Options.Format = c.Format()
}

// Write stores cfg as indented JSON at path
func Write(path string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return errors.Kind(errors.ErrConfigParse, err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshal json: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

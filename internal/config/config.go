package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/componentx/internal/errors"
	"github.com/vango-dev/componentx/internal/logging"
)

const (
	// ConfigFileName is the name of the JSON configuration file.
	ConfigFileName = "componentx.json"

	// YAMLConfigFileName is tried when ConfigFileName is absent.
	YAMLConfigFileName = "componentx.yaml"

	// DefaultPort is the default style server port.
	DefaultPort = 4000

	// DefaultHost is the default style server host.
	DefaultHost = "localhost"

	// DefaultStylesDir is the default directory holding style files.
	DefaultStylesDir = "styles"
)

// Config represents componentx.json.
type Config struct {
	// Styles locates style sources and compiled output.
	Styles StylesConfig `json:"styles,omitempty" yaml:"styles,omitempty"`

	// Server configures the style server.
	Server ServerConfig `json:"server,omitempty" yaml:"server,omitempty"`

	// Publish configures stylesheet uploads.
	Publish PublishConfig `json:"publish,omitempty" yaml:"publish,omitempty"`

	// LogLevel is debug, info, warn or error.
	LogLevel string `json:"logLevel,omitempty" yaml:"logLevel,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// StylesConfig contains style file locations.
type StylesConfig struct {
	// Dir is the directory containing *.style.json/yaml files.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`

	// Output is the file compile writes to. Empty means stdout.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
}

// ServerConfig contains style server settings.
type ServerConfig struct {
	Host string `json:"host,omitempty" yaml:"host,omitempty"`
	Port int    `json:"port,omitempty" yaml:"port,omitempty"`

	// Watch reloads styles when files change.
	Watch bool `json:"watch,omitempty" yaml:"watch,omitempty"`
}

// PublishConfig contains S3 upload settings.
type PublishConfig struct {
	Bucket string `json:"bucket,omitempty" yaml:"bucket,omitempty"`

	// Prefix is prepended to every object key.
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`

	// Region overrides the region from the AWS config chain.
	Region string `json:"region,omitempty" yaml:"region,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads configuration from dir, trying componentx.json first and
// componentx.yaml second.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if _, err := os.Stat(filepath.Join(dir, YAMLConfigFileName)); err == nil {
			path = filepath.Join(dir, YAMLConfigFileName)
		}
	}
	return LoadFile(path)
}

// LoadFile reads configuration from the specified file path. Files ending
// in .yaml or .yml are parsed as YAML, everything else as JSON.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E121").
				WithDetail("No " + filepath.Base(path) + " found in " + filepath.Dir(path)).
				WithSuggestion("Create " + ConfigFileName + " or pass flags instead")
		}
		return nil, errors.New("E120").Wrap(err)
	}

	cfg := &Config{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.New("E120").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			WithSuggestion("Check the file syntax")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Exists reports whether dir contains a configuration file.
func Exists(dir string) bool {
	for _, name := range []string{ConfigFileName, YAMLConfigFileName} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Styles.Dir == "" {
		c.Styles.Dir = DefaultStylesDir
	}
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E122").
			WithDetail("server.port must be between 0 and 65535")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return errors.New("E122").
			WithDetail("logLevel: " + err.Error()).
			WithSuggestion("Use debug, info, warn or error")
	}
	if c.Publish.Prefix != "" && strings.HasPrefix(c.Publish.Prefix, "/") {
		return errors.New("E122").
			WithDetail("publish.prefix must not start with /")
	}
	return nil
}

// Addr returns the host:port the style server listens on.
func (c *Config) Addr() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}

// StylesPath returns the style directory, resolved against the config
// file's directory when relative.
func (c *Config) StylesPath() string {
	if filepath.IsAbs(c.Styles.Dir) || c.configPath == "" {
		return c.Styles.Dir
	}
	return filepath.Join(filepath.Dir(c.configPath), c.Styles.Dir)
}

package config

import (
	"bytes"
	"io"
	"net"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/styled/internal/errors"
	"github.com/vango-dev/styled/pkg/styled"
	"github.com/vango-dev/styled/pkg/vdom"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "styled.yaml"

	// DefaultPort is the default preview server port.
	DefaultPort = 4100

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultRegion is the default publish region.
	DefaultRegion = "us-east-1"
)

// Alias presets accepted by ComponentConfig.AliasPreset.
const (
	PresetNone    = "none"
	PresetDefault = "default"
	PresetText    = "text"
)

// configFileNames are tried in order by Load and Exists.
var configFileNames = []string{ConfigFileName, "styled.yml", "styled.json"}

// Config represents the complete styled.yaml configuration.
type Config struct {
	// Preview contains preview server configuration.
	Preview PreviewConfig `yaml:"preview,omitempty"`

	// Publish contains showcase upload configuration.
	Publish PublishConfig `yaml:"publish,omitempty"`

	// Components declares styled components built on the primitives.
	Components map[string]*ComponentConfig `yaml:"components,omitempty" validate:"dive,keys,component_name,endkeys,required"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// PreviewConfig contains preview server settings.
type PreviewConfig struct {
	// Host is the host to bind to.
	Host string `yaml:"host,omitempty" validate:"required"`

	// Port is the port to listen on.
	Port int `yaml:"port,omitempty" validate:"min=1,max=65535"`

	// Metrics exposes Prometheus metrics on /metrics.
	Metrics bool `yaml:"metrics,omitempty"`

	// AllowedOrigins lists origins allowed to open the live render
	// websocket. Empty means same host only.
	AllowedOrigins []string `yaml:"allowedOrigins,omitempty" validate:"dive,url"`
}

// PublishConfig contains settings for uploading the showcase.
type PublishConfig struct {
	// Bucket is the destination bucket. Required to publish.
	Bucket string `yaml:"bucket,omitempty"`

	// Prefix is prepended to every object key.
	Prefix string `yaml:"prefix,omitempty"`

	// Region is the bucket region.
	Region string `yaml:"region,omitempty"`

	// Endpoint overrides the S3 endpoint, e.g. for MinIO.
	Endpoint string `yaml:"endpoint,omitempty" validate:"omitempty,url"`

	// PathStyle forces path-style addressing.
	PathStyle bool `yaml:"pathStyle,omitempty"`
}

// ComponentConfig declares one styled component.
type ComponentConfig struct {
	// Base names the primitive to wrap (Text, View, ...).
	Base string `yaml:"base" validate:"required,primitive"`

	// AliasPreset selects the built-in alias table composed before Aliases.
	AliasPreset string `yaml:"aliasPreset,omitempty" validate:"omitempty,oneof=none default text"`

	// Aliases are extra short names, applied over the preset.
	Aliases map[string]string `yaml:"aliases,omitempty" validate:"dive,keys,required,endkeys,styleprop"`

	// DefaultStyles has the lowest precedence in the final style.
	DefaultStyles styled.Style `yaml:"defaultStyles,omitempty"`

	// CustomProps maps flag props to the style fragment they switch on.
	CustomProps styled.CustomProps `yaml:"customProps,omitempty"`

	// Examples are rendered in the gallery and published showcase.
	Examples []Example `yaml:"examples,omitempty" validate:"dive"`
}

// Example is a named props bag for a component.
type Example struct {
	Name  string     `yaml:"name" validate:"required"`
	Props vdom.Props `yaml:"props,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Preview: PreviewConfig{
			Host: DefaultHost,
			Port: DefaultPort,
		},
		Publish: PublishConfig{
			Region: DefaultRegion,
		},
		Components: make(map[string]*ComponentConfig),
	}
}

// Load reads configuration from the specified directory. It looks for
// styled.yaml, styled.yml and styled.json, in that order.
func Load(dir string) (*Config, error) {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return nil, errors.New("E100").
		WithDetail("No " + ConfigFileName + " found in " + dir).
		WithSuggestion("Create " + ConfigFileName + " or pass --config with the path to one")
}

// LoadFile reads configuration from the specified file path. JSON files
// are read by the same decoder.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E100").
				WithDetail("No config file at " + path)
		}
		return nil, errors.New("E101").Wrap(err)
	}

	cfg := New()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// An empty or comment-only file decodes to io.EOF and keeps the defaults.
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.New("E101").
			Wrap(err).
			WithLocationFromYAML(path, err).
			WithSuggestion("Check the YAML syntax and field names in " + filepath.Base(path))
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveTo writes the configuration as YAML to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.New("E101").Wrap(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E101").Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return "."
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Preview.Host == "" {
		c.Preview.Host = DefaultHost
	}
	if c.Preview.Port == 0 {
		c.Preview.Port = DefaultPort
	}
	if c.Publish.Region == "" {
		c.Publish.Region = DefaultRegion
	}
	if c.Components == nil {
		c.Components = make(map[string]*ComponentConfig)
	}
	for _, comp := range c.Components {
		if comp == nil {
			continue
		}
		if comp.AliasPreset == "" {
			comp.AliasPreset = PresetDefault
		}
		comp.normalize()
	}
}

// normalize replaces the nested named maps left by the YAML decoder with
// plain maps, so style values such as shadowOffset match map[string]any.
func (cc *ComponentConfig) normalize() {
	if cc.DefaultStyles != nil {
		cc.DefaultStyles = styled.Style(vdom.Props(cc.DefaultStyles).Normalized())
	}
	for flag, fragment := range cc.CustomProps {
		if fragment != nil {
			cc.CustomProps[flag] = styled.Style(vdom.Props(fragment).Normalized())
		}
	}
	for i := range cc.Examples {
		if cc.Examples[i].Props != nil {
			cc.Examples[i].Props = cc.Examples[i].Props.Normalized()
		}
	}
}

// PreviewAddress returns the listen address for the preview server.
func (c *Config) PreviewAddress() string {
	return net.JoinHostPort(c.Preview.Host, strconv.Itoa(c.Preview.Port))
}

// PreviewURL returns the URL of the preview server.
func (c *Config) PreviewURL() string {
	return "http://" + c.PreviewAddress()
}

// ComponentNames returns the declared component names in sorted order.
func (c *Config) ComponentNames() []string {
	names := make([]string, 0, len(c.Components))
	for name := range c.Components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Options converts the entry into wrapper options: the preset table
// composed with the entry's own aliases, plus its default styles and
// custom props.
func (cc *ComponentConfig) Options() styled.Options {
	var preset styled.AliasTable
	switch cc.AliasPreset {
	case PresetText:
		preset = styled.TextAliases()
	case PresetNone:
	default:
		preset = styled.DefaultAliases()
	}

	var aliases styled.AliasTable
	if preset != nil || len(cc.Aliases) > 0 {
		aliases = styled.ComposeAliases(preset, styled.AliasTable(cc.Aliases))
	}
	return styled.Options{
		Aliases:       aliases,
		DefaultStyles: cc.DefaultStyles,
		CustomProps:   cc.CustomProps,
	}
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	for _, name := range configFileNames {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// FindProjectRoot walks up directories to find the directory containing a
// config file.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E100").
				WithDetail("No " + ConfigFileName + " found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working
// directory or the nearest parent that has one.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}

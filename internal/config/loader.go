package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/25smoking/genenet/internal/edgelist"
	"github.com/25smoking/genenet/internal/embedded"
	"github.com/25smoking/genenet/internal/graph"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultName is the config file looked up under config/ and in the embedded defaults.
const DefaultName = "genenet.yaml"

var validate = validator.New()

// ========== Config ==========

type ReaderConfig struct {
	FillValue     string `yaml:"fill_value" validate:"required"`
	CommentPrefix string `yaml:"comment_prefix" validate:"required"`
}

type BuilderConfig struct {
	MergePolicy     string `yaml:"merge_policy" validate:"required,oneof=replace"`
	RemoveSelfLoops bool   `yaml:"remove_self_loops"`
}

type WriterConfig struct {
	GraphName string `yaml:"graph_name"`
	Indent    string `yaml:"indent" validate:"max=8"`
}

type Config struct {
	Reader  ReaderConfig  `yaml:"reader"`
	Builder BuilderConfig `yaml:"builder"`
	Writer  WriterConfig  `yaml:"writer"`
}

// ReadOptions converts the reader section into edge-list parser options.
func (c *Config) ReadOptions() []edgelist.Option {
	return []edgelist.Option{
		edgelist.WithFillValue(c.Reader.FillValue),
		edgelist.WithCommentPrefix(c.Reader.CommentPrefix),
	}
}

// MergePolicy returns the configured merge policy.
func (c *Config) MergePolicy() graph.MergePolicy {
	return graph.MergePolicy(c.Builder.MergePolicy)
}

// ExportOptions returns the writer section as graph export options.
func (c *Config) ExportOptions() graph.ExportOptions {
	return graph.ExportOptions{GraphName: c.Writer.GraphName, Indent: c.Writer.Indent}
}

// ========== Loader Functions ==========

func loadConfigData(configPath string) ([]byte, string, error) {
	// An explicit path must exist.
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		return data, configPath, err
	}

	local := filepath.Join("config", DefaultName)
	if _, err := os.Stat(local); err == nil {
		data, err := os.ReadFile(local)
		return data, local, err
	}

	// embed always uses forward slashes
	embedPath := "config/" + DefaultName
	data, err := embedded.Content.ReadFile(embedPath)
	return data, "embedded:" + embedPath, err
}

// Load reads the configuration from configPath, from config/genenet.yaml, or
// from the embedded default, in that order, and validates it.
func Load(configPath string) (*Config, error) {
	data, source, err := loadConfigData(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return cfg, nil
}

// Parse unmarshals YAML on top of the embedded defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the embedded configuration.
func Default() (*Config, error) {
	data, err := embedded.Content.ReadFile("config/" + DefaultName)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse embedded config: %w", err)
	}
	return &cfg, nil
}

// Validate checks struct constraints and reports every violated field.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config cannot be nil")
	}
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

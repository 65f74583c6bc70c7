package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/assemble"
	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/common"
	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/directory"
)

const filePerm = 0o644

// Config is the on-disk run configuration.
type Config struct {
	Defaults             assemble.Defaults `yaml:"defaults,omitempty"`
	Authority            string            `yaml:"authority,omitempty"`
	IdentifierPrefix     string            `yaml:"identifierPrefix,omitempty"`
	SanitizeDescriptions bool              `yaml:"sanitizeDescriptions,omitempty"`

	// Directory is the path of a field directory overlay. A relative path is
	// resolved against the config file's directory by LoadFile.
	Directory string `yaml:"directory,omitempty"`
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	if cfg.Directory != "" && !filepath.IsAbs(cfg.Directory) {
		cfg.Directory = filepath.Join(filepath.Dir(path), cfg.Directory)
	}

	return cfg, nil
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return &cfg, nil
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// WriteFile writes a Config to the given path.
func WriteFile(cfg *Config, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}

// MergeDefaults returns the caller tier: each flag value wins over the
// config file value.
func (c *Config) MergeDefaults(flags assemble.Defaults) assemble.Defaults {
	return assemble.Defaults{
		Contributor:  common.FirstNonEmpty(flags.Contributor, c.Defaults.Contributor),
		ContactEmail: common.FirstNonEmpty(flags.ContactEmail, c.Defaults.ContactEmail),
		Description:  common.FirstNonEmpty(flags.Description, c.Defaults.Description),
	}
}

// AssembleOptions builds assembly options from the config. caller is the
// already merged caller tier; lookup reads the environment tier.
func (c *Config) AssembleOptions(caller assemble.Defaults, lookup LookupFunc) (assemble.Options, error) {
	opts := assemble.Options{
		Defaults:             caller,
		EnvDefaults:          EnvDefaults(lookup),
		Authority:            c.Authority,
		IdentifierPrefix:     c.IdentifierPrefix,
		SanitizeDescriptions: c.SanitizeDescriptions,
	}

	if c.Directory == "" {
		return opts, nil
	}

	reg, err := LoadRegistry(c.Directory)
	if err != nil {
		return assemble.Options{}, err
	}

	opts.Registry = reg

	return opts, nil
}

// LoadRegistry returns the default directory extended by the overlay at path.
func LoadRegistry(path string) (*directory.Registry, error) {
	overlay, err := directory.LoadOverlayFile(path)
	if err != nil {
		return nil, err
	}

	reg, err := directory.Default().Apply(overlay)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return reg, nil
}

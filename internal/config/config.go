package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	envPrefix         = "envrun"
	defaultDBFileName = "envrun.db"
	defaultDBFileMode = 0666
)

// allowList is the fixed, closed set of variable names exported to the
// dispatched command. Order is the report order.
var allowList = []string{
	"OPENAI_API_KEY",
	"TAVILY_API_KEY",
	"DOC_PATH",
	"RETRIEVER",
}

// secretNames marks which allow-listed variables carry credentials and
// must only ever appear in redacted form.
var secretNames = map[string]struct{}{
	"OPENAI_API_KEY": {},
	"TAVILY_API_KEY": {},
}

type Config struct {
	EnvFile           string      `envconfig:"ENV_FILE" default:".env" yaml:"env_file"`
	WorkDir           string      `envconfig:"WORK_DIR" default:"gpt-researcher" yaml:"work_dir"`
	DataDir           string      `envconfig:"DATA_DIR" default:"." yaml:"data_dir"`
	Command           string      `envconfig:"COMMAND" default:"uv" yaml:"command"`
	Args              []string    `envconfig:"ARGS" default:"run,pytest,-v" yaml:"args"`
	Profile           string      `envconfig:"PROFILE" default:"envrun.yaml" yaml:"-"`
	DBFilePermissions os.FileMode `ignored:"true" yaml:"-"`
}

// Load builds the tool configuration from the ENVRUN_* environment,
// then overlays the optional YAML profile. A missing profile file is
// not an error.
func Load() (*Config, error) {
	cfg := &Config{
		DBFilePermissions: defaultDBFileMode,
	}

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, fmt.Errorf("processing environment: %w", err)
	}

	if err := cfg.applyProfile(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyProfile() error {
	data, err := os.ReadFile(c.Profile)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading profile %s: %w", c.Profile, err)
	}

	// Unmarshalling over the existing struct keeps env-derived values
	// for keys the profile omits.
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing profile %s: %w", c.Profile, err)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.EnvFile == "" {
		return fmt.Errorf("env file path must not be empty")
	}
	if c.WorkDir == "" {
		return fmt.Errorf("work dir must not be empty")
	}
	if c.Command == "" {
		return fmt.Errorf("command must not be empty")
	}
	return nil
}

func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, defaultDBFileName)
}

// AllowList returns a copy of the fixed export allow-list.
func AllowList() []string {
	names := make([]string, len(allowList))
	copy(names, allowList)
	return names
}

func IsSecret(name string) bool {
	_, ok := secretNames[name]
	return ok
}

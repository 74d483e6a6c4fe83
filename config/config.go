package config

import (
	"bytes"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mogaika/creature_retargeter/animdata"
)

const DefaultFile = "animcache.yaml"

type Config struct {
	LogLevel string `yaml:"log_level"`
	// Line terminator of written cache files, "\n" or "\r\n".
	Newline    string `yaml:"newline"`
	Encoding   string `yaml:"encoding"`
	SaveMerged bool   `yaml:"save_merged"`
	// Extra creature name variants, keyed by lowercase creature name.
	Aliases map[string][]string `yaml:"aliases,omitempty"`
}

func Defaults() *Config {
	return &Config{
		LogLevel:   "info",
		Newline:    "\n",
		Encoding:   "Windows 1252",
		SaveMerged: true,
	}
}

// Load reads the yaml file at path over the defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	data, err := ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "Failed to read config %q", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "Failed to parse config %q", path)
	}
	return cfg, nil
}

func (cfg *Config) Save(path string) error {
	var buffer bytes.Buffer
	enc := yaml.NewEncoder(&buffer)
	enc.SetIndent(2)

	if err := enc.Encode(cfg); err != nil {
		return errors.Wrapf(err, "Failed to marshal yaml")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrapf(err, "Failed to close yaml encoder")
	}
	if err := ioutil.WriteFile(path, buffer.Bytes(), 0666); err != nil {
		return errors.Wrapf(err, "Failed to write config %q", path)
	}
	return nil
}

// Apply installs the encoding and newline settings process wide.
func (cfg *Config) Apply() error {
	switch cfg.Newline {
	case "\n", "\r\n":
		animdata.DefaultNewline = cfg.Newline
	default:
		return errors.Errorf("Unsupported newline %q", cfg.Newline)
	}
	if err := SetEncoding(cfg.Encoding); err != nil {
		return err
	}
	return nil
}

package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
	"gopkg.in/yaml.v3"
)

const DEFAULT_FILE_NAME = "offmesh.yaml"

type Config struct {
	Addr          string `yaml:"addr"`
	Encoding      string `yaml:"encoding"`
	MaxSourceSize int64  `yaml:"max_source_size"`
	WebPath       string `yaml:"web_path"`
}

func Default() *Config {
	return &Config{
		Addr:          ":8000",
		Encoding:      charmap.Windows1252.String(),
		MaxSourceSize: 64 << 20,
		WebPath:       "web",
	}
}

var current = Default()

func Get() *Config { return current }

// Load reads a yaml config over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "Failed to open config %q", path)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "Failed to unmarshal yaml %q", path)
	}
	if cfg.MaxSourceSize <= 0 {
		return nil, errors.Errorf("max_source_size must be positive, got %d", cfg.MaxSourceSize)
	}
	if _, err := findCharmap(cfg.Encoding); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Apply makes cfg the process wide configuration.
func Apply(cfg *Config) error {
	if err := SetEncoding(cfg.Encoding); err != nil {
		return err
	}
	current = cfg
	return nil
}

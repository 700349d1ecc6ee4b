package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jenkinslint/jenkinslint/internal/domain"
)

const fileName = ".jenkinslint.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .jenkinslint.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .jenkinslint.yaml from dir. Returns DefaultConfig if the file
// does not exist.
func (l *YAMLLoader) Load(dir string) (domain.Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, err
	}

	cfg := domain.DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return cfg, nil
}

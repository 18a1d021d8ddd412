package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

type SeedUser struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Currency string `yaml:"currency"`
	Locale   string `yaml:"locale"`
}

type SeedConfig struct {
	Categories []string   `yaml:"categories"`
	Users      []SeedUser `yaml:"users"`
}

func LoadSeeds(path string) (*SeedConfig, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseSeeds(buf)
}

func ParseSeeds(buf []byte) (*SeedConfig, error) {
	c := &SeedConfig{}

	if err := yaml.Unmarshal(buf, c); err != nil {
		return nil, err
	}

	return c, nil
}

package app

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"contractseal/internal/crypto"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home    string `yaml:"home"`     // base directory, e.g. $HOME/.contractseal
	Archive string `yaml:"archive"`  // document archive dir; defaults to <home>/archive
	KeyBits int    `yaml:"key_bits"` // RSA modulus size for new key pairs
}

// Default returns a config rooted at home with default-size keys.
func Default(home string) Config {
	return Config{
		Home:    home,
		Archive: filepath.Join(home, "archive"),
		KeyBits: crypto.KeyBits,
	}
}

// LoadFile merges settings from a YAML file into c. A missing file leaves
// c unchanged.
func (c *Config) LoadFile(path string) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, c)
}

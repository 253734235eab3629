// Package huffconfig loads the YAML-backed defaults the CLI falls
// back to when a flag isn't given explicitly.
package huffconfig

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/CzarekM2012/Huffman/internal/hufferr"
)

// Config holds the defaults gohuff reads from a config file.
type Config struct {
	DefaultAlgorithm string `yaml:"default_algorithm"`
	ChunkSize        int    `yaml:"chunk_size"`
	SymbolSize       int    `yaml:"symbol_size"`
}

// Default returns the built-in defaults used when no config file is
// present.
func Default() *Config {
	return &Config{
		DefaultAlgorithm: "adaptive",
		ChunkSize:        1024,
		SymbolSize:       1,
	}
}

// Load reads a YAML config file at path, falling back to Default for
// any field the file doesn't set, and filling in Default() outright
// when path doesn't exist.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	absPath := path
	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, hufferr.Wrap(hufferr.InvalidConfig, "huffconfig.Load: resolve path", err)
		}
		absPath = abs
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, hufferr.Wrap(hufferr.IoError, "huffconfig.Load: read file", err)
	}

	loaded := Config{}
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, hufferr.Wrap(hufferr.InvalidConfig, "huffconfig.Load: parse yaml", err)
	}
	if loaded.DefaultAlgorithm != "" {
		cfg.DefaultAlgorithm = loaded.DefaultAlgorithm
	}
	if loaded.ChunkSize > 0 {
		cfg.ChunkSize = loaded.ChunkSize
	}
	if loaded.SymbolSize > 0 {
		cfg.SymbolSize = loaded.SymbolSize
	}
	return cfg, nil
}

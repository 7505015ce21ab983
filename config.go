// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = ".cryptotree.yaml"

type LedgerConfig struct {
	File         string `yaml:"file"`
	ShowProgress bool   `yaml:"show_progress"`
}

type IndexConfig struct {
	BloomFilterSize   uint `yaml:"bloom_filter_size"`
	BloomFilterHashes uint `yaml:"bloom_filter_hashes"`
}

type CacheConfig struct {
	ProofExpiration time.Duration `yaml:"proof_expiration"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type Config struct {
	Ledger LedgerConfig `yaml:"ledger"`
	Index  IndexConfig  `yaml:"index"`
	Cache  CacheConfig  `yaml:"cache"`
	Log    LogConfig    `yaml:"log"`
}

func defaultConfig() Config {
	return Config{
		Ledger: LedgerConfig{
			File:         "ledger.yaml",
			ShowProgress: true,
		},
		Index: IndexConfig{
			BloomFilterSize:   100000,
			BloomFilterHashes: 5,
		},
		Cache: CacheConfig{
			ProofExpiration: 30 * time.Minute,
			CleanupInterval: 5 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// getConfigPath resolves the config location. An explicit path wins over
// the file in the user's home directory.
func getConfigPath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads the YAML config at path over the defaults. A missing file
// is not an error. On a malformed file the defaults are returned together
// with the error so callers can log it and carry on.
func LoadConfig(path string) (*Config, error) {
	config := defaultConfig()

	configPath, err := getConfigPath(path)
	if err != nil {
		return &config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &config, nil
		}
		return &config, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	loaded := defaultConfig()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return &config, fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}
	if err := loaded.validate(); err != nil {
		return &config, fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	return &loaded, nil
}

func (c *Config) validate() error {
	if c.Index.BloomFilterSize == 0 {
		return fmt.Errorf("index.bloom_filter_size must be positive")
	}
	if c.Index.BloomFilterHashes == 0 {
		return fmt.Errorf("index.bloom_filter_hashes must be positive")
	}
	if c.Cache.ProofExpiration < 0 || c.Cache.CleanupInterval < 0 {
		return fmt.Errorf("cache durations must not be negative")
	}
	return nil
}

func createDefaultConfigFile(path string) error {
	configPath, err := getConfigPath(path)
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	config := defaultConfig()
	data, err := yaml.Marshal(&config)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displaySettings(w io.Writer, path string) error {
	configPath, err := getConfigPath(path)
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	created := false
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := createDefaultConfigFile(configPath); err != nil {
			return err
		}
		created = true
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	fmt.Fprintln(w, styles.Title.Render("cryptotree configuration"))
	if created {
		fmt.Fprintf(w, "Config file: %s (newly created)\n\n", configPath)
	} else {
		fmt.Fprintf(w, "Config file: %s\n\n", configPath)
	}
	fmt.Fprint(w, string(data))
	return nil
}

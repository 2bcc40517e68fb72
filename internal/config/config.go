package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/guptatavish/compliance-coordinator/internal/domain/report"
)

type Config struct {
	Server struct {
		Port  int  `yaml:"port"`
		Debug bool `yaml:"debug"`
	} `yaml:"server"`

	Perplexity struct {
		Model string `yaml:"model"`
	} `yaml:"perplexity"`

	Mistral struct {
		APIKey string `yaml:"apiKey"`
		Model  string `yaml:"model"`
	} `yaml:"mistral"`

	Policy report.Policy `yaml:"policy"`

	Cache struct {
		AnalysisTTL string `yaml:"analysisTTL"`
		DocumentTTL string `yaml:"documentTTL"`
	} `yaml:"cache"`
}

// Load reads config.yaml and applies environment overrides. A missing file
// is not an error: the service runs on defaults plus environment.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	cfg.applyEnv()
	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Server.Port = 5000
	cfg.Perplexity.Model = "llama-3.1-sonar-large-128k-online"
	cfg.Mistral.Model = "mistral-large-latest"
	cfg.Policy = report.DefaultPolicy
	cfg.Cache.AnalysisTTL = "1h"
	cfg.Cache.DocumentTTL = "24h"
	return cfg
}

func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("MISTRAL_API_KEY"); v != "" {
		c.Mistral.APIKey = v
	}
	if v := os.Getenv("DEBUG"); v != "" {
		c.Server.Debug = strings.EqualFold(v, "true") || v == "1"
	}
}

// AnalysisTTL is how long analysis results stay cached.
func (c *Config) AnalysisTTL() time.Duration {
	return parseTTL(c.Cache.AnalysisTTL, time.Hour)
}

// DocumentTTL is how long regulatory documents stay cached.
func (c *Config) DocumentTTL() time.Duration {
	return parseTTL(c.Cache.DocumentTTL, 24*time.Hour)
}

func parseTTL(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

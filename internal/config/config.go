package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port" json:"port"`
		DataDir string `yaml:"data_dir" json:"data_dir"`
	} `yaml:"app" json:"app"`

	Auth struct {
		TokenTTLMinutes int `yaml:"token_ttl_minutes" json:"token_ttl_minutes"`
		// SecretEnv names the environment variable holding the JWT signing
		// secret; the secret itself never lives in the config file.
		SecretEnv string `yaml:"secret_env" json:"secret_env"`
	} `yaml:"auth" json:"auth"`

	HTTP struct {
		RatePerSecond float64 `yaml:"rate_per_second" json:"rate_per_second"`
		Burst         int     `yaml:"burst" json:"burst"`
	} `yaml:"http" json:"http"`

	Recommend struct {
		DefaultLimit int `yaml:"default_limit" json:"default_limit"`
		Parallelism  int `yaml:"parallelism" json:"parallelism"`
	} `yaml:"recommend" json:"recommend"`

	Sessions struct {
		ExpireSweepSeconds int `yaml:"expire_sweep_seconds" json:"expire_sweep_seconds"`
	} `yaml:"sessions" json:"sessions"`

	Seed struct {
		Enabled bool `yaml:"enabled" json:"enabled"`
	} `yaml:"seed" json:"seed"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

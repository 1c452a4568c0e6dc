package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	BucketEnv   = "BUCKET_NAME"
	LogLevelEnv = "LOG_LEVEL"
)

// ErrBucketNotSet is returned when BUCKET_NAME is unset or empty. Its text is
// the error message callers see in the response body.
var ErrBucketNotSet = errors.New("BUCKET_NAME environment variable not set")

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// LookupBucket reads the bucket name through lookup. An empty value counts as
// unset.
func LookupBucket(lookup LookupFunc) (string, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	bucket, ok := lookup(BucketEnv)
	if !ok || bucket == "" {
		return "", ErrBucketNotSet
	}
	return bucket, nil
}

// Config holds optional defaults for the local CLI, loaded from
// ~/.config/bucket-lister/config.yaml. The Lambda runtime never reads it.
type Config struct {
	DefaultProfile string `yaml:"default_profile"`
	DefaultRegion  string `yaml:"default_region"`
	LogLevel       string `yaml:"log_level"`
}

func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "bucket-lister", "config.yaml"), nil
}

// Load reads the config file. Returns zero-value Config if the file doesn't exist.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return &Config{}, nil
	}
	return LoadFile(path)
}

func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Merge applies CLI flag overrides. Flags take precedence over config defaults.
func (c *Config) Merge(profile, region string) (string, string) {
	p := c.DefaultProfile
	if profile != "" {
		p = profile
	}
	r := c.DefaultRegion
	if region != "" {
		r = region
	}
	return p, r
}

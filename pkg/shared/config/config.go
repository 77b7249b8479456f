package config

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v2"
)

type Config struct {
	Logger     Logger     `yaml:"logger"`
	HTTPClient HTTPClient `yaml:"http_client"`
	GitHub     GitHub     `yaml:"github"`
	S3         S3         `yaml:"s3"`
}

type Logger struct {
	Level       string `yaml:"level"`
	DisableTime *bool  `yaml:"disable_time"`
	JSONFormat  *bool  `yaml:"json_format"`
}

type HTTPClient struct {
	Debug            *bool           `yaml:"debug"`
	RetryCount       int             `yaml:"retry_count"`
	RetryWaitTime    time.Duration   `yaml:"retry_wait_time"`
	RetryMaxWaitTime time.Duration   `yaml:"retry_max_wait_time"`
	Timeout          time.Duration   `yaml:"timeout"`
	TLSClientConfig  TLSClientConfig `yaml:"tls_client_config"`
	Proxy            Proxy           `yaml:"proxy"`
}

type TLSClientConfig struct {
	Verify *bool `yaml:"verify"`
}

type Proxy struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// GitHub holds the tracker settings shared by the issues commands.
type GitHub struct {
	APIURL    string   `yaml:"api_url"`
	Token     string   `yaml:"token"`
	PerPage   int      `yaml:"per_page"`
	MaxPages  *int     `yaml:"max_pages"`
	Assignees []string `yaml:"assignees"`
	Labels    []string `yaml:"labels"`
}

// S3 configures reads of findings documents addressed as s3://bucket/key.
type S3 struct {
	Region   string `yaml:"region"`
	Endpoint string `yaml:"endpoint"`
	Profile  string `yaml:"profile"`
}

func ValidateConfigPath(path string) error {
	s, err := os.Stat(path)
	if err != nil {
		return err
	}
	if s.IsDir() {
		return fmt.Errorf("'%s' is a directory, not a file", path)
	}
	return nil
}

func LoadYAML(configPath string, data interface{}) error {
	if err := ValidateConfigPath(configPath); err != nil {
		return err
	}

	file, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	if err := d.Decode(data); err != nil {
		return err
	}

	return nil
}

// LoadConfig reads the YAML config at configPath and fills in defaults.
// A missing file is only an error when the path was passed explicitly.
func LoadConfig(configPath string, explicit bool) (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(configPath); err == nil || explicit {
		if err := LoadYAML(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config %q: %w", configPath, err)
		}
	}

	UpdateConfigFromEnv(cfg)
	ApplyDefaults(cfg)
	return cfg, nil
}

// UpdateConfigFromEnv sets configuration values from environment variables, if they are set.
func UpdateConfigFromEnv(cfg *Config) {
	if v := os.Getenv(EnvGithubToken); v != "" {
		cfg.GitHub.Token = v
	} else if cfg.GitHub.Token == "" {
		cfg.GitHub.Token = os.Getenv(EnvGithubActionsToken)
	}
	if v := os.Getenv(EnvGithubAPIURL); v != "" {
		cfg.GitHub.APIURL = v
	}
}

// ApplyDefaults fills every unset field with its default value.
func ApplyDefaults(cfg *Config) {
	cfg.GitHub.APIURL = ValueOr(cfg.GitHub.APIURL, DefaultGitHubAPIURL)
	cfg.GitHub.PerPage = ValueOr(cfg.GitHub.PerPage, DefaultPerPage)
	if cfg.GitHub.MaxPages == nil {
		maxPages := DefaultMaxPages
		cfg.GitHub.MaxPages = &maxPages
	}
	if cfg.GitHub.Labels == nil {
		cfg.GitHub.Labels = append([]string(nil), DefaultLabels...)
	}
	cfg.S3.Region = ValueOr(cfg.S3.Region, DefaultS3Region)
}

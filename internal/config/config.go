package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// DefaultBasePath hosts colour-schemes.json.
const DefaultBasePath = "https://atomcorp.github.io/themes"

// BasePathEnv overrides base_path; no other setting is read from the
// environment.
const BasePathEnv = "WTTHEMES_BASE_PATH"

type Config struct {
	BasePath           string        `mapstructure:"base_path"`
	DownloadDir        string        `mapstructure:"download_dir"`
	LogLevel           string        `mapstructure:"log_level"`
	LogFile            string        `mapstructure:"log_file"`
	SmallScreenColumns int           `mapstructure:"small_screen_columns"`
	StrictCatalog      bool          `mapstructure:"strict_catalog"`
	FetchTimeout       time.Duration `mapstructure:"fetch_timeout"`
}

var (
	configDir  string
	configFile string
)

func init() {
	// get home dir
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Sprintf("failed to get home directory: %v", err))
	}

	configDir = filepath.Join(homeDir, ".wtthemes")
	configFile = filepath.Join(configDir, "config.yaml")
}

func GetConfigDir() string {
	return configDir
}

func GetConfigFile() string {
	return configFile
}

// SetConfigFile points loading and saving at path instead of the default.
func SetConfigFile(path string) {
	configFile = path
}

func ConfigExists() bool {
	_, err := os.Stat(configFile)
	return err == nil
}

func EnsureConfigDir() error {
	return os.MkdirAll(filepath.Dir(configFile), 0755)
}

func newViper() *viper.Viper {
	v := viper.New()
	def := GetDefaultConfig()

	v.SetDefault("base_path", def.BasePath)
	v.SetDefault("download_dir", def.DownloadDir)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_file", def.LogFile)
	v.SetDefault("small_screen_columns", def.SmallScreenColumns)
	v.SetDefault("strict_catalog", def.StrictCatalog)
	v.SetDefault("fetch_timeout", def.FetchTimeout)

	_ = v.BindEnv("base_path", BasePathEnv)
	return v
}

// loads config from file, falling back to defaults when there is none
func LoadConfig() (*Config, error) {
	v := newViper()

	if ConfigExists() {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// saves config to file
func SaveConfig(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.Set("base_path", cfg.BasePath)
	v.Set("download_dir", cfg.DownloadDir)
	v.Set("log_level", cfg.LogLevel)
	v.Set("log_file", cfg.LogFile)
	v.Set("small_screen_columns", cfg.SmallScreenColumns)
	v.Set("strict_catalog", cfg.StrictCatalog)
	v.Set("fetch_timeout", cfg.FetchTimeout.String())

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// returns default config
func GetDefaultConfig() *Config {
	downloadDir := "."
	if homeDir, err := os.UserHomeDir(); err == nil {
		downloadDir = filepath.Join(homeDir, "Downloads")
	}

	return &Config{
		BasePath:           DefaultBasePath,
		DownloadDir:        downloadDir,
		LogLevel:           "info",
		LogFile:            filepath.Join(configDir, "wtthemes.log"),
		SmallScreenColumns: 100,
		StrictCatalog:      false,
		FetchTimeout:       10 * time.Second,
	}
}

func (c *Config) Validate() error {
	if c.SmallScreenColumns <= 0 {
		return fmt.Errorf("small_screen_columns must be positive, got %d", c.SmallScreenColumns)
	}
	if c.FetchTimeout < 0 {
		return fmt.Errorf("fetch_timeout cannot be negative, got %s", c.FetchTimeout)
	}
	return nil
}

// updates base path in config file
func UpdateBasePath(basePath string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.BasePath = basePath
	return SaveConfig(cfg)
}

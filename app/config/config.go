package config

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/branch-locator/app/models"
	"github.com/branch-locator/internal/loader"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

type AppCfg struct {
	Env  string `mapstructure:"env" yaml:"env" json:"env"`
	Lang string `mapstructure:"lang" yaml:"lang" json:"lang"`
}

// DataCfg where the branch sheet lives and how it is read
type DataCfg struct {
	BaseURL      string        `mapstructure:"base_url" yaml:"base_url" json:"base_url"` // http(s) base or local directory
	File         string        `mapstructure:"file" yaml:"file" json:"file"`
	Locale       string        `mapstructure:"locale" yaml:"locale" json:"locale"`
	RegionScope  string        `mapstructure:"region_scope" yaml:"region_scope" json:"region_scope"`
	Fields       loader.Fields `mapstructure:"fields" yaml:"fields" json:"fields"`
	FetchTimeout time.Duration `mapstructure:"fetch_timeout" yaml:"fetch_timeout" json:"fetch_timeout"` // 0 means no timeout
}

type MapsCfg struct {
	EmbedAPIKey string `mapstructure:"embed_api_key" yaml:"embed_api_key" json:"-"`
}

type AssetsCfg struct {
	Port string `mapstructure:"port" yaml:"port" json:"port"`
	Dir  string `mapstructure:"dir" yaml:"dir" json:"dir"`
}

type SearchCfg struct {
	CacheSize int     `mapstructure:"cache_size" yaml:"cache_size" json:"cache_size"`
	MinScore  float64 `mapstructure:"min_score" yaml:"min_score" json:"min_score"`
}

type NearbyCfg struct {
	Limit int `mapstructure:"limit" yaml:"limit" json:"limit"`
}

// LogCfg the TUI owns the terminal, so logs go to a file
type LogCfg struct {
	File  string `mapstructure:"file" yaml:"file" json:"file"`
	Level string `mapstructure:"level" yaml:"level" json:"level"`
}

// Config application configuration
type Config struct {
	App    AppCfg    `mapstructure:"app" yaml:"app" json:"app"`
	Data   DataCfg   `mapstructure:"data" yaml:"data" json:"data"`
	Maps   MapsCfg   `mapstructure:"maps" yaml:"maps" json:"maps"`
	Assets AssetsCfg `mapstructure:"assets" yaml:"assets" json:"assets"`
	Search SearchCfg `mapstructure:"search" yaml:"search" json:"search"`
	Nearby NearbyCfg `mapstructure:"nearby" yaml:"nearby" json:"nearby"`
	Log    LogCfg    `mapstructure:"log" yaml:"log" json:"log"`
}

func setDefaults(v *viper.Viper) {
	fields := loader.DefaultFields()

	v.SetDefault("app.env", "development")
	v.SetDefault("app.lang", "ar")
	v.SetDefault("data.base_url", "public")
	v.SetDefault("data.file", "cities.csv")
	v.SetDefault("data.locale", "ar")
	v.SetDefault("data.region_scope", "region")
	v.SetDefault("data.fields.city", fields.City)
	v.SetDefault("data.fields.region", fields.Region)
	v.SetDefault("data.fields.name", fields.Name)
	v.SetDefault("data.fields.address", fields.Address)
	v.SetDefault("data.fields.phone", fields.Phone)
	v.SetDefault("data.fields.latitude", fields.Latitude)
	v.SetDefault("data.fields.longitude", fields.Longitude)
	v.SetDefault("data.fetch_timeout", time.Duration(0))
	v.SetDefault("maps.embed_api_key", "")
	v.SetDefault("assets.port", "8080")
	v.SetDefault("assets.dir", "public")
	v.SetDefault("search.cache_size", 1024)
	v.SetDefault("search.min_score", 0.8)
	v.SetDefault("nearby.limit", 3)
	v.SetDefault("log.file", "locator.log")
	v.SetDefault("log.level", "info")
}

// Load reads defaults, an optional YAML file, .env and environment variables
// (APP_ENV, DATA_BASE_URL, MAPS_EMBED_API_KEY, ...). An empty path searches
// ./config/app.yaml and ./app.yaml; a missing file is not an error.
func Load(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("app")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if _, err := cfg.LoaderOptions(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsProduction reports whether app.env selects production logging
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// LoaderOptions converts the data section into loader options
func (c *Config) LoaderOptions() (loader.Options, error) {
	tag, err := language.Parse(c.Data.Locale)
	if err != nil {
		return loader.Options{}, fmt.Errorf("data.locale %q: %w", c.Data.Locale, err)
	}
	scope, err := models.ParseRegionScope(c.Data.RegionScope)
	if err != nil {
		return loader.Options{}, fmt.Errorf("data.region_scope: %w", err)
	}
	return loader.Options{Fields: c.Data.Fields, Locale: tag, Scope: scope}, nil
}

// Source resolves the configured dataset location
func (c *Config) Source(client *http.Client) loader.Source {
	return loader.ResolveSource(c.Data.BaseURL, c.Data.File, client)
}

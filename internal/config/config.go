package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server    Server    `yaml:"server"`
	Auth      Auth      `yaml:"auth"`
	RateLimit RateLimit `yaml:"rate_limit"`
	Graph     Graph     `yaml:"graph"`
	GA4       GA4       `yaml:"ga4"`
	YouTube   YouTube   `yaml:"youtube"`
	LinkedIn  LinkedIn  `yaml:"linkedin"`
	TikTok    TikTok    `yaml:"tiktok"`
	Prospects Prospects `yaml:"prospects"`
}

// Server holds HTTP server configuration
type Server struct {
	Host         string        `yaml:"host" env:"SERVER_HOST" env-default:"0.0.0.0"`
	Port         string        `yaml:"port" env:"PORT" env-default:"8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT" env-default:"15s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"15s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" env-default:"60s"`
}

// Address returns the full server address
func (s Server) Address() string {
	return s.Host + ":" + s.Port
}

// Auth holds the shared-secret gate for the whole API surface.
// Every endpoint except health checks requires this bearer token.
type Auth struct {
	BearerToken string `yaml:"bearer_token" env:"AGENT_BEARER" env-required:"true"`
}

// RateLimit holds per-client request throttling configuration
type RateLimit struct {
	RequestsPerMinute int `yaml:"requests_per_minute" env:"RATE_LIMIT_PER_MINUTE" env-default:"60"`
}

// Graph holds Meta Graph API configuration (Instagram + Facebook KPIs)
type Graph struct {
	BaseURL    string `yaml:"base_url" env:"GRAPH_BASE_URL" env-default:"https://graph.facebook.com"`
	APIVersion string `yaml:"api_version" env:"GRAPH_API_VERSION" env-default:"v19.0"`

	// Process-wide credential used when a request does not carry its own token
	AccessToken string `yaml:"access_token" env:"META_ACCESS_TOKEN"`
}

// GA4 holds Google Analytics 4 Data API configuration.
// Credentials come from Application Default Credentials
// (GOOGLE_APPLICATION_CREDENTIALS), not from this struct.
type GA4 struct {
	BaseURL    string `yaml:"base_url" env:"GA4_BASE_URL" env-default:"https://analyticsdata.googleapis.com"`
	PropertyID string `yaml:"property_id" env:"GA_PROPERTY_ID"`
}

// YouTube holds YouTube Data API OAuth2 configuration
type YouTube struct {
	BaseURL      string `yaml:"base_url" env:"YOUTUBE_BASE_URL" env-default:"https://www.googleapis.com"`
	ClientID     string `yaml:"client_id" env:"YT_CLIENT_ID"`
	ClientSecret string `yaml:"client_secret" env:"YT_CLIENT_SECRET"`
	RefreshToken string `yaml:"refresh_token" env:"YT_REFRESH_TOKEN"`
}

// Configured reports whether the full OAuth2 credential set is present
func (y YouTube) Configured() bool {
	return y.ClientID != "" && y.ClientSecret != "" && y.RefreshToken != ""
}

// LinkedIn holds LinkedIn API configuration
type LinkedIn struct {
	BaseURL     string `yaml:"base_url" env:"LINKEDIN_BASE_URL" env-default:"https://api.linkedin.com"`
	AccessToken string `yaml:"access_token" env:"LINKEDIN_ACCESS_TOKEN"`
}

// TikTok holds TikTok API configuration (placeholder integration)
type TikTok struct {
	AccessToken string `yaml:"access_token" env:"TIKTOK_ACCESS_TOKEN"`
}

// Prospects holds configuration for the demo prospects listing
type Prospects struct {
	DefaultLimit int `yaml:"default_limit" env:"PROSPECTS_DEFAULT_LIMIT" env-default:"25"`
}

// MustLoad loads configuration from environment and panics on error
func MustLoad() Config {
	// Load .env file if exists (for development)
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	return cfg
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

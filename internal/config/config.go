package config

import (
	"fmt"
	"os"
)

// Config holds environment-based settings. CMS access is required at
// startup; stream signing material is allowed to be absent and is reported
// per-request as a configuration error instead.
type Config struct {
	ServerAddress string

	CMSBaseURL string
	CMSToken   string

	StreamAccountID  string
	StreamAPIToken   string
	StreamPrivateKey string
	StreamKeyID      string
	StreamSubdomain  string

	RedisAddress  string
	RedisUsername string
	RedisPassword string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cmsURL := os.Getenv("STRAPI_URL")
	if cmsURL == "" {
		return nil, fmt.Errorf("STRAPI_URL is required")
	}
	addr := os.Getenv("SERVER_ADDRESS")
	if addr == "" {
		addr = ":8080"
	}
	return &Config{
		ServerAddress: addr,

		CMSBaseURL: cmsURL,
		CMSToken:   os.Getenv("STRAPI_API_TOKEN"),

		StreamAccountID:  os.Getenv("CLOUDFLARE_ACCOUNT_ID"),
		StreamAPIToken:   os.Getenv("CLOUDFLARE_API_TOKEN"),
		StreamPrivateKey: os.Getenv("CLOUDFLARE_STREAM_PRIVATE_KEY"),
		StreamKeyID:      os.Getenv("CLOUDFLARE_STREAM_KEY_ID"),
		StreamSubdomain:  os.Getenv("CLOUDFLARE_STREAM_CUSTOMER_SUBDOMAIN"),

		RedisAddress:  os.Getenv("REDIS_ADDRESS"),
		RedisUsername: os.Getenv("REDIS_USERNAME"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}, nil
}

package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

type Config struct {
	ListenAddr  string
	CMSBaseURL  string // empty means remote content is disabled
	CMSToken    string
	MediaHost   string // allow-listed host for the restricted relay
	PageSize    int
	Timeout     time.Duration
	RelayMaxAge time.Duration
}

const (
	ListenAddr  = "LISTEN_ADDR"
	CMSBaseURL  = "CMS_BASE_URL"
	CMSToken    = "CMS_API_TOKEN"
	MediaHost   = "MEDIA_HOST"
	PageSize    = "PAGE_SIZE"
	Timeout     = "TIMEOUT"
	RelayMaxAge = "RELAY_MAX_AGE"
)

func FromEnv() (Config, error) {
	var cfg Config

	cfg.ListenAddr = getEnv(ListenAddr, ":8080")
	cfg.CMSBaseURL = getEnv(CMSBaseURL, "")
	cfg.CMSToken = getEnv(CMSToken, "")
	cfg.MediaHost = getEnv(MediaHost, "")

	var err error
	if cfg.PageSize, err = getEnvInt(PageSize, 100); err != nil {
		return cfg, fmt.Errorf("invalid %v: %w", PageSize, err)
	}
	timeoutStr := getEnv(Timeout, "10s")
	if cfg.Timeout, err = time.ParseDuration(timeoutStr); err != nil {
		return cfg, fmt.Errorf("invalid %v: %w", Timeout, err)
	}
	maxAgeStr := getEnv(RelayMaxAge, "24h")
	if cfg.RelayMaxAge, err = time.ParseDuration(maxAgeStr); err != nil {
		return cfg, fmt.Errorf("invalid %v: %w", RelayMaxAge, err)
	}

	// Media allow-list defaults to the content API's own host.
	if cfg.MediaHost == "" && cfg.CMSBaseURL != "" {
		u, err := url.Parse(cfg.CMSBaseURL)
		if err != nil {
			return cfg, fmt.Errorf("invalid %v: %w", CMSBaseURL, err)
		}
		cfg.MediaHost = u.Hostname()
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, err
	}
	return i, nil
}

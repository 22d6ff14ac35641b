package config

import (
	"github.com/kappatrack/kappatrack/kappatrack"
)

// WebAppConfig contains web-specific configuration
type WebAppConfig struct {
	Config      *kappatrack.Config
	Debug       bool
	Environment string
}

// NewWebAppConfig creates a new web app configuration
func NewWebAppConfig(cfg *kappatrack.Config, debug bool) *WebAppConfig {
	environment := "production"
	if debug {
		environment = "development"
	}

	return &WebAppConfig{
		Config:      cfg,
		Debug:       debug,
		Environment: environment,
	}
}

// GetDatabaseConfig returns the database configuration
func (w *WebAppConfig) GetDatabaseConfig() kappatrack.DBConfig {
	return w.Config.DB
}

// GetWebConfig returns the web configuration
func (w *WebAppConfig) GetWebConfig() kappatrack.WebConfig {
	return w.Config.Web
}

// GetLogConfig returns the log configuration
func (w *WebAppConfig) GetLogConfig() kappatrack.LogConfig {
	return w.Config.Log
}

// FrontendURL returns the base URL of the frontend for post-auth redirects.
func (w *WebAppConfig) FrontendURL() string {
	if w.Config.Web.FrontendURL != "" {
		return w.Config.Web.FrontendURL
	}
	return "http://localhost:3000"
}

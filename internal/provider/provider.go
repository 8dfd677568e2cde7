package provider

import (
	"net/http"

	"github.com/go-chi/httplog"
	"github.com/marcelsud/webhookconfig-repository/bitbucket"
	"github.com/marcelsud/webhookconfig-repository/config"
	"github.com/marcelsud/webhookconfig-repository/metrics"
	"github.com/marcelsud/webhookconfig-repository/resource"
	"github.com/rs/zerolog"
)

// ServiceName tags every log line of the provider
const ServiceName = "webhookconfig-repository"

// NewLogger creates the JSON logger shared by every entrypoint
// httplog sets the zerolog global level, unknown or empty levels fall back to info
func NewLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	logger := httplog.NewLogger(ServiceName, httplog.Options{
		JSON:     true,
		LogLevel: lvl.String(),
	})
	return logger.Level(lvl)
}

// NewHandler wires the Bitbucket client and the resource handler from cfg
// httpClient and recorder may be nil
func NewHandler(cfg *config.Config, httpClient *http.Client, recorder metrics.Recorder) *resource.Handler {
	client := bitbucket.NewClient(cfg.APIEndpoint, cfg.APIVersion, httpClient, recorder)
	return resource.NewHandler(client, cfg.HandlerOptions(), recorder)
}

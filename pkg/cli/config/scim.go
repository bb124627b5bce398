package config

import (
	"crypto/tls"
	"log/slog"
	"net/http"
	"time"

	"github.com/secmon-lab/culler/pkg/service/scim"
	"github.com/urfave/cli/v3"
)

// SCIM holds the connection configuration for the site's SCIM API
type SCIM struct {
	URL      string
	Token    string
	Insecure bool
	Timeout  time.Duration
}

// Flags returns CLI flags for SCIM configuration
func (s *SCIM) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "url",
			Usage:       "Base URL of the Stack Overflow for Teams site",
			Category:    "SCIM",
			Required:    true,
			Sources:     cli.EnvVars("CULLER_URL"),
			Destination: &s.URL,
		},
		&cli.StringFlag{
			Name:        "token",
			Usage:       "SCIM bearer token",
			Category:    "SCIM",
			Required:    true,
			Sources:     cli.EnvVars("CULLER_TOKEN"),
			Destination: &s.Token,
		},
		&cli.BoolFlag{
			Name:        "insecure",
			Usage:       "Skip TLS certificate verification",
			Category:    "SCIM",
			Sources:     cli.EnvVars("CULLER_INSECURE"),
			Destination: &s.Insecure,
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "Per-request timeout",
			Category:    "SCIM",
			Value:       30 * time.Second,
			Sources:     cli.EnvVars("CULLER_TIMEOUT"),
			Destination: &s.Timeout,
		},
	}
}

// Configure builds a SCIM client from the configuration. Proxy settings are
// taken from the standard environment variables.
func (s *SCIM) Configure() *scim.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
	}
	if s.Insecure {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	httpClient := &http.Client{
		Timeout:   s.Timeout,
		Transport: transport,
	}
	return scim.New(s.URL, s.Token, scim.WithHTTPClient(httpClient))
}

// LogValue returns structured log value
func (s SCIM) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("url", s.URL),
		slog.Bool("has_token", s.Token != ""),
		slog.Bool("insecure", s.Insecure),
		slog.Duration("timeout", s.Timeout),
	)
}

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ServiceMode represents the available service modes.
type ServiceMode string

const (
	// ServiceModeHTTP runs the HTTP server.
	ServiceModeHTTP ServiceMode = "http"
	// ServiceModeRefresher runs the periodic refresh worker.
	ServiceModeRefresher ServiceMode = "refresher"
)

// ValidServiceModes returns all valid service mode names.
func ValidServiceModes() []ServiceMode {
	return []ServiceMode{
		ServiceModeHTTP,
		ServiceModeRefresher,
	}
}

// ParseServices parses a comma-delimited string of service names and returns the enabled services.
// It validates that all service names are valid and returns an error if any are invalid.
func ParseServices(servicesStr string) (map[ServiceMode]bool, error) {
	services := make(map[ServiceMode]bool)

	if servicesStr == "" {
		return services, errors.New("at least one service must be specified")
	}

	parts := strings.Split(servicesStr, ",")
	for _, part := range parts {
		serviceName := strings.TrimSpace(part)
		if serviceName == "" {
			continue
		}

		mode := ServiceMode(serviceName)
		switch mode {
		case ServiceModeHTTP, ServiceModeRefresher:
			services[mode] = true
		default:
			return nil, fmt.Errorf(
				"invalid service name: %q (valid options: http, refresher)",
				serviceName,
			)
		}
	}

	if len(services) == 0 {
		return nil, errors.New("at least one valid service must be specified")
	}

	return services, nil
}

// RefresherConfig contains refresher service configuration.
type RefresherConfig struct {
	// Interval is the refresher tick interval.
	Interval time.Duration `env:"REFRESH_INTERVAL" envDefault:"5m"`

	// Timezone is the IANA name of the zone whose midnights bound the
	// rolling window (e.g., "America/Chicago"). Empty means the host zone.
	Timezone string `env:"REFRESH_TIMEZONE" envDefault:""`

	// EnrichmentConcurrency is the number of concurrent site lookups
	// performed while warming the cache during a refresh cycle.
	EnrichmentConcurrency int `env:"REFRESH_ENRICHMENT_CONCURRENCY" envDefault:"4"`
}

// Sanitize applies guardrails to refresher configuration values.
func (r *RefresherConfig) Sanitize() {
	// Enforce a minimum interval to prevent hammering the upstream API
	if r.Interval < 10*time.Second {
		r.Interval = 10 * time.Second
	}
	if r.EnrichmentConcurrency < 1 {
		r.EnrichmentConcurrency = 1
	}
}

// Location resolves the configured timezone. An empty name resolves to the
// host local zone; an invalid name is an error.
func (r *RefresherConfig) Location() (*time.Location, error) {
	if r.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(r.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", r.Timezone, err)
	}
	return loc, nil
}

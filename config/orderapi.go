package config

import "time"

// OrderAPIConfig contains upstream order API client configuration.
// All variables carry the ORDER_API_ prefix.
type OrderAPIConfig struct {
	// BaseURL is the root URL of the order API (e.g., "https://orders.example.com/v1").
	// Required when the refresher service is enabled.
	BaseURL string `env:"BASE_URL"`

	// Token is the bearer token sent on every request. Optional; when empty
	// requests are sent unauthenticated.
	Token string `env:"TOKEN"`

	// Timeout is the per-request timeout for order and site lookups.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`
}

// Sanitize applies guardrails to order API configuration values.
func (o *OrderAPIConfig) Sanitize() {
	if o.Timeout <= 0 {
		o.Timeout = 15 * time.Second
	}
}

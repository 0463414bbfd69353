package configs

// Metrics configures the Prometheus exposition served on /metrics.
type Metrics struct {
	Enabled   bool   `env:"ENABLED" envDefault:"true"`
	Namespace string `env:"NAMESPACE" envDefault:"rtb_pacing"`
}

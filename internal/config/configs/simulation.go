package configs

// Simulation holds the scenario-wide constants of a run. Seed 0 means a
// fresh seed is drawn for every run.
type Simulation struct {
	Seed         uint64  `env:"SEED" envDefault:"0"`
	Horizon      int     `env:"HORIZON" envDefault:"1440"`
	Impressions  float64 `env:"IMPRESSIONS" envDefault:"1000"`
	MaxDiscount  float64 `env:"MAX_DISCOUNT" envDefault:"0.2"`
	CTRNoiseMean float64 `env:"CTR_NOISE_MEAN" envDefault:"-0.001"`
	CTRNoiseStd  float64 `env:"CTR_NOISE_STD" envDefault:"0.01"`

	// Default PID gains, used when a request does not carry its own.
	Kp float64 `env:"PID_KP" envDefault:"0.01"`
	Ki float64 `env:"PID_KI" envDefault:"0.08"`
	Kd float64 `env:"PID_KD" envDefault:"0.09"`
}

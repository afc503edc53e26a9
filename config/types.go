package config

// RoutingConfig contains routing-service (OSRM) client configuration
type RoutingConfig struct {
	BaseURL    string `yaml:"baseURL" validate:"omitempty,url"`
	TimeoutMS  int    `yaml:"timeoutMS" validate:"gte=0"`
	RetryCount int    `yaml:"retryCount" validate:"gte=0"`
}

// StyleConfig contains default stroke styling for output features
type StyleConfig struct {
	StrokeWidth float64 `yaml:"strokeWidth" validate:"gt=0"`
	StrokeColor string  `yaml:"strokeColor" validate:"hexcolor"`
}

// AppConfig is the root configuration structure. Countries maps a
// canonical country key to its lowercase aliases and extends the
// built-in table used for country exclusion.
type AppConfig struct {
	Routing   RoutingConfig       `yaml:"routing"`
	Style     StyleConfig         `yaml:"style"`
	Countries map[string][]string `yaml:"countries"`
}

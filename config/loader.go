package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultRoutingBaseURL is the public OSRM demo server.
const DefaultRoutingBaseURL = "http://router.project-osrm.org"

// LoadAppConfig loads and validates the application configuration.
// The config file is optional; defaults cover every field. The routing
// base URL may also be overridden with the OSRM_BASE_URL env var.
func LoadAppConfig() (AppConfig, error) {
	cfg := AppConfig{
		Routing: RoutingConfig{
			BaseURL:    DefaultRoutingBaseURL,
			TimeoutMS:  30000,
			RetryCount: 0,
		},
		Style: StyleConfig{
			StrokeWidth: 2.0,
			StrokeColor: "#FF0000",
		},
	}
	paths := []string{"config.yml", "config.yaml"}
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return AppConfig{}, err
		}
		break
	}
	if url := os.Getenv("OSRM_BASE_URL"); url != "" {
		cfg.Routing.BaseURL = url
	}
	v := validator.New()
	if err := v.Struct(cfg.Routing); err != nil {
		return AppConfig{}, err
	}
	if err := v.Struct(cfg.Style); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

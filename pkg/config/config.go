package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/travigo/busnetwork/pkg/util"
	"gopkg.in/yaml.v3"
)

// Costs parameterise the weight of every edge the builder creates.
type Costs struct {
	// Flat cost per scheduled hop between consecutive stops of a trip
	DirectRouteCost float64 `yaml:"direct_route_cost" validate:"gte=0"`
	// Flat cost of a transfer record of kind 0
	DirectTransferCost float64 `yaml:"direct_transfer_cost" validate:"gte=0"`
	// Multiplier turning a kind 1 transfer's minimum time into cost
	TransferTimeWeight float64 `yaml:"transfer_time_weight" validate:"gte=0"`
}

type Config struct {
	Data             string   `yaml:"data"`
	Costs            Costs    `yaml:"costs"`
	SearchKeyMarkers []string `yaml:"search_key_markers" validate:"dive,required"`
}

func Default() Config {
	return Config{
		Costs: Costs{
			DirectRouteCost:    1.0,
			DirectTransferCost: 2.0,
			TransferTimeWeight: 0.01,
		},
		SearchKeyMarkers: util.DefaultSearchKeyMarkers,
	}
}

// Load builds the configuration from the defaults, then the yaml file at path (if
// any), then BUSNETWORK_* environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnvironment(util.GetEnvironmentVariables()); err != nil {
		return cfg, err
	}

	cfg.SearchKeyMarkers = normaliseMarkers(cfg.SearchKeyMarkers)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c *Config) applyEnvironment(env map[string]string) error {
	var err error

	if env["BUSNETWORK_DATA"] != "" {
		c.Data = env["BUSNETWORK_DATA"]
	}

	if c.Costs.DirectRouteCost, err = util.GetEnvironmentFloat(env, "BUSNETWORK_DIRECT_ROUTE_COST", c.Costs.DirectRouteCost); err != nil {
		return fmt.Errorf("BUSNETWORK_DIRECT_ROUTE_COST: %w", err)
	}
	if c.Costs.DirectTransferCost, err = util.GetEnvironmentFloat(env, "BUSNETWORK_DIRECT_TRANSFER_COST", c.Costs.DirectTransferCost); err != nil {
		return fmt.Errorf("BUSNETWORK_DIRECT_TRANSFER_COST: %w", err)
	}
	if c.Costs.TransferTimeWeight, err = util.GetEnvironmentFloat(env, "BUSNETWORK_TRANSFER_TIME_WEIGHT", c.Costs.TransferTimeWeight); err != nil {
		return fmt.Errorf("BUSNETWORK_TRANSFER_TIME_WEIGHT: %w", err)
	}

	if markers := env["BUSNETWORK_SEARCH_KEY_MARKERS"]; markers != "" {
		c.SearchKeyMarkers = strings.Split(markers, ",")
	}

	return nil
}

func (c Config) Validate() error {
	if len(c.SearchKeyMarkers) == 0 {
		return errors.New("at least one search key marker is required")
	}

	return validator.New().Struct(c)
}

func normaliseMarkers(markers []string) []string {
	upper := make([]string, 0, len(markers))
	for _, marker := range markers {
		upper = append(upper, strings.ToUpper(strings.TrimSpace(marker)))
	}

	return util.RemoveDuplicateStrings(upper, nil)
}

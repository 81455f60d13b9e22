package util

import (
	"os"
	"strconv"
	"strings"
)

func GetEnvironmentVariables() map[string]string {
	environmentVariables := map[string]string{}

	for _, variable := range os.Environ() {
		pair := strings.SplitN(variable, "=", 2)

		environmentVariables[pair[0]] = pair[1]
	}

	return environmentVariables
}

// GetEnvironmentFloat returns the parsed value of key when it is set, otherwise fallback.
// A set but unparsable value is an error.
func GetEnvironmentFloat(env map[string]string, key string, fallback float64) (float64, error) {
	value, exists := env[key]
	if !exists || value == "" {
		return fallback, nil
	}

	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fallback, err
	}

	return parsed, nil
}

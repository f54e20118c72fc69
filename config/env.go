package config

import (
	"log"
	"os"
	"strconv"

	"github.com/automoto/fling/simulation"
	"github.com/joho/godotenv"
)

// LoadEnv applies overrides from an optional .env file and FLING_* variables.
func LoadEnv() {
	// Load .env file if it exists
	_ = godotenv.Load()

	Physics.FrictionCoefficient = getEnvFloat("FLING_FRICTION", Physics.FrictionCoefficient)
	Physics.Restitution = getEnvFloat("FLING_RESTITUTION", Physics.Restitution)
	if r := getEnvFloat("FLING_TICK_RATE", Physics.TickRate); simulation.ValidTickRate(r) {
		Physics.TickRate = r
	} else {
		log.Printf("Warning: Ignoring FLING_TICK_RATE=%v: want %d..%d", r, simulation.MinTickRate, simulation.MaxTickRate)
	}
	Throw.SpeedThreshold = getEnvFloat("FLING_THROW_THRESHOLD", Throw.SpeedThreshold)
	Throw.MaxSpeed = getEnvFloat("FLING_MAX_THROW_SPEED", Throw.MaxSpeed)
	Content.Dir = getEnv("FLING_CONTENT_DIR", Content.Dir)
	Content.Initial = getEnv("FLING_CONTENT", Content.Initial)
	Debug.Enabled = getEnvBool("FLING_DEBUG", Debug.Enabled)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("Warning: Ignoring %s=%q: %v", key, value, err)
		return defaultValue
	}
	return f
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Warning: Ignoring %s=%q: %v", key, value, err)
		return defaultValue
	}
	return b
}

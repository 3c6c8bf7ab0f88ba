package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultJWTSecret = "change-me-jwt-secret"
	defaultJWTTTL    = "24h"

	defaultRatingWeight   = "2.0"
	defaultDistanceWeight = "1.5"
	defaultPriceWeight    = "2.0"

	defaultPaystackInitURL = "https://api.paystack.co/transaction/initialize"
)

// ScoringWeights are the fixed recommendation weights. They are loaded
// from the environment rather than hard-coded so deployments can tune
// ranking without a rebuild.
type ScoringWeights struct {
	Rating   float64
	Distance float64
	Price    float64
}

type PaystackConfig struct {
	SecretKey   string
	InitURL     string
	CallbackURL string
}

type Config struct {
	DatabaseURL string
	ListenAddr  string

	JWTSecret string
	JWTTTL    time.Duration

	Scoring  ScoringWeights
	Paystack PaystackConfig
}

func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL: getEnv("DATABASE_URL", "servicehub.db"),
		ListenAddr:  getEnv("LISTEN_ADDR", ":8080"),
		JWTSecret:   getEnv("JWT_SECRET", defaultJWTSecret),
		Paystack: PaystackConfig{
			SecretKey:   os.Getenv("PAYSTACK_SECRET_KEY"),
			InitURL:     getEnv("PAYSTACK_INIT_URL", defaultPaystackInitURL),
			CallbackURL: os.Getenv("PAYSTACK_CALLBACK_URL"),
		},
	}

	var err error
	if cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL); err != nil {
		return nil, err
	}
	if cfg.Scoring.Rating, err = parseFloatEnv("SCORE_RATING_WEIGHT", defaultRatingWeight); err != nil {
		return nil, err
	}
	if cfg.Scoring.Distance, err = parseFloatEnv("SCORE_DISTANCE_WEIGHT", defaultDistanceWeight); err != nil {
		return nil, err
	}
	if cfg.Scoring.Price, err = parseFloatEnv("SCORE_PRICE_WEIGHT", defaultPriceWeight); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DefaultScoringWeights returns the stock (2, 1.5, 2) weighting.
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{Rating: 2.0, Distance: 1.5, Price: 2.0}
}

func getEnv(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(name, def string) (time.Duration, error) {
	raw := getEnv(name, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	return d, nil
}

func parseFloatEnv(name, def string) (float64, error) {
	raw := getEnv(name, def)
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	return f, nil
}

package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/rebalance"
	"github.com/joho/godotenv"
)

// Environment variables holding the flag defaults.
const (
	EnvPortfolioFile = "REBAL_PORTFOLIO_FILE"
	EnvPricesFile    = "REBAL_PRICES_FILE"
	EnvPricesPath    = "REBAL_PRICES_PATH"
	EnvTolerance     = "REBAL_TOLERANCE"
	EnvLogLevel      = "REBAL_LOG_LEVEL"
	EnvAddr          = "REBAL_ADDR"
	EnvCORSOrigins   = "REBAL_CORS_ORIGINS"
)

// Config holds the defaults of the command line flags.
type Config struct {
	PortfolioFile string
	PricesFile    string
	PricesPath    string
	Tolerance     float64
	LogLevel      string
	Addr          string
	CORSOrigins   []string
}

// LoadConfig reads the configuration from the environment, after loading the
// optional .env file of the current directory.
func LoadConfig() (*Config, error) {
	// a missing .env is fine
	_ = godotenv.Load()

	cfg := &Config{
		PortfolioFile: getEnv(EnvPortfolioFile, "portfolio.json"),
		PricesFile:    getEnv(EnvPricesFile, "prices.json"),
		PricesPath:    getEnv(EnvPricesPath, ""),
		LogLevel:      getEnv(EnvLogLevel, "info"),
		Addr:          getEnv(EnvAddr, ":8080"),
		CORSOrigins:   strings.Split(getEnv(EnvCORSOrigins, "*"), ","),
	}
	for i, o := range cfg.CORSOrigins {
		cfg.CORSOrigins[i] = strings.TrimSpace(o)
	}

	tol, err := strconv.ParseFloat(getEnv(EnvTolerance, strconv.FormatFloat(rebalance.DefaultTolerance, 'g', -1, 64)), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvTolerance, err)
	}
	if tol < 0 {
		return nil, fmt.Errorf("invalid %s: %v must not be negative", EnvTolerance, tol)
	}
	cfg.Tolerance = tol

	if !isValidLogLevel(cfg.LogLevel) {
		return nil, fmt.Errorf("invalid %s: %q, must be one of: debug, info, warn, error", EnvLogLevel, cfg.LogLevel)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

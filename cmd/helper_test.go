package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

const testPortfolio = `{
  "holdings": {"META": 1, "APPL": 5, "GOOGLE": 10},
  "allocation": {"META": 0.2, "APPL": 0.1, "GOOGLE": 0.7}
}`

// writeTemp creates a file named 'name' in a temporary directory.
func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return file
}

func testConfig(t *testing.T, portfolio, prices string) *Config {
	t.Helper()
	return &Config{
		PortfolioFile: writeTemp(t, "portfolio.json", portfolio),
		PricesFile:    writeTemp(t, "prices.json", prices),
		Tolerance:     1e-9,
		LogLevel:      "error",
	}
}

package cmd

import (
	"context"
	"flag"
	"os"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

func runCheck(t *testing.T, cfg *Config, args ...string) subcommands.ExitStatus {
	t.Helper()
	cmd := &checkCmd{cfg: cfg}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("Parse(%v) error = %v", args, err)
	}
	return cmd.Execute(context.Background(), f)
}

func TestCheckCmd_Valid(t *testing.T) {
	cfg := testConfig(t, testPortfolio, "{}")

	if status := runCheck(t, cfg); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	got, err := os.ReadFile(cfg.PortfolioFile)
	if err != nil {
		t.Fatalf("Failed to read portfolio file: %v", err)
	}
	if string(got) != testPortfolio {
		t.Errorf("check without -w modified the file:\n%s", got)
	}
}

func TestCheckCmd_Write(t *testing.T) {
	cfg := testConfig(t, testPortfolio, "{}")
	want := `{
  "currency": "USD",
  "holdings": {
    "APPL": "5",
    "GOOGLE": "10",
    "META": "1"
  },
  "allocation": {
    "APPL": "0.1",
    "GOOGLE": "0.7",
    "META": "0.2"
  }
}`

	if status := runCheck(t, cfg, "-w"); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	got, err := os.ReadFile(cfg.PortfolioFile)
	if err != nil {
		t.Fatalf("Failed to read portfolio file: %v", err)
	}
	if strings.TrimSpace(string(got)) != want {
		t.Errorf("Formatted output mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}

	// formatting is stable
	if status := runCheck(t, cfg, "-w"); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	again, err := os.ReadFile(cfg.PortfolioFile)
	if err != nil {
		t.Fatalf("Failed to read portfolio file: %v", err)
	}
	if string(again) != string(got) {
		t.Errorf("second format changed the file.\nGot:\n%s\nWant:\n%s", again, got)
	}
}

func TestCheckCmd_Invalid(t *testing.T) {
	for name, content := range map[string]string{
		"negative shares": `{"holdings": {"META": -1}, "allocation": {"META": 1}}`,
		"unknown holding": `{"holdings": {"META": 1}, "allocation": {"META": 0.5, "APPL": 0.5}}`,
		"bad sum":         `{"holdings": {"META": 1, "APPL": 1}, "allocation": {"META": 0.5, "APPL": 0.4}}`,
		"unknown field":   `{"holdings": {"META": 1}, "allocation": {"META": 1}, "fees": 2}`,
		"not json":        `holdings: META`,
	} {
		t.Run(name, func(t *testing.T) {
			cfg := testConfig(t, content, "{}")
			if status := runCheck(t, cfg, "-w"); status != subcommands.ExitFailure {
				t.Errorf("Expected ExitFailure, got %v", status)
			}
			got, err := os.ReadFile(cfg.PortfolioFile)
			if err != nil {
				t.Fatalf("Failed to read portfolio file: %v", err)
			}
			if string(got) != content {
				t.Errorf("invalid file was modified:\n%s", got)
			}
		})
	}
}

func TestCheckCmd_MissingFile(t *testing.T) {
	cfg := &Config{PortfolioFile: "does-not-exist.json", LogLevel: "error"}
	if status := runCheck(t, cfg); status != subcommands.ExitFailure {
		t.Errorf("Expected ExitFailure, got %v", status)
	}
}

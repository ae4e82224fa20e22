package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/rebalance/renderer"
	"github.com/google/subcommands"
)

// rebalanceCmd holds the flags for the 'rebalance' subcommand.
type rebalanceCmd struct {
	cfg *Config
	out io.Writer

	portfolioFile string
	pricesFile    string
	pricesPath    string
	tolerance     float64
	json          bool
	raw           bool
}

func (*rebalanceCmd) Name() string { return "rebalance" }
func (*rebalanceCmd) Synopsis() string {
	return "compute what to sell and buy to reach the target allocation"
}
func (*rebalanceCmd) Usage() string {
	return `rebal rebalance [-portfolio <file>] [-prices <file>] [-path <jsonpath>] [-tolerance <t>] [-json] [-raw]

  Reads the portfolio and the current prices, and reports for each holding
  whether it is balanced, or how much to sell or buy to reach its target.

Usage Examples:
$ rebal rebalance -prices quotes.json -path '$.quotes'
$ rebal rebalance -json | jq .balanced

`
}

func (c *rebalanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolioFile, "portfolio", c.cfg.PortfolioFile, "Path to the portfolio file (JSON)")
	f.StringVar(&c.pricesFile, "prices", c.cfg.PricesFile, "Path to the prices file (JSON)")
	f.StringVar(&c.pricesPath, "path", c.cfg.PricesPath, "JSONPath selecting the prices object in the prices file")
	f.Float64Var(&c.tolerance, "tolerance", c.cfg.Tolerance, "Relative tolerance to consider a holding balanced, 0 for exact comparison")
	f.BoolVar(&c.json, "json", false, "print the report as JSON")
	f.BoolVar(&c.raw, "raw", false, "print the report as raw markdown")
}

func (c *rebalanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := logger(c.cfg)
	out := stdout(c.out)

	if c.tolerance < 0 {
		fmt.Fprintf(os.Stderr, "Error: tolerance must not be negative, got %v\n", c.tolerance)
		return subcommands.ExitUsageError
	}

	p, err := DecodePortfolio(c.portfolioFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	log.Debug().Str("file", c.portfolioFile).Int("holdings", len(p.Names())).Str("currency", p.Currency()).Msg("portfolio loaded")

	prices, err := DecodePrices(c.pricesFile, c.pricesPath, p.Currency())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading prices: %v\n", err)
		return subcommands.ExitFailure
	}
	log.Debug().Str("file", c.pricesFile).Str("path", c.pricesPath).Int("prices", len(prices)).Msg("prices loaded")

	report, err := p.RebalanceWithTolerance(prices, c.tolerance)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rebalancing portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	log.Debug().Bool("balanced", report.Balanced).Int("trades", len(report.Trades())).Str("total", report.TotalValue.String()).Msg("portfolio rebalanced")

	switch {
	case c.json:
		if err := renderer.RenderJSON(out, report); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
			return subcommands.ExitFailure
		}
	case c.raw:
		fmt.Fprint(out, renderer.RenderRebalance(report))
	default:
		printMarkdown(out, renderer.RenderRebalance(report))
	}
	return subcommands.ExitSuccess
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/rebalance/cmd"
	"github.com/etnz/rebalance/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(subcommands.ExitUsageError))
	}

	// answers shell completion requests, and exits if it was one.
	completion().Complete("rebal")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander, cfg)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	files := predict.Files("*.json")
	topics, _ := docs.GetAllTopics()
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"v": predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"rebalance": {
				Flags: map[string]complete.Predictor{
					"portfolio": files,
					"prices":    files,
					"path":      predict.Something,
					"tolerance": predict.Something,
					"json":      predict.Nothing,
					"raw":       predict.Nothing,
				},
			},
			"check": {
				Flags: map[string]complete.Predictor{
					"portfolio": files,
					"w":         predict.Nothing,
				},
			},
			"serve": {
				Flags: map[string]complete.Predictor{
					"addr": predict.Something,
				},
			},
			"topic": {
				Args: predict.Set(topics),
			},
		},
	}
}

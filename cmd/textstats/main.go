package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/kerem-kaynak/textstats/pkg/config"
	"github.com/kerem-kaynak/textstats/pkg/textstats"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("textstats: ")

	var (
		configPath = flag.String("config", "", "Optional YAML config file")
		input      = flag.String("input", "", "Text file to analyze (default "+config.DefaultInput+")")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}
	switch {
	case *input != "":
		cfg.Input = *input
	case flag.NArg() > 0:
		cfg.Input = flag.Arg(0)
	}

	content, err := os.ReadFile(cfg.Input)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	opts, err := cfg.Options()
	if err != nil {
		log.Fatal(err)
	}
	if opts.Stoplist != nil {
		defer opts.Stoplist.Close()
	}

	runner := textstats.NewRunner(textstats.NewAnalyses(opts), os.Stdout)
	if err := runner.Run(context.Background(), string(content)); err != nil {
		log.Printf("write report: %v", err)
		os.Exit(1)
	}
}

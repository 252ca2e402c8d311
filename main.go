package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/wildfunctions/autodiff/pkg/descent"
	"github.com/wildfunctions/autodiff/pkg/preset"
)

func main() {
	cfg := descent.DefaultConfig()
	var (
		configPath string
		at         float64
		list       bool
	)

	flag.StringVar(&cfg.Target, "target", cfg.Target, "target function ("+strings.Join(preset.Names(), ", ")+")")
	flag.Float64Var(&cfg.Start, "start", cfg.Start, "starting point")
	flag.Float64Var(&cfg.Rate, "rate", cfg.Rate, "learning rate")
	flag.IntVar(&cfg.Steps, "steps", cfg.Steps, "maximum update steps")
	flag.Float64Var(&cfg.Tolerance, "tolerance", cfg.Tolerance, "stop once |f'(x)| falls below this")
	flag.StringVar(&cfg.Format, "format", cfg.Format, "output format (text, json)")
	flag.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log every step")
	flag.BoolVar(&cfg.Trace, "trace", cfg.Trace, "include a per-step trace in the report")
	flag.StringVar(&configPath, "config", "", "YAML run file; explicit flags still win")
	flag.Float64Var(&at, "at", math.NaN(), "evaluate the target at this point instead of descending")
	flag.BoolVar(&list, "list", false, "list target functions and exit")
	flag.Parse()

	if list {
		for _, name := range preset.Names() {
			p, _ := preset.Get(name)
			mode := "minimize"
			if p.Maximize {
				mode = "maximize"
			}
			fmt.Printf("%-10s %-9s %s\n", name, mode, p.Formula)
		}
		return
	}

	if configPath != "" {
		fileCfg, err := descent.LoadConfig(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		// Flags given on the command line override the file.
		flag.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "target":
				fileCfg.Target = cfg.Target
			case "start":
				fileCfg.Start = cfg.Start
			case "rate":
				fileCfg.Rate = cfg.Rate
			case "steps":
				fileCfg.Steps = cfg.Steps
			case "tolerance":
				fileCfg.Tolerance = cfg.Tolerance
			case "format":
				fileCfg.Format = cfg.Format
			case "verbose":
				fileCfg.Verbose = cfg.Verbose
			case "trace":
				fileCfg.Trace = cfg.Trace
			}
		})
		cfg = fileCfg
	}

	if !math.IsNaN(at) {
		p, err := preset.Get(cfg.Target)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		value, deriv := p.Build().Eval(at)
		fmt.Printf("f(x)  = %s\n", p.Formula)
		fmt.Printf("f(%g)  = %g\n", at, value)
		fmt.Printf("f'(%g) = %g\n", at, deriv)
		return
	}

	e, err := descent.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	report := e.Run()

	switch cfg.Format {
	case "json":
		if err := descent.WriteJSONFinal(os.Stdout, report); err != nil {
			fmt.Fprintf(os.Stderr, "error writing JSON: %v\n", err)
			os.Exit(1)
		}
	default:
		descent.WriteTextFinal(os.Stdout, report)
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/ib-77/either/internal/config"
	"github.com/ib-77/either/internal/logging"
)

const usage = `USAGE

	concepts [-demo either|typeclass|variance|dispatch|all] [-config file.toml]
	         [-tasks n] [-pool n] [-debug]
`

func main() {
	var (
		demo       = flag.String("demo", "all", "demo to run: either, typeclass, variance, dispatch or all")
		configPath = flag.String("config", "", "TOML configuration file")
		tasks      = flag.Int("tasks", 0, "number of dispatch tasks, overrides the config")
		pool       = flag.Int("pool", 0, "dispatch pool size, overrides the config")
		debug      = flag.Bool("debug", false, "enable debug logs")
	)
	flag.Usage = func() {
		_, _ = fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tasks":
			cfg.Dispatch.Tasks = *tasks
		case "pool":
			cfg.Dispatch.PoolSize = *pool
		case "debug":
			cfg.Log.Debug = *debug
		}
	})
	if err := cfg.Dispatch.Validate(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logging.NewWithLevel(cfg.Log.Debug)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = log.WithContext(ctx)

	if err := run(ctx, *demo, cfg); err != nil {
		log.Error("demo failed", logging.Error(err))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, demo string, cfg config.Config) error {
	demos := map[string]func(ctx context.Context, cfg config.Config) error{
		"either":    eitherDemo,
		"typeclass": typeclassDemo,
		"variance":  varianceDemo,
		"dispatch":  dispatchDemo,
	}

	if demo != "all" {
		d, ok := demos[demo]
		if !ok {
			return fmt.Errorf("unknown demo %q", demo)
		}
		return d(ctx, cfg)
	}

	for _, name := range []string{"either", "typeclass", "variance", "dispatch"} {
		if err := demos[name](ctx, cfg); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

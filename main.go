package main

import (
	"context"
	"log"
	"os"
	"os-cpu-scheduling/api"
	"os-cpu-scheduling/config"
	"os-cpu-scheduling/internal/core"
	"os-cpu-scheduling/internal/loader"
	"os-cpu-scheduling/internal/report"
	"os-cpu-scheduling/internal/responses"
	"os-cpu-scheduling/internal/schedulers"
	"os-cpu-scheduling/internal/tracing"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const version = "0.1.0"

func main() {
	flags := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	configFile := flags.String("config", "", "path to config file (default ./config.yaml)")
	input := flags.String("input", "", "process file or URL to simulate; serves HTTP when empty")
	algorithm := flags.String("algorithm", "all", "algorithm id or all")
	flags.Int("quantum", 0, "round robin time quantum")
	flags.Int("port", 0, "HTTP port")
	_ = flags.Parse(os.Args[1:])

	if *configFile != "" {
		viper.SetConfigFile(*configFile)
	}
	bindFlag(flags, "quantum", "scheduler.round_robin.time_quantum")
	bindFlag(flags, "port", "port")
	cfg := config.GetSchedulerConfig()

	if cfg.Tracing.Enabled {
		if err := tracing.Init("os-cpu-scheduling", version, cfg.Tracing.Output); err != nil {
			log.Fatalln(err)
		}
		defer func() { _ = tracing.Shutdown(context.Background()) }()
	}

	if *input != "" {
		if err := simulate(context.Background(), *input, *algorithm, cfg.RoundRobinTimeQuantum); err != nil {
			log.Fatalln(err)
		}
		return
	}

	app := fiber.New()
	api.Register(app.Group("/api").Group("/v1"), api.NewSchedulerHandlerImpl(cfg))

	log.Println("listening on", api.ListenAddress(cfg.Port))
	if err := app.Listen(api.ListenAddress(cfg.Port)); err != nil {
		log.Fatalln(err)
	}
}

// bindFlag lets an explicitly set flag override the config key.
func bindFlag(flags *pflag.FlagSet, name, key string) {
	if flag := flags.Lookup(name); flag != nil && flag.Changed {
		_ = viper.BindPFlag(key, flag)
	}
}

func simulate(ctx context.Context, URL, algorithm string, quantum int) error {
	processes, err := loader.New().Load(ctx, URL)
	if err != nil {
		return err
	}
	_, span := tracing.StartSpan(ctx, "simulate."+algorithm)
	span.WithAttributes(map[string]string{"algorithm": algorithm, "input": URL}).
		WithInt("processes", len(processes)).
		WithInt("quantum", quantum)
	rows, err := runSimulation(processes, algorithm, quantum)
	tracing.EndSpan(span, err)
	if err != nil {
		return err
	}

	for _, row := range rows {
		report.Render(os.Stdout, row)
	}
	if len(rows) > 1 {
		report.RenderComparison(os.Stdout, rows)
	}
	return nil
}

// runSimulation runs one algorithm, or every algorithm for "all".
func runSimulation(processes []core.Process, algorithm string, quantum int) ([]responses.ScheduleResponse, error) {
	var results []core.RunResult
	if algorithm == "all" {
		var err error
		if results, err = schedulers.RunAll(processes, quantum); err != nil {
			return nil, err
		}
	} else {
		id, err := core.ParseAlgorithm(algorithm)
		if err != nil {
			return nil, err
		}
		result, err := schedulers.Run(id, processes, quantum)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	rows := make([]responses.ScheduleResponse, 0, len(results))
	for _, result := range results {
		rows = append(rows, schedulers.GenerateResponse(result))
	}
	return rows, nil
}

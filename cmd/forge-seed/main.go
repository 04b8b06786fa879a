package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ghalamif/ForgeFeed"
	"github.com/ghalamif/ForgeFeed/internal/app/pipeline"
	"github.com/ghalamif/ForgeFeed/internal/catalog"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	var err error

	switch cmd {
	case "seed":
		err = seedCommand(os.Args[2:])
	case "export":
		err = exportCommand(os.Args[2:])
	case "validate":
		err = validateCommand(os.Args[2:])
	case "plan":
		err = planCommand(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		printUsage()
		err = fmt.Errorf("unknown command %q", cmd)
	}

	if err != nil {
		log.Fatalf("forge-seed %s: %v", cmd, err)
	}
}

func seedCommand(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	cfgPath := fs.String("config", "./forgefeed.yaml", "Path to run configuration file")
	seed := fs.Int64("seed", 0, "Override the random seed (0 = time-derived)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := forgefeed.LoadConfig(*cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	return run(cfg)
}

func exportCommand(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	cfgPath := fs.String("config", "./forgefeed.yaml", "Path to run configuration file")
	dir := fs.String("dir", "", "Output directory (overrides sink.dir)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := forgefeed.LoadConfig(*cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.Sink.Mode = forgefeed.SinkModeCSV
	if *dir != "" {
		cfg.Sink.Dir = *dir
	}

	return run(cfg)
}

func run(cfg *forgefeed.Config) error {
	rt, err := forgefeed.New(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	report, err := rt.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("seeded %d rows in %d batches\n", report.TotalRows(), report.BatchesWritten)
	fmt.Printf("  sensor_data:        %d\n", report.SensorRows)
	fmt.Printf("  production_metrics: %d\n", report.ProductionRows)
	fmt.Printf("  quality_control:    %d\n", report.QualityRows)
	fmt.Printf("  maintenance_events: %d\n", report.MaintenanceRows)
	return nil
}

func validateCommand(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	cfgPath := fs.String("config", "./forgefeed.yaml", "Path to configuration file to validate")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := forgefeed.LoadConfig(*cfgPath); err != nil {
		return err
	}
	fmt.Printf("config %s looks good\n", *cfgPath)
	return nil
}

func planCommand(args []string) error {
	fs := flag.NewFlagSet("plan", flag.ExitOnError)
	cfgPath := fs.String("config", "./forgefeed.yaml", "Path to run configuration file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := forgefeed.LoadConfig(*cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	window := cfg.ResolvedWindow(time.Now())
	est := pipeline.EstimateRows(catalog.Default(), pipeline.Options{
		Window:             window,
		SensorInterval:     cfg.Intervals.Sensor,
		ProductionInterval: cfg.Intervals.Production,
	})

	fmt.Printf("window %s .. %s\n", window.Start.Format(time.RFC3339), window.End.Format(time.RFC3339))
	fmt.Printf("  sensor_data:        %d\n", est.SensorRows)
	fmt.Printf("  production_metrics: %d\n", est.ProductionRows)
	fmt.Printf("  quality_control:    ~%d\n", est.QualityRows)
	fmt.Printf("  maintenance_events: ~%d\n", est.MaintenanceRows)
	return nil
}

func printUsage() {
	fmt.Printf(`ForgeFeed CLI

Usage:
  forge-seed <command> [flags]

Commands:
  seed       Generate a full dataset and write it to the configured sink
  export     Generate a full dataset as CSV files plus a \COPY load script
  validate   Load and validate a config file without generating anything
  plan       Print expected row counts for the configured window

Examples:
  forge-seed seed -config ./forgefeed.yaml
  forge-seed seed -config ./forgefeed.yaml -seed 42
  forge-seed export -config ./forgefeed.yaml -dir ./out
  forge-seed plan -config ./forgefeed.yaml
`)
}

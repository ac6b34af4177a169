package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/prittspadelord/erm/internal/application"
	"github.com/prittspadelord/erm/internal/config"
	"github.com/prittspadelord/erm/internal/logging"
)

var stdout io.Writer = os.Stdout

func main() {
	overrides := parseFlags(os.Args[1:])

	cfg, err := config.Load(overrides)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	app, err := application.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize application", zap.Error(err))
	}

	fmt.Fprintln(stdout, app)
}

func parseFlags(args []string) *config.CLIOverrides {
	kingpinApp := kingpin.New("erm", "Enterprise Resource Manager - assembles the employee roster and prints the application context")
	configFile := kingpinApp.Flag("config", "Path to YAML configuration file").String()
	name := kingpinApp.Flag("name", "Application name shown in the context summary").String()
	logLevel := kingpinApp.Flag("log-level", "Log level (debug, info, warn, error)").String()
	logFormat := kingpinApp.Flag("log-format", "Log encoding (json, console)").String()

	kingpin.MustParse(kingpinApp.Parse(args))

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
	}

	if *name != "" {
		overrides.Name = name
	}

	if *logLevel != "" {
		overrides.LogLevel = logLevel
	}

	if *logFormat != "" {
		overrides.LogFormat = logFormat
	}

	return overrides
}

// Command roadmap runs the line-oriented road-map interface: it reads
// commands from stdin, applies them to an in-memory core.Map via
// mapops, and writes command output to stdout and per-line failures to
// stderr. Grounded on original_source/src/text_interface.c's
// runMapInterface for the overall read-dispatch-report loop, and on
// mpisat-qumo/cmd/qumo-relay/main.go for the flag+yaml.v3 config
// loading and zerolog logger setup shape.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/piotrjasinski/roadmap/core"
	"github.com/piotrjasinski/roadmap/driver"
	"github.com/piotrjasinski/roadmap/mapops"
)

type config struct {
	LogLevel string `yaml:"log_level"`
}

func main() {
	configFile := flag.String("config", "", "path to an optional YAML config file")
	logLevel := flag.String("log-level", "", "zerolog level (overrides config file)")
	flag.Parse()

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "roadmap: %v\n", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	log := newLogger(cfg.LogLevel)

	m := core.NewMap()
	ops := mapops.New(m)
	d := driver.New(ops, log)

	log.Info().Msg("roadmap interface starting")
	d.Run(os.Stdin, os.Stdout, os.Stderr)
	log.Info().Msg("roadmap interface stopped")
}

func loadConfig(path string) (config, error) {
	if path == "" {
		return config{LogLevel: "info"}, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var cfg config
	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
		return config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

func newLogger(level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(parsed).
		With().Timestamp().Logger()
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kvoronov/metric_etl/internal/app"
	"github.com/kvoronov/metric_etl/internal/config"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "metric_etl",
		Usage:   "concurrent multi-format ETL pipeline",
		Version: version,
		Flags:   flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := config.Load(cmd)

			return app.New(cfg).Run(ctx)
		},
	}
}

func flags() []cli.Flag {
	var config string

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: &config,
		},
		&cli.StringFlag{
			Name:      "input-dir",
			Aliases:   []string{"i"},
			Usage:     "Set directory to read input files from",
			Value:     "unzipped_folder",
			Sources:   cli.NewValueSourceChain(yaml.YAML("app.input_dir", altsrc.NewStringPtrSourcer(&config))),
			Validator: validateDirectory,
		},
		&cli.StringFlag{
			Name:    "output-file",
			Aliases: []string{"o"},
			Usage:   "Set path to write the consolidated CSV to",
			Value:   filepath.Join("output", "transformed_data.csv"),
			Sources: cli.NewValueSourceChain(yaml.YAML("output.output_file", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "log-file",
			Aliases: []string{"l"},
			Usage:   "Set path of the pipeline log file",
			Value:   filepath.Join("logs", "etl.log"),
			Sources: cli.NewValueSourceChain(yaml.YAML("logging.log_file", altsrc.NewStringPtrSourcer(&config))),
		},
	}
}

func validateDirectory(dir string) error {
	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%q does not exist", dir)
	case err != nil:
		return fmt.Errorf("failed to stat %q: %w", dir, err)
	case !info.IsDir():
		return fmt.Errorf("%q is not a directory", dir)
	}

	return nil
}

func validateConfig(path string) error {
	if ext := filepath.Ext(path); ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", ext)
	}

	info, err := os.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%q does not exist", path)
	case err != nil:
		return fmt.Errorf("failed to stat %q: %w", path, err)
	case info.IsDir():
		return fmt.Errorf("%q is a directory, not a file", path)
	}

	return nil
}

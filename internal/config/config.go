package config

import "github.com/urfave/cli/v3"

type Config struct {
	InputDirectory string
	OutputFile     string
	LogFile        string
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		InputDirectory: cmd.String("input-dir"),
		OutputFile:     cmd.String("output-file"),
		LogFile:        cmd.String("log-file"),
	}
}

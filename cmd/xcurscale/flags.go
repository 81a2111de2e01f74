package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"xcurscale/internal/logger"
	"xcurscale/internal/version"
)

var (
	scaleFactor        int64
	ignoreUnrecognized bool
	jobsCount          int64
	logLevel           string
	logFormat          string
)

func scaleFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "scale",
			Aliases:     []string{"s"},
			Usage:       "integer scale factor applied to each cursor (2 turns a 32x32 cursor into 64x64)",
			Destination: &scaleFactor,
		},
		&cli.StringSliceFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output filename, repeated once per input (default: rewrite inputs in place)",
		},
		&cli.BoolFlag{
			Name:        "ignore-unrecognized",
			Aliases:     []string{"i"},
			Usage:       "skip files that are not Xcursor containers instead of failing the run",
			Destination: &ignoreUnrecognized,
		},
		&cli.Int64Flag{
			Name:        "jobs",
			Aliases:     []string{"j"},
			Usage:       "number of files to convert in parallel",
			Value:       1,
			Destination: &jobsCount,
		},
	}
}

func loggingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (pretty, json, text)",
			Value:       "pretty",
			Destination: &logFormat,
		},
	}
}

func buildLogger() logger.Logger {
	level := logger.ParseLevel(logLevel)
	switch logFormat {
	case "json":
		return logger.JSON(os.Stderr, level)
	case "text":
		return logger.Text(os.Stderr, level)
	default:
		return logger.Pretty(os.Stderr, level)
	}
}

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print version information",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Println(version.String())
			return nil
		},
	}
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"xcurscale/internal/convert"
	"xcurscale/internal/logger"
)

func main() {
	app := &cli.Command{
		Name:      "xcurscale",
		Usage:     "Resize Xcursor theme files by an integer scale factor",
		ArgsUsage: "INPUT...",
		Flags:     append(scaleFlags(), loggingFlags()...),
		Action:    runScale,
		Commands: []*cli.Command{
			versionCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runScale(ctx context.Context, c *cli.Command) error {
	cfg, err := loadConfig(configPath())
	if err != nil {
		return cli.Exit(fmt.Sprintf("error: read config: %v", err), 1)
	}
	applyConfig(c, cfg)

	inputs := c.Args().Slice()
	if len(inputs) == 0 {
		return cli.ShowAppHelp(c)
	}
	if scaleFactor < 1 {
		return cli.Exit("error: --scale must be a positive integer", 1)
	}

	jobs, err := pairJobs(inputs, c.StringSlice("output"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("error: %v", err), 1)
	}

	log := buildLogger()
	ctx = logger.WithContext(ctx, log)

	err = convert.Run(ctx, jobs, convert.Options{
		Factor:             uint32(scaleFactor),
		Jobs:               int(jobsCount),
		IgnoreUnrecognized: ignoreUnrecognized,
		Log:                log,
	})
	if err != nil {
		return cli.Exit(fmt.Sprintf("error: %v", err), 1)
	}
	return nil
}

// pairJobs zips inputs with outputs. With no outputs given, files are
// rewritten in place; otherwise the counts must match exactly.
func pairJobs(inputs, outputs []string) ([]convert.Job, error) {
	if len(outputs) == 0 {
		outputs = inputs
	}
	if len(outputs) != len(inputs) {
		return nil, fmt.Errorf(
			"if output filenames are provided there must be as many as input filenames (got %d inputs and %d outputs)",
			len(inputs), len(outputs))
	}
	jobs := make([]convert.Job, len(inputs))
	for i := range inputs {
		jobs[i] = convert.Job{Input: inputs[i], Output: outputs[i]}
	}
	return jobs, nil
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/jaywantadh/DeckSweep/config"
	"github.com/jaywantadh/DeckSweep/internal/cleaner"
	"github.com/jaywantadh/DeckSweep/pkg/env"
	"github.com/jaywantadh/DeckSweep/pkg/httpserver"
	"github.com/jaywantadh/DeckSweep/pkg/logging"
)

func main() {
	env.LoadEnv()
	config.LoadConfig(".")

	app := &cli.App{
		Name:      "DeckSweep",
		Usage:     "Remove redundant incremental slides from a PDF slide deck",
		ArgsUsage: "<input.pdf>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Output PDF file",
			},
			&cli.Float64Flag{
				Name:    "threshold",
				Aliases: []string{"t"},
				Value:   config.Config.Threshold,
				Usage:   "Text overlap threshold",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Show slides that would be removed without creating a PDF",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Print detailed decisions",
			},
			&cli.BoolFlag{
				Name:  "cache",
				Usage: "Cache extracted page texts for repeated runs",
				Value: config.Config.CacheEnabled,
			},
		},
		Action: runClean,
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Run the slide analysis HTTP server",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "port",
						Aliases: []string{"p"},
						Value:   config.Config.Port,
						Usage:   "Port to listen on",
					},
				},
				Action: runServe,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logging.InitLogger(false)
		logging.Log.Fatal(err)
	}
}

func runClean(c *cli.Context) error {
	logging.InitLogger(c.Bool("verbose"))

	input := c.Args().First()
	if input == "" {
		cli.ShowAppHelpAndExit(c, 1)
	}
	if _, err := os.Stat(input); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "File not found: %s\n", input)
		os.Exit(1)
	}

	output := c.String("out")
	if output == "" {
		output = defaultOutputPath(input)
	}

	opts := cleaner.Options{
		InputPath:  input,
		OutputPath: output,
		Threshold:  c.Float64("threshold"),
		DryRun:     c.Bool("dry-run"),
		Verbose:    c.Bool("verbose"),
	}
	if c.Bool("cache") {
		opts.CacheDir = config.Config.CacheDir
	}

	report, err := cleaner.Clean(opts)
	if err != nil {
		return err
	}

	if opts.DryRun {
		fmt.Printf("Slides to remove: %v\n", report.DroppedPages())
		return nil
	}

	fmt.Printf("Saved cleaned PDF: %s\n", output)
	fmt.Printf("Slides kept: %d / %d\n", len(report.Kept), report.TotalPages)
	return nil
}

func runServe(c *cli.Context) error {
	logging.InitLogger(true)
	return httpserver.Serve(c.Int("port"), config.Config.Threshold)
}

// defaultOutputPath derives "<stem>_cleaned<ext>" next to the input file.
func defaultOutputPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "_cleaned" + ext
}

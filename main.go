package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ifightcode/pdftools/internal/assemble"
	"github.com/ifightcode/pdftools/internal/compress"
	"github.com/ifightcode/pdftools/internal/extract"
	"github.com/ifightcode/pdftools/internal/rotate"
	"github.com/ifightcode/pdftools/models"
	"github.com/ifightcode/pdftools/pkg/help"
)

func main() {
	config, err := models.LoadConfig("pdftools.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	app := &cli.App{
		Name:            "pdftools",
		Usage:           "PDF Image Extractor, Image Rotator, and PDF Creator",
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "Suppress informational logging on stderr",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "extract",
				Usage:     "Extract images from a PDF file",
				ArgsUsage: "<pdf_file>",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "min-width",
						Value: config.MinWidth,
						Usage: "Minimum image width for extraction",
					},
					&cli.IntFlag{
						Name:  "min-height",
						Value: config.MinHeight,
						Usage: "Minimum image height for extraction",
					},
				},
				Action: extract.Action,
			},
			{
				Name:      "rotate",
				Usage:     "Rotate all images in a directory by 90 degrees",
				ArgsUsage: "<directory>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "direction",
						Aliases: []string{"d"},
						Value:   config.Direction,
						Usage:   "Rotation direction: clockwise, anticlockwise, cw, acw",
					},
					&cli.BoolFlag{
						Name:  "no-overwrite",
						Usage: "Create new files instead of overwriting originals",
					},
				},
				Action: rotate.Action,
			},
			{
				Name:      "create_pdf",
				Usage:     "Create a PDF from page-numbered images in a directory",
				ArgsUsage: "<directory>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output PDF filename",
					},
				},
				Action: assemble.Action,
			},
			{
				Name:      "compress",
				Usage:     "Compress a PDF with structural resave options",
				ArgsUsage: "<pdf_file>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "compression",
						Aliases: []string{"c"},
						Value:   config.Compression,
						Usage:   "Compression level: low, medium, high",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output PDF filename",
					},
				},
				Action: compress.Action,
			},
			{
				Name:      "compress_adv",
				Usage:     "Aggressively compress a PDF by rasterizing its pages",
				ArgsUsage: "<pdf_file>",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "quality",
						Aliases: []string{"q"},
						Value:   config.Quality,
						Usage:   "JPEG quality for rendered pages (1-100)",
					},
					&cli.IntFlag{
						Name:  "max-width",
						Value: config.MaxWidth,
						Usage: "Maximum width for rendered pages",
					},
					&cli.IntFlag{
						Name:  "max-height",
						Value: config.MaxHeight,
						Usage: "Maximum height for rendered pages",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output PDF filename",
					},
				},
				Action: compress.AdvancedAction,
			},
			{
				Name:  "help",
				Usage: "Show detailed help for all commands",
				Action: func(c *cli.Context) error {
					fmt.Print(help.Text)
					return nil
				},
			},
		},
		// Bare invocation prints the same detailed help the help command
		// does; an unrecognized command is a parser error.
		Action: func(c *cli.Context) error {
			if c.Args().Present() {
				return cli.Exit(fmt.Sprintf("unknown command: %s\nUse 'pdftools help' for usage information", c.Args().First()), 2)
			}
			fmt.Print(help.Text)
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"log"
	"os"

	dbcmd "github.com/dtnitsch/html-helpers/internal/db"
	"github.com/dtnitsch/html-helpers/internal/decode"
	"github.com/dtnitsch/html-helpers/internal/extract"
	"github.com/dtnitsch/html-helpers/internal/sel"
	"github.com/dtnitsch/html-helpers/internal/slim"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "hh",
		Usage: "HTML helpers: slim, select, extract, and decode HTML content",
		Commands: []*cli.Command{
			{
				Name:      "slim",
				Usage:     "Strip non-content elements from HTML files (stdin when no files given)",
				ArgsUsage: "[files...]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "config",
						Value: "config.yaml",
						Usage: "YAML config overriding tag/attribute policies",
					},
					&cli.StringFlag{
						Name:    "output-dir",
						Aliases: []string{"o"},
						Usage:   "Directory for slimmed files; single input without it prints to stdout",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of concurrent workers (default 4)",
					},
					&cli.StringFlag{
						Name:  "max-age",
						Value: "24h",
						Usage: "Reuse cached results younger than this",
					},
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Ignore cached results",
					},
					&cli.BoolFlag{
						Name:  "no-cache",
						Usage: "Skip the document cache entirely",
					},
					&cli.BoolFlag{
						Name:    "quiet",
						Aliases: []string{"q"},
						Usage:   "Only log errors",
					},
				},
				Action: slim.SlimAction,
			},
			{
				Name:      "select",
				Usage:     "Run CSS selectors against HTML and print matches as JSON",
				ArgsUsage: "[file]",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:    "selector",
						Aliases: []string{"s"},
						Usage:   "CSS selector (repeatable, OR semantics)",
					},
					&cli.StringFlag{
						Name:  "filter",
						Usage: "Post-filter, e.g. 'type:p|h1,len:>=10'",
					},
				},
				Action: sel.SelectAction,
			},
			{
				Name:      "extract",
				Usage:     "Extract the main article via readability, with language and keywords",
				ArgsUsage: "[file]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "url",
						Value: "http://localhost/",
						Usage: "Page URL, used to resolve relative links",
					},
					&cli.BoolFlag{
						Name:  "text",
						Usage: "Print plain text instead of JSON",
					},
				},
				Action: extract.ExtractAction,
			},
			{
				Name:      "decode",
				Usage:     "Decode HTML entities (or encode with --encode)",
				ArgsUsage: "[file]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "encode",
						Usage: "Escape instead of unescape",
					},
				},
				Action: decode.DecodeAction,
			},
			{
				Name:  "db",
				Usage: "Inspect and prune the document cache",
				Subcommands: []*cli.Command{
					{
						Name:  "docs",
						Usage: "List cached documents",
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "limit", Value: 50},
						},
						Action: dbcmd.DocsAction,
					},
					{
						Name:      "doc",
						Usage:     "Show one cached document",
						ArgsUsage: "<id>",
						Action:    dbcmd.DocAction,
					},
					{
						Name:  "clear",
						Usage: "Remove cached documents",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "older-than",
								Usage: "Only remove documents older than this duration",
							},
						},
						Action: dbcmd.ClearAction,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

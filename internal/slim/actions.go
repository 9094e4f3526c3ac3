package slim

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dtnitsch/html-helpers/internal/common"
	"github.com/dtnitsch/html-helpers/models"
	"github.com/dtnitsch/html-helpers/pkg/db"
	"github.com/dtnitsch/html-helpers/pkg/slimmer"
	"github.com/dtnitsch/html-helpers/pkg/storage"
	"github.com/urfave/cli/v2"
)

const defaultWorkerCount = 4

func SlimAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	config, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}

	var maxAge time.Duration
	if !c.Bool("force") {
		maxAge, err = time.ParseDuration(c.String("max-age"))
		if err != nil {
			logger.Error("invalid max-age duration", "error", err)
			os.Exit(2)
		}
	}

	var database *db.DB
	if !c.Bool("no-cache") {
		database, err = db.Open()
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(2)
		}
		defer database.Close()
	}

	outputDir := c.String("output-dir")
	if outputDir == "" {
		outputDir = config.OutputDir
	}

	inputs := c.Args().Slice()
	if len(inputs) == 0 {
		inputs = []string{common.StdinName}
	}

	r := &runner{
		logger:      logger,
		opts:        slimOptions(config.Slim),
		optionsHash: common.OptionsHash(config.Slim),
		store:       &storage.Storage{},
		database:    database,
		maxAge:      maxAge,
		outputDir:   outputDir,
	}

	// A single input with no output directory streams straight to stdout.
	if len(inputs) == 1 && outputDir == "" {
		data, err := common.ReadInput(inputs[0])
		if err != nil {
			return err
		}
		output, _, err := r.slimOne(inputs[0], data)
		if err != nil {
			return err
		}
		fmt.Println(output)
		return nil
	}

	workerCount := c.Int("workers")
	if workerCount <= 0 {
		workerCount = config.Workers
	}
	if workerCount <= 0 {
		workerCount = defaultWorkerCount
	}

	summary := r.run(inputs, workerCount)
	summary.TimeSeconds = time.Since(startTime).Seconds()

	jsonData, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	fmt.Println(string(jsonData))

	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", summary.Failed, summary.Total)
	}
	return nil
}

// slimOptions maps the YAML config onto slimmer options; empty lists keep
// the slimmer defaults.
func slimOptions(cfg models.SlimConfig) slimmer.Options {
	return slimmer.Options{
		TagsToRemove:         cfg.TagsToRemove,
		RemovableEmptyTags:   cfg.RemovableEmptyTags,
		MetaPropertyKeywords: cfg.MetaPropertyKeywords,
		AllowedMetaAttrs:     cfg.AllowedMetaAttrs,
		AllowedBodyAttrs:     cfg.AllowedBodyAttrs,
	}
}

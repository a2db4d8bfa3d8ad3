package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/BartekS5/HDE/internal/api"
	"github.com/BartekS5/HDE/internal/config"
	"github.com/BartekS5/HDE/internal/etl"
	"github.com/BartekS5/HDE/pkg/database"
	"github.com/BartekS5/HDE/pkg/logger"
	"github.com/BartekS5/HDE/pkg/models"
)

func runExtract(ctx context.Context, opts *ExtractOptions) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	mappingData, err := os.ReadFile(opts.MappingFile)
	if err != nil {
		return fmt.Errorf("failed to read mapping file: %w", err)
	}
	mappings, err := models.LoadMappings(mappingData)
	if err != nil {
		return fmt.Errorf("failed to parse mapping file: %w", err)
	}
	mapping, err := mappings.FindDataset(opts.Dataset)
	if err != nil {
		return err
	}

	db, err := database.ConnectPostgres(cfg.DSN())
	if err != nil {
		return err
	}
	defer db.Close()
	logger.Infof("Connected to database %s on %s", cfg.DBName, cfg.DBHost)

	if err := database.EnsureSchema(ctx, db, mapping.Schema); err != nil {
		return err
	}
	if err := database.EnsureTable(ctx, db, mapping); err != nil {
		return err
	}

	client := api.NewClient(cfg.APIBaseURL, cfg.RequestTimeout)
	extractor := etl.NewDatasetExtractor(client, mapping.APIPath)
	transformer := etl.NewTransformer(mapping, time.Now().UTC())
	loader := etl.NewPostgresLoader(db, mapping)

	if opts.Replace && !opts.DryRun {
		if err := loader.Truncate(ctx); err != nil {
			return err
		}
	}

	pipeline := etl.NewPipeline(extractor, transformer, loader, opts.BatchSize, opts.DryRun)

	logger.Infof("Starting extraction of dataset %s into %s", mapping.Name, mapping.QualifiedTable())
	report, err := pipeline.Run(ctx)
	if err != nil {
		return err
	}

	if opts.DryRun {
		logger.Infof("[DRY RUN] Extraction finished: %d rows in %d pages", report.Rows, report.Pages)
		return nil
	}

	count, err := loader.RowCount(ctx)
	if err != nil {
		logger.Warnf("Could not verify row count: %v", err)
	} else {
		logger.Infof("Row count in %s: %d", mapping.QualifiedTable(), count)
	}

	if err := etl.RecordExtraction(ctx, db, mapping.Source, mapping.Name, report, "success"); err != nil {
		logger.Warnf("Could not record extraction metadata: %v", err)
	}

	logger.Infof("Extraction finished successfully.")
	return nil
}

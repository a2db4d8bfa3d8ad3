package etl

import (
	"context"
	"time"

	"github.com/BartekS5/HDE/pkg/logger"
)

// Pipeline drives one extraction run: fetch a page, transform it, load it,
// advance the offset, stop on the first empty page. There is no retry and
// no checkpointing; a failed run is simply rerun by the scheduler.
type Pipeline struct {
	Extractor   Extractor
	Transformer *Transformer
	Loader      Loader
	BatchSize   int
	DryRun      bool
}

// RunReport summarises a finished run for logging and the extraction
// metadata table.
type RunReport struct {
	Pages    int
	Rows     int
	Started  time.Time
	Duration time.Duration
}

func NewPipeline(ext Extractor, tr *Transformer, loader Loader, batchSize int, dryRun bool) *Pipeline {
	return &Pipeline{
		Extractor:   ext,
		Transformer: tr,
		Loader:      loader,
		BatchSize:   batchSize,
		DryRun:      dryRun,
	}
}

// Run executes the fetch/transform/load loop. The first error from any
// stage aborts the run immediately; batches already loaded stay committed.
func (p *Pipeline) Run(ctx context.Context) (*RunReport, error) {
	logger.Infof("Starting pipeline. Batch size: %d, DryRun: %v", p.BatchSize, p.DryRun)

	report := &RunReport{Started: time.Now()}
	offset := 0

	for {
		records, newOffset, err := p.Extractor.Extract(ctx, p.BatchSize, offset)
		if err != nil {
			logger.Errorf("Extraction failed at offset %d: %v", offset, err)
			return report, err
		}

		if len(records) == 0 {
			logger.Infof("No more data at offset %d. Extraction complete.", offset)
			break
		}

		rows, err := p.Transformer.TransformBatch(records)
		if err != nil {
			logger.Errorf("Transform failed at offset %d: %v", offset, err)
			return report, err
		}

		if p.DryRun {
			logger.Infof("[DRY RUN] Would load %d rows", len(rows))
		} else {
			if err := p.Loader.Load(ctx, rows); err != nil {
				logger.Errorf("Loading failed at offset %d: %v", offset, err)
				return report, err
			}
		}

		report.Pages++
		report.Rows += len(rows)
		offset = newOffset

		elapsed := time.Since(report.Started)
		rate := 0.0
		if elapsed.Seconds() > 0 {
			rate = float64(report.Rows) / elapsed.Seconds()
		}
		logger.Infof("Batch done. Total: %d rows. Rate: %.2f rows/sec. Next offset: %d", report.Rows, rate, offset)
	}

	report.Duration = time.Since(report.Started)
	logger.Infof("Pipeline finished: %d rows in %d pages (%s)", report.Rows, report.Pages, report.Duration.Round(time.Millisecond))
	return report, nil
}

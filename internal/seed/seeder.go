package seed

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/UnknownOlympus/netwatch/internal/repository"
	"github.com/schollz/progressbar/v3"
)

const defaultBatchSize = 500

// Options control a seeding run.
type Options struct {
	Samples          int  // Number of speed tests to generate.
	TowersPerCommune int  // Number of towers generated in every commune.
	BatchSize        int  // Rows per COPY, defaults to 500.
	Reset            bool // Truncate both tables first.
}

// Result reports how many rows a run inserted.
type Result struct {
	Samples int64
	Towers  int64
}

// Seeder loads generated data into the store.
type Seeder struct {
	log      *slog.Logger
	store    repository.Store
	gen      *Generator
	progress io.Writer
}

// NewSeeder creates a seeder. Progress is drawn on the writer; pass io.Discard to hide it.
func NewSeeder(log *slog.Logger, store repository.Store, gen *Generator, progress io.Writer) *Seeder {
	return &Seeder{log: log, store: store, gen: gen, progress: progress}
}

// Run creates the schema when missing, optionally empties the tables, then inserts
// towers and samples in batches.
func (s *Seeder) Run(ctx context.Context, opts Options) (Result, error) {
	var res Result

	if opts.BatchSize <= 0 {
		opts.BatchSize = defaultBatchSize
	}

	if err := s.store.EnsureSchema(ctx); err != nil {
		return res, err
	}

	if opts.Reset {
		if err := s.store.Truncate(ctx); err != nil {
			return res, err
		}
		s.log.InfoContext(ctx, "Tables truncated")
	}

	if opts.TowersPerCommune > 0 {
		towers := s.gen.Towers(opts.TowersPerCommune)
		copied, err := s.store.InsertTowers(ctx, towers)
		if err != nil {
			return res, err
		}
		res.Towers = copied
		s.log.InfoContext(ctx, "Towers inserted", "count", copied)
	}

	if opts.Samples <= 0 {
		return res, nil
	}

	bar := progressbar.NewOptions(
		opts.Samples,
		progressbar.OptionSetWriter(s.progress),
		progressbar.OptionSetDescription("speed tests"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	for done := 0; done < opts.Samples; {
		size := min(opts.BatchSize, opts.Samples-done)

		copied, err := s.store.InsertSamples(ctx, s.gen.Samples(size))
		if err != nil {
			return res, fmt.Errorf("batch starting at %d: %w", done, err)
		}
		res.Samples += copied
		done += size

		if errBar := bar.Add(size); errBar != nil {
			s.log.DebugContext(ctx, "Failed to draw progress", "error", errBar)
		}
	}

	if err := bar.Finish(); err != nil {
		s.log.DebugContext(ctx, "Failed to finish progress", "error", err)
	}

	s.log.InfoContext(ctx, "Speed tests inserted", "count", res.Samples)

	return res, nil
}

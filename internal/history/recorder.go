// Package history records generated names into the event store.
package history

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/abhisek/namegen/internal/namegen"
	"github.com/abhisek/namegen/internal/store"
)

// Run describes the invocation a Recorder belongs to.
type Run struct {
	Seed       uint64
	CorpusSize int
}

// Recorder is a decorator around a namegen.Model that records every
// generated name as an event. Events from one Recorder share a run ID.
type Recorder struct {
	model  *namegen.Model
	repo   store.EventRepo
	logger *slog.Logger
	run    Run
	runID  string
}

// NewRecorder wraps m. A nil logger discards warnings.
func NewRecorder(m *namegen.Model, repo store.EventRepo, run Run, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Recorder{
		model:  m,
		repo:   repo,
		logger: logger,
		run:    run,
		runID:  uuid.NewString(),
	}
}

// RunID identifies the events written by this Recorder.
func (r *Recorder) RunID() string { return r.runID }

// Generate samples a name and records it. A failure to record is logged but
// does not fail the generation.
func (r *Recorder) Generate(ctx context.Context, src namegen.RandomSource, start string) (namegen.Result, error) {
	res, err := r.model.Generate(src, start)
	if err != nil {
		return res, err
	}

	cfg := r.model.Config()
	data := store.GenerationEventData{
		RunID:        r.runID,
		Seed:         r.run.Seed,
		Start:        start,
		Name:         res.Name,
		Outcome:      string(res.Outcome),
		Steps:        res.Steps,
		MinLength:    cfg.MinLength,
		MaxChunkSize: cfg.MaxChunkSize,
		Window:       string(cfg.Window),
		CorpusSize:   r.run.CorpusSize,
	}
	if _, logErr := r.repo.AppendGeneration(ctx, data); logErr != nil {
		r.logger.Warn("failed to record generation event",
			slog.String("name", res.Name),
			slog.Any("error", logErr),
		)
	}
	return res, nil
}

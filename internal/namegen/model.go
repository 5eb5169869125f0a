package namegen

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"
)

// ErrNotTrained is returned by Model.Generate before the first Train.
var ErrNotTrained = errors.New("model has not been trained")

// CorpusFunc produces the ordered training examples.
type CorpusFunc func() ([]string, error)

// Model holds the current Distribution together with the Config used to
// build and sample it. Train replaces the Distribution atomically, so
// concurrent Generate calls see either the old or the new one in full.
type Model struct {
	cfg    Config
	logger *slog.Logger
	dist   atomic.Pointer[Distribution]
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithLogger sets the logger used for training summaries.
func WithLogger(l *slog.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewModel returns an untrained Model. cfg is validated eagerly.
func NewModel(cfg Config, opts ...ModelOption) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m := &Model{cfg: cfg, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Config returns the Model's configuration.
func (m *Model) Config() Config { return m.cfg }

// Train builds a fresh Distribution from corpus and installs it.
func (m *Model) Train(corpus []string) (*Distribution, error) {
	began := time.Now()
	d, err := Build(corpus, m.cfg.MaxChunkSize)
	if err != nil {
		return nil, err
	}
	m.dist.Store(d)

	if len(corpus) == 0 {
		m.logger.Warn("trained on an empty corpus; generation will return the start text unchanged")
	}
	st := d.Stats()
	m.logger.Info("distribution trained",
		slog.Int("examples", len(corpus)),
		slog.Int("keys", st.Keys),
		slog.Int("continuations", st.Continuations),
		slog.Duration("duration", time.Since(began)),
	)
	return d, nil
}

// TrainFrom loads a corpus from load and trains on it. The current
// Distribution is kept when loading fails.
func (m *Model) TrainFrom(load CorpusFunc) (*Distribution, error) {
	corpus, err := load()
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	return m.Train(corpus)
}

// Distribution returns the current Distribution, or nil before Train.
func (m *Model) Distribution() *Distribution { return m.dist.Load() }

// Generate samples one name from the current Distribution.
func (m *Model) Generate(src RandomSource, start string) (Result, error) {
	d := m.dist.Load()
	if d == nil {
		return Result{}, ErrNotTrained
	}
	return Generate(d, src, m.cfg.GenerateOptions(start))
}

package history

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/namegen/internal/namegen"
	"github.com/abhisek/namegen/internal/store"
)

type firstChoice struct{}

func (firstChoice) IntN(int) int { return 0 }

func trainedModel(t *testing.T, corpus ...string) *namegen.Model {
	t.Helper()
	m, err := namegen.NewModel(namegen.DefaultConfig())
	require.NoError(t, err)
	_, err = m.Train(corpus)
	require.NoError(t, err)
	return m
}

func TestRecorder_RecordsEvents(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	rec := NewRecorder(trainedModel(t, "anna", "anne"), s.EventRepo(), Run{Seed: 9, CorpusSize: 2}, nil)
	_, err = uuid.Parse(rec.RunID())
	require.NoError(t, err, "run ID should be a UUID")

	res, err := rec.Generate(ctx, firstChoice{}, "")
	require.NoError(t, err)
	assert.Equal(t, "anna", res.Name)

	_, err = rec.Generate(ctx, firstChoice{}, "xyz")
	require.NoError(t, err)

	events, err := s.EventRepo().QueryGenerations(ctx, store.QueryOpts{RunID: rec.RunID()})
	require.NoError(t, err)
	require.Len(t, events, 2)

	latest := events[0]
	assert.Equal(t, "xyz", latest.Start)
	assert.Equal(t, "xyz", latest.Name)
	assert.Equal(t, string(namegen.OutcomeNoMatch), latest.Outcome)

	first := events[1]
	assert.Equal(t, "anna", first.Name)
	assert.Equal(t, string(namegen.OutcomeEnded), first.Outcome)
	assert.Equal(t, uint64(9), first.Seed)
	assert.Equal(t, 2, first.CorpusSize)
	assert.Equal(t, 8, first.MaxChunkSize)
	assert.Equal(t, 3, first.MinLength)
	assert.Equal(t, string(namegen.WindowSkipHead), first.Window)
	assert.Equal(t, 5, first.Steps)
}

type failingRepo struct {
	store.EventRepo
}

func (failingRepo) AppendGeneration(context.Context, store.GenerationEventData) (int64, error) {
	return 0, errors.New("database is locked")
}

func TestRecorder_AppendFailureIsNotFatal(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	rec := NewRecorder(trainedModel(t, "bob"), failingRepo{}, Run{}, logger)
	res, err := rec.Generate(context.Background(), firstChoice{}, "")
	require.NoError(t, err)
	assert.Equal(t, "bob", res.Name)
	assert.Contains(t, buf.String(), "failed to record generation event")
	assert.Contains(t, buf.String(), "database is locked")
}

func TestRecorder_UntrainedModel(t *testing.T) {
	m, err := namegen.NewModel(namegen.DefaultConfig())
	require.NoError(t, err)

	rec := NewRecorder(m, failingRepo{}, Run{}, nil)
	_, err = rec.Generate(context.Background(), firstChoice{}, "")
	assert.ErrorIs(t, err, namegen.ErrNotTrained)
}

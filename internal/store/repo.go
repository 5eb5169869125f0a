package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	AfterID int64  // id > AfterID
	RunID   string // only events from this run
	Outcome string // only events with this outcome
}

// GenerationEventData captures one generated name and the parameters that
// produced it.
type GenerationEventData struct {
	RunID        string
	Seed         uint64
	Start        string
	Name         string
	Outcome      string
	Steps        int
	MinLength    int
	MaxChunkSize int
	Window       string
	CorpusSize   int
}

// GenerationEvent is a stored GenerationEventData.
type GenerationEvent struct {
	ID        int64
	Timestamp time.Time
	GenerationEventData
}

// EventRepo provides append and query access to generation events.
type EventRepo interface {
	// AppendGeneration records a generated name and returns its ID.
	AppendGeneration(ctx context.Context, data GenerationEventData) (int64, error)

	// QueryGenerations returns events newest first.
	QueryGenerations(ctx context.Context, opts QueryOpts) ([]GenerationEvent, error)

	// GetGeneration returns a single event, or nil if it does not exist.
	GetGeneration(ctx context.Context, id int64) (*GenerationEvent, error)

	// ClearGenerations deletes every event and returns how many were removed.
	ClearGenerations(ctx context.Context) (int64, error)
}

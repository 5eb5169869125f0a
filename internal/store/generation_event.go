package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const tableGenerationEvents = "generation_events"

var generationColumns = []string{
	"id", "run_id", "timestamp", "seed", "start", "name", "outcome",
	"steps", "min_length", "max_chunk_size", "context_window", "corpus_size",
}

// eventRepo implements EventRepo with ent's SQL builder over SQLite.
type eventRepo struct {
	drv *entsql.Driver
}

func (r *eventRepo) builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *eventRepo) AppendGeneration(ctx context.Context, data GenerationEventData) (int64, error) {
	query, args := r.builder().
		Insert(tableGenerationEvents).
		Columns(generationColumns[1:]...).
		Values(
			data.RunID,
			time.Now().UTC().UnixMilli(),
			int64(data.Seed),
			data.Start,
			data.Name,
			data.Outcome,
			data.Steps,
			data.MinLength,
			data.MaxChunkSize,
			data.Window,
			data.CorpusSize,
		).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return 0, fmt.Errorf("save generation event: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("generation event id: %w", err)
	}
	return id, nil
}

func (r *eventRepo) QueryGenerations(ctx context.Context, opts QueryOpts) ([]GenerationEvent, error) {
	selector := r.builder().
		Select(generationColumns...).
		From(entsql.Table(tableGenerationEvents)).
		OrderBy(entsql.Desc("id"))

	if opts.AfterID > 0 {
		selector.Where(entsql.GT("id", opts.AfterID))
	}
	if opts.RunID != "" {
		selector.Where(entsql.EQ("run_id", opts.RunID))
	}
	if opts.Outcome != "" {
		selector.Where(entsql.EQ("outcome", opts.Outcome))
	}
	if opts.Limit > 0 {
		selector.Limit(opts.Limit)
	}

	return r.scan(ctx, selector)
}

func (r *eventRepo) GetGeneration(ctx context.Context, id int64) (*GenerationEvent, error) {
	selector := r.builder().
		Select(generationColumns...).
		From(entsql.Table(tableGenerationEvents)).
		Where(entsql.EQ("id", id)).
		Limit(1)

	events, err := r.scan(ctx, selector)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, nil
	}
	return &events[0], nil
}

func (r *eventRepo) ClearGenerations(ctx context.Context) (int64, error) {
	query, args := r.builder().Delete(tableGenerationEvents).Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return 0, fmt.Errorf("clear generation events: %w", err)
	}
	return res.RowsAffected()
}

func (r *eventRepo) scan(ctx context.Context, selector *entsql.Selector) ([]GenerationEvent, error) {
	query, args := selector.Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query generation events: %w", err)
	}
	defer rows.Close()

	var events []GenerationEvent
	for rows.Next() {
		var (
			e      GenerationEvent
			millis int64
			seed   int64
		)
		err := rows.Scan(
			&e.ID, &e.RunID, &millis, &seed, &e.Start, &e.Name, &e.Outcome,
			&e.Steps, &e.MinLength, &e.MaxChunkSize, &e.Window, &e.CorpusSize,
		)
		if err != nil {
			return nil, fmt.Errorf("scan generation event: %w", err)
		}
		e.Timestamp = time.UnixMilli(millis).UTC()
		e.Seed = uint64(seed)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate generation events: %w", err)
	}
	return events, nil
}

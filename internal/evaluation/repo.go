package evaluation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/posecheck/internal/pose"
	"github.com/2beens/posecheck/internal/telemetry/tracing"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, record Record) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.evaluation.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session", record.SessionID))

	deviations, err := marshalDeviations(record)
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO pose_evaluation (session_id, asana, matched, distance, deviations, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`,
		record.SessionID,
		string(record.Asana),
		record.Matched,
		record.Distance,
		deviations,
		record.CreatedAt,
	).Scan(&record.ID)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *Repo) List(ctx context.Context, params ListParams) (_ []Record, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.evaluation.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session", params.SessionID))
	span.SetAttributes(attribute.Int("page", params.Page))
	span.SetAttributes(attribute.Int("size", params.Size))

	if params.Page < 1 {
		return nil, -1, errors.New("page must be greater than 0")
	}
	if params.Size < 1 {
		return nil, -1, errors.New("size must be greater than 0")
	}

	countAll, err := r.Count(ctx, params.SessionID)
	if err != nil {
		return nil, -1, err
	}
	span.SetAttributes(attribute.Int("count_all", countAll))

	limit := params.Size
	offset := (params.Page - 1) * params.Size

	rows, err := r.db.Query(ctx, `
		SELECT id, session_id, asana, matched, distance, deviations, created_at
		FROM pose_evaluation
		WHERE session_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
		OFFSET $3
	`, params.SessionID, limit, offset)
	if err != nil {
		return nil, -1, err
	}
	defer rows.Close()

	records, err := rows2records(rows)
	if err != nil {
		return nil, -1, err
	}
	return records, countAll, nil
}

func (r *Repo) Count(ctx context.Context, sessionID string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.evaluation.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM pose_evaluation WHERE session_id = $1
	`, sessionID).Scan(&count); err != nil {
		return -1, err
	}
	return count, nil
}

func (r *Repo) Stats(ctx context.Context, sessionID string) (_ *Stats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.evaluation.stats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session", sessionID))

	rows, err := r.db.Query(ctx, `
		SELECT id, session_id, asana, matched, distance, deviations, created_at
		FROM pose_evaluation
		WHERE session_id = $1
		ORDER BY created_at
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records, err := rows2records(rows)
	if err != nil {
		return nil, err
	}
	return Analyze(sessionID, records), nil
}

func rows2records(rows pgx.Rows) ([]Record, error) {
	records := make([]Record, 0)
	for rows.Next() {
		var rec Record
		var asana string
		var deviations []byte
		if err := rows.Scan(
			&rec.ID,
			&rec.SessionID,
			&asana,
			&rec.Matched,
			&rec.Distance,
			&deviations,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		rec.Asana = pose.Asana(asana)
		if len(deviations) > 0 {
			if err := json.Unmarshal(deviations, &rec.Deviations); err != nil {
				return nil, fmt.Errorf("record %d: unmarshal deviations: %w", rec.ID, err)
			}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func marshalDeviations(record Record) ([]byte, error) {
	if len(record.Deviations) == 0 {
		return []byte("{}"), nil
	}
	b, err := json.Marshal(record.Deviations)
	if err != nil {
		return nil, fmt.Errorf("marshal deviations: %w", err)
	}
	return b, nil
}

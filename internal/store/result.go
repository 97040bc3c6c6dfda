package store

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/topocapital/suitability/ent"
	"github.com/topocapital/suitability/ent/assessmentresult"
)

func (r *eventRepo) AppendResult(ctx context.Context, data ResultData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AssessmentResult.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetProfile(data.Profile).
		SetScore(data.Score).
		SetMaxScore(data.MaxScore).
		SetNormalized(data.Normalized).
		SetAnswered(data.Answered).
		SetTotal(data.Total).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryResults(ctx context.Context, opts QueryOpts) ([]ResultRecord, error) {
	query := r.client.AssessmentResult.Query().
		Order(ent.Desc(assessmentresult.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(assessmentresult.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(assessmentresult.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(assessmentresult.TimestampGTE(opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		query = query.Where(assessmentresult.TimestampLTE(opts.To.UTC()))
	}

	results, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}

	out := make([]ResultRecord, len(results))
	for i, e := range results {
		out[i] = ResultRecord{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			ResultData: ResultData{
				SessionID:    e.SessionID,
				Profile:      e.Profile,
				Score:        e.Score,
				MaxScore:     e.MaxScore,
				Normalized:   e.Normalized,
				Answered:     e.Answered,
				Total:        e.Total,
				DurationSecs: e.DurationSecs,
			},
		}
	}
	return out, nil
}

func (r *eventRepo) CountByProfile(ctx context.Context) ([]ProfileCount, error) {
	var rows []struct {
		Profile string `json:"profile"`
		Count   int    `json:"count"`
	}
	err := r.client.AssessmentResult.Query().
		GroupBy(assessmentresult.FieldProfile).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("count by profile: %w", err)
	}

	out := make([]ProfileCount, len(rows))
	for i, row := range rows {
		out[i] = ProfileCount{Profile: row.Profile, Count: row.Count}
	}
	slices.SortFunc(out, func(a, b ProfileCount) int { return strings.Compare(a.Profile, b.Profile) })
	return out, nil
}

func (r *eventRepo) PurgeHistory(ctx context.Context) (int64, error) {
	results, err := r.client.AssessmentResult.Delete().Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("purge results: %w", err)
	}
	events, err := r.client.SessionEvent.Delete().Exec(ctx)
	if err != nil {
		return int64(results), fmt.Errorf("purge session events: %w", err)
	}
	return int64(results + events), nil
}

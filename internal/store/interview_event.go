package store

import (
	"context"
	"fmt"

	"github.com/talentmatch/talentmatch/ent"
	"github.com/talentmatch/talentmatch/ent/interviewevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendInterviewEvent(ctx context.Context, data InterviewEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.InterviewEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetInterviewID(data.InterviewID).
		SetJobRole(data.JobRole).
		SetAction(data.Action).
		SetMode(data.Mode).
		SetQuestionCount(data.QuestionCount).
		SetAnsweredCount(data.AnsweredCount).
		SetFinalScore(data.FinalScore).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save interview event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryInterviewEvents(ctx context.Context, opts QueryOpts) ([]InterviewEventRecord, error) {
	q := r.client.InterviewEvent.Query().
		Order(ent.Desc(interviewevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(interviewevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(interviewevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(interviewevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(interviewevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query interview events: %w", err)
	}

	out := make([]InterviewEventRecord, len(events))
	for i, e := range events {
		out[i] = InterviewEventRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			InterviewEventData: InterviewEventData{
				SessionID:     e.SessionID,
				InterviewID:   e.InterviewID,
				JobRole:       e.JobRole,
				Action:        e.Action,
				Mode:          e.Mode,
				QuestionCount: e.QuestionCount,
				AnsweredCount: e.AnsweredCount,
				FinalScore:    e.FinalScore,
				DurationSecs:  e.DurationSecs,
			},
		}
	}
	return out, nil
}

package store

import (
	"context"
	"fmt"

	"github.com/talentmatch/talentmatch/ent"
	"github.com/talentmatch/talentmatch/ent/answerevent"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuestionID(data.QuestionID).
		SetQuestionText(data.QuestionText).
		SetAnswerText(data.AnswerText).
		SetScore(data.Score).
		SetFeedback(data.Feedback).
		SetTimeMs(data.TimeMs).
		SetEvaluator(data.Evaluator).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AnswersBySession(ctx context.Context, sessionID string) ([]AnswerEventRecord, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.SessionID(sessionID)).
		Order(ent.Asc(answerevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answers by session: %w", err)
	}

	out := make([]AnswerEventRecord, len(events))
	for i, e := range events {
		out[i] = AnswerEventRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			AnswerEventData: AnswerEventData{
				SessionID:    e.SessionID,
				QuestionID:   e.QuestionID,
				QuestionText: e.QuestionText,
				AnswerText:   e.AnswerText,
				Score:        e.Score,
				Feedback:     e.Feedback,
				TimeMs:       e.TimeMs,
				Evaluator:    e.Evaluator,
			},
		}
	}
	return out, nil
}

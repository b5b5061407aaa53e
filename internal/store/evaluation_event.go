package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/talentmatch/talentmatch/ent"
	"github.com/talentmatch/talentmatch/ent/evaluationevent"
)

func (r *eventRepo) AppendEvaluation(ctx context.Context, data EvaluationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.EvaluationEvent.Create().
		SetSequence(seqNum).
		SetEvaluator(data.Evaluator).
		SetQuestionID(data.QuestionID).
		SetScore(data.Score).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save evaluation event: %w", err)
	}
	return nil
}

func (r *eventRepo) EvaluationStats(ctx context.Context) ([]EvaluatorStats, error) {
	events, err := r.client.EvaluationEvent.Query().
		Order(ent.Asc(evaluationevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query evaluation events: %w", err)
	}

	type agg struct {
		calls    int
		failures int
		scoreSum int
		scored   int
	}
	byName := map[string]*agg{}
	for _, e := range events {
		a := byName[e.Evaluator]
		if a == nil {
			a = &agg{}
			byName[e.Evaluator] = a
		}
		a.calls++
		if !e.Success {
			a.failures++
		} else {
			a.scoreSum += e.Score
			a.scored++
		}
	}

	out := make([]EvaluatorStats, 0, len(byName))
	for name, a := range byName {
		s := EvaluatorStats{
			Evaluator: name,
			Calls:     a.calls,
			Failures:  a.failures,
		}
		if a.scored > 0 {
			s.AvgScore = float64(a.scoreSum) / float64(a.scored)
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Evaluator < out[j].Evaluator })
	return out, nil
}

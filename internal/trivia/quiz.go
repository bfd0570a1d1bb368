package trivia

import "context"

// NextQuizQuestion draws one uniformly-random question from the selected
// category that is not in previous, or nil when the pool is exhausted.
// Category id 0 is the sentinel for "all categories". Each call is a
// fresh draw; the caller resends its full history every request.
func (s *Service) NextQuizQuestion(ctx context.Context, category QuizCategory, previous []int) (*Question, error) {
	var (
		pool []Question
		err  error
	)
	if category.ID == 0 {
		pool, err = s.store.ListQuestions(ctx)
	} else {
		pool, err = s.store.ListQuestionsByCategory(ctx, category.ID)
	}
	if err != nil {
		return nil, err
	}

	seen := make(map[int]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}

	var remaining []Question
	for _, q := range pool {
		if _, ok := seen[q.ID]; !ok {
			remaining = append(remaining, q)
		}
	}

	// Exhaustion is a normal terminal outcome, not an error.
	if len(remaining) == 0 {
		return nil, nil
	}

	q := remaining[s.intN(len(remaining))]
	return &q, nil
}

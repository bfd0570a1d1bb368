package trivia

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog"
)

// Service implements the question-bank operations on top of a Store.
// It holds no request state; everything durable lives in the store.
type Service struct {
	store  Store
	logger zerolog.Logger
	intN   func(n int) int
}

// ServiceOptions tunes service construction.
type ServiceOptions struct {
	// IntN overrides the random draw used by the quiz selector; tests
	// inject a deterministic source. Defaults to math/rand/v2.IntN.
	IntN func(n int) int
}

// NewService wires a Service over the given persistence gateway.
func NewService(store Store, logger zerolog.Logger, opts ServiceOptions) *Service {
	intN := opts.IntN
	if intN == nil {
		intN = rand.IntN
	}
	return &Service{
		store:  store,
		logger: logger.With().Str("component", "trivia").Logger(),
		intN:   intN,
	}
}

// Categories returns all categories keyed by id. An empty bank is not an
// error here.
func (s *Service) Categories(ctx context.Context) (map[int]string, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[int]string, len(categories))
	for _, c := range categories {
		out[c.ID] = c.Type
	}
	return out, nil
}

// ListQuestions returns one page of the full question list together with
// the unpaginated total and the category type labels. An empty page,
// including a page number past the end, is ErrNotFound.
func (s *Service) ListQuestions(ctx context.Context, page int) (QuestionsPage, error) {
	questions, err := s.store.ListQuestions(ctx)
	if err != nil {
		return QuestionsPage{}, err
	}
	current := paginate(page, questions)
	if len(current) == 0 {
		return QuestionsPage{}, ErrNotFound
	}

	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return QuestionsPage{}, err
	}
	types := make([]string, 0, len(categories))
	for _, c := range categories {
		types = append(types, c.Type)
	}

	return QuestionsPage{
		Questions:      current,
		TotalQuestions: len(questions),
		Categories:     types,
	}, nil
}

// DeleteQuestion removes a question by id and returns the deleted id.
// A missing id is ErrNotFound; a failure during the delete itself is
// ErrStorage, so a second delete of the same id fails rather than
// silently succeeding.
func (s *Service) DeleteQuestion(ctx context.Context, id int) (int, error) {
	if _, err := s.store.GetQuestion(ctx, id); err != nil {
		return 0, err
	}
	if err := s.store.DeleteQuestion(ctx, id); err != nil {
		s.logger.Error().Err(err).Int("question_id", id).Msg("delete question failed")
		return 0, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return id, nil
}

// CreateQuestion inserts a new question and returns its id. Field
// presence is validated at the HTTP boundary before this is called;
// storage-level constraint violations (such as a dangling category on a
// bank with enforced references) map to ErrStorage.
func (s *Service) CreateQuestion(ctx context.Context, q NewQuestion) (int, error) {
	id, err := s.store.InsertQuestion(ctx, q)
	if err != nil {
		s.logger.Error().Err(err).Msg("insert question failed")
		return 0, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return id, nil
}

// SearchQuestions returns one page of questions whose text contains term,
// case-insensitively. An empty page after pagination is ErrNotFound.
func (s *Service) SearchQuestions(ctx context.Context, term string, page int) ([]Question, error) {
	matches, err := s.store.SearchQuestions(ctx, term)
	if err != nil {
		return nil, err
	}
	current := paginate(page, matches)
	if len(current) == 0 {
		return nil, ErrNotFound
	}
	return current, nil
}

// QuestionsByCategory returns one page of the questions in the given
// category. An unknown category is ErrNotFound, but a known category
// with no questions on the page is a success with an empty list.
func (s *Service) QuestionsByCategory(ctx context.Context, categoryID, page int) ([]Question, error) {
	if _, err := s.store.GetCategory(ctx, categoryID); err != nil {
		return nil, err
	}
	questions, err := s.store.ListQuestionsByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	current := paginate(page, questions)
	if current == nil {
		current = []Question{}
	}
	return current, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/triviaworks/trivia-api/internal/trivia"
)

const questionColumns = `id, question, answer, category, difficulty`

// ListQuestions returns every question ordered by id ascending.
func (s *Store) ListQuestions(ctx context.Context) ([]trivia.Question, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+questionColumns+`
		FROM questions
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return collectQuestions(rows)
}

// ListQuestionsByCategory returns the questions in one category, ordered
// by id ascending. A dangling category id simply yields no rows.
func (s *Store) ListQuestionsByCategory(ctx context.Context, categoryID int) ([]trivia.Question, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+questionColumns+`
		FROM questions
		WHERE category = $1
		ORDER BY id ASC
	`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list questions by category: %w", err)
	}
	return collectQuestions(rows)
}

// SearchQuestions returns questions whose text contains term,
// case-insensitively, ordered by id ascending.
func (s *Store) SearchQuestions(ctx context.Context, term string) ([]trivia.Question, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+questionColumns+`
		FROM questions
		WHERE question ILIKE '%' || $1 || '%'
		ORDER BY id ASC
	`, term)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return collectQuestions(rows)
}

// GetQuestion fetches a single question by id.
func (s *Store) GetQuestion(ctx context.Context, id int) (trivia.Question, error) {
	var q trivia.Question
	err := s.pool.QueryRow(ctx, `
		SELECT `+questionColumns+`
		FROM questions
		WHERE id = $1
	`, id).Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return trivia.Question{}, trivia.ErrNotFound
		}
		return trivia.Question{}, fmt.Errorf("get question: %w", err)
	}
	return q, nil
}

// InsertQuestion stores a new question and returns its assigned id. The
// foreign key on category makes a reference to a missing category fail
// here rather than upstream.
func (s *Store) InsertQuestion(ctx context.Context, q trivia.NewQuestion) (int, error) {
	var id int
	err := s.pool.QueryRow(ctx, `
		INSERT INTO questions (question, answer, category, difficulty)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, q.Question, q.Answer, q.Category, q.Difficulty).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert question: %w", err)
	}
	return id, nil
}

// DeleteQuestion removes a question by id. Deleting an id that is
// already gone reports trivia.ErrNotFound, never a silent no-op.
func (s *Store) DeleteQuestion(ctx context.Context, id int) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return trivia.ErrNotFound
	}
	return nil
}

func collectQuestions(rows pgx.Rows) ([]trivia.Question, error) {
	defer rows.Close()

	var questions []trivia.Question
	for rows.Next() {
		var q trivia.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}
	return questions, nil
}

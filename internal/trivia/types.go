package trivia

import "context"

// Category groups questions under a label. Categories are seeded by
// migrations and never created through the API.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// Question is a single trivia prompt. Category references a Category id;
// the database enforces the constraint on insert.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// NewQuestion carries the fields required to insert a Question.
type NewQuestion struct {
	Question   string
	Answer     string
	Category   int
	Difficulty int
}

// QuestionsPage is the result of the paginated question listing: one page
// of questions, the unpaginated total, and the category type labels
// ordered by category id.
type QuestionsPage struct {
	Questions      []Question
	TotalQuestions int
	Categories     []string
}

// QuizCategory selects the quiz candidate pool; id 0 means all categories.
type QuizCategory struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// Store is the persistence gateway the service runs on. Implementations
// must return questions and categories ordered by id ascending from every
// list operation, and SearchQuestions matches case-insensitively on the
// question text.
type Store interface {
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategory(ctx context.Context, id int) (Category, error)
	ListQuestions(ctx context.Context) ([]Question, error)
	ListQuestionsByCategory(ctx context.Context, categoryID int) ([]Question, error)
	SearchQuestions(ctx context.Context, term string) ([]Question, error)
	GetQuestion(ctx context.Context, id int) (Question, error)
	InsertQuestion(ctx context.Context, q NewQuestion) (int, error)
	DeleteQuestion(ctx context.Context, id int) error
}

package trivia

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/triviaworks/trivia-api/pkg/http/envelope"
)

// HTTPHandlers provides the REST endpoints for the question bank.
type HTTPHandlers struct {
	service *Service
	logger  zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers backed by the given service.
func NewHTTPHandlers(service *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		service: service,
		logger:  logger.With().Str("component", "trivia_http").Logger(),
	}
}

// Register attaches the question-bank routes to mux.
func (h *HTTPHandlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /categories", h.GetCategories)
	mux.HandleFunc("GET /questions", h.GetQuestions)
	mux.HandleFunc("POST /questions", h.CreateOrSearchQuestions)
	mux.HandleFunc("DELETE /questions/{id}", h.DeleteQuestion)
	mux.HandleFunc("GET /categories/{id}/questions", h.GetQuestionsByCategory)
	mux.HandleFunc("POST /quizzes", h.PlayQuiz)
}

// GetCategories handles GET /categories.
func (h *HTTPHandlers) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		h.respondError(w, err, "list categories failed")
		return
	}
	envelope.JSON(w, map[string]any{
		"success":    true,
		"categories": categories,
	})
}

// GetQuestions handles GET /questions?page=N.
func (h *HTTPHandlers) GetQuestions(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListQuestions(r.Context(), pageFromRequest(r))
	if err != nil {
		h.respondError(w, err, "list questions failed")
		return
	}
	envelope.JSON(w, map[string]any{
		"success":         true,
		"questions":       result.Questions,
		"total_questions": result.TotalQuestions,
		"categories":      result.Categories,
	})
}

// DeleteQuestion handles DELETE /questions/{id}.
func (h *HTTPHandlers) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		envelope.Fail(w, http.StatusNotFound)
		return
	}
	deleted, err := h.service.DeleteQuestion(r.Context(), id)
	if err != nil {
		h.respondError(w, err, "delete question failed")
		return
	}
	envelope.JSON(w, map[string]any{
		"success": true,
		"deleted": deleted,
	})
}

// questionPayload is the body of POST /questions. SearchTerm stays a raw
// message so a present-but-null key is distinguishable from an absent one.
type questionPayload struct {
	SearchTerm json.RawMessage `json:"searchTerm"`
	Question   *string         `json:"question"`
	Answer     *string         `json:"answer"`
	Category   *int            `json:"category"`
	Difficulty *int            `json:"difficulty"`
}

// CreateOrSearchQuestions handles POST /questions. The endpoint is
// dual-purpose: presence of the searchTerm key selects search mode,
// whatever the value holds, before any other field is examined;
// otherwise the payload must carry all four creation fields.
func (h *HTTPHandlers) CreateOrSearchQuestions(w http.ResponseWriter, r *http.Request) {
	var payload questionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		envelope.Fail(w, http.StatusBadRequest)
		return
	}

	if payload.SearchTerm != nil {
		questions, err := h.service.SearchQuestions(r.Context(), searchTermText(payload.SearchTerm), pageFromRequest(r))
		if err != nil {
			h.respondError(w, err, "search questions failed")
			return
		}
		envelope.JSON(w, map[string]any{
			"success":   true,
			"questions": questions,
		})
		return
	}

	if payload.Question == nil || payload.Answer == nil || payload.Category == nil || payload.Difficulty == nil {
		envelope.Fail(w, http.StatusBadRequest)
		return
	}

	created, err := h.service.CreateQuestion(r.Context(), NewQuestion{
		Question:   *payload.Question,
		Answer:     *payload.Answer,
		Category:   *payload.Category,
		Difficulty: *payload.Difficulty,
	})
	if err != nil {
		h.respondError(w, err, "create question failed")
		return
	}
	envelope.JSON(w, map[string]any{
		"success": true,
		"created": created,
	})
}

// searchTermText extracts the text to match from a present searchTerm
// value. String values are used verbatim, null matches everything, and
// any other JSON value searches by its literal text.
func searchTermText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// GetQuestionsByCategory handles GET /categories/{id}/questions?page=N.
// Unlike the plain listing, an empty page for a known category is a
// success with an empty list.
func (h *HTTPHandlers) GetQuestionsByCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		envelope.Fail(w, http.StatusNotFound)
		return
	}
	questions, err := h.service.QuestionsByCategory(r.Context(), id, pageFromRequest(r))
	if err != nil {
		h.respondError(w, err, "list questions by category failed")
		return
	}
	envelope.JSON(w, map[string]any{
		"success":   true,
		"questions": questions,
	})
}

// quizPayload is the body of POST /quizzes.
type quizPayload struct {
	PreviousQuestions []int         `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

// PlayQuiz handles POST /quizzes. An exhausted pool responds with
// question null and success true.
func (h *HTTPHandlers) PlayQuiz(w http.ResponseWriter, r *http.Request) {
	var payload quizPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		envelope.Fail(w, http.StatusBadRequest)
		return
	}
	if payload.QuizCategory == nil {
		envelope.Fail(w, http.StatusBadRequest)
		return
	}

	question, err := h.service.NextQuizQuestion(r.Context(), *payload.QuizCategory, payload.PreviousQuestions)
	if err != nil {
		h.respondError(w, err, "quiz selection failed")
		return
	}
	envelope.JSON(w, map[string]any{
		"success":  true,
		"question": question,
	})
}

// respondError maps domain errors onto the fixed failure envelopes.
// Validation errors never reach storage; storage errors are remapped at
// the call site; anything unrecognized becomes a 500 and is logged.
func (h *HTTPHandlers) respondError(w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		envelope.Fail(w, http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		envelope.Fail(w, http.StatusNotFound)
	case errors.Is(err, ErrStorage):
		envelope.Fail(w, http.StatusUnprocessableEntity)
	default:
		h.logger.Error().Err(err).Msg(msg)
		envelope.Fail(w, http.StatusInternalServerError)
	}
}

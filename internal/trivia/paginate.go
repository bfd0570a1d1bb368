package trivia

import (
	"net/http"
	"strconv"
)

const questionsPerPage = 10

// paginate returns the 1-based page window over items, ten per page.
// Windows past the end (and page numbers below 1) come back empty;
// callers decide whether empty means not found.
func paginate[T any](page int, items []T) []T {
	start := (page - 1) * questionsPerPage
	if start < 0 || start >= len(items) {
		return nil
	}
	end := start + questionsPerPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// pageFromRequest reads the page query parameter, defaulting to 1 when
// absent or non-numeric.
func pageFromRequest(r *http.Request) int {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return page
}

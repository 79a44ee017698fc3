package tui

import (
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/sahilm/fuzzy"
)

// filterNotes returns the indexes of the notes matching query, best match
// first. An empty query keeps every note in list order.
func filterNotes(notes []models.Note, query string) []int {
	query = strings.TrimSpace(query)
	if query == "" {
		filtered := make([]int, len(notes))
		for i := range notes {
			filtered[i] = i
		}
		return filtered
	}

	haystack := make([]string, len(notes))
	for i, n := range notes {
		haystack[i] = n.Name + " " + n.Description
	}

	matches := fuzzy.Find(query, haystack)
	filtered := make([]int, len(matches))
	for i, match := range matches {
		filtered[i] = match.Index
	}
	return filtered
}

package usecases

import (
	"fmt"
	"strings"

	"github.com/trigrman/granola-meetings/internal/domain/meeting"
)

// SearchMeetings finds meetings by a case-insensitive substring.
type SearchMeetings struct {
	Source meeting.Source
}

// Execute matches query against each meeting's title, plain notes and
// overview. Results are most recent first.
func (s *SearchMeetings) Execute(query string) ([]meeting.Meeting, error) {
	repo, err := s.Source.Open()
	if err != nil {
		return nil, fmt.Errorf("loading cache: %w", err)
	}

	needle := strings.ToLower(query)
	matches := make([]meeting.Meeting, 0)
	for _, m := range recent(repo, 0) {
		if strings.Contains(searchText(m), needle) {
			matches = append(matches, m)
		}
	}
	return matches, nil
}

func searchText(m meeting.Meeting) string {
	return strings.ToLower(m.Title + " " + m.NotesPlain + " " + m.Overview)
}

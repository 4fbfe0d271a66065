package usecases

import (
	"fmt"

	"github.com/trigrman/granola-meetings/internal/domain/meeting"
)

// RecentNotes renders the notes of the most recent meetings.
type RecentNotes struct {
	Source meeting.Source
}

func (r *RecentNotes) Execute(limit int) ([]meeting.NotesEntry, error) {
	repo, err := r.Source.Open()
	if err != nil {
		return nil, fmt.Errorf("loading cache: %w", err)
	}

	meetings := recent(repo, limit)
	entries := make([]meeting.NotesEntry, 0, len(meetings))
	for _, m := range meetings {
		entries = append(entries, meeting.NotesEntry{
			ID:             m.ID,
			Title:          m.Title,
			CreatedAt:      m.CreatedAt,
			FormattedNotes: meeting.AssembleNotes(repo.Panels(m.ID)),
		})
	}
	return entries, nil
}

package usecases

import (
	"fmt"

	"github.com/trigrman/granola-meetings/internal/domain/meeting"
)

// ListMeetings returns the most recent meetings.
type ListMeetings struct {
	Source meeting.Source
}

// Execute returns up to limit meetings, most recent start time first.
// A limit of zero or less returns every meeting.
func (l *ListMeetings) Execute(limit int) ([]meeting.Meeting, error) {
	repo, err := l.Source.Open()
	if err != nil {
		return nil, fmt.Errorf("loading cache: %w", err)
	}
	return recent(repo, limit), nil
}

func recent(repo meeting.Repository, limit int) []meeting.Meeting {
	meetings := repo.List()
	meeting.SortByStartDesc(meetings)
	if limit > 0 && len(meetings) > limit {
		meetings = meetings[:limit]
	}
	return meetings
}

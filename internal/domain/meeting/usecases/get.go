package usecases

import (
	"fmt"

	"github.com/trigrman/granola-meetings/internal/domain/meeting"
)

// GetMeeting looks up one meeting with its notes.
type GetMeeting struct {
	Source meeting.Source
}

// GetOptions holds options for fetching a meeting.
type GetOptions struct {
	IncludeTranscript bool
}

// Execute returns the meeting detail. The boolean is false when id is
// unknown; that is not an error.
func (g *GetMeeting) Execute(id string, opts GetOptions) (*meeting.Detail, bool, error) {
	repo, err := g.Source.Open()
	if err != nil {
		return nil, false, fmt.Errorf("loading cache: %w", err)
	}

	m, ok := repo.Get(id)
	if !ok {
		return nil, false, nil
	}

	detail := &meeting.Detail{
		Meeting:        m,
		FormattedNotes: meeting.AssembleNotes(repo.Panels(id)),
	}
	if opts.IncludeTranscript {
		segments := repo.TranscriptSegments(id)
		meeting.SortSegments(segments)
		transcript := meeting.FormatTranscript(segments)
		detail.Transcript = &transcript
	}
	return detail, true, nil
}

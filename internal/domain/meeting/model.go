package meeting

import "github.com/trigrman/granola-meetings/internal/doctree"

// DefaultTitle is used for meetings stored without a title.
const DefaultTitle = "Untitled"

// Meeting represents one meeting document from the cache.
type Meeting struct {
	ID        string  `json:"id" yaml:"id"`
	Title     string  `json:"title" yaml:"title"`
	CreatedAt *string `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	// CalendarStart comes from the linked calendar event, if any.
	CalendarStart *string `json:"calendar_start,omitempty" yaml:"calendar_start,omitempty"`
	NotesMarkdown string  `json:"notes_markdown,omitempty" yaml:"notes_markdown,omitempty"`
	NotesPlain    string  `json:"notes_plain,omitempty" yaml:"notes_plain,omitempty"`
	Overview      string  `json:"overview,omitempty" yaml:"overview,omitempty"`
	Summary       *string `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// StartTime returns the calendar start when present, else the creation time,
// else the empty string.
func (m Meeting) StartTime() string {
	if m.CalendarStart != nil && *m.CalendarStart != "" {
		return *m.CalendarStart
	}
	if m.CreatedAt != nil {
		return *m.CreatedAt
	}
	return ""
}

// Created returns the creation timestamp or the empty string.
func (m Meeting) Created() string {
	if m.CreatedAt == nil {
		return ""
	}
	return *m.CreatedAt
}

// Panel is one AI-generated notes section attached to a meeting.
type Panel struct {
	ID      string
	Title   string
	Content []doctree.Node
}

// TranscriptSegment is one utterance of a meeting transcript.
type TranscriptSegment struct {
	DocumentID     string
	Text           string
	StartTimestamp string
}

// Detail is a meeting with its rendered notes and, on request, transcript.
type Detail struct {
	Meeting        `yaml:",inline"`
	FormattedNotes string  `json:"formatted_notes" yaml:"formatted_notes"`
	Transcript     *string `json:"transcript,omitempty" yaml:"transcript,omitempty"`
}

// NotesEntry pairs a meeting with its assembled notes.
type NotesEntry struct {
	ID             string  `json:"id" yaml:"id"`
	Title          string  `json:"title" yaml:"title"`
	CreatedAt      *string `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	FormattedNotes string  `json:"formatted_notes" yaml:"formatted_notes"`
}

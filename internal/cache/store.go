package cache

import (
	"encoding/json"
	"strings"

	"github.com/trigrman/granola-meetings/internal/doctree"
	"github.com/trigrman/granola-meetings/internal/domain/meeting"
	"github.com/trigrman/granola-meetings/internal/logger"
)

// Store is an immutable snapshot of the cache state.
type Store struct {
	meetings []meeting.Meeting
	index    map[string]int
	// empty holds ids of documents stored as {}; they are listed but cannot
	// be fetched by id.
	empty       map[string]bool
	panels      object
	transcripts object
}

var _ meeting.Repository = (*Store)(nil)

func newStore(st state) *Store {
	s := &Store{
		index:       make(map[string]int),
		empty:       make(map[string]bool),
		panels:      st.DocumentPanels,
		transcripts: st.Transcripts,
	}
	for _, m := range st.Documents {
		if !isObject(m.Value) {
			logger.Debugf("[Cache] skipping document %s: not an object", m.Key)
			continue
		}
		doc := decodeObject(m.Value)
		if len(doc) == 0 {
			s.empty[m.Key] = true
		}
		s.index[m.Key] = len(s.meetings)
		s.meetings = append(s.meetings, meetingFromDocument(m.Key, doc))
	}
	return s
}

func meetingFromDocument(id string, doc object) meeting.Meeting {
	m := meeting.Meeting{
		ID:    id,
		Title: meeting.DefaultTitle,
	}
	if title, ok := doc.str("title"); ok {
		m.Title = title
	}
	if created, ok := doc.str("created_at"); ok {
		m.CreatedAt = &created
	}
	if start, ok := doc.obj("google_calendar_event").obj("start").str("dateTime"); ok && start != "" {
		m.CalendarStart = &start
	}
	m.NotesMarkdown, _ = doc.str("notes_markdown")
	m.NotesPlain, _ = doc.str("notes_plain")
	m.Overview, _ = doc.str("overview")
	if summary, ok := doc.str("summary"); ok {
		m.Summary = &summary
	}
	return m
}

func (s *Store) Get(id string) (meeting.Meeting, bool) {
	i, ok := s.index[id]
	if !ok || s.empty[id] {
		return meeting.Meeting{}, false
	}
	return s.meetings[i], true
}

// List returns a copy of all meetings in file order.
func (s *Store) List() []meeting.Meeting {
	out := make([]meeting.Meeting, len(s.meetings))
	copy(out, s.meetings)
	return out
}

func (s *Store) Panels(meetingID string) []meeting.Panel {
	var panels []meeting.Panel
	for _, m := range s.panels.obj(meetingID) {
		if !isObject(m.Value) {
			continue
		}
		raw := decodeObject(m.Value)
		p := meeting.Panel{ID: m.Key}
		p.Title = panelTitle(raw)
		if content, ok := raw.get("content"); ok {
			p.Content = doctree.Decode(content)
		}
		panels = append(panels, p)
	}
	return panels
}

// panelTitle returns the panel's title as text. Numeric and true titles keep
// their JSON literal; zero, false, null and containers count as no title.
func panelTitle(raw object) string {
	if s, ok := raw.str("title"); ok {
		return s
	}
	v, ok := raw.get("title")
	if !ok {
		return ""
	}
	var scalar any
	if err := json.Unmarshal(v, &scalar); err != nil {
		return ""
	}
	switch t := scalar.(type) {
	case float64:
		if t != 0 {
			return strings.TrimSpace(string(v))
		}
	case bool:
		if t {
			return "true"
		}
	}
	return ""
}

// TranscriptSegments scans transcript groups in file order and returns the
// segments of the first group that has any segment for meetingID. Segments
// of the same meeting in later groups are not merged.
func (s *Store) TranscriptSegments(meetingID string) []meeting.TranscriptSegment {
	for _, group := range s.transcripts {
		var entries []json.RawMessage
		if err := json.Unmarshal(group.Value, &entries); err != nil {
			continue
		}
		var segments []meeting.TranscriptSegment
		for _, entry := range entries {
			if !isObject(entry) {
				continue
			}
			seg := decodeObject(entry)
			if docID, ok := seg.str("document_id"); !ok || docID != meetingID {
				continue
			}
			text, _ := seg.str("text")
			start, _ := seg.str("start_timestamp")
			segments = append(segments, meeting.TranscriptSegment{
				DocumentID:     meetingID,
				Text:           text,
				StartTimestamp: start,
			})
		}
		if len(segments) > 0 {
			return segments
		}
	}
	return nil
}
